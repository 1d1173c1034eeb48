package server

import "strings"

// normalizeSourceName lower-cases and trims a configured source name so
// selection matches regardless of env casing. Used across server wiring to
// keep naming consistent in metrics/logs.
func normalizeSourceName(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}
