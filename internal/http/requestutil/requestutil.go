package requestutil

import (
	"fmt"
	"net/http"
	"regexp"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"pitchview/internal/domain"
)

var requestIDPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]{1,64}$`)

// SanitizeRequestID validates the incoming request ID header and generates a new one when invalid.
func SanitizeRequestID(incoming string) string {
	if incoming != "" && requestIDPattern.MatchString(incoming) {
		return incoming
	}
	return NewRequestID()
}

// NewRequestID generates a random request ID.
func NewRequestID() string {
	return uuid.NewString()
}

// ClientIP extracts the client IP from X-Forwarded-For or RemoteAddr.
func ClientIP(r *http.Request) string {
	if r == nil {
		return ""
	}
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		parts := strings.Split(forwarded, ",")
		if len(parts) > 0 {
			return strings.TrimSpace(parts[0])
		}
		return forwarded
	}
	return r.RemoteAddr
}

// ParseCriteria reads the shared filter query parameters (positions, minMinutes, squad).
func ParseCriteria(r *http.Request) (domain.FilterCriteria, error) {
	q := r.URL.Query()

	criteria := domain.FilterCriteria{
		Positions: SplitList(q.Get("positions")),
		Squad:     strings.TrimSpace(q.Get("squad")),
	}

	if raw := strings.TrimSpace(q.Get("minMinutes")); raw != "" {
		minMinutes, err := strconv.Atoi(raw)
		if err != nil {
			return domain.FilterCriteria{}, fmt.Errorf("invalid minMinutes %q", raw)
		}
		if minMinutes < 0 {
			return domain.FilterCriteria{}, fmt.Errorf("minMinutes must not be negative, got %d", minMinutes)
		}
		criteria.MinMinutes = minMinutes
	}

	return criteria, nil
}

// ParseTopN reads the topN query parameter, falling back to the default for
// empty or non-positive values.
func ParseTopN(r *http.Request, fallback int) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get("topN"))
	if raw == "" {
		return fallback, nil
	}
	topN, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid topN %q", raw)
	}
	if topN <= 0 {
		return fallback, nil
	}
	return topN, nil
}

// SplitList splits a comma-separated query value, trimming whitespace and
// dropping empty entries.
func SplitList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		out = append(out, part)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
