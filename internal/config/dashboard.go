package config

const (
	envSquadSortMetric   = "STATS_SQUAD_SORT_METRIC"
	envDefaultPositions  = "STATS_DEFAULT_POSITIONS"
	envDefaultMinMinutes = "STATS_DEFAULT_MIN_MINUTES"
	envDefaultTopN       = "STATS_DEFAULT_TOP_N"
	envOpenBrowser       = "OPEN_BROWSER"

	defaultSquadSortMetric = "xG per 90"
	defaultMinMinutes      = 500
	defaultTopN            = 15
)

// DashboardConfig carries the defaults the dashboard view starts from. Every
// value can still be changed per request.
type DashboardConfig struct {
	SquadSortMetric string
	Positions       []string
	MinMinutes      int
	TopN            int
	OpenBrowser     bool
}

func loadDashboard() DashboardConfig {
	return DashboardConfig{
		SquadSortMetric: envOrDefault(envSquadSortMetric, defaultSquadSortMetric),
		Positions:       listEnvOrDefault(envDefaultPositions, []string{"FW", "MF", "DF"}),
		MinMinutes:      intEnvOrDefault(envDefaultMinMinutes, defaultMinMinutes),
		TopN:            intEnvOrDefault(envDefaultTopN, defaultTopN),
		OpenBrowser:     boolEnvOrDefault(envOpenBrowser, true),
	}
}
