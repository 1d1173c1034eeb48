package config

// Config holds runtime configuration for the server.
type Config struct {
	Port      string
	Source    string
	Season    string
	Dataset   DatasetConfig
	Dashboard DashboardConfig
	Metrics   MetricsConfig
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:      envOrDefault(envPort, defaultPort),
		Source:    envOrDefault(envSource, defaultSource),
		Season:    envOrDefault(envSeason, defaultSeason),
		Dataset:   loadDataset(),
		Dashboard: loadDashboard(),
		Metrics:   loadMetrics(),
	}
}
