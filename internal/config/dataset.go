package config

import "time"

const (
	envDatasetPath = "STATS_DATASET_PATH"
	envDatasetURL  = "STATS_DATASET_URL"
	envHTTPTimeout = "STATS_HTTP_TIMEOUT"
	envLoadRetries = "STATS_LOAD_RETRIES"
	envLoadBackoff = "STATS_LOAD_BACKOFF"

	defaultHTTPTimeout = 15 * Duration(time.Second)
	defaultLoadRetries = 3
	// Linear backoff base between load attempts.
	defaultLoadBackoff = 200 * Duration(time.Millisecond)
)

// DatasetConfig controls where the season dataset comes from and how the
// one-time load behaves.
type DatasetConfig struct {
	Path        string
	URL         string
	HTTPTimeout Duration
	LoadRetries int
	LoadBackoff Duration
}

func loadDataset() DatasetConfig {
	return DatasetConfig{
		Path:        envOrDefault(envDatasetPath, ""),
		URL:         envOrDefault(envDatasetURL, ""),
		HTTPTimeout: durationEnvOrDefault(envHTTPTimeout, defaultHTTPTimeout),
		LoadRetries: intEnvOrDefault(envLoadRetries, defaultLoadRetries),
		LoadBackoff: durationEnvOrDefault(envLoadBackoff, defaultLoadBackoff),
	}
}
