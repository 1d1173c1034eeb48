package config

const (
	envPort         = "PORT"
	envSource       = "STATS_SOURCE"
	envSeason       = "STATS_SEASON"
	envMetricsPort  = "METRICS_PORT"
	envMetricsOn    = "METRICS_ENABLED"
	envOtelEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService  = "OTEL_SERVICE_NAME"
	envOtelInsecure = "OTEL_EXPORTER_OTLP_INSECURE"

	defaultPort = "4000"
	// The fixture source lets the dashboard boot with demo data before a real
	// export is wired up.
	defaultSource      = "fixture"
	defaultSeason      = "2022-2023"
	defaultMetricsPort = "9090"
)
