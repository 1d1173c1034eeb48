package server

import (
	"context"
	"net/http"
	"testing"

	"pitchview/internal/metrics"
)

// metricsSetupSuccess forces a handler so the buildMetrics success path is covered.
func metricsSetupSuccess(ctx context.Context, cfg metrics.TelemetryConfig) (*metrics.Recorder, http.Handler, func(context.Context) error, error) {
	rec := metrics.NewRecorder()
	return rec, http.NewServeMux(), func(context.Context) error { return nil }, nil
}

func TestBuildMetricsSuccessPathSetsServerAndShutdown(t *testing.T) {
	orig := metricsSetup
	defer func() { metricsSetup = orig }()
	metricsSetup = metricsSetupSuccess

	cfg := testConfig()
	cfg.Metrics.Enabled = true
	cfg.Metrics.Port = "9999"

	rec, srv, stop := buildMetrics(cfg, nil, nil)

	if rec == nil || srv == nil || stop == nil {
		t.Fatalf("expected recorder, server, and shutdown to be set on success")
	}
	if srv.Addr() != ":9999" {
		t.Fatalf("expected metrics server on :9999, got %s", srv.Addr())
	}
}
