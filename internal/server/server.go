package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/pkg/browser"

	"pitchview/internal/app/players"
	"pitchview/internal/app/squads"
	"pitchview/internal/config"
	"pitchview/internal/dataset"
	httpserver "pitchview/internal/http"
	"pitchview/internal/http/handlers"
	"pitchview/internal/http/middleware"
	"pitchview/internal/logging"
	"pitchview/internal/metrics"
	"pitchview/internal/store"
)

var (
	metricsSetup = metrics.Setup
	openBrowser  = browser.OpenURL
)

type Server struct {
	cfg            config.Config
	logger         *slog.Logger
	metrics        *metrics.Recorder
	store          *store.MemoryStore
	playersService *players.Service
	squadsService  *squads.Service
	source         dataset.Source
	httpServer     httpServer
	metricsServer  httpServer
	metricsStop    func(context.Context) error
}

// New constructs a server with default source wiring.
func New(cfg config.Config, logger *slog.Logger) *Server {
	return newServerWithSource(cfg, logger, nil)
}

func newServerWithSource(cfg config.Config, logger *slog.Logger, source dataset.Source) *Server {
	return newServerWithMetrics(cfg, logger, source, nil)
}

func newServerWithMetrics(cfg config.Config, logger *slog.Logger, source dataset.Source, recorder *metrics.Recorder) *Server {
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger, recorder)

	if source == nil {
		source = newSourceFactory(logger).build(cfg)
	} else {
		source = dataset.NewRetryingSource(source, logger, cfg.Dataset.LoadRetries, cfg.Dataset.LoadBackoff)
	}
	memoryStore, playerSvc, squadSvc := buildServices(cfg)
	httpSrv := buildHTTPServer(cfg, memoryStore, playerSvc, squadSvc, logger, source, recorder)

	return &Server{
		cfg:            cfg,
		logger:         logger,
		metrics:        recorder,
		store:          memoryStore,
		playersService: playerSvc,
		squadsService:  squadSvc,
		source:         source,
		httpServer:     httpSrv,
		metricsServer:  metricsSrv,
		metricsStop:    metricsShutdown,
	}
}

// newServerWithDeps is used for testing to inject custom components.
func newServerWithDeps(cfg config.Config, logger *slog.Logger, source dataset.Source, httpSrv httpServer) *Server {
	memoryStore, playerSvc, squadSvc := buildServices(cfg)
	return &Server{
		cfg:            cfg,
		logger:         logger,
		store:          memoryStore,
		playersService: playerSvc,
		squadsService:  squadSvc,
		source:         source,
		httpServer:     httpSrv,
	}
}

func buildServices(cfg config.Config) (*store.MemoryStore, *players.Service, *squads.Service) {
	memoryStore := store.NewMemoryStore()
	return memoryStore, players.NewService(memoryStore), squads.NewService(memoryStore, cfg.Dashboard.SquadSortMetric)
}

func buildHTTPServer(cfg config.Config, memoryStore *store.MemoryStore, playerSvc *players.Service, squadSvc *squads.Service, logger *slog.Logger, source dataset.Source, recorder *metrics.Recorder) httpServer {
	handler := handlers.NewHandler(playerSvc, squadSvc, recorder, logger, handlers.Config{
		Season:            cfg.Season,
		Source:            source.Name(),
		DefaultPositions:  cfg.Dashboard.Positions,
		DefaultMinMinutes: cfg.Dashboard.MinMinutes,
		DefaultTopN:       cfg.Dashboard.TopN,
		SquadSortMetric:   cfg.Dashboard.SquadSortMetric,
	})

	// The reload endpoint is mounted only when an admin token is configured.
	var admin *handlers.AdminHandler
	if token := handlers.AdminTokenFromEnv(); token != "" {
		admin = handlers.NewAdminHandler(source, memoryStore, token, logger)
	}
	router := httpserver.NewRouter(handler, admin)

	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}
	wrapped := middleware.LoggingMiddleware(logger, recorder, router)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      wrapped,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	return netHTTPServer{srv: srv}
}

// Run loads the dataset once, starts the HTTP and metrics servers, then waits
// for context cancellation to shut down gracefully. A failed load is fatal:
// the dashboard has nothing to serve without data.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	if err := s.loadDataset(ctx); err != nil {
		logging.Error(s.logger, "dataset load failed", err, slog.String(logging.FieldSource, s.sourceName()))
		if stop != nil {
			stop()
		}
		return
	}

	s.startMetrics()
	s.startServer(stop)
	s.openDashboard()

	<-ctx.Done()
	if s.logger != nil {
		s.logger.Info("shutdown signal received")
	}

	s.gracefulShutdown()
}

func (s *Server) loadDataset(ctx context.Context) error {
	start := time.Now()
	rows, err := s.source.Load(ctx)
	s.metrics.RecordLoadAttempt(s.sourceName(), time.Since(start), err)
	if err != nil {
		return err
	}

	s.store.SetPlayers(rows)
	s.metrics.RecordDatasetRows(s.sourceName(), len(rows))
	logging.Info(s.logger, "dataset loaded",
		slog.String(logging.FieldSource, s.sourceName()),
		slog.Int(logging.FieldCount, len(rows)),
		slog.Int64(logging.FieldDurationMS, time.Since(start).Milliseconds()),
	)
	if len(rows) == 0 {
		logging.Warn(s.logger, "dataset is empty", slog.String(logging.FieldSource, s.sourceName()))
	}
	return nil
}

func (s *Server) sourceName() string {
	if s.source == nil {
		return ""
	}
	return s.source.Name()
}

func (s *Server) startServer(stop context.CancelFunc) {
	launchServer("http", s.httpServer, s.logger, func(err error) {
		if stop != nil {
			stop()
		}
	})
}

func (s *Server) startMetrics() {
	if s.metricsServer == nil {
		return
	}
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func (s *Server) openDashboard() {
	if !s.cfg.Dashboard.OpenBrowser {
		return
	}
	url := "http://localhost:" + s.cfg.Port
	go func() {
		if err := openBrowser(url); err != nil {
			logging.Warn(s.logger, "failed to open browser", slog.String("url", url), slog.Any("err", err))
		}
	}()
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics shutdown failed", "error", err)
		}
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics server shutdown failed", "error", err)
		}
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
		s.logger.Error("graceful shutdown failed", "error", err)
	}

	if s.logger != nil {
		s.logger.Info("shutdown complete")
	}
}

func buildMetrics(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (*metrics.Recorder, httpServer, func(context.Context) error) {
	if recorder != nil {
		return recorder, nil, nil
	}

	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		if logger != nil {
			logger.Warn("metrics setup failed, continuing without telemetry", "err", err)
		}
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		metricsSrv = netHTTPServer{
			srv: &http.Server{
				Addr:    ":" + recCfg.Port,
				Handler: handler,
			},
		}
	}

	return rec, metricsSrv, shutdown
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		if logger != nil {
			logger.Info("starting "+name+" server", slog.String("addr", srv.Addr()))
		}
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			if logger != nil {
				logger.Warn(name+" server failed", "error", err)
			}
			if onError != nil {
				onError(err)
			}
		}
	}()
}

// Handler exposes the HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler()
}
