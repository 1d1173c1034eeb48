package server

import (
	"log/slog"

	"pitchview/internal/config"
	"pitchview/internal/dataset"
)

// sourceFactory assembles the dataset source with the shared retry wrapper.
type sourceFactory struct {
	logger *slog.Logger
}

func newSourceFactory(logger *slog.Logger) sourceFactory {
	return sourceFactory{logger: logger}
}

func (f sourceFactory) build(cfg config.Config) dataset.Source {
	base := selectSource(cfg, f.logger)
	return dataset.NewRetryingSource(base, f.logger, cfg.Dataset.LoadRetries, cfg.Dataset.LoadBackoff)
}
