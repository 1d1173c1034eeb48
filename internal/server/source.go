package server

import (
	"log/slog"

	"pitchview/internal/config"
	"pitchview/internal/dataset"
	"pitchview/internal/dataset/fixture"
)

func selectSource(cfg config.Config, logger *slog.Logger) dataset.Source {
	switch normalizeSourceName(cfg.Source) {
	case "fixture", "":
		return fixture.New()
	case "file":
		return dataset.NewFileSource(cfg.Dataset.Path)
	case "http":
		return dataset.NewHTTPSource(dataset.HTTPConfig{
			URL:     cfg.Dataset.URL,
			Timeout: cfg.Dataset.HTTPTimeout,
		})
	default:
		if logger != nil {
			logger.Warn("unknown source, falling back to fixture", slog.String("source", cfg.Source))
		}
		return fixture.New()
	}
}
