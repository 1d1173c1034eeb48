package handlers

import (
	"log/slog"
	"net/http"
	"os"

	"pitchview/internal/dataset"
	"pitchview/internal/domain"
	"pitchview/internal/http/requestutil"
	"pitchview/internal/logging"
)

// StoreWriter swaps the in-memory dataset after a successful reload.
type StoreWriter interface {
	SetPlayers(players []domain.Player)
}

// AdminHandler exposes operator-only endpoints (e.g., dataset reload).
type AdminHandler struct {
	source dataset.Source
	store  StoreWriter
	token  string
	logger *slog.Logger
}

// NewAdminHandler constructs an AdminHandler.
func NewAdminHandler(source dataset.Source, store StoreWriter, token string, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		source: source,
		store:  store,
		token:  token,
		logger: logger,
	}
}

// Reload refetches the dataset from the configured source and swaps the
// store in place. Guarded by ADMIN_TOKEN env; returns 401 if missing/invalid.
func (h *AdminHandler) Reload(w http.ResponseWriter, r *http.Request) {
	if !h.authorize(r) {
		logging.Warn(h.logger, "admin unauthorized",
			slog.String(logging.FieldPath, r.URL.Path),
			slog.String("client_ip", requestutil.ClientIP(r)),
		)
		writeError(w, r, http.StatusUnauthorized, "unauthorized", h.logger)
		return
	}
	if h.source == nil || h.store == nil {
		writeError(w, r, http.StatusServiceUnavailable, "reload not configured", h.logger)
		return
	}

	logger := loggerFromContext(r, h.logger)
	loaded, err := h.source.Load(r.Context())
	if err != nil {
		logging.Warn(logger, "admin reload failed",
			slog.String(logging.FieldSource, h.source.Name()),
			slog.Any("err", err),
		)
		writeError(w, r, http.StatusBadGateway, "failed to load dataset", logger)
		return
	}
	if len(loaded) == 0 {
		logging.Warn(logger, "admin reload returned no rows",
			slog.String(logging.FieldSource, h.source.Name()),
		)
		writeError(w, r, http.StatusBadRequest, "dataset is empty", logger)
		return
	}

	h.store.SetPlayers(loaded)
	writeJSON(w, http.StatusOK, map[string]any{
		"status": "ok",
		"rows":   len(loaded),
		"source": h.source.Name(),
	}, logger)
	logging.Info(logger, "admin reload complete",
		slog.String(logging.FieldSource, h.source.Name()),
		slog.Int(logging.FieldCount, len(loaded)),
	)
}

// AdminTokenFromEnv reads ADMIN_TOKEN (optional).
func AdminTokenFromEnv() string {
	return os.Getenv("ADMIN_TOKEN")
}

func (h *AdminHandler) authorize(r *http.Request) bool {
	if h.token == "" {
		return false
	}
	return r.Header.Get("Authorization") == "Bearer "+h.token
}
