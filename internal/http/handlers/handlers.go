package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"pitchview/internal/app/players"
	"pitchview/internal/app/squads"
	"pitchview/internal/catalog"
	"pitchview/internal/domain"
	"pitchview/internal/http/requestutil"
	"pitchview/internal/metrics"
	"pitchview/internal/stats"
)

// Config carries the request-independent settings the handlers surface.
type Config struct {
	Season            string
	Source            string
	DefaultPositions  []string
	DefaultMinMinutes int
	DefaultTopN       int
	SquadSortMetric   string
}

// Handler wires HTTP routes to the analytical services.
type Handler struct {
	players  *players.Service
	squads   *squads.Service
	recorder *metrics.Recorder
	logger   *slog.Logger
	cfg      Config
}

// NewHandler constructs a Handler.
func NewHandler(playerSvc *players.Service, squadSvc *squads.Service, recorder *metrics.Recorder, logger *slog.Logger, cfg Config) *Handler {
	return &Handler{
		players:  playerSvc,
		squads:   squadSvc,
		recorder: recorder,
		logger:   logger,
		cfg:      cfg,
	}
}

// Health reports the service health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if err := r.Context().Err(); err != nil {
		writeError(w, r, http.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic (e.g., for Kubernetes probes). The
// service is ready once the dataset load has completed.
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	loadedAt := h.players.LoadedAt()
	if loadedAt.IsZero() {
		writeError(w, r, http.StatusServiceUnavailable, "dataset not loaded", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, domain.ReadyResponse{
		Status:         "ready",
		Season:         h.cfg.Season,
		Source:         h.cfg.Source,
		LoadedAt:       loadedAt,
		DatasetSummary: h.players.Summary(),
	}, h.logger)
}

type catalogEntry struct {
	Label  string `json:"label"`
	Column string `json:"column"`
	Per90  bool   `json:"per90"`
}

// Catalog returns the ordered metric definitions backing the UI selectors.
func (h *Handler) Catalog(w http.ResponseWriter, r *http.Request) {
	defs := catalog.Definitions()
	entries := make([]catalogEntry, 0, len(defs))
	for _, def := range defs {
		entries = append(entries, catalogEntry{Label: def.Label, Column: def.Column, Per90: def.Per90})
	}
	writeJSON(w, http.StatusOK, entries, h.logger)
}

// Players returns the profiles matching the filter query parameters.
func (h *Handler) Players(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	criteria, err := requestutil.ParseCriteria(r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error(), h.logger)
		return
	}

	resp := h.players.Players(criteria)
	h.recorder.RecordQuery("players", time.Since(start))
	writeJSON(w, http.StatusOK, resp, h.logger)
}

// PlayerByName returns a single profile looked up by exact name.
func (h *Handler) PlayerByName(w http.ResponseWriter, r *http.Request) {
	name, err := url.PathUnescape(chi.URLParam(r, "name"))
	if err != nil || strings.TrimSpace(name) == "" {
		writeError(w, r, http.StatusBadRequest, "invalid player name", h.logger)
		return
	}

	profile, ok := h.players.PlayerByName(name)
	if !ok {
		writeError(w, r, http.StatusNotFound, "player not found", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, profile, h.logger)
}

// Rankings returns the top-N entries for a metric over the filtered view.
func (h *Handler) Rankings(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	criteria, err := requestutil.ParseCriteria(r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error(), h.logger)
		return
	}
	topN, err := requestutil.ParseTopN(r, h.cfg.DefaultTopN)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error(), h.logger)
		return
	}
	metric := strings.TrimSpace(r.URL.Query().Get("metric"))
	if metric == "" {
		metric = catalog.DefaultRanking
	}

	resp, err := h.players.Rank(criteria, metric, topN)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error(), h.logger)
		return
	}
	h.recorder.RecordQuery("rankings", time.Since(start))
	writeJSON(w, http.StatusOK, resp, h.logger)
}

// Scatter returns paired metric values for the filtered view.
func (h *Handler) Scatter(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	criteria, err := requestutil.ParseCriteria(r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error(), h.logger)
		return
	}
	x := strings.TrimSpace(r.URL.Query().Get("x"))
	if x == "" {
		x = catalog.DefaultScatterX
	}
	y := strings.TrimSpace(r.URL.Query().Get("y"))
	if y == "" {
		y = catalog.DefaultScatterY
	}

	resp, err := h.players.Scatter(criteria, x, y)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error(), h.logger)
		return
	}
	h.recorder.RecordQuery("scatter", time.Since(start))
	writeJSON(w, http.StatusOK, resp, h.logger)
}

// Compare returns side-by-side profiles for two players in the filtered view.
func (h *Handler) Compare(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	q := r.URL.Query()
	nameA := strings.TrimSpace(q.Get("a"))
	nameB := strings.TrimSpace(q.Get("b"))
	if nameA == "" || nameB == "" {
		writeError(w, r, http.StatusBadRequest, "both player names are required", h.logger)
		return
	}
	if nameA == nameB {
		writeError(w, r, http.StatusBadRequest, "choose two different players", h.logger)
		return
	}
	criteria, err := requestutil.ParseCriteria(r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error(), h.logger)
		return
	}

	cmp, err := h.players.Compare(criteria, nameA, nameB)
	if err != nil {
		var notFound *stats.PlayerNotFoundError
		if errors.As(err, &notFound) {
			writeError(w, r, http.StatusNotFound, err.Error(), h.logger)
			return
		}
		writeError(w, r, http.StatusBadRequest, err.Error(), h.logger)
		return
	}
	h.recorder.RecordQuery("compare", time.Since(start))
	writeJSON(w, http.StatusOK, cmp, h.logger)
}

// Squads lists the squads available for opponent analysis.
func (h *Handler) Squads(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.squads.Squads(), h.logger)
}

// SquadOverview returns one squad's players sorted by a threat metric.
func (h *Handler) SquadOverview(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	name, err := url.PathUnescape(chi.URLParam(r, "name"))
	if err != nil || strings.TrimSpace(name) == "" {
		writeError(w, r, http.StatusBadRequest, "invalid squad name", h.logger)
		return
	}
	metric := strings.TrimSpace(r.URL.Query().Get("metric"))

	resp, err := h.squads.Overview(name, metric)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error(), h.logger)
		return
	}
	h.recorder.RecordQuery("squad_overview", time.Since(start))
	writeJSON(w, http.StatusOK, resp, h.logger)
}

// NotFound renders the JSON error shape for unmatched routes.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, http.StatusNotFound, "not found", h.logger)
}

// MethodNotAllowed renders the JSON error shape for unsupported methods.
func (h *Handler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", h.logger)
}
