package http

import (
	nethttp "net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"pitchview/internal/http/handlers"
)

const requestTimeout = 30 * time.Second

// NewRouter registers the dashboard page, the JSON API, and the ops endpoints.
// The admin handler is optional; pass nil to leave the reload route unmounted.
func NewRouter(h *handlers.Handler, admin *handlers.AdminHandler) nethttp.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(requestTimeout))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		MaxAge:         300,
	}))

	r.NotFound(h.NotFound)
	r.MethodNotAllowed(h.MethodNotAllowed)

	r.Get("/", h.Dashboard)
	r.Get("/health", h.Health)
	r.Get("/ready", h.Ready)

	r.Route("/api", func(r chi.Router) {
		r.Get("/catalog", h.Catalog)
		r.Get("/players", h.Players)
		r.Get("/players/{name}", h.PlayerByName)
		r.Get("/rankings", h.Rankings)
		r.Get("/scatter", h.Scatter)
		r.Get("/compare", h.Compare)
		r.Get("/squads", h.Squads)
		r.Get("/squads/{name}", h.SquadOverview)
	})

	if admin != nil {
		r.Post("/admin/reload", admin.Reload)
	}

	return r
}
