package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// RouterOptions selects what a router serves. Nil handlers are not mounted,
// so the api binary and the dashboard binary share one router.
type RouterOptions struct {
	ProxyRequests  *ProxyRequestHandler
	BlockedSites   *BlockedSiteHandler
	Dashboard      *DashboardHandler
	Health         *HealthHandler
	Limiter        *IPRateLimiter
	AllowedOrigins []string
}

// SetupRouter creates the main Chi router for the application.
func SetupRouter(opts RouterOptions) *chi.Mux {
	r := chi.NewRouter()

	// --- Standard Middleware ---
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// --- Route Definitions ---
	if opts.Health != nil {
		r.Get("/health", opts.Health.Check)
	}

	if opts.ProxyRequests != nil || opts.BlockedSites != nil {
		r.Route("/api", func(r chi.Router) {
			// --- CORS Middleware ---
			// Tanpa origin yang diizinkan, /api hanya melayani origin yang sama
			if len(opts.AllowedOrigins) > 0 {
				r.Use(cors.Handler(cors.Options{
					AllowedOrigins: opts.AllowedOrigins,
					AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
					AllowedHeaders: []string{"Accept", "Content-Type"},
					MaxAge:         300, // Maximum value not ignored by any major browser
				}))
			}
			if opts.Limiter != nil {
				r.Use(RateLimit(opts.Limiter))
			}

			if h := opts.ProxyRequests; h != nil {
				r.Get("/proxy-requests", h.List)
				r.Delete("/proxy-requests", h.DeleteAll)
				r.Get("/proxy-requests/{id}", h.Get)
				r.Delete("/proxy-requests/{id}", h.Delete)
			}

			if h := opts.BlockedSites; h != nil {
				r.Get("/blockedsites", h.List)
				r.Get("/blockedsites/{r}", h.Check)
				r.Post("/blockedsites/{r}", h.Block)
				r.Delete("/blockedsites/{r}", h.Unblock)
				r.Patch("/refresh", h.Refresh)
			}
		})
	}

	if h := opts.Dashboard; h != nil {
		r.Get("/", h.Index)
		r.Post("/proxy-requests/{id}/delete", h.Delete)
	}

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		respondWithError(w, r, http.StatusNotFound, "not found")
	})

	return r
}
