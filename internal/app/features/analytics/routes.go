// internal/app/features/analytics/routes.go
package analytics

import "github.com/go-chi/chi/v5"

// PublicRoutes returns the pageview ingest and stats routes, mounted
// under /api/public/analytics.
func PublicRoutes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Post("/pageview", h.HandleIngest)
	r.Get("/stats", h.ServeStats)
	return r
}

// AdminRoutes returns the export route, mounted under
// /api/admin/analytics behind the session middleware.
func AdminRoutes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/export", h.HandleExport)
	return r
}
