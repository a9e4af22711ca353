// internal/app/features/projects/routes.go
package projects

import "github.com/go-chi/chi/v5"

// PublicRoutes returns the unauthenticated project routes, mounted
// under /api/public/projects.
func PublicRoutes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeList)
	r.Get("/{slug}", h.ServeBySlug)
	r.Post("/{slug}/view", h.HandleView)
	return r
}

// AdminRoutes returns the admin CRUD routes, mounted under
// /api/admin/projects behind the session middleware.
func AdminRoutes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeAdminList)
	r.Post("/", h.HandleCreate)
	r.Put("/{id}", h.HandleUpdate)
	r.Delete("/{id}", h.HandleDelete)
	return r
}
