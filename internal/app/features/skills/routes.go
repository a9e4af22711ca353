// internal/app/features/skills/routes.go
package skills

import "github.com/go-chi/chi/v5"

// PublicRoutes returns the unauthenticated skills routes, mounted under
// /api/public/skills.
func PublicRoutes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeList)
	return r
}

// AdminRoutes returns the admin CRUD routes, mounted under
// /api/admin/skills behind the session middleware.
func AdminRoutes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeAdminList)
	r.Post("/", h.HandleCreate)
	r.Put("/{id}", h.HandleUpdate)
	r.Delete("/{id}", h.HandleDelete)
	return r
}
