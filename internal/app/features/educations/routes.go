// internal/app/features/educations/routes.go
package educations

import "github.com/go-chi/chi/v5"

// PublicRoutes returns the unauthenticated education routes, mounted
// under /api/public/education.
func PublicRoutes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeList)
	return r
}

// AdminRoutes returns the admin CRUD routes, mounted under
// /api/admin/education behind the session middleware.
func AdminRoutes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeAdminList)
	r.Post("/", h.HandleCreate)
	r.Put("/{id}", h.HandleUpdate)
	r.Delete("/{id}", h.HandleDelete)
	return r
}
