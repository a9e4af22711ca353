// internal/app/features/profile/routes.go
package profile

import "github.com/go-chi/chi/v5"

// PublicRoutes returns the unauthenticated profile route, mounted under
// /api/public/profile.
func PublicRoutes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServePublic)
	return r
}

// AdminRoutes returns the admin profile routes, mounted under
// /api/admin/profile behind the session middleware.
func AdminRoutes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeAdmin)
	r.Post("/", h.HandleCreate)
	r.Put("/{id}", h.HandleUpdate)
	return r
}
