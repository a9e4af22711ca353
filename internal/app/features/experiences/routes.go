// internal/app/features/experiences/routes.go
package experiences

import "github.com/go-chi/chi/v5"

// PublicRoutes returns the unauthenticated experience routes, mounted
// under /api/public/experiences.
func PublicRoutes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeList)
	return r
}

// AdminRoutes returns the admin CRUD routes, mounted under
// /api/admin/experiences behind the session middleware.
func AdminRoutes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeAdminList)
	r.Post("/", h.HandleCreate)
	r.Put("/{id}", h.HandleUpdate)
	r.Delete("/{id}", h.HandleDelete)
	return r
}
