// internal/app/features/posts/routes.go
package posts

import "github.com/go-chi/chi/v5"

// PublicRoutes returns the unauthenticated blog routes, mounted under
// /api/public/posts.
func PublicRoutes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeList)
	r.Get("/{slug}", h.ServeBySlug)
	r.Post("/{slug}/view", h.HandleView)
	return r
}

// AdminRoutes returns the admin CRUD routes, mounted under
// /api/admin/posts behind the session middleware.
func AdminRoutes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeAdminList)
	r.Post("/", h.HandleCreate)
	r.Put("/{id}", h.HandleUpdate)
	r.Delete("/{id}", h.HandleDelete)
	return r
}
