// internal/app/features/authsession/routes.go
package authsession

import "github.com/go-chi/chi/v5"

// Routes returns the session lifecycle routes, mounted under /api/auth.
// Only /me needs a decoded session; login/logout/clear work either way.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Post("/login", h.HandleLogin)
	r.Post("/logout", h.HandleLogout)
	r.Get("/me", h.ServeMe)
	r.Get("/clear", h.HandleClear)
	return r
}
