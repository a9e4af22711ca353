// internal/app/features/authsession/handlers.go
package authsession

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/robilprogramer/portofolio-sub001/internal/app/system/auth"
	"github.com/robilprogramer/portofolio-sub001/internal/app/system/envelope"
	"github.com/robilprogramer/portofolio-sub001/internal/app/system/limits"
	"github.com/robilprogramer/portofolio-sub001/internal/app/system/ratelimit"
	"github.com/robilprogramer/portofolio-sub001/internal/app/system/timeouts"
)

type loginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// userPayload is the user shape returned to the frontend after login.
type userPayload struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// HandleLogin handles POST /api/auth/login. Wrong email and wrong
// password produce the same 401 so the endpoint does not leak which
// accounts exist.
func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, limits.MaxLoginBody)

	var in loginInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		envelope.Fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	in.Email = strings.TrimSpace(in.Email)
	if in.Email == "" || in.Password == "" {
		envelope.Fail(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	if ok, reason := h.Limiter.Check(r, in.Email); !ok {
		h.Log.Warn("login rate limited",
			zap.String("ip", ratelimit.ClientIP(r)))
		envelope.Fail(w, http.StatusTooManyRequests, reason)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	u, err := h.Users.GetByEmail(ctx, in.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			envelope.Fail(w, http.StatusUnauthorized, "Invalid email or password")
			return
		}
		h.ErrLog.ServerError(w, r, "login lookup", err, "Login failed")
		return
	}
	if !checkPassword(u.PasswordHash, in.Password) {
		h.Log.Warn("login failed",
			zap.String("user_id", u.ID),
			zap.String("ip", ratelimit.ClientIP(r)))
		envelope.Fail(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	su := &auth.SessionUser{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role}
	if err := h.Sessions.SignIn(w, r, su); err != nil {
		h.ErrLog.ServerError(w, r, "session sign-in", err, "Login failed")
		return
	}
	h.Limiter.ResetEmail(in.Email)

	h.Log.Info("login",
		zap.String("user_id", u.ID),
		zap.String("role", u.Role))
	envelope.OK(w, userPayload{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role})
}

// HandleLogout handles POST /api/auth/logout.
func (h *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	if err := h.Sessions.SignOut(w, r); err != nil {
		h.ErrLog.ServerError(w, r, "session sign-out", err, "Logout failed")
		return
	}
	envelope.OKMessage(w, "Logged out")
}

// ServeMe handles GET /api/auth/me. The account is re-read from the
// database rather than echoed from the cookie claims, so role changes
// and deleted accounts take effect without waiting for a re-login.
func (h *Handler) ServeMe(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.CurrentUser(r)
	if !ok {
		envelope.Fail(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	u, err := h.Users.GetByID(ctx, claims.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			envelope.Fail(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		h.ErrLog.ServerError(w, r, "load current user", err, "Failed to load account")
		return
	}
	envelope.OK(w, userPayload{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role})
}

// HandleClear handles GET /api/auth/clear: force-expires the session
// cookie even when it no longer decodes. Escape hatch for browsers
// stuck with a cookie signed by a rotated key.
func (h *Handler) HandleClear(w http.ResponseWriter, r *http.Request) {
	_ = h.Sessions.SignOut(w, r)
	envelope.OKMessage(w, "Session cleared")
}
