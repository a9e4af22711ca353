// internal/app/system/gates/gates.go

// Package gates provides in-handler authorization checks for admin and
// mutating API handlers.
//
// Admin routes are already behind the router-level middleware
// (auth.RequireSignedIn + auth.RequireRole in routes.go). The gates here
// are the second, independent evaluation: every mutating handler calls
// gates.RequireAdmin itself, so a misconfigured or bypassed route group
// still cannot reach a write without a valid admin session. The two
// layers intentionally do not share a code path.
package gates

import (
	"net/http"

	"github.com/robilprogramer/portofolio-sub001/internal/app/system/authz"
	"github.com/robilprogramer/portofolio-sub001/internal/app/system/envelope"
	"github.com/robilprogramer/portofolio-sub001/internal/domain/models"
)

// Result carries the authenticated user's claims out of a gate check.
type Result struct {
	Role   string
	Name   string
	UserID string
	OK     bool
}

// RequireAdmin ensures the request carries an authenticated session whose
// role is ADMIN or SUPER_ADMIN. Both a missing session and a session with
// any other role get the same 401; OK=false either way. The admin surface
// does not distinguish "not signed in" from "signed in without rights".
func RequireAdmin(w http.ResponseWriter, r *http.Request) Result {
	role, name, uid, ok := authz.UserCtx(r)
	if !ok || !models.IsAdminRole(role) {
		envelope.Fail(w, http.StatusUnauthorized, "Unauthorized")
		return Result{OK: false}
	}
	return Result{Role: role, Name: name, UserID: uid, OK: true}
}
