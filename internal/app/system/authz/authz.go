// internal/app/system/authz/authz.go

// Package authz reads the authenticated user out of the request context.
// It never writes a response; callers decide how to reject.
package authz

import (
	"net/http"
	"strings"

	"github.com/robilprogramer/portofolio-sub001/internal/app/system/auth"
)

// UserCtx returns the user's role (uppercased), name, ID, and a found flag.
// ok=false means the request is unauthenticated; role is "VISITOR" then so
// accidental comparisons against real roles fail closed.
func UserCtx(r *http.Request) (role string, name string, userID string, ok bool) {
	user, ok := auth.CurrentUser(r)
	if !ok || user.ID == "" {
		return "VISITOR", "", "", false
	}
	return strings.ToUpper(user.Role), user.Name, user.ID, true
}
