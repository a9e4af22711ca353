// internal/app/system/auth/auth.go
package auth

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/gorilla/sessions"
	"go.uber.org/zap"

	"github.com/robilprogramer/portofolio-sub001/internal/app/system/envelope"
)

const (
	isAuthKey    = "is_authenticated"
	userIDKey    = "user_id"
	userNameKey  = "user_name"
	userEmailKey = "user_email"
	userRoleKey  = "user_role"
)

// SessionUser is the decoded session claims injected into r.Context().
// Handlers read it via CurrentUser; nothing reads ambient globals.
type SessionUser struct {
	ID    string
	Name  string
	Email string
	Role  string
}

type ctxKey string

const currentUserKey ctxKey = "currentUser"

// CurrentUser returns the signed-in user and a found flag.
func CurrentUser(r *http.Request) (*SessionUser, bool) {
	u, ok := r.Context().Value(currentUserKey).(*SessionUser)
	return u, ok
}

// WithTestUser injects a user into the request context. Test helper only;
// production requests go through LoadSessionUser.
func WithTestUser(r *http.Request, u *SessionUser) *http.Request {
	return withUser(r, u)
}

// SessionManager owns the cookie store and the auth middlewares.
type SessionManager struct {
	store    *sessions.CookieStore
	name     string
	loginURL string
	log      *zap.Logger
}

// NewSessionManager builds a SessionManager over a gorilla cookie store.
// The secure flag controls Secure cookies and SameSite mode: None in
// production (cross-site over HTTPS), Lax in local dev over http.
func NewSessionManager(sessionKey, sessionName, domain string, secure bool, logger *zap.Logger) (*SessionManager, error) {
	if sessionKey == "" {
		return nil, fmt.Errorf("session key is empty; provide ≥32 random chars")
	}
	if len(sessionKey) < 32 {
		logger.Warn("session key is short; 32+ chars recommended",
			zap.Int("length", len(sessionKey)))
	}

	store := sessions.NewCookieStore([]byte(sessionKey))
	opts := &sessions.Options{
		Domain:   domain,
		Path:     "/",
		Secure:   secure,
		HttpOnly: true,
	}
	if secure {
		opts.SameSite = http.SameSiteNoneMode
	} else {
		opts.SameSite = http.SameSiteLaxMode
	}
	store.Options = opts

	logger.Info("session store initialized",
		zap.Bool("secure", secure),
		zap.String("domain", domain))

	return &SessionManager{
		store:    store,
		name:     sessionName,
		loginURL: "/login",
		log:      logger,
	}, nil
}

// SignIn writes the user's claims into a fresh session cookie.
func (sm *SessionManager) SignIn(w http.ResponseWriter, r *http.Request, u *SessionUser) error {
	sess, _ := sm.store.Get(r, sm.name)
	sess.Values[isAuthKey] = true
	sess.Values[userIDKey] = u.ID
	sess.Values[userNameKey] = u.Name
	sess.Values[userEmailKey] = u.Email
	sess.Values[userRoleKey] = u.Role
	return sess.Save(r, w)
}

// SignOut expires the session cookie, mirroring the store's options so the
// deletion cookie matches what the browser holds.
func (sm *SessionManager) SignOut(w http.ResponseWriter, r *http.Request) error {
	sess, err := sm.store.Get(r, sm.name)
	if err != nil {
		sm.log.Warn("session decode failed during sign-out", zap.Error(err))
	}
	if opts := sm.store.Options; opts != nil {
		sess.Options.Domain = opts.Domain
		sess.Options.Path = opts.Path
		sess.Options.Secure = opts.Secure
		sess.Options.HttpOnly = opts.HttpOnly
		sess.Options.SameSite = opts.SameSite
	}
	sess.Options.MaxAge = -1
	return sess.Save(r, w)
}

// LoadSessionUser injects the session user into context if signed in.
// A cookie that fails to decode is treated identically to no cookie at
// all: the request continues unauthenticated.
func (sm *SessionManager) LoadSessionUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, err := sm.store.Get(r, sm.name)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}
		if isAuth, _ := sess.Values[isAuthKey].(bool); isAuth {
			u := &SessionUser{
				ID:    getString(sess, userIDKey),
				Name:  getString(sess, userNameKey),
				Email: getString(sess, userEmailKey),
				Role:  getString(sess, userRoleKey),
			}
			r = withUser(r, u)
		}
		next.ServeHTTP(w, r)
	})
}

// RequireSignedIn ensures a user is in context (set by LoadSessionUser).
// API callers get a 401 envelope; browser navigation gets a 303 to login
// preserving the return URL.
func (sm *SessionManager) RequireSignedIn(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := CurrentUser(r); ok {
			next.ServeHTTP(w, r)
			return
		}
		sm.unauthorized(w, r)
	})
}

// RequireRole ensures the signed-in user holds one of the allowed roles.
// A wrong-role session is rejected with the same 401 as no session; the
// admin surface does not reveal whether an account exists but lacks
// rights.
func (sm *SessionManager) RequireRole(allowed ...string) func(http.Handler) http.Handler {
	set := make(map[string]struct{}, len(allowed))
	for _, role := range allowed {
		set[strings.ToUpper(strings.TrimSpace(role))] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			u, ok := CurrentUser(r)
			if !ok {
				sm.unauthorized(w, r)
				return
			}
			if _, has := set[strings.ToUpper(u.Role)]; !has {
				sm.unauthorized(w, r)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func (sm *SessionManager) unauthorized(w http.ResponseWriter, r *http.Request) {
	if wantsHTML(r) {
		ret := url.QueryEscape(r.URL.RequestURI())
		http.Redirect(w, r, sm.loginURL+"?return="+ret, http.StatusSeeOther)
		return
	}
	envelope.Fail(w, http.StatusUnauthorized, "Unauthorized")
}

func withUser(r *http.Request, u *SessionUser) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), currentUserKey, u))
}

func getString(s *sessions.Session, key string) string {
	if v, ok := s.Values[key].(string); ok {
		return v
	}
	return ""
}

// wantsHTML distinguishes browser navigation from API calls. API clients
// send Accept: application/json (or nothing); browsers send text/html.
func wantsHTML(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "text/html")
}
