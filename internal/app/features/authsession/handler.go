// internal/app/features/authsession/handler.go
package authsession

import (
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	userstore "github.com/robilprogramer/portofolio-sub001/internal/app/store/users"
	"github.com/robilprogramer/portofolio-sub001/internal/app/system/auth"
	"github.com/robilprogramer/portofolio-sub001/internal/app/system/errlog"
	"github.com/robilprogramer/portofolio-sub001/internal/app/system/ratelimit"
)

// Handler serves session lifecycle: login, logout, current-user lookup,
// and a cookie-clearing escape hatch for wedged browsers.
type Handler struct {
	Users    *userstore.Store
	Sessions *auth.SessionManager
	Limiter  *ratelimit.LoginLimiter
	ErrLog   *errlog.Logger
	Log      *zap.Logger
}

// NewHandler constructs the auth handler.
func NewHandler(db *gorm.DB, sm *auth.SessionManager, errLog *errlog.Logger, logger *zap.Logger) *Handler {
	return &Handler{
		Users:    userstore.New(db),
		Sessions: sm,
		Limiter:  ratelimit.NewLoginLimiter(),
		ErrLog:   errLog,
		Log:      logger,
	}
}

// checkPassword compares a bcrypt hash against a candidate password.
func checkPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// HashPassword hashes a password for storage. Exposed for account
// seeding at startup.
func HashPassword(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
