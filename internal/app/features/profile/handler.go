// internal/app/features/profile/handler.go
package profile

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	profilestore "github.com/robilprogramer/portofolio-sub001/internal/app/store/profiles"
	"github.com/robilprogramer/portofolio-sub001/internal/app/system/errlog"
)

// Handler serves the site owner's profile card. The public surface
// treats the profile as a singleton: the newest published row wins.
type Handler struct {
	Store  *profilestore.Store
	ErrLog *errlog.Logger
	Log    *zap.Logger
}

func NewHandler(db *gorm.DB, errLog *errlog.Logger, logger *zap.Logger) *Handler {
	return &Handler{
		Store:  profilestore.New(db),
		ErrLog: errLog,
		Log:    logger,
	}
}
