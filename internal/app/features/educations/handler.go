// internal/app/features/educations/handler.go
package educations

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	educationstore "github.com/robilprogramer/portofolio-sub001/internal/app/store/educations"
	"github.com/robilprogramer/portofolio-sub001/internal/app/system/errlog"
)

// Handler serves the education timeline and its admin CRUD.
type Handler struct {
	Store  *educationstore.Store
	ErrLog *errlog.Logger
	Log    *zap.Logger
}

func NewHandler(db *gorm.DB, errLog *errlog.Logger, logger *zap.Logger) *Handler {
	return &Handler{
		Store:  educationstore.New(db),
		ErrLog: errLog,
		Log:    logger,
	}
}
