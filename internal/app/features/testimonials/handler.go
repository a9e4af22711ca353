// internal/app/features/testimonials/handler.go
package testimonials

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	testimonialstore "github.com/robilprogramer/portofolio-sub001/internal/app/store/testimonials"
	"github.com/robilprogramer/portofolio-sub001/internal/app/system/errlog"
)

// Handler serves testimonials and their admin CRUD.
type Handler struct {
	Store  *testimonialstore.Store
	ErrLog *errlog.Logger
	Log    *zap.Logger
}

func NewHandler(db *gorm.DB, errLog *errlog.Logger, logger *zap.Logger) *Handler {
	return &Handler{
		Store:  testimonialstore.New(db),
		ErrLog: errLog,
		Log:    logger,
	}
}
