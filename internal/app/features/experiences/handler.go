// internal/app/features/experiences/handler.go
package experiences

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	experiencestore "github.com/robilprogramer/portofolio-sub001/internal/app/store/experiences"
	"github.com/robilprogramer/portofolio-sub001/internal/app/system/errlog"
)

// Handler serves the work experience timeline and its admin CRUD.
type Handler struct {
	Store  *experiencestore.Store
	ErrLog *errlog.Logger
	Log    *zap.Logger
}

func NewHandler(db *gorm.DB, errLog *errlog.Logger, logger *zap.Logger) *Handler {
	return &Handler{
		Store:  experiencestore.New(db),
		ErrLog: errLog,
		Log:    logger,
	}
}
