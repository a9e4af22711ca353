// internal/app/features/certificates/handler.go
package certificates

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	certificatestore "github.com/robilprogramer/portofolio-sub001/internal/app/store/certificates"
	"github.com/robilprogramer/portofolio-sub001/internal/app/system/errlog"
)

// Handler serves certificates and their admin CRUD.
type Handler struct {
	Store  *certificatestore.Store
	ErrLog *errlog.Logger
	Log    *zap.Logger
}

func NewHandler(db *gorm.DB, errLog *errlog.Logger, logger *zap.Logger) *Handler {
	return &Handler{
		Store:  certificatestore.New(db),
		ErrLog: errLog,
		Log:    logger,
	}
}
