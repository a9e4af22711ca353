// internal/app/features/sociallinks/handler.go
package sociallinks

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	sociallinkstore "github.com/robilprogramer/portofolio-sub001/internal/app/store/sociallinks"
	"github.com/robilprogramer/portofolio-sub001/internal/app/system/errlog"
)

// Handler serves social links and their admin CRUD. Created links are
// attributed to the admin session that created them.
type Handler struct {
	Store  *sociallinkstore.Store
	ErrLog *errlog.Logger
	Log    *zap.Logger
}

func NewHandler(db *gorm.DB, errLog *errlog.Logger, logger *zap.Logger) *Handler {
	return &Handler{
		Store:  sociallinkstore.New(db),
		ErrLog: errLog,
		Log:    logger,
	}
}
