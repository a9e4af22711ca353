// internal/app/features/projects/handler.go
package projects

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	projectstore "github.com/robilprogramer/portofolio-sub001/internal/app/store/projects"
	"github.com/robilprogramer/portofolio-sub001/internal/app/system/errlog"
)

// Handler is the feature-level entry point for Projects, serving both
// the public read surface and the admin CRUD surface.
type Handler struct {
	Store  *projectstore.Store
	ErrLog *errlog.Logger
	Log    *zap.Logger
}

// NewHandler constructs a Projects handler bound to a DB and logger.
func NewHandler(db *gorm.DB, errLog *errlog.Logger, logger *zap.Logger) *Handler {
	return &Handler{
		Store:  projectstore.New(db),
		ErrLog: errLog,
		Log:    logger,
	}
}
