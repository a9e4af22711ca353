// internal/app/features/skills/handler.go
package skills

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	skillstore "github.com/robilprogramer/portofolio-sub001/internal/app/store/skills"
	"github.com/robilprogramer/portofolio-sub001/internal/app/system/errlog"
)

// Handler serves the skills list and its admin CRUD.
type Handler struct {
	Store  *skillstore.Store
	ErrLog *errlog.Logger
	Log    *zap.Logger
}

func NewHandler(db *gorm.DB, errLog *errlog.Logger, logger *zap.Logger) *Handler {
	return &Handler{
		Store:  skillstore.New(db),
		ErrLog: errLog,
		Log:    logger,
	}
}
