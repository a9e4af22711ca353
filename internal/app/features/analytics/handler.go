// internal/app/features/analytics/handler.go
package analytics

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	pageviewstore "github.com/robilprogramer/portofolio-sub001/internal/app/store/pageviews"
	"github.com/robilprogramer/portofolio-sub001/internal/app/system/errlog"
)

// Handler serves analytics: fail-open pageview ingestion on the public
// surface and aggregate stats on the admin surface.
type Handler struct {
	Store  *pageviewstore.Store
	ErrLog *errlog.Logger
	Log    *zap.Logger
}

func NewHandler(db *gorm.DB, errLog *errlog.Logger, logger *zap.Logger) *Handler {
	return &Handler{
		Store:  pageviewstore.New(db),
		ErrLog: errLog,
		Log:    logger,
	}
}
