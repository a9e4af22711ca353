// internal/app/features/posts/handler.go
package posts

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	poststore "github.com/robilprogramer/portofolio-sub001/internal/app/store/posts"
	"github.com/robilprogramer/portofolio-sub001/internal/app/system/errlog"
)

// Handler serves the blog: public reads by slug, admin CRUD.
type Handler struct {
	Store  *poststore.Store
	ErrLog *errlog.Logger
	Log    *zap.Logger
}

// NewHandler constructs a Posts handler bound to a DB and logger.
func NewHandler(db *gorm.DB, errLog *errlog.Logger, logger *zap.Logger) *Handler {
	return &Handler{
		Store:  poststore.New(db),
		ErrLog: errLog,
		Log:    logger,
	}
}
