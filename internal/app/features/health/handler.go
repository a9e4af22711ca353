// internal/app/features/health/handler.go
package health

import (
	"context"
	"database/sql"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/robilprogramer/portofolio-sub001/internal/app/system/envelope"
	"github.com/robilprogramer/portofolio-sub001/internal/app/system/timeouts"
)

// Handler serves the liveness/readiness probe.
type Handler struct {
	SQLDB *sql.DB
	Log   *zap.Logger
}

func NewHandler(sqlDB *sql.DB, logger *zap.Logger) *Handler {
	return &Handler{SQLDB: sqlDB, Log: logger}
}

type status struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

// ServeHealth handles GET /health. 200 while the database answers a
// ping, 503 otherwise.
func (h *Handler) ServeHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Ping())
	defer cancel()

	if err := h.SQLDB.PingContext(ctx); err != nil {
		h.Log.Error("health check failed", zap.Error(err))
		envelope.Fail(w, http.StatusServiceUnavailable, "Database unavailable")
		return
	}
	envelope.OK(w, status{Status: "ok", Database: "up"})
}

// Routes returns the health route, mounted at /health.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeHealth)
	return r
}
