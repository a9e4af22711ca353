// internal/app/features/analytics/handlers.go
package analytics

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	pageviewstore "github.com/robilprogramer/portofolio-sub001/internal/app/store/pageviews"
	"github.com/robilprogramer/portofolio-sub001/internal/app/system/csvutil"
	"github.com/robilprogramer/portofolio-sub001/internal/app/system/envelope"
	"github.com/robilprogramer/portofolio-sub001/internal/app/system/gates"
	"github.com/robilprogramer/portofolio-sub001/internal/app/system/limits"
	"github.com/robilprogramer/portofolio-sub001/internal/app/system/ratelimit"
	"github.com/robilprogramer/portofolio-sub001/internal/app/system/timeouts"
	"github.com/robilprogramer/portofolio-sub001/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/query"
)

const (
	defaultStatsDays = 30
	maxStatsDays     = 365
	topPathsLimit    = 10

	// visitorEstimateRatio approximates distinct visitors from raw view
	// counts. A real distinct-visitor metric needs client fingerprinting
	// the frontend does not send yet.
	visitorEstimateRatio = 0.5
)

type ingestInput struct {
	Path     string `json:"path"`
	Referrer string `json:"referrer"`
}

// HandleIngest handles POST /api/public/analytics/pageview. Ingestion is
// fail-open: a storage error is logged and swallowed so a broken
// analytics table never breaks page loads. The response is success
// either way.
func (h *Handler) HandleIngest(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, limits.MaxPageViewBody)

	var in ingestInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		// malformed beacon payloads are dropped, not rejected
		envelope.CreatedMessage(w, "Recorded")
		return
	}

	path := strings.TrimSpace(in.Path)
	if path == "" {
		path = "/"
	}

	pv := models.PageView{
		Path:      path,
		Referrer:  strings.TrimSpace(in.Referrer),
		UserAgent: r.UserAgent(),
		IP:        ratelimit.ClientIP(r),
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if err := h.Store.Insert(ctx, pv); err != nil {
		h.Log.Warn("pageview insert failed",
			zap.Error(err),
			zap.String("path", path))
	}
	envelope.CreatedMessage(w, "Recorded")
}

// statsResult is the admin stats payload.
type statsResult struct {
	Days           int                       `json:"days"`
	Path           string                    `json:"path,omitempty"`
	TotalViews     int64                     `json:"total_views"`
	UniqueVisitors int64                     `json:"unique_visitors"`
	TopPaths       []pageviewstore.PathCount `json:"top_paths"`
	Daily          []pageviewstore.DayCount  `json:"daily"`
}

// ServeStats handles GET /api/public/analytics/stats?days=N&path=/x.
// The stats are aggregates over the public pageview log, so the endpoint
// is readable without a session; the frontend renders them on the site.
func (h *Handler) ServeStats(w http.ResponseWriter, r *http.Request) {
	days := defaultStatsDays
	if s := query.Get(r, "days"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n >= 1 && n <= maxStatsDays {
			days = n
		}
	}
	path := query.Get(r, "path")
	since := time.Now().AddDate(0, 0, -days)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	total, err := h.Store.CountSince(ctx, since, path)
	if err != nil {
		h.ErrLog.ServerError(w, r, "count pageviews", err, "Failed to fetch analytics")
		return
	}
	top, err := h.Store.TopPathsSince(ctx, since, topPathsLimit)
	if err != nil {
		h.ErrLog.ServerError(w, r, "top paths", err, "Failed to fetch analytics")
		return
	}
	daily, err := h.Store.DailyCountsSince(ctx, since, path)
	if err != nil {
		h.ErrLog.ServerError(w, r, "daily counts", err, "Failed to fetch analytics")
		return
	}

	envelope.OK(w, statsResult{
		Days:           days,
		Path:           path,
		TotalViews:     total,
		UniqueVisitors: int64(math.Ceil(float64(total) * visitorEstimateRatio)),
		TopPaths:       top,
		Daily:          daily,
	})
}

// HandleExport handles GET /api/admin/analytics/export?days=N: the raw
// pageview log for the window as a CSV download.
func (h *Handler) HandleExport(w http.ResponseWriter, r *http.Request) {
	if res := gates.RequireAdmin(w, r); !res.OK {
		return
	}

	days := defaultStatsDays
	if s := query.Get(r, "days"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n >= 1 && n <= maxStatsDays {
			days = n
		}
	}
	since := time.Now().AddDate(0, 0, -days)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	rows, err := h.Store.ListSince(ctx, since, csvutil.MaxExportRows)
	if err != nil {
		h.ErrLog.ServerError(w, r, "list pageviews", err, "Failed to export analytics")
		return
	}

	filename := fmt.Sprintf("pageviews-%s.csv", time.Now().Format("2006-01-02"))
	if err := csvutil.WritePageViews(w, filename, rows); err != nil {
		h.Log.Warn("pageview export write failed", zap.Error(err))
	}
}
