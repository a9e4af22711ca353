package analytics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/robilprogramer/portofolio-sub001/internal/app/system/errlog"
	"github.com/robilprogramer/portofolio-sub001/internal/domain/models"
	"github.com/robilprogramer/portofolio-sub001/internal/testutil"
)

func newTestHandler(t *testing.T) (*Handler, *testutil.Fixtures) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	log := zap.NewNop()
	return NewHandler(db, errlog.New(log), log), testutil.NewFixtures(t, db)
}

func TestIngestRecordsPageview(t *testing.T) {
	h, fx := newTestHandler(t)

	body := map[string]any{"path": "/projects/my-cli", "referrer": "https://news.example.com"}
	req := testutil.NewJSONRequest(t, http.MethodPost, "/pageview", body)
	req.Header.Set("X-Forwarded-For", "198.51.100.7, 10.0.0.1")
	rec := httptest.NewRecorder()
	PublicRoutes(h).ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.True(t, testutil.DecodeEnvelope(t, rec).Success)

	var pv models.PageView
	require.NoError(t, fx.DB().First(&pv).Error)
	assert.Equal(t, "/projects/my-cli", pv.Path)
	assert.Equal(t, "198.51.100.7", pv.IP, "first hop of X-Forwarded-For wins")
}

func TestIngestFailOpenOnBadPayload(t *testing.T) {
	h, fx := newTestHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/pageview", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	PublicRoutes(h).ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code, "ingest never fails the caller")
	assert.True(t, testutil.DecodeEnvelope(t, rec).Success)

	var n int64
	require.NoError(t, fx.DB().Model(&models.PageView{}).Count(&n).Error)
	assert.Zero(t, n)
}

func TestIngestDefaultsPath(t *testing.T) {
	h, fx := newTestHandler(t)

	req := testutil.NewJSONRequest(t, http.MethodPost, "/pageview", map[string]any{})
	rec := httptest.NewRecorder()
	PublicRoutes(h).ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code)

	var pv models.PageView
	require.NoError(t, fx.DB().First(&pv).Error)
	assert.Equal(t, "/", pv.Path)
}

func TestStatsAggregates(t *testing.T) {
	h, fx := newTestHandler(t)
	now := time.Now()
	for i := 0; i < 3; i++ {
		fx.SeedPageView("/", now.Add(-time.Duration(i)*time.Hour))
	}
	fx.SeedPageView("/projects/x", now.Add(-2*time.Hour))
	// outside the 7-day window
	fx.SeedPageView("/", now.AddDate(0, 0, -9))

	rec := httptest.NewRecorder()
	PublicRoutes(h).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/stats?days=7", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var stats statsResult
	testutil.DecodeData(t, testutil.DecodeEnvelope(t, rec), &stats)
	assert.Equal(t, 7, stats.Days)
	assert.Equal(t, int64(4), stats.TotalViews)
	assert.Equal(t, int64(2), stats.UniqueVisitors, "ceil(4 * 0.5)")
	require.NotEmpty(t, stats.TopPaths)
	assert.Equal(t, "/", stats.TopPaths[0].Path)
	assert.Equal(t, int64(3), stats.TopPaths[0].Views)
}

func TestStatsPathFilter(t *testing.T) {
	h, fx := newTestHandler(t)
	now := time.Now()
	fx.SeedPageView("/a", now)
	fx.SeedPageView("/b", now)

	rec := httptest.NewRecorder()
	PublicRoutes(h).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/stats?path=/a", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var stats statsResult
	testutil.DecodeData(t, testutil.DecodeEnvelope(t, rec), &stats)
	assert.Equal(t, int64(1), stats.TotalViews)
	assert.Equal(t, "/a", stats.Path)
}

func TestStatsClampsDays(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := httptest.NewRecorder()
	PublicRoutes(h).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/stats?days=9999", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var stats statsResult
	testutil.DecodeData(t, testutil.DecodeEnvelope(t, rec), &stats)
	assert.Equal(t, defaultStatsDays, stats.Days, "out-of-range days falls back to default")
}

func TestExportStreamsCSV(t *testing.T) {
	h, fx := newTestHandler(t)
	now := time.Now()
	fx.SeedPageView("/", now.Add(-1*time.Hour))
	fx.SeedPageView("/posts/go-errors", now.Add(-2*time.Hour))
	fx.SeedPageView("/ancient", now.AddDate(0, 0, -40))

	req := testutil.WithUser(httptest.NewRequest(http.MethodGet, "/export", nil), testutil.AdminUser())
	rec := httptest.NewRecorder()
	AdminRoutes(h).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "attachment")

	lines := strings.Split(strings.TrimSpace(rec.Body.String()), "\n")
	require.Len(t, lines, 3, "header plus the two in-window rows")
	assert.Equal(t, "created_at,path,referrer,user_agent,ip", strings.TrimSpace(lines[0]))
	assert.Contains(t, rec.Body.String(), "/posts/go-errors")
	assert.NotContains(t, rec.Body.String(), "/ancient")
}

func TestExportRequiresAdmin(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := httptest.NewRecorder()
	AdminRoutes(h).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/export", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
