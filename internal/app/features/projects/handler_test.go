package projects

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/robilprogramer/portofolio-sub001/internal/app/system/auth"
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

func TestPublicListExcludesUnpublished(t *testing.T) {
	h, fx := newTestHandler(t)
	fx.SeedProject("visible-one", true)
	fx.SeedProject("visible-two", true)
	fx.SeedProject("hidden", false)

	rec := httptest.NewRecorder()
	PublicRoutes(h).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	env := testutil.DecodeEnvelope(t, rec)
	require.True(t, env.Success)

	var rows []models.Project
	testutil.DecodeData(t, env, &rows)
	require.Len(t, rows, 2)
	for _, p := range rows {
		assert.NotEqual(t, "hidden", p.Slug)
		assert.True(t, p.IsPublished)
	}
	require.NotNil(t, env.Pagination)
	assert.Equal(t, int64(2), env.Pagination.Total)
}

func TestPublicListPagination(t *testing.T) {
	h, fx := newTestHandler(t)
	for _, slug := range []string{"p-a", "p-b", "p-c", "p-d", "p-e"} {
		fx.SeedProject(slug, true)
	}

	rec := httptest.NewRecorder()
	PublicRoutes(h).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/?page=2&limit=2", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	env := testutil.DecodeEnvelope(t, rec)
	require.NotNil(t, env.Pagination)
	assert.Equal(t, int64(5), env.Pagination.Total)
	assert.Equal(t, 2, env.Pagination.Page)
	assert.Equal(t, 2, env.Pagination.Limit)
	assert.Equal(t, 3, env.Pagination.Pages)

	var rows []models.Project
	testutil.DecodeData(t, env, &rows)
	assert.Len(t, rows, 2)
}

func TestPublicBySlugUnpublishedLooksMissing(t *testing.T) {
	h, fx := newTestHandler(t)
	fx.SeedProject("draft", false)

	get := func(slug string) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		PublicRoutes(h).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/"+slug, nil))
		return rec
	}

	draft := get("draft")
	missing := get("never-existed")

	assert.Equal(t, http.StatusNotFound, draft.Code)
	assert.Equal(t, http.StatusNotFound, missing.Code)
	// the two bodies must be indistinguishable
	assert.Equal(t, missing.Body.String(), draft.Body.String())
}

func TestViewCounterIncrements(t *testing.T) {
	h, fx := newTestHandler(t)
	fx.SeedProject("counted", true)

	for want := int64(1); want <= 3; want++ {
		rec := httptest.NewRecorder()
		PublicRoutes(h).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/counted/view", nil))
		require.Equal(t, http.StatusOK, rec.Code)

		var res viewResult
		testutil.DecodeData(t, testutil.DecodeEnvelope(t, rec), &res)
		assert.Equal(t, want, res.ViewCount)
	}
}

func TestViewCounterConcurrentIncrements(t *testing.T) {
	h, fx := newTestHandler(t)
	seeded := fx.SeedProject("racy", true)

	const n = 20
	router := PublicRoutes(h)
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/racy/view", nil))
			assert.Equal(t, http.StatusOK, rec.Code)
		}()
	}
	wg.Wait()

	var p models.Project
	require.NoError(t, fx.DB().First(&p, "id = ?", seeded.ID).Error)
	assert.EqualValues(t, n, p.ViewCount, "no increment may be lost under concurrency")
}

func TestViewCounterUnpublished404(t *testing.T) {
	h, fx := newTestHandler(t)
	fx.SeedProject("draft", false)

	rec := httptest.NewRecorder()
	PublicRoutes(h).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/draft/view", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAdminCreateRequiresSession(t *testing.T) {
	h, fx := newTestHandler(t)

	body := map[string]any{"title": "New Project"}
	rec := httptest.NewRecorder()
	AdminRoutes(h).ServeHTTP(rec, testutil.NewJSONRequest(t, http.MethodPost, "/", body))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	var n int64
	require.NoError(t, fx.DB().Model(&models.Project{}).Count(&n).Error)
	assert.Zero(t, n, "rejected request must not write")
}

func TestAdminCreate(t *testing.T) {
	h, _ := newTestHandler(t)

	body := map[string]any{
		"title":      "My CLI Tool",
		"tech_stack": []string{"go", "cobra"},
		"featured":   true,
	}
	req := testutil.WithUser(testutil.NewJSONRequest(t, http.MethodPost, "/", body), testutil.AdminUser())
	rec := httptest.NewRecorder()
	AdminRoutes(h).ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	var created models.Project
	testutil.DecodeData(t, testutil.DecodeEnvelope(t, rec), &created)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "my-cli-tool", created.Slug, "slug derives from title when absent")
	assert.True(t, created.IsPublished, "published defaults to true")
	assert.Equal(t, models.ProjectStatusCompleted, created.Status)
}

func TestAdminCreateValidation(t *testing.T) {
	h, _ := newTestHandler(t)

	body := map[string]any{"title": "  ", "status": "bogus"}
	req := testutil.WithUser(testutil.NewJSONRequest(t, http.MethodPost, "/", body), testutil.AdminUser())
	rec := httptest.NewRecorder()
	AdminRoutes(h).ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	env := testutil.DecodeEnvelope(t, rec)
	assert.False(t, env.Success)
	assert.Equal(t, "Validation failed", env.Message)
	assert.Contains(t, env.Errors, "title")
	assert.Contains(t, env.Errors, "status")
}

func TestAdminCreateDuplicateSlug(t *testing.T) {
	h, fx := newTestHandler(t)
	fx.SeedProject("taken", true)

	body := map[string]any{"title": "Other", "slug": "taken"}
	req := testutil.WithUser(testutil.NewJSONRequest(t, http.MethodPost, "/", body), testutil.AdminUser())
	rec := httptest.NewRecorder()
	AdminRoutes(h).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestAdminListIncludesUnpublished(t *testing.T) {
	h, fx := newTestHandler(t)
	fx.SeedProject("live", true)
	fx.SeedProject("draft", false)

	req := testutil.WithUser(httptest.NewRequest(http.MethodGet, "/", nil), testutil.AdminUser())
	rec := httptest.NewRecorder()
	AdminRoutes(h).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var rows []models.Project
	testutil.DecodeData(t, testutil.DecodeEnvelope(t, rec), &rows)
	assert.Len(t, rows, 2)
}

func TestAdminGateRejectsOtherRolesWith401(t *testing.T) {
	h, fx := newTestHandler(t)

	editor := &auth.SessionUser{ID: "u-editor", Name: "Editor", Email: "editor@example.com", Role: "EDITOR"}
	body := map[string]any{"title": "Sneaky", "description": "should not land"}
	req := testutil.WithUser(testutil.NewJSONRequest(t, http.MethodPost, "/", body), editor)
	rec := httptest.NewRecorder()
	AdminRoutes(h).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code,
		"wrong-role session gets the same 401 as no session")

	var n int64
	require.NoError(t, fx.DB().Model(&models.Project{}).Count(&n).Error)
	assert.Zero(t, n)
}

func TestAdminListSearch(t *testing.T) {
	h, fx := newTestHandler(t)
	fx.SeedProject("weather-cli", true)
	fx.SeedProject("blog-engine", false)

	req := testutil.WithUser(httptest.NewRequest(http.MethodGet, "/?q=weather", nil), testutil.AdminUser())
	rec := httptest.NewRecorder()
	AdminRoutes(h).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var rows []models.Project
	testutil.DecodeData(t, testutil.DecodeEnvelope(t, rec), &rows)
	require.Len(t, rows, 1)
	assert.Equal(t, "weather-cli", rows[0].Slug)
}

func TestAdminUpdatePartial(t *testing.T) {
	h, fx := newTestHandler(t)
	seeded := fx.SeedProject("keep-slug", true)

	body := map[string]any{"featured": true, "order": 7}
	req := testutil.WithUser(testutil.NewJSONRequest(t, http.MethodPut, "/"+seeded.ID, body), testutil.AdminUser())
	rec := httptest.NewRecorder()
	AdminRoutes(h).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var updated models.Project
	testutil.DecodeData(t, testutil.DecodeEnvelope(t, rec), &updated)
	assert.True(t, updated.Featured)
	assert.Equal(t, 7, updated.Order)
	assert.Equal(t, "keep-slug", updated.Slug, "absent fields stay untouched")
}

func TestAdminUpdateMissing404(t *testing.T) {
	h, _ := newTestHandler(t)

	body := map[string]any{"featured": true}
	req := testutil.WithUser(testutil.NewJSONRequest(t, http.MethodPut, "/no-such-id", body), testutil.AdminUser())
	rec := httptest.NewRecorder()
	AdminRoutes(h).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAdminDelete(t *testing.T) {
	h, fx := newTestHandler(t)
	seeded := fx.SeedProject("doomed", true)

	// SUPER_ADMIN passes the same gate as ADMIN.
	req := testutil.WithUser(httptest.NewRequest(http.MethodDelete, "/"+seeded.ID, nil), testutil.SuperAdminUser())
	rec := httptest.NewRecorder()
	AdminRoutes(h).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var n int64
	require.NoError(t, fx.DB().Model(&models.Project{}).Count(&n).Error)
	assert.Zero(t, n)
}
