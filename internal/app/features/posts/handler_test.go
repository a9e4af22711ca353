package posts

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

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

func TestPublicListExcludesDrafts(t *testing.T) {
	h, fx := newTestHandler(t)
	fx.SeedPost("live", true)
	fx.SeedPost("draft", false)

	rec := httptest.NewRecorder()
	PublicRoutes(h).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var rows []models.Post
	testutil.DecodeData(t, testutil.DecodeEnvelope(t, rec), &rows)
	require.Len(t, rows, 1)
	assert.Equal(t, "live", rows[0].Slug)
}

func TestPublicBySlugNotFoundMessage(t *testing.T) {
	h, fx := newTestHandler(t)
	fx.SeedPost("draft", false)

	for _, slug := range []string{"draft", "ghost"} {
		rec := httptest.NewRecorder()
		PublicRoutes(h).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/"+slug, nil))
		require.Equal(t, http.StatusNotFound, rec.Code, slug)
		env := testutil.DecodeEnvelope(t, rec)
		assert.False(t, env.Success)
		assert.Equal(t, "Post not found", env.Message)
	}
}

func TestPublicListTagFilter(t *testing.T) {
	h, fx := newTestHandler(t)
	fx.SeedPost("go-post", true) // fixtures tag every post with "go"

	rec := httptest.NewRecorder()
	PublicRoutes(h).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/?tag=go", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	var rows []models.Post
	testutil.DecodeData(t, testutil.DecodeEnvelope(t, rec), &rows)
	assert.Len(t, rows, 1)

	rec = httptest.NewRecorder()
	PublicRoutes(h).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/?tag=rust", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	rows = nil
	testutil.DecodeData(t, testutil.DecodeEnvelope(t, rec), &rows)
	assert.Empty(t, rows)
}

func TestViewCounter(t *testing.T) {
	h, fx := newTestHandler(t)
	fx.SeedPost("counted", true)

	rec := httptest.NewRecorder()
	PublicRoutes(h).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/counted/view", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var res viewResult
	testutil.DecodeData(t, testutil.DecodeEnvelope(t, rec), &res)
	assert.Equal(t, int64(1), res.ViewCount)
}

func TestViewCounterConcurrentIncrements(t *testing.T) {
	h, fx := newTestHandler(t)
	seeded := fx.SeedPost("racy", true)

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

	var p models.Post
	require.NoError(t, fx.DB().First(&p, "id = ?", seeded.ID).Error)
	assert.EqualValues(t, n, p.ViewCount, "no increment may be lost under concurrency")
}

func TestAdminCreateStampsPublishedAtAndReadingTime(t *testing.T) {
	h, _ := newTestHandler(t)

	body := map[string]any{
		"title":   "Understanding Goroutines",
		"content": "<p>" + longContent(450) + "</p>",
		"tags":    []string{"go", "concurrency"},
	}
	req := testutil.WithUser(testutil.NewJSONRequest(t, http.MethodPost, "/", body), testutil.AdminUser())
	rec := httptest.NewRecorder()
	AdminRoutes(h).ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	var created models.Post
	testutil.DecodeData(t, testutil.DecodeEnvelope(t, rec), &created)
	assert.Equal(t, "understanding-goroutines", created.Slug)
	require.NotNil(t, created.PublishedAt)
	assert.Equal(t, 3, created.ReadingTime, "450 words at 200 wpm rounds up to 3")
}

func TestAdminCreateSanitizesContent(t *testing.T) {
	h, _ := newTestHandler(t)

	body := map[string]any{
		"title":   "Injected",
		"content": `<p>safe</p><script>alert(1)</script>`,
	}
	req := testutil.WithUser(testutil.NewJSONRequest(t, http.MethodPost, "/", body), testutil.AdminUser())
	rec := httptest.NewRecorder()
	AdminRoutes(h).ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	var created models.Post
	testutil.DecodeData(t, testutil.DecodeEnvelope(t, rec), &created)
	assert.Contains(t, created.Content, "<p>safe</p>")
	assert.NotContains(t, created.Content, "<script>")
}

func TestAdminMutationsRequireSession(t *testing.T) {
	h, fx := newTestHandler(t)
	seeded := fx.SeedPost("protected", true)

	cases := []struct {
		method, target string
		body           any
	}{
		{http.MethodPost, "/", map[string]any{"title": "x", "content": "y"}},
		{http.MethodPut, "/" + seeded.ID, map[string]any{"title": "renamed"}},
		{http.MethodDelete, "/" + seeded.ID, nil},
	}
	for _, tc := range cases {
		rec := httptest.NewRecorder()
		AdminRoutes(h).ServeHTTP(rec, testutil.NewJSONRequest(t, tc.method, tc.target, tc.body))
		assert.Equal(t, http.StatusUnauthorized, rec.Code, "%s %s", tc.method, tc.target)
	}

	// nothing changed
	var count int64
	require.NoError(t, fx.DB().Model(&models.Post{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
	var p models.Post
	require.NoError(t, fx.DB().First(&p, "id = ?", seeded.ID).Error)
	assert.Equal(t, seeded.Title, p.Title)
}

func TestAdminListSearch(t *testing.T) {
	h, fx := newTestHandler(t)
	fx.SeedPost("release-notes", true)
	fx.SeedPost("hiring", false)

	req := testutil.WithUser(httptest.NewRequest(http.MethodGet, "/?q=release", nil), testutil.AdminUser())
	rec := httptest.NewRecorder()
	AdminRoutes(h).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var rows []models.Post
	testutil.DecodeData(t, testutil.DecodeEnvelope(t, rec), &rows)
	require.Len(t, rows, 1)
	assert.Equal(t, "release-notes", rows[0].Slug)
}

func TestAdminUpdatePublishStampsOnce(t *testing.T) {
	h, fx := newTestHandler(t)
	draft := fx.SeedPost("to-publish", false)

	publish := func() models.Post {
		body := map[string]any{"is_published": true}
		req := testutil.WithUser(testutil.NewJSONRequest(t, http.MethodPut, "/"+draft.ID, body), testutil.AdminUser())
		rec := httptest.NewRecorder()
		AdminRoutes(h).ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)
		var p models.Post
		testutil.DecodeData(t, testutil.DecodeEnvelope(t, rec), &p)
		return p
	}

	first := publish()
	require.NotNil(t, first.PublishedAt)

	second := publish()
	require.NotNil(t, second.PublishedAt)
	assert.Equal(t, first.PublishedAt.Unix(), second.PublishedAt.Unix(), "republish keeps the original timestamp")
}

func longContent(words int) string {
	s := ""
	for i := 0; i < words; i++ {
		s += "word "
	}
	return s
}
