package educations

import (
	"net/http"
	"net/http/httptest"
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

func seedEducation(t *testing.T, h *Handler, body map[string]any) models.Education {
	t.Helper()
	req := testutil.WithUser(testutil.NewJSONRequest(t, http.MethodPost, "/", body), testutil.AdminUser())
	rec := httptest.NewRecorder()
	AdminRoutes(h).ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var e models.Education
	testutil.DecodeData(t, testutil.DecodeEnvelope(t, rec), &e)
	return e
}

func TestCreateAndPublicList(t *testing.T) {
	h, _ := newTestHandler(t)

	seedEducation(t, h, map[string]any{
		"institution": "State University",
		"degree":      "BSc",
		"field":       "Computer Science",
		"start_date":  "2016-09-01",
		"end_date":    "2020-06-01",
	})
	seedEducation(t, h, map[string]any{
		"institution":  "Night School",
		"degree":       "Cert",
		"start_date":   "2024-01-01",
		"is_current":   true,
		"is_published": false,
	})

	rec := httptest.NewRecorder()
	PublicRoutes(h).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var rows []models.Education
	testutil.DecodeData(t, testutil.DecodeEnvelope(t, rec), &rows)
	require.Len(t, rows, 1, "unpublished entries stay off the public list")
	assert.Equal(t, "State University", rows[0].Institution)
}

func TestCreateValidation(t *testing.T) {
	h, _ := newTestHandler(t)

	body := map[string]any{"degree": "BSc"}
	req := testutil.WithUser(testutil.NewJSONRequest(t, http.MethodPost, "/", body), testutil.AdminUser())
	rec := httptest.NewRecorder()
	AdminRoutes(h).ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	env := testutil.DecodeEnvelope(t, rec)
	assert.Contains(t, env.Errors, "institution")
	assert.Contains(t, env.Errors, "start_date")
}

func TestUpdateMarkCurrentClearsEndDate(t *testing.T) {
	h, _ := newTestHandler(t)
	created := seedEducation(t, h, map[string]any{
		"institution": "State University",
		"degree":      "MSc",
		"start_date":  "2022-09-01",
		"end_date":    "2024-06-01",
	})
	require.NotNil(t, created.EndDate)

	body := map[string]any{"is_current": true}
	req := testutil.WithUser(testutil.NewJSONRequest(t, http.MethodPut, "/"+created.ID, body), testutil.AdminUser())
	rec := httptest.NewRecorder()
	AdminRoutes(h).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var updated models.Education
	testutil.DecodeData(t, testutil.DecodeEnvelope(t, rec), &updated)
	assert.True(t, updated.IsCurrent)
	assert.Nil(t, updated.EndDate)
}

func TestDelete(t *testing.T) {
	h, fx := newTestHandler(t)
	created := seedEducation(t, h, map[string]any{
		"institution": "State University",
		"degree":      "BSc",
		"start_date":  "2016-09-01",
	})

	req := testutil.WithUser(httptest.NewRequest(http.MethodDelete, "/"+created.ID, nil), testutil.AdminUser())
	rec := httptest.NewRecorder()
	AdminRoutes(h).ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var n int64
	require.NoError(t, fx.DB().Model(&models.Education{}).Count(&n).Error)
	assert.Zero(t, n)
}

func TestMutationsRequireSession(t *testing.T) {
	h, _ := newTestHandler(t)

	body := map[string]any{"institution": "X", "degree": "Y", "start_date": "2020-01-01"}
	rec := httptest.NewRecorder()
	AdminRoutes(h).ServeHTTP(rec, testutil.NewJSONRequest(t, http.MethodPost, "/", body))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
