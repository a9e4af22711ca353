package sociallinks

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

func TestPublicListOmitsUnpublished(t *testing.T) {
	h, fx := newTestHandler(t)
	owner := fx.SeedUser("owner@test.com", models.RoleAdmin)
	fx.SeedSocialLink("github", owner.ID, true)
	fx.SeedSocialLink("instagram", owner.ID, false)

	rec := httptest.NewRecorder()
	PublicRoutes(h).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var rows []models.SocialLink
	testutil.DecodeData(t, testutil.DecodeEnvelope(t, rec), &rows)
	require.Len(t, rows, 1)
	assert.Equal(t, "github", rows[0].Platform)
	assert.Nil(t, rows[0].User, "public list carries no owner record")
}

func TestCreateAttributesSessionUser(t *testing.T) {
	h, _ := newTestHandler(t)
	admin := testutil.AdminUser()

	body := map[string]any{"platform": "github", "url": "https://github.com/someone"}
	req := testutil.WithUser(testutil.NewJSONRequest(t, http.MethodPost, "/", body), admin)
	rec := httptest.NewRecorder()
	AdminRoutes(h).ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	var created models.SocialLink
	testutil.DecodeData(t, testutil.DecodeEnvelope(t, rec), &created)
	assert.Equal(t, admin.ID, created.UserID)
}

func TestCreateRejectsBadURL(t *testing.T) {
	h, _ := newTestHandler(t)

	body := map[string]any{"platform": "github", "url": "not-a-url"}
	req := testutil.WithUser(testutil.NewJSONRequest(t, http.MethodPost, "/", body), testutil.AdminUser())
	rec := httptest.NewRecorder()
	AdminRoutes(h).ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, testutil.DecodeEnvelope(t, rec).Errors, "url")
}

func TestAdminListPreloadsOwner(t *testing.T) {
	h, fx := newTestHandler(t)
	owner := fx.SeedUser("owner@test.com", models.RoleAdmin)
	fx.SeedSocialLink("github", owner.ID, true)

	req := testutil.WithUser(httptest.NewRequest(http.MethodGet, "/", nil), testutil.AdminUser())
	rec := httptest.NewRecorder()
	AdminRoutes(h).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var rows []models.SocialLink
	testutil.DecodeData(t, testutil.DecodeEnvelope(t, rec), &rows)
	require.Len(t, rows, 1)
	require.NotNil(t, rows[0].User)
	assert.Equal(t, "owner@test.com", rows[0].User.Email)
}

func TestMutationsRequireSession(t *testing.T) {
	h, _ := newTestHandler(t)

	body := map[string]any{"platform": "github", "url": "https://github.com/x"}
	rec := httptest.NewRecorder()
	AdminRoutes(h).ServeHTTP(rec, testutil.NewJSONRequest(t, http.MethodPost, "/", body))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
