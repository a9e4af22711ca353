package skills

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

func TestPublicListGroupsByCategory(t *testing.T) {
	h, fx := newTestHandler(t)
	fx.SeedSkill("Kubernetes", models.SkillCategoryDevOps, true)
	fx.SeedSkill("Go", models.SkillCategoryBackend, true)
	fx.SeedSkill("React", models.SkillCategoryFrontend, true)
	fx.SeedSkill("Hidden", models.SkillCategoryOther, false)

	rec := httptest.NewRecorder()
	PublicRoutes(h).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var rows []models.Skill
	testutil.DecodeData(t, testutil.DecodeEnvelope(t, rec), &rows)
	require.Len(t, rows, 3)
	// category ascending: backend, devops, frontend
	assert.Equal(t, "Go", rows[0].Name)
	assert.Equal(t, "Kubernetes", rows[1].Name)
	assert.Equal(t, "React", rows[2].Name)
}

func TestPublicListCategoryFilter(t *testing.T) {
	h, fx := newTestHandler(t)
	fx.SeedSkill("Go", models.SkillCategoryBackend, true)
	fx.SeedSkill("React", models.SkillCategoryFrontend, true)

	rec := httptest.NewRecorder()
	PublicRoutes(h).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/?category=backend", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var rows []models.Skill
	testutil.DecodeData(t, testutil.DecodeEnvelope(t, rec), &rows)
	require.Len(t, rows, 1)
	assert.Equal(t, "Go", rows[0].Name)
}

func TestCreateValidatesCategoryAndProficiency(t *testing.T) {
	h, _ := newTestHandler(t)

	body := map[string]any{"name": "Thing", "category": "wizardry", "proficiency": 150}
	req := testutil.WithUser(testutil.NewJSONRequest(t, http.MethodPost, "/", body), testutil.AdminUser())
	rec := httptest.NewRecorder()
	AdminRoutes(h).ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	env := testutil.DecodeEnvelope(t, rec)
	assert.Contains(t, env.Errors, "category")
	assert.Contains(t, env.Errors, "proficiency")
}

func TestCreateDefaultsLevel(t *testing.T) {
	h, _ := newTestHandler(t)

	body := map[string]any{"name": "Terraform", "category": models.SkillCategoryDevOps, "proficiency": 70}
	req := testutil.WithUser(testutil.NewJSONRequest(t, http.MethodPost, "/", body), testutil.AdminUser())
	rec := httptest.NewRecorder()
	AdminRoutes(h).ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	var created models.Skill
	testutil.DecodeData(t, testutil.DecodeEnvelope(t, rec), &created)
	assert.Equal(t, models.SkillLevelIntermediate, created.Level)
	assert.True(t, created.IsPublished)
}

func TestMutationsRequireSession(t *testing.T) {
	h, _ := newTestHandler(t)

	body := map[string]any{"name": "Go", "category": models.SkillCategoryBackend}
	rec := httptest.NewRecorder()
	AdminRoutes(h).ServeHTTP(rec, testutil.NewJSONRequest(t, http.MethodPost, "/", body))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestUpdateAndDelete(t *testing.T) {
	h, fx := newTestHandler(t)
	seeded := fx.SeedSkill("Go", models.SkillCategoryBackend, true)

	body := map[string]any{"proficiency": 95, "level": models.SkillLevelExpert}
	req := testutil.WithUser(testutil.NewJSONRequest(t, http.MethodPut, "/"+seeded.ID, body), testutil.AdminUser())
	rec := httptest.NewRecorder()
	AdminRoutes(h).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var updated models.Skill
	testutil.DecodeData(t, testutil.DecodeEnvelope(t, rec), &updated)
	assert.Equal(t, 95, updated.Proficiency)
	assert.Equal(t, models.SkillLevelExpert, updated.Level)

	req = testutil.WithUser(httptest.NewRequest(http.MethodDelete, "/"+seeded.ID, nil), testutil.AdminUser())
	rec = httptest.NewRecorder()
	AdminRoutes(h).ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var n int64
	require.NoError(t, fx.DB().Model(&models.Skill{}).Count(&n).Error)
	assert.Zero(t, n)
}
