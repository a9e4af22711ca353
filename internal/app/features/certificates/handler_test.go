package certificates

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

func newTestHandler(t *testing.T) *Handler {
	t.Helper()
	db := testutil.SetupTestDB(t)
	log := zap.NewNop()
	return NewHandler(db, errlog.New(log), log)
}

func seedCertificate(t *testing.T, h *Handler, body map[string]any) models.Certificate {
	t.Helper()
	req := testutil.WithUser(testutil.NewJSONRequest(t, http.MethodPost, "/", body), testutil.AdminUser())
	rec := httptest.NewRecorder()
	AdminRoutes(h).ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var c models.Certificate
	testutil.DecodeData(t, testutil.DecodeEnvelope(t, rec), &c)
	return c
}

func TestCreateAndPublicList(t *testing.T) {
	h := newTestHandler(t)

	seedCertificate(t, h, map[string]any{
		"name":       "CKA",
		"issuer":     "CNCF",
		"issue_date": "2024-05-01",
	})
	seedCertificate(t, h, map[string]any{
		"name":         "Hidden Cert",
		"issuer":       "Nobody",
		"issue_date":   "2023-01-01",
		"is_published": false,
	})

	rec := httptest.NewRecorder()
	PublicRoutes(h).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var rows []models.Certificate
	testutil.DecodeData(t, testutil.DecodeEnvelope(t, rec), &rows)
	require.Len(t, rows, 1)
	assert.Equal(t, "CKA", rows[0].Name)
}

func TestCreateValidatesDates(t *testing.T) {
	h := newTestHandler(t)

	body := map[string]any{
		"name":        "AWS SAA",
		"issuer":      "AWS",
		"issue_date":  "2024-05-01",
		"expiry_date": "2022-05-01",
	}
	req := testutil.WithUser(testutil.NewJSONRequest(t, http.MethodPost, "/", body), testutil.AdminUser())
	rec := httptest.NewRecorder()
	AdminRoutes(h).ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, testutil.DecodeEnvelope(t, rec).Errors, "expiry_date")
}

func TestUpdateClearsExpiry(t *testing.T) {
	h := newTestHandler(t)
	created := seedCertificate(t, h, map[string]any{
		"name":        "AWS SAA",
		"issuer":      "AWS",
		"issue_date":  "2024-05-01",
		"expiry_date": "2027-05-01",
	})
	require.NotNil(t, created.ExpiryDate)

	body := map[string]any{"expiry_date": ""}
	req := testutil.WithUser(testutil.NewJSONRequest(t, http.MethodPut, "/"+created.ID, body), testutil.AdminUser())
	rec := httptest.NewRecorder()
	AdminRoutes(h).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var updated models.Certificate
	testutil.DecodeData(t, testutil.DecodeEnvelope(t, rec), &updated)
	assert.Nil(t, updated.ExpiryDate)
}

func TestMutationsRequireSession(t *testing.T) {
	h := newTestHandler(t)

	body := map[string]any{"name": "CKA", "issuer": "CNCF", "issue_date": "2024-05-01"}
	rec := httptest.NewRecorder()
	AdminRoutes(h).ServeHTTP(rec, testutil.NewJSONRequest(t, http.MethodPost, "/", body))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
