package health

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/robilprogramer/portofolio-sub001/internal/testutil"
)

func TestHealth(t *testing.T) {
	db := testutil.SetupTestDB(t)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	h := NewHandler(sqlDB, zap.NewNop())

	rec := httptest.NewRecorder()
	Routes(h).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	env := testutil.DecodeEnvelope(t, rec)
	assert.True(t, env.Success)
}

func TestHealthDatabaseDown(t *testing.T) {
	db := testutil.SetupTestDB(t)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())
	h := NewHandler(sqlDB, zap.NewNop())

	rec := httptest.NewRecorder()
	Routes(h).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
