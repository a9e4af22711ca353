// internal/app/bootstrap/startup_test.go
package bootstrap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	userstore "github.com/robilprogramer/portofolio-sub001/internal/app/store/users"
	"github.com/robilprogramer/portofolio-sub001/internal/domain/models"
	"github.com/robilprogramer/portofolio-sub001/internal/testutil"
)

func TestEnsureSuperAdminCreatesAccount(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	deps := DBDeps{DB: db}
	cfg := AppConfig{
		SuperAdminEmail:    "Root@Example.com",
		SuperAdminPassword: "swordfish",
		SuperAdminName:     "Root Admin",
	}

	require.NoError(t, ensureSuperAdmin(ctx, deps, cfg, zap.NewNop()))

	u, err := userstore.New(db).GetByEmail(ctx, "root@example.com")
	require.NoError(t, err)
	assert.Equal(t, models.RoleSuperAdmin, u.Role)
	assert.Equal(t, "Root Admin", u.Name)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("swordfish")))
}

func TestEnsureSuperAdminIdempotent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	deps := DBDeps{DB: db}
	cfg := AppConfig{
		SuperAdminEmail:    "root@example.com",
		SuperAdminPassword: "first-password",
	}
	require.NoError(t, ensureSuperAdmin(ctx, deps, cfg, zap.NewNop()))

	users := userstore.New(db)
	before, err := users.GetByEmail(ctx, "root@example.com")
	require.NoError(t, err)

	// Second run with a different password must not touch the account.
	cfg.SuperAdminPassword = "second-password"
	require.NoError(t, ensureSuperAdmin(ctx, deps, cfg, zap.NewNop()))

	after, err := users.GetByEmail(ctx, "root@example.com")
	require.NoError(t, err)
	assert.Equal(t, before.ID, after.ID)
	assert.Equal(t, before.PasswordHash, after.PasswordHash)

	n, err := users.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}

func TestEnsureSuperAdminSkipsWhenUnconfigured(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	require.NoError(t, ensureSuperAdmin(ctx, DBDeps{DB: db}, AppConfig{}, zap.NewNop()))

	n, err := userstore.New(db).Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 0, n)
}
