// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
	"gorm.io/gorm"

	authfeature "github.com/robilprogramer/portofolio-sub001/internal/app/features/authsession"
	pageviewstore "github.com/robilprogramer/portofolio-sub001/internal/app/store/pageviews"
	userstore "github.com/robilprogramer/portofolio-sub001/internal/app/store/users"
	"github.com/robilprogramer/portofolio-sub001/internal/app/system/workers"
	"github.com/robilprogramer/portofolio-sub001/internal/domain/models"
)

// retentionWorker runs for the life of the process; Shutdown stops it.
var retentionWorker *workers.RetentionCleanup

// Startup runs one-time application initialization after DB connection and
// schema setup are complete, but before the HTTP handler is built. For this
// app that means seeding the super-admin account so a fresh deployment has
// someone who can sign in.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if err := ensureSuperAdmin(ctx, deps, appCfg, logger); err != nil {
		return err
	}

	if appCfg.AnalyticsRetentionDays > 0 {
		retention := time.Duration(appCfg.AnalyticsRetentionDays) * 24 * time.Hour
		retentionWorker = workers.NewRetentionCleanup(pageviewstore.New(deps.DB), logger, 24*time.Hour, retention)
		retentionWorker.Start()
	}
	return nil
}

// ensureSuperAdmin creates the configured super-admin account if it does
// not already exist. Idempotent: an existing account is left untouched,
// including its password.
func ensureSuperAdmin(ctx context.Context, deps DBDeps, appCfg AppConfig, logger *zap.Logger) error {
	if appCfg.SuperAdminEmail == "" {
		logger.Info("no super admin configured; skipping seed")
		return nil
	}

	users := userstore.New(deps.DB)

	_, err := users.GetByEmail(ctx, appCfg.SuperAdminEmail)
	if err == nil {
		logger.Info("super admin already exists",
			zap.String("email", appCfg.SuperAdminEmail))
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("look up super admin: %w", err)
	}

	hash, err := authfeature.HashPassword(appCfg.SuperAdminPassword)
	if err != nil {
		return fmt.Errorf("hash super admin password: %w", err)
	}

	u, err := users.Create(ctx, models.User{
		Email:        appCfg.SuperAdminEmail,
		Name:         appCfg.SuperAdminName,
		PasswordHash: hash,
		Role:         models.RoleSuperAdmin,
	})
	if err != nil {
		return fmt.Errorf("create super admin: %w", err)
	}

	logger.Info("super admin created",
		zap.String("user_id", u.ID),
		zap.String("email", u.Email))
	return nil
}
