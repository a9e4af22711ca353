// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/robilprogramer/portofolio-sub001/internal/domain/models"

	_ "modernc.org/sqlite"
)

// ConnectDB opens the SQLite database through GORM over the pure-Go
// driver. WAL mode keeps readers unblocked during writes; a single
// write connection sidesteps SQLITE_BUSY under concurrency.
func ConnectDB(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (DBDeps, error) {
	if dir := filepath.Dir(appCfg.SQLitePath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return DBDeps{}, fmt.Errorf("create database directory: %w", err)
		}
	}

	dsn := appCfg.SQLitePath + "?_pragma=busy_timeout(5000)&_time_format=sqlite"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return DBDeps{}, fmt.Errorf("open sqlite: %w", err)
	}

	gormCfg := &gorm.Config{}
	if coreCfg.Env != "dev" {
		gormCfg.Logger = gormlogger.Default.LogMode(gormlogger.Warn)
	}
	db, err := gorm.Open(sqlite.Dialector{Conn: sqlDB}, gormCfg)
	if err != nil {
		_ = sqlDB.Close()
		return DBDeps{}, fmt.Errorf("gorm open: %w", err)
	}

	if err := db.WithContext(ctx).Exec("PRAGMA journal_mode=WAL").Error; err != nil {
		_ = sqlDB.Close()
		return DBDeps{}, fmt.Errorf("enable WAL: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return DBDeps{}, fmt.Errorf("ping sqlite: %w", err)
	}

	logger.Info("sqlite connected",
		zap.String("path", appCfg.SQLitePath))

	return DBDeps{DB: db, SQLDB: sqlDB}, nil
}

// EnsureSchema migrates every model. AutoMigrate only adds; it never
// drops columns or data, so running it on every boot is safe.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	err := deps.DB.WithContext(ctx).AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.Project{},
		&models.Post{},
		&models.Skill{},
		&models.Experience{},
		&models.Education{},
		&models.Certificate{},
		&models.Testimonial{},
		&models.SocialLink{},
		&models.PageView{},
	)
	if err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}
	logger.Info("schema migrated")
	return nil
}
