package testutil

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/robilprogramer/portofolio-sub001/internal/domain/models"

	_ "modernc.org/sqlite"
)

// SetupTestDB opens a throwaway sqlite database in a temp dir and
// migrates the full schema. The file is removed with the test's temp
// directory; the connection closes via t.Cleanup.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "test.db") + "?_pragma=busy_timeout(5000)&_time_format=sqlite"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	db, err := gorm.Open(sqlite.Dialector{Conn: sqlDB}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("gorm open: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
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
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}

// TestContext returns a context with a deadline generous enough for any
// single test query.
func TestContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 10*time.Second)
}
