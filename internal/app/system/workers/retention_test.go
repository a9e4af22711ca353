// internal/app/system/workers/retention_test.go
package workers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	pageviewstore "github.com/robilprogramer/portofolio-sub001/internal/app/store/pageviews"
	"github.com/robilprogramer/portofolio-sub001/internal/domain/models"
	"github.com/robilprogramer/portofolio-sub001/internal/testutil"
)

func TestRetentionPrunesOldRows(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fx := testutil.NewFixtures(t, db)
	now := time.Now()
	fx.SeedPageView("/fresh", now.Add(-1*time.Hour))
	fx.SeedPageView("/stale", now.AddDate(0, 0, -400))

	w := NewRetentionCleanup(pageviewstore.New(db), zap.NewNop(), time.Hour, 365*24*time.Hour)
	w.prune()

	var rows []models.PageView
	require.NoError(t, db.Find(&rows).Error)
	require.Len(t, rows, 1)
	assert.Equal(t, "/fresh", rows[0].Path)
}

func TestRetentionStartStop(t *testing.T) {
	db := testutil.SetupTestDB(t)

	w := NewRetentionCleanup(pageviewstore.New(db), zap.NewNop(), time.Hour, 24*time.Hour)
	w.Start()
	w.Stop()
}
