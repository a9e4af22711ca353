// internal/app/store/pageviews/pageviewstore.go
package pageviewstore

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/robilprogramer/portofolio-sub001/internal/domain/models"
)

// Store persists and aggregates pageview events. Rows are append-only;
// reads are aggregate-only.
type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Insert records one pageview event.
func (s *Store) Insert(ctx context.Context, pv models.PageView) error {
	pv.ID = uuid.NewString()
	if pv.CreatedAt.IsZero() {
		pv.CreatedAt = time.Now()
	}
	return s.db.WithContext(ctx).Create(&pv).Error
}

// CountSince counts pageviews since a point in time, optionally
// restricted to one path.
func (s *Store) CountSince(ctx context.Context, since time.Time, path string) (int64, error) {
	q := s.db.WithContext(ctx).Model(&models.PageView{}).Where("created_at >= ?", since)
	if path != "" {
		q = q.Where("path = ?", path)
	}
	var n int64
	err := q.Count(&n).Error
	return n, err
}

// ListSince returns raw pageview rows in the window, oldest first,
// capped at limit. Used by the CSV export.
func (s *Store) ListSince(ctx context.Context, since time.Time, limit int) ([]models.PageView, error) {
	var rows []models.PageView
	err := s.db.WithContext(ctx).
		Where("created_at >= ?", since).
		Order("created_at ASC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// DeleteBefore removes pageview rows older than the cutoff and reports
// how many were removed. Used by the retention worker.
func (s *Store) DeleteBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	res := s.db.WithContext(ctx).
		Where("created_at < ?", cutoff).
		Delete(&models.PageView{})
	return res.RowsAffected, res.Error
}

// PathCount is one row of the top-paths aggregate.
type PathCount struct {
	Path  string `json:"path"`
	Views int64  `json:"views"`
}

// TopPathsSince returns the most viewed paths in the window, highest first.
func (s *Store) TopPathsSince(ctx context.Context, since time.Time, limit int) ([]PathCount, error) {
	var rows []PathCount
	err := s.db.WithContext(ctx).Model(&models.PageView{}).
		Select("path, COUNT(*) AS views").
		Where("created_at >= ?", since).
		Group("path").
		Order("views DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// DayCount is one row of the per-day aggregate.
type DayCount struct {
	Day   string `json:"day"` // YYYY-MM-DD
	Views int64  `json:"views"`
}

// DailyCountsSince returns per-day view counts for the window in
// ascending day order, via a grouped raw query on the event log.
func (s *Store) DailyCountsSince(ctx context.Context, since time.Time, path string) ([]DayCount, error) {
	var rows []DayCount
	var err error
	if path != "" {
		err = s.db.WithContext(ctx).Raw(
			`SELECT date(created_at) AS day, COUNT(*) AS views
			 FROM page_views
			 WHERE created_at >= ? AND path = ?
			 GROUP BY day
			 ORDER BY day ASC`, since, path).Scan(&rows).Error
	} else {
		err = s.db.WithContext(ctx).Raw(
			`SELECT date(created_at) AS day, COUNT(*) AS views
			 FROM page_views
			 WHERE created_at >= ?
			 GROUP BY day
			 ORDER BY day ASC`, since).Scan(&rows).Error
	}
	if err != nil {
		return nil, err
	}
	return rows, nil
}
