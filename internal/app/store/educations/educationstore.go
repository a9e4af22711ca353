// internal/app/store/educations/educationstore.go
package educationstore

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/robilprogramer/portofolio-sub001/internal/domain/models"
)

// Store persists education entries. Same ordering contract as
// experiences: current entries first, then start date descending.
type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// List returns education entries, current first.
func (s *Store) List(ctx context.Context, publishedOnly bool) ([]models.Education, error) {
	q := s.db.WithContext(ctx).Model(&models.Education{})
	if publishedOnly {
		q = q.Where("is_published = ?", true)
	}
	var rows []models.Education
	err := q.Order("is_current DESC, start_date DESC").Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// Create inserts a new education entry.
func (s *Store) Create(ctx context.Context, e models.Education) (models.Education, error) {
	e.ID = uuid.NewString()
	now := time.Now()
	e.CreatedAt = now
	e.UpdatedAt = now
	if e.IsCurrent {
		e.EndDate = nil
	}
	if err := s.db.WithContext(ctx).Create(&e).Error; err != nil {
		return models.Education{}, err
	}
	return e, nil
}

// Update applies a partial change set by ID and returns the fresh row.
func (s *Store) Update(ctx context.Context, id string, changes map[string]any) (*models.Education, error) {
	res := s.db.WithContext(ctx).Model(&models.Education{}).Where("id = ?", id).Updates(changes)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	var e models.Education
	if err := s.db.WithContext(ctx).First(&e, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

// Delete removes an education entry by ID.
func (s *Store) Delete(ctx context.Context, id string) error {
	res := s.db.WithContext(ctx).Delete(&models.Education{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
