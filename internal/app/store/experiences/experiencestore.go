// internal/app/store/experiences/experiencestore.go
package experiencestore

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/robilprogramer/portofolio-sub001/internal/domain/models"
)

// Store persists work experience entries.
type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// List returns experiences with current positions first, then by start
// date descending. Pass publishedOnly=true on the public surface.
func (s *Store) List(ctx context.Context, publishedOnly bool) ([]models.Experience, error) {
	q := s.db.WithContext(ctx).Model(&models.Experience{})
	if publishedOnly {
		q = q.Where("is_published = ?", true)
	}
	var rows []models.Experience
	err := q.Order("is_current DESC, start_date DESC").Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// Create inserts a new experience. A current position carries no end date.
func (s *Store) Create(ctx context.Context, e models.Experience) (models.Experience, error) {
	e.ID = uuid.NewString()
	now := time.Now()
	e.CreatedAt = now
	e.UpdatedAt = now
	if e.IsCurrent {
		e.EndDate = nil
	}
	if err := s.db.WithContext(ctx).Create(&e).Error; err != nil {
		return models.Experience{}, err
	}
	return e, nil
}

// Update applies a partial change set by ID and returns the fresh row.
func (s *Store) Update(ctx context.Context, id string, changes map[string]any) (*models.Experience, error) {
	res := s.db.WithContext(ctx).Model(&models.Experience{}).Where("id = ?", id).Updates(changes)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	var e models.Experience
	if err := s.db.WithContext(ctx).First(&e, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

// Delete removes an experience by ID.
func (s *Store) Delete(ctx context.Context, id string) error {
	res := s.db.WithContext(ctx).Delete(&models.Experience{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
