// internal/app/store/testimonials/testimonialstore.go
package testimonialstore

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/robilprogramer/portofolio-sub001/internal/domain/models"
)

// Store persists testimonials.
type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Filter narrows List results; nil pointers mean "no constraint".
type Filter struct {
	Featured  *bool
	Published *bool
}

// List returns testimonials by display order, newest first within ties.
func (s *Store) List(ctx context.Context, f Filter) ([]models.Testimonial, error) {
	q := s.db.WithContext(ctx).Model(&models.Testimonial{})
	if f.Featured != nil {
		q = q.Where("featured = ?", *f.Featured)
	}
	if f.Published != nil {
		q = q.Where("is_published = ?", *f.Published)
	}
	var rows []models.Testimonial
	err := q.Order("display_order ASC, created_at DESC").Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// Create inserts a new testimonial.
func (s *Store) Create(ctx context.Context, tm models.Testimonial) (models.Testimonial, error) {
	tm.ID = uuid.NewString()
	now := time.Now()
	tm.CreatedAt = now
	tm.UpdatedAt = now
	if err := s.db.WithContext(ctx).Create(&tm).Error; err != nil {
		return models.Testimonial{}, err
	}
	return tm, nil
}

// Update applies a partial change set by ID and returns the fresh row.
func (s *Store) Update(ctx context.Context, id string, changes map[string]any) (*models.Testimonial, error) {
	res := s.db.WithContext(ctx).Model(&models.Testimonial{}).Where("id = ?", id).Updates(changes)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	var tm models.Testimonial
	if err := s.db.WithContext(ctx).First(&tm, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &tm, nil
}

// Delete removes a testimonial by ID.
func (s *Store) Delete(ctx context.Context, id string) error {
	res := s.db.WithContext(ctx).Delete(&models.Testimonial{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
