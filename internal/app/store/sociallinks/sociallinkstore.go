// internal/app/store/sociallinks/sociallinkstore.go
package sociallinkstore

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/robilprogramer/portofolio-sub001/internal/domain/models"
)

// Store persists social links.
type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// ListPublished returns published links for the public surface, owner
// not included.
func (s *Store) ListPublished(ctx context.Context) ([]models.SocialLink, error) {
	var rows []models.SocialLink
	err := s.db.WithContext(ctx).
		Where("is_published = ?", true).
		Order("display_order ASC, created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// ListWithOwner returns links for the admin surface with the owning
// user preloaded. published=nil lists all.
func (s *Store) ListWithOwner(ctx context.Context, published *bool) ([]models.SocialLink, error) {
	q := s.db.WithContext(ctx).Preload("User")
	if published != nil {
		q = q.Where("is_published = ?", *published)
	}
	var rows []models.SocialLink
	err := q.Order("display_order ASC, created_at DESC").Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// Create inserts a new social link. UserID must be the acting admin's ID.
func (s *Store) Create(ctx context.Context, l models.SocialLink) (models.SocialLink, error) {
	l.ID = uuid.NewString()
	now := time.Now()
	l.CreatedAt = now
	l.UpdatedAt = now
	if err := s.db.WithContext(ctx).Create(&l).Error; err != nil {
		return models.SocialLink{}, err
	}
	return l, nil
}

// Update applies a partial change set by ID and returns the fresh row.
func (s *Store) Update(ctx context.Context, id string, changes map[string]any) (*models.SocialLink, error) {
	res := s.db.WithContext(ctx).Model(&models.SocialLink{}).Where("id = ?", id).Updates(changes)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	var l models.SocialLink
	if err := s.db.WithContext(ctx).First(&l, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &l, nil
}

// Delete removes a social link by ID.
func (s *Store) Delete(ctx context.Context, id string) error {
	res := s.db.WithContext(ctx).Delete(&models.SocialLink{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
