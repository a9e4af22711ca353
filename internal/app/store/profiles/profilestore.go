// internal/app/store/profiles/profilestore.go
package profilestore

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/robilprogramer/portofolio-sub001/internal/domain/models"
)

// Store persists profile records. The public surface treats the profile
// as a singleton: the most recently created published row wins.
type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// LatestPublished returns the newest published profile.
// Returns gorm.ErrRecordNotFound when none is published.
func (s *Store) LatestPublished(ctx context.Context) (*models.Profile, error) {
	var p models.Profile
	err := s.db.WithContext(ctx).
		Where("is_published = ?", true).
		Order("created_at DESC").
		First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Latest returns the newest profile regardless of publication state.
// Used by the admin surface so unpublished drafts stay editable.
func (s *Store) Latest(ctx context.Context) (*models.Profile, error) {
	var p models.Profile
	err := s.db.WithContext(ctx).Order("created_at DESC").First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Create inserts a new profile row.
func (s *Store) Create(ctx context.Context, p models.Profile) (models.Profile, error) {
	p.ID = uuid.NewString()
	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now
	if err := s.db.WithContext(ctx).Create(&p).Error; err != nil {
		return models.Profile{}, err
	}
	return p, nil
}

// Update applies a partial change set to a profile by ID.
// Returns gorm.ErrRecordNotFound if the row does not exist.
func (s *Store) Update(ctx context.Context, id string, changes map[string]any) (*models.Profile, error) {
	res := s.db.WithContext(ctx).Model(&models.Profile{}).Where("id = ?", id).Updates(changes)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	var p models.Profile
	if err := s.db.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}
