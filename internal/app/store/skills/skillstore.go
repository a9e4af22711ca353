// internal/app/store/skills/skillstore.go
package skillstore

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/robilprogramer/portofolio-sub001/internal/domain/models"
)

// Store persists skills.
type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Filter narrows List results; zero values mean "no constraint".
type Filter struct {
	Category  string
	Published *bool
}

// List returns all matching skills grouped by category order, then
// display order, then newest first. Skills are a small set, so the list
// is not paginated.
func (s *Store) List(ctx context.Context, f Filter) ([]models.Skill, error) {
	q := s.db.WithContext(ctx).Model(&models.Skill{})
	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}
	if f.Published != nil {
		q = q.Where("is_published = ?", *f.Published)
	}

	var rows []models.Skill
	err := q.Order("category ASC, display_order ASC, created_at DESC").Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// Create inserts a new skill.
func (s *Store) Create(ctx context.Context, sk models.Skill) (models.Skill, error) {
	sk.ID = uuid.NewString()
	now := time.Now()
	sk.CreatedAt = now
	sk.UpdatedAt = now
	if err := s.db.WithContext(ctx).Create(&sk).Error; err != nil {
		return models.Skill{}, err
	}
	return sk, nil
}

// Update applies a partial change set by ID and returns the fresh row.
func (s *Store) Update(ctx context.Context, id string, changes map[string]any) (*models.Skill, error) {
	res := s.db.WithContext(ctx).Model(&models.Skill{}).Where("id = ?", id).Updates(changes)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	var sk models.Skill
	if err := s.db.WithContext(ctx).First(&sk, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &sk, nil
}

// Delete removes a skill by ID.
func (s *Store) Delete(ctx context.Context, id string) error {
	res := s.db.WithContext(ctx).Delete(&models.Skill{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
