// internal/app/store/certificates/certificatestore.go
package certificatestore

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/robilprogramer/portofolio-sub001/internal/domain/models"
)

// Store persists certificates.
type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// List returns certificates by display order, newest issue date first
// within the same order value.
func (s *Store) List(ctx context.Context, publishedOnly bool) ([]models.Certificate, error) {
	q := s.db.WithContext(ctx).Model(&models.Certificate{})
	if publishedOnly {
		q = q.Where("is_published = ?", true)
	}
	var rows []models.Certificate
	err := q.Order("display_order ASC, issue_date DESC").Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// Create inserts a new certificate.
func (s *Store) Create(ctx context.Context, c models.Certificate) (models.Certificate, error) {
	c.ID = uuid.NewString()
	now := time.Now()
	c.CreatedAt = now
	c.UpdatedAt = now
	if err := s.db.WithContext(ctx).Create(&c).Error; err != nil {
		return models.Certificate{}, err
	}
	return c, nil
}

// Update applies a partial change set by ID and returns the fresh row.
func (s *Store) Update(ctx context.Context, id string, changes map[string]any) (*models.Certificate, error) {
	res := s.db.WithContext(ctx).Model(&models.Certificate{}).Where("id = ?", id).Updates(changes)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	var c models.Certificate
	if err := s.db.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

// Delete removes a certificate by ID.
func (s *Store) Delete(ctx context.Context, id string) error {
	res := s.db.WithContext(ctx).Delete(&models.Certificate{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
