// internal/app/store/projects/projectstore.go
package projectstore

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/robilprogramer/portofolio-sub001/internal/domain/models"
)

// Store persists portfolio projects.
type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// ErrDuplicateSlug is returned when creating or renaming a project to a
// slug that already exists.
var ErrDuplicateSlug = errors.New("a project with this slug already exists")

// Filter narrows List results. Only fields explicitly set by the caller
// are applied; a nil pointer means "no constraint". Search is a LIKE
// pattern (see the search package) matched against title and description.
type Filter struct {
	Status    string
	Featured  *bool
	Published *bool
	Search    string
}

// List returns one page of projects plus the total match count.
// Ordering: display order ascending, then newest first.
func (s *Store) List(ctx context.Context, f Filter, offset, limit int) ([]models.Project, int64, error) {
	q := s.db.WithContext(ctx).Model(&models.Project{})
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.Featured != nil {
		q = q.Where("featured = ?", *f.Featured)
	}
	if f.Published != nil {
		q = q.Where("is_published = ?", *f.Published)
	}
	if f.Search != "" {
		q = q.Where(`title LIKE ? ESCAPE '\' OR description LIKE ? ESCAPE '\'`, f.Search, f.Search)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []models.Project
	err := q.Order("display_order ASC, created_at DESC").
		Offset(offset).Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

// GetPublishedBySlug looks up one published project by slug. An
// unpublished row is indistinguishable from a missing one: both return
// gorm.ErrRecordNotFound.
func (s *Store) GetPublishedBySlug(ctx context.Context, slug string) (*models.Project, error) {
	var p models.Project
	err := s.db.WithContext(ctx).
		Where("slug = ? AND is_published = ?", slug, true).
		First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Create inserts a new project.
func (s *Store) Create(ctx context.Context, p models.Project) (models.Project, error) {
	p.ID = uuid.NewString()
	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now
	if err := s.db.WithContext(ctx).Create(&p).Error; err != nil {
		if isDup(err) {
			return models.Project{}, ErrDuplicateSlug
		}
		return models.Project{}, err
	}
	return p, nil
}

// Update applies a partial change set by ID and returns the fresh row.
func (s *Store) Update(ctx context.Context, id string, changes map[string]any) (*models.Project, error) {
	res := s.db.WithContext(ctx).Model(&models.Project{}).Where("id = ?", id).Updates(changes)
	if res.Error != nil {
		if isDup(res.Error) {
			return nil, ErrDuplicateSlug
		}
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	var p models.Project
	if err := s.db.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// Delete removes a project by ID.
func (s *Store) Delete(ctx context.Context, id string) error {
	res := s.db.WithContext(ctx).Delete(&models.Project{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// IncrementViews bumps the view counter for a published project in a
// single UPDATE with a SQL expression, so concurrent viewers never lose
// increments to a read-modify-write race. Returns the new count, or
// gorm.ErrRecordNotFound when no published row matched the slug.
func (s *Store) IncrementViews(ctx context.Context, slug string) (int64, error) {
	res := s.db.WithContext(ctx).Model(&models.Project{}).
		Where("slug = ? AND is_published = ?", slug, true).
		UpdateColumn("view_count", gorm.Expr("view_count + 1"))
	if res.Error != nil {
		return 0, res.Error
	}
	if res.RowsAffected == 0 {
		return 0, gorm.ErrRecordNotFound
	}

	var count int64
	err := s.db.WithContext(ctx).Model(&models.Project{}).
		Where("slug = ?", slug).
		Pluck("view_count", &count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func isDup(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
