// internal/app/store/posts/poststore.go
package poststore

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/robilprogramer/portofolio-sub001/internal/domain/models"
)

// Store persists blog posts.
type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// ErrDuplicateSlug is returned when creating or renaming a post to a
// slug that already exists.
var ErrDuplicateSlug = errors.New("a post with this slug already exists")

// Filter narrows List results; zero values mean "no constraint".
// Search is a LIKE pattern (see the search package) matched against
// title and excerpt.
type Filter struct {
	Category  string
	Tag       string
	Published *bool
	Search    string
}

// List returns one page of posts plus the total match count.
// Tag filtering matches against the JSON-encoded tags column; tags are
// stored as a JSON array of strings, so a quoted-substring match is
// exact per tag.
func (s *Store) List(ctx context.Context, f Filter, offset, limit int) ([]models.Post, int64, error) {
	q := s.db.WithContext(ctx).Model(&models.Post{})
	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}
	if f.Tag != "" {
		q = q.Where("tags LIKE ?", "%\""+f.Tag+"\"%")
	}
	if f.Published != nil {
		q = q.Where("is_published = ?", *f.Published)
	}
	if f.Search != "" {
		q = q.Where(`title LIKE ? ESCAPE '\' OR excerpt LIKE ? ESCAPE '\'`, f.Search, f.Search)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []models.Post
	err := q.Order("display_order ASC, created_at DESC").
		Offset(offset).Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

// GetPublishedBySlug looks up one published post by slug. An unpublished
// row returns gorm.ErrRecordNotFound, same as a missing one.
func (s *Store) GetPublishedBySlug(ctx context.Context, slug string) (*models.Post, error) {
	var p models.Post
	err := s.db.WithContext(ctx).
		Where("slug = ? AND is_published = ?", slug, true).
		First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Create inserts a new post. PublishedAt is stamped when the post is
// created already published.
func (s *Store) Create(ctx context.Context, p models.Post) (models.Post, error) {
	p.ID = uuid.NewString()
	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now
	if p.IsPublished && p.PublishedAt == nil {
		p.PublishedAt = &now
	}
	if err := s.db.WithContext(ctx).Create(&p).Error; err != nil {
		if isDup(err) {
			return models.Post{}, ErrDuplicateSlug
		}
		return models.Post{}, err
	}
	return p, nil
}

// Update applies a partial change set by ID and returns the fresh row.
func (s *Store) Update(ctx context.Context, id string, changes map[string]any) (*models.Post, error) {
	res := s.db.WithContext(ctx).Model(&models.Post{}).Where("id = ?", id).Updates(changes)
	if res.Error != nil {
		if isDup(res.Error) {
			return nil, ErrDuplicateSlug
		}
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	var p models.Post
	if err := s.db.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// Delete removes a post by ID.
func (s *Store) Delete(ctx context.Context, id string) error {
	res := s.db.WithContext(ctx).Delete(&models.Post{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// IncrementViews bumps the view counter for a published post atomically
// at the database. Returns the new count, or gorm.ErrRecordNotFound when
// no published row matched the slug.
func (s *Store) IncrementViews(ctx context.Context, slug string) (int64, error) {
	res := s.db.WithContext(ctx).Model(&models.Post{}).
		Where("slug = ? AND is_published = ?", slug, true).
		UpdateColumn("view_count", gorm.Expr("view_count + 1"))
	if res.Error != nil {
		return 0, res.Error
	}
	if res.RowsAffected == 0 {
		return 0, gorm.ErrRecordNotFound
	}

	var count int64
	err := s.db.WithContext(ctx).Model(&models.Post{}).
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
