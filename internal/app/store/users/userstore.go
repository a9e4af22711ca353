// internal/app/store/users/userstore.go
package userstore

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/robilprogramer/portofolio-sub001/internal/app/system/normalize"
	"github.com/robilprogramer/portofolio-sub001/internal/domain/models"
)

// Store persists admin accounts.
type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// ErrDuplicateEmail is returned when creating a user whose email exists.
var ErrDuplicateEmail = errors.New("a user with this email already exists")

var errBadRole = errors.New(`role must be "ADMIN" or "SUPER_ADMIN"`)

// GetByID loads a user by ID.
func (s *Store) GetByID(ctx context.Context, id string) (*models.User, error) {
	var u models.User
	if err := s.db.WithContext(ctx).First(&u, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// GetByEmail looks up a user by case-insensitive email.
// Returns gorm.ErrRecordNotFound if none exists.
func (s *Store) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	if err := s.db.WithContext(ctx).First(&u, "email = ?", normalize.Email(email)).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// Create inserts a new admin account after normalizing and validating
// fields. PasswordHash must already be a bcrypt hash.
func (s *Store) Create(ctx context.Context, u models.User) (models.User, error) {
	u.ID = uuid.NewString()
	u.Name = normalize.Name(u.Name)
	u.Email = normalize.Email(u.Email)
	if u.Role == "" {
		u.Role = models.RoleAdmin
	}
	if !models.IsAdminRole(u.Role) {
		return models.User{}, errBadRole
	}

	now := time.Now()
	u.CreatedAt = now
	u.UpdatedAt = now

	if err := s.db.WithContext(ctx).Create(&u).Error; err != nil {
		if isDup(err) {
			return models.User{}, ErrDuplicateEmail
		}
		return models.User{}, err
	}
	return u, nil
}

// Count returns the number of admin accounts.
func (s *Store) Count(ctx context.Context) (int64, error) {
	var n int64
	err := s.db.WithContext(ctx).Model(&models.User{}).Count(&n).Error
	return n, err
}

// isDup matches sqlite's unique-constraint violation. The driver exposes
// no typed error for it, so the message text is the contract.
func isDup(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
