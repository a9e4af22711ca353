// internal/domain/models/user.go
package models

import "time"

// User is an admin account that can sign in to the admin surface.
//
// Public visitors never have a User; only content editors do. Role is
// either ADMIN or SUPER_ADMIN; both pass the admin gate, the split
// exists for future privilege separation.
type User struct {
	ID           string `gorm:"type:text;primaryKey" json:"id"`
	Email        string `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Name         string `gorm:"size:255" json:"name"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	Role         string `gorm:"size:32;not null;default:ADMIN" json:"role"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
