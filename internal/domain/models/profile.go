// internal/domain/models/profile.go
package models

import "time"

// Profile is the site owner's bio card. The public endpoint serves the
// most recently created published profile, so edits can be staged as new
// rows and flipped live by publishing.
type Profile struct {
	ID        string `gorm:"type:text;primaryKey" json:"id"`
	Name      string `gorm:"size:255;not null" json:"name"`
	Title     string `gorm:"size:255" json:"title"`
	Bio       string `gorm:"type:text" json:"bio"`
	AvatarURL string `gorm:"size:512" json:"avatar_url"`
	Email     string `gorm:"size:255" json:"email"`
	Phone     string `gorm:"size:64" json:"phone"`
	Location  string `gorm:"size:255" json:"location"`
	ResumeURL string `gorm:"size:512" json:"resume_url"`

	IsPublished bool `gorm:"index;default:true" json:"is_published"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
