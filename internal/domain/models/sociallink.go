// internal/domain/models/sociallink.go
package models

import "time"

// SocialLink is a link to an external profile (GitHub, LinkedIn, etc.).
// UserID records which admin created the link.
type SocialLink struct {
	ID       string `gorm:"type:text;primaryKey" json:"id"`
	Platform string `gorm:"size:128;not null" json:"platform"`
	URL      string `gorm:"size:512;not null" json:"url"`
	Icon     string `gorm:"size:255" json:"icon"`

	UserID string `gorm:"type:text;index" json:"user_id"`
	User   *User  `gorm:"foreignKey:UserID" json:"user,omitempty"`

	IsPublished bool `gorm:"index;default:true" json:"is_published"`
	Order       int  `gorm:"column:display_order;default:0" json:"order"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
