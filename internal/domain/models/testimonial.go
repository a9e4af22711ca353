// internal/domain/models/testimonial.go
package models

import "time"

// Testimonial is a quote from a client or colleague. Rating is 1-5.
type Testimonial struct {
	ID            string `gorm:"type:text;primaryKey" json:"id"`
	AuthorName    string `gorm:"size:255;not null" json:"author_name"`
	AuthorTitle   string `gorm:"size:255" json:"author_title"`
	AuthorCompany string `gorm:"size:255" json:"author_company"`
	AvatarURL     string `gorm:"size:512" json:"avatar_url"`
	Message       string `gorm:"type:text;not null" json:"message"`
	Rating        int    `gorm:"default:5" json:"rating"`
	Featured      bool   `gorm:"index;default:false" json:"featured"`

	IsPublished bool `gorm:"index;default:true" json:"is_published"`
	Order       int  `gorm:"column:display_order;default:0" json:"order"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
