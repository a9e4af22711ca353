// internal/domain/models/post.go
package models

import "time"

// Post is a blog entry served by slug on the public surface.
type Post struct {
	ID          string     `gorm:"type:text;primaryKey" json:"id"`
	Title       string     `gorm:"size:255;not null" json:"title"`
	Slug        string     `gorm:"uniqueIndex;size:255;not null" json:"slug"`
	Excerpt     string     `gorm:"type:text" json:"excerpt"`
	Content     string     `gorm:"type:text" json:"content"`
	Tags        StringList `gorm:"type:text" json:"tags"`
	Category    string     `gorm:"size:128;index" json:"category"`
	CoverImage  string     `gorm:"size:512" json:"cover_image"`
	ReadingTime int        `gorm:"default:0" json:"reading_time"`
	ViewCount   int64      `gorm:"default:0" json:"view_count"`
	PublishedAt *time.Time `json:"published_at,omitempty"`

	IsPublished bool `gorm:"index;default:true" json:"is_published"`
	Order       int  `gorm:"column:display_order;default:0" json:"order"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
