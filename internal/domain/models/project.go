// internal/domain/models/project.go
package models

import "time"

// Project statuses.
const (
	ProjectStatusInProgress = "in_progress"
	ProjectStatusCompleted  = "completed"
	ProjectStatusArchived   = "archived"
)

// Project is a portfolio entry. Slug is the public lookup key; ID stays
// internal. ViewCount is only ever changed through the store's atomic
// increment, never by assigning a read-back value.
type Project struct {
	ID          string     `gorm:"type:text;primaryKey" json:"id"`
	Title       string     `gorm:"size:255;not null" json:"title"`
	Slug        string     `gorm:"uniqueIndex;size:255;not null" json:"slug"`
	Description string     `gorm:"type:text" json:"description"`
	Content     string     `gorm:"type:text" json:"content"`
	TechStack   StringList `gorm:"type:text" json:"tech_stack"`
	RepoURL     string     `gorm:"size:512" json:"repo_url"`
	DemoURL     string     `gorm:"size:512" json:"demo_url"`
	ImageURL    string     `gorm:"size:512" json:"image_url"`
	Status      string     `gorm:"size:32;default:completed" json:"status"`
	Featured    bool       `gorm:"index;default:false" json:"featured"`
	ViewCount   int64      `gorm:"default:0" json:"view_count"`

	IsPublished bool `gorm:"index;default:true" json:"is_published"`
	Order       int  `gorm:"column:display_order;default:0" json:"order"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
