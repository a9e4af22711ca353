// internal/domain/models/education.go
package models

import "time"

// Education is one schooling entry, sorted like Experience: current
// entries first, then by start date descending.
type Education struct {
	ID          string     `gorm:"type:text;primaryKey" json:"id"`
	Institution string     `gorm:"size:255;not null" json:"institution"`
	Degree      string     `gorm:"size:255;not null" json:"degree"`
	Field       string     `gorm:"size:255" json:"field"`
	StartDate   time.Time  `gorm:"index" json:"start_date"`
	EndDate     *time.Time `json:"end_date,omitempty"`
	IsCurrent   bool       `gorm:"index;default:false" json:"is_current"`
	GPA         string     `gorm:"size:32" json:"gpa"`
	Description string     `gorm:"type:text" json:"description"`

	IsPublished bool `gorm:"index;default:true" json:"is_published"`
	Order       int  `gorm:"column:display_order;default:0" json:"order"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
