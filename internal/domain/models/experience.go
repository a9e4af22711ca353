// internal/domain/models/experience.go
package models

import "time"

// Experience is one employment entry. EndDate is nil while IsCurrent is
// true; current entries sort before all others in listings.
type Experience struct {
	ID          string     `gorm:"type:text;primaryKey" json:"id"`
	Company     string     `gorm:"size:255;not null" json:"company"`
	Position    string     `gorm:"size:255;not null" json:"position"`
	Location    string     `gorm:"size:255" json:"location"`
	Description string     `gorm:"type:text" json:"description"`
	StartDate   time.Time  `gorm:"index" json:"start_date"`
	EndDate     *time.Time `json:"end_date,omitempty"`
	IsCurrent   bool       `gorm:"index;default:false" json:"is_current"`

	IsPublished bool `gorm:"index;default:true" json:"is_published"`
	Order       int  `gorm:"column:display_order;default:0" json:"order"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
