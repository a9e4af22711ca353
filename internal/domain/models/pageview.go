// internal/domain/models/pageview.go
package models

import "time"

// PageView is one analytics event. Rows are append-only: written by the
// public ingest endpoint on every page load, never updated, and read
// only in aggregate by the stats endpoint.
type PageView struct {
	ID        string    `gorm:"type:text;primaryKey" json:"id"`
	Path      string    `gorm:"size:512;index;not null" json:"path"`
	Referrer  string    `gorm:"size:512" json:"referrer"`
	UserAgent string    `gorm:"size:512" json:"user_agent"`
	IP        string    `gorm:"size:64" json:"ip"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
}
