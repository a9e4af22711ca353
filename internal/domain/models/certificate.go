// internal/domain/models/certificate.go
package models

import "time"

// Certificate is a professional certification or course completion.
type Certificate struct {
	ID            string     `gorm:"type:text;primaryKey" json:"id"`
	Name          string     `gorm:"size:255;not null" json:"name"`
	Issuer        string     `gorm:"size:255;not null" json:"issuer"`
	IssueDate     time.Time  `gorm:"index" json:"issue_date"`
	ExpiryDate    *time.Time `json:"expiry_date,omitempty"`
	CredentialID  string     `gorm:"size:255" json:"credential_id"`
	CredentialURL string     `gorm:"size:512" json:"credential_url"`
	ImageURL      string     `gorm:"size:512" json:"image_url"`

	IsPublished bool `gorm:"index;default:true" json:"is_published"`
	Order       int  `gorm:"column:display_order;default:0" json:"order"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
