// internal/app/features/certificates/types.go
package certificates

import (
	"strings"
	"time"

	"github.com/robilprogramer/portofolio-sub001/internal/app/system/dates"
	"github.com/robilprogramer/portofolio-sub001/internal/app/system/normalize"
	"github.com/robilprogramer/portofolio-sub001/internal/domain/models"
)

type createInput struct {
	Name          string `json:"name"`
	Issuer        string `json:"issuer"`
	IssueDate     string `json:"issue_date"`
	ExpiryDate    string `json:"expiry_date"`
	CredentialID  string `json:"credential_id"`
	CredentialURL string `json:"credential_url"`
	ImageURL      string `json:"image_url"`
	IsPublished   *bool  `json:"is_published"`
	Order         int    `json:"order"`

	issued  time.Time
	expires *time.Time
}

// Validate parses dates as a side effect so toModel never re-parses.
func (in *createInput) Validate() map[string]string {
	errs := make(map[string]string)
	if strings.TrimSpace(in.Name) == "" {
		errs["name"] = "name is required"
	}
	if strings.TrimSpace(in.Issuer) == "" {
		errs["issuer"] = "issuer is required"
	}
	if in.IssueDate == "" {
		errs["issue_date"] = "issue_date is required"
	} else if t, err := dates.Parse(in.IssueDate); err != nil {
		errs["issue_date"] = err.Error()
	} else {
		in.issued = t
	}
	if in.ExpiryDate != "" {
		if t, err := dates.Parse(in.ExpiryDate); err != nil {
			errs["expiry_date"] = err.Error()
		} else {
			in.expires = &t
		}
	}
	if in.expires != nil && in.expires.Before(in.issued) {
		errs["expiry_date"] = "expiry_date cannot precede issue_date"
	}
	return errs
}

func (in *createInput) toModel() models.Certificate {
	published := true
	if in.IsPublished != nil {
		published = *in.IsPublished
	}
	return models.Certificate{
		Name:          normalize.Name(in.Name),
		Issuer:        normalize.Name(in.Issuer),
		IssueDate:     in.issued,
		ExpiryDate:    in.expires,
		CredentialID:  strings.TrimSpace(in.CredentialID),
		CredentialURL: strings.TrimSpace(in.CredentialURL),
		ImageURL:      strings.TrimSpace(in.ImageURL),
		IsPublished:   published,
		Order:         in.Order,
	}
}

type updateInput struct {
	Name          *string `json:"name"`
	Issuer        *string `json:"issuer"`
	IssueDate     *string `json:"issue_date"`
	ExpiryDate    *string `json:"expiry_date"`
	CredentialID  *string `json:"credential_id"`
	CredentialURL *string `json:"credential_url"`
	ImageURL      *string `json:"image_url"`
	IsPublished   *bool   `json:"is_published"`
	Order         *int    `json:"order"`

	issued  *time.Time
	expires *time.Time
}

// Validate parses dates as a side effect, mirroring createInput.
func (in *updateInput) Validate() map[string]string {
	errs := make(map[string]string)
	if in.Name != nil && strings.TrimSpace(*in.Name) == "" {
		errs["name"] = "name cannot be empty"
	}
	if in.Issuer != nil && strings.TrimSpace(*in.Issuer) == "" {
		errs["issuer"] = "issuer cannot be empty"
	}
	if in.IssueDate != nil {
		if t, err := dates.Parse(*in.IssueDate); err != nil {
			errs["issue_date"] = err.Error()
		} else {
			in.issued = &t
		}
	}
	if in.ExpiryDate != nil && *in.ExpiryDate != "" {
		if t, err := dates.Parse(*in.ExpiryDate); err != nil {
			errs["expiry_date"] = err.Error()
		} else {
			in.expires = &t
		}
	}
	return errs
}

func (in *updateInput) changes() map[string]any {
	ch := make(map[string]any)
	if in.Name != nil {
		ch["name"] = normalize.Name(*in.Name)
	}
	if in.Issuer != nil {
		ch["issuer"] = normalize.Name(*in.Issuer)
	}
	if in.issued != nil {
		ch["issue_date"] = *in.issued
	}
	if in.ExpiryDate != nil && *in.ExpiryDate == "" {
		// explicit empty string clears the expiry
		ch["expiry_date"] = nil
	} else if in.expires != nil {
		ch["expiry_date"] = *in.expires
	}
	if in.CredentialID != nil {
		ch["credential_id"] = strings.TrimSpace(*in.CredentialID)
	}
	if in.CredentialURL != nil {
		ch["credential_url"] = strings.TrimSpace(*in.CredentialURL)
	}
	if in.ImageURL != nil {
		ch["image_url"] = strings.TrimSpace(*in.ImageURL)
	}
	if in.IsPublished != nil {
		ch["is_published"] = *in.IsPublished
	}
	if in.Order != nil {
		ch["display_order"] = *in.Order
	}
	return ch
}
