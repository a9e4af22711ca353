// internal/app/features/sociallinks/types.go
package sociallinks

import (
	"net/url"
	"strings"

	"github.com/robilprogramer/portofolio-sub001/internal/app/system/normalize"
	"github.com/robilprogramer/portofolio-sub001/internal/domain/models"
)

func validURL(s string) bool {
	u, err := url.Parse(s)
	return err == nil && (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

type createInput struct {
	Platform    string `json:"platform"`
	URL         string `json:"url"`
	Icon        string `json:"icon"`
	IsPublished *bool  `json:"is_published"`
	Order       int    `json:"order"`
}

// Validate returns structured field errors; empty means valid.
func (in *createInput) Validate() map[string]string {
	errs := make(map[string]string)
	if strings.TrimSpace(in.Platform) == "" {
		errs["platform"] = "platform is required"
	}
	if strings.TrimSpace(in.URL) == "" {
		errs["url"] = "url is required"
	} else if !validURL(strings.TrimSpace(in.URL)) {
		errs["url"] = "url must be an absolute http or https URL"
	}
	return errs
}

// toModel builds the link; userID is the creating admin, recorded for
// attribution.
func (in *createInput) toModel(userID string) models.SocialLink {
	published := true
	if in.IsPublished != nil {
		published = *in.IsPublished
	}
	return models.SocialLink{
		Platform:    normalize.Name(in.Platform),
		URL:         strings.TrimSpace(in.URL),
		Icon:        strings.TrimSpace(in.Icon),
		UserID:      userID,
		IsPublished: published,
		Order:       in.Order,
	}
}

type updateInput struct {
	Platform    *string `json:"platform"`
	URL         *string `json:"url"`
	Icon        *string `json:"icon"`
	IsPublished *bool   `json:"is_published"`
	Order       *int    `json:"order"`
}

// Validate returns structured field errors; empty means valid.
func (in *updateInput) Validate() map[string]string {
	errs := make(map[string]string)
	if in.Platform != nil && strings.TrimSpace(*in.Platform) == "" {
		errs["platform"] = "platform cannot be empty"
	}
	if in.URL != nil && !validURL(strings.TrimSpace(*in.URL)) {
		errs["url"] = "url must be an absolute http or https URL"
	}
	return errs
}

func (in *updateInput) changes() map[string]any {
	ch := make(map[string]any)
	if in.Platform != nil {
		ch["platform"] = normalize.Name(*in.Platform)
	}
	if in.URL != nil {
		ch["url"] = strings.TrimSpace(*in.URL)
	}
	if in.Icon != nil {
		ch["icon"] = strings.TrimSpace(*in.Icon)
	}
	if in.IsPublished != nil {
		ch["is_published"] = *in.IsPublished
	}
	if in.Order != nil {
		ch["display_order"] = *in.Order
	}
	return ch
}
