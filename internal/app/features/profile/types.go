// internal/app/features/profile/types.go
package profile

import (
	"strings"

	"github.com/robilprogramer/portofolio-sub001/internal/app/system/htmlsanitize"
	"github.com/robilprogramer/portofolio-sub001/internal/app/system/normalize"
	"github.com/robilprogramer/portofolio-sub001/internal/domain/models"
)

type createInput struct {
	Name        string `json:"name"`
	Title       string `json:"title"`
	Bio         string `json:"bio"`
	AvatarURL   string `json:"avatar_url"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Location    string `json:"location"`
	ResumeURL   string `json:"resume_url"`
	IsPublished *bool  `json:"is_published"`
}

// Validate returns structured field errors; empty means valid.
func (in *createInput) Validate() map[string]string {
	errs := make(map[string]string)
	if strings.TrimSpace(in.Name) == "" {
		errs["name"] = "name is required"
	}
	if in.Email != "" && !strings.Contains(in.Email, "@") {
		errs["email"] = "email must be a valid address"
	}
	return errs
}

func (in *createInput) toModel() models.Profile {
	published := true
	if in.IsPublished != nil {
		published = *in.IsPublished
	}
	return models.Profile{
		Name:        normalize.Name(in.Name),
		Title:       strings.TrimSpace(in.Title),
		Bio:         htmlsanitize.Content(in.Bio),
		AvatarURL:   strings.TrimSpace(in.AvatarURL),
		Email:       normalize.Email(in.Email),
		Phone:       strings.TrimSpace(in.Phone),
		Location:    strings.TrimSpace(in.Location),
		ResumeURL:   strings.TrimSpace(in.ResumeURL),
		IsPublished: published,
	}
}

type updateInput struct {
	Name        *string `json:"name"`
	Title       *string `json:"title"`
	Bio         *string `json:"bio"`
	AvatarURL   *string `json:"avatar_url"`
	Email       *string `json:"email"`
	Phone       *string `json:"phone"`
	Location    *string `json:"location"`
	ResumeURL   *string `json:"resume_url"`
	IsPublished *bool   `json:"is_published"`
}

// Validate returns structured field errors; empty means valid.
func (in *updateInput) Validate() map[string]string {
	errs := make(map[string]string)
	if in.Name != nil && strings.TrimSpace(*in.Name) == "" {
		errs["name"] = "name cannot be empty"
	}
	if in.Email != nil && *in.Email != "" && !strings.Contains(*in.Email, "@") {
		errs["email"] = "email must be a valid address"
	}
	return errs
}

func (in *updateInput) changes() map[string]any {
	ch := make(map[string]any)
	if in.Name != nil {
		ch["name"] = normalize.Name(*in.Name)
	}
	if in.Title != nil {
		ch["title"] = strings.TrimSpace(*in.Title)
	}
	if in.Bio != nil {
		ch["bio"] = htmlsanitize.Content(*in.Bio)
	}
	if in.AvatarURL != nil {
		ch["avatar_url"] = strings.TrimSpace(*in.AvatarURL)
	}
	if in.Email != nil {
		ch["email"] = normalize.Email(*in.Email)
	}
	if in.Phone != nil {
		ch["phone"] = strings.TrimSpace(*in.Phone)
	}
	if in.Location != nil {
		ch["location"] = strings.TrimSpace(*in.Location)
	}
	if in.ResumeURL != nil {
		ch["resume_url"] = strings.TrimSpace(*in.ResumeURL)
	}
	if in.IsPublished != nil {
		ch["is_published"] = *in.IsPublished
	}
	return ch
}
