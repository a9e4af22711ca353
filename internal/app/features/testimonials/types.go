// internal/app/features/testimonials/types.go
package testimonials

import (
	"strings"

	"github.com/robilprogramer/portofolio-sub001/internal/app/system/htmlsanitize"
	"github.com/robilprogramer/portofolio-sub001/internal/app/system/normalize"
	"github.com/robilprogramer/portofolio-sub001/internal/domain/models"
)

type createInput struct {
	AuthorName    string `json:"author_name"`
	AuthorTitle   string `json:"author_title"`
	AuthorCompany string `json:"author_company"`
	AvatarURL     string `json:"avatar_url"`
	Message       string `json:"message"`
	Rating        *int   `json:"rating"`
	Featured      bool   `json:"featured"`
	IsPublished   *bool  `json:"is_published"`
	Order         int    `json:"order"`
}

// Validate returns structured field errors; empty means valid.
func (in *createInput) Validate() map[string]string {
	errs := make(map[string]string)
	if strings.TrimSpace(in.AuthorName) == "" {
		errs["author_name"] = "author_name is required"
	}
	if strings.TrimSpace(in.Message) == "" {
		errs["message"] = "message is required"
	}
	if in.Rating != nil && (*in.Rating < 1 || *in.Rating > 5) {
		errs["rating"] = "rating must be between 1 and 5"
	}
	return errs
}

func (in *createInput) toModel() models.Testimonial {
	published := true
	if in.IsPublished != nil {
		published = *in.IsPublished
	}
	rating := 5
	if in.Rating != nil {
		rating = *in.Rating
	}
	return models.Testimonial{
		AuthorName:    normalize.Name(in.AuthorName),
		AuthorTitle:   strings.TrimSpace(in.AuthorTitle),
		AuthorCompany: strings.TrimSpace(in.AuthorCompany),
		AvatarURL:     strings.TrimSpace(in.AvatarURL),
		Message:       htmlsanitize.Content(in.Message),
		Rating:        rating,
		Featured:      in.Featured,
		IsPublished:   published,
		Order:         in.Order,
	}
}

type updateInput struct {
	AuthorName    *string `json:"author_name"`
	AuthorTitle   *string `json:"author_title"`
	AuthorCompany *string `json:"author_company"`
	AvatarURL     *string `json:"avatar_url"`
	Message       *string `json:"message"`
	Rating        *int    `json:"rating"`
	Featured      *bool   `json:"featured"`
	IsPublished   *bool   `json:"is_published"`
	Order         *int    `json:"order"`
}

// Validate returns structured field errors; empty means valid.
func (in *updateInput) Validate() map[string]string {
	errs := make(map[string]string)
	if in.AuthorName != nil && strings.TrimSpace(*in.AuthorName) == "" {
		errs["author_name"] = "author_name cannot be empty"
	}
	if in.Message != nil && strings.TrimSpace(*in.Message) == "" {
		errs["message"] = "message cannot be empty"
	}
	if in.Rating != nil && (*in.Rating < 1 || *in.Rating > 5) {
		errs["rating"] = "rating must be between 1 and 5"
	}
	return errs
}

func (in *updateInput) changes() map[string]any {
	ch := make(map[string]any)
	if in.AuthorName != nil {
		ch["author_name"] = normalize.Name(*in.AuthorName)
	}
	if in.AuthorTitle != nil {
		ch["author_title"] = strings.TrimSpace(*in.AuthorTitle)
	}
	if in.AuthorCompany != nil {
		ch["author_company"] = strings.TrimSpace(*in.AuthorCompany)
	}
	if in.AvatarURL != nil {
		ch["avatar_url"] = strings.TrimSpace(*in.AvatarURL)
	}
	if in.Message != nil {
		ch["message"] = htmlsanitize.Content(*in.Message)
	}
	if in.Rating != nil {
		ch["rating"] = *in.Rating
	}
	if in.Featured != nil {
		ch["featured"] = *in.Featured
	}
	if in.IsPublished != nil {
		ch["is_published"] = *in.IsPublished
	}
	if in.Order != nil {
		ch["display_order"] = *in.Order
	}
	return ch
}
