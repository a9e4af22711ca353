// internal/app/features/posts/types.go
package posts

import (
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/robilprogramer/portofolio-sub001/internal/app/system/htmlsanitize"
	"github.com/robilprogramer/portofolio-sub001/internal/app/system/normalize"
	"github.com/robilprogramer/portofolio-sub001/internal/domain/models"
)

// wordsPerMinute is the reading-speed assumption behind the
// reading_time field.
const wordsPerMinute = 200

// readingTime estimates minutes to read HTML content. Markup is
// stripped before counting so tag soup does not inflate the estimate.
func readingTime(content string) int {
	words := len(strings.Fields(htmlsanitize.Plain(content)))
	if words == 0 {
		return 0
	}
	return (words + wordsPerMinute - 1) / wordsPerMinute
}

type createInput struct {
	Title       string   `json:"title"`
	Slug        string   `json:"slug"`
	Excerpt     string   `json:"excerpt"`
	Content     string   `json:"content"`
	Tags        []string `json:"tags"`
	Category    string   `json:"category"`
	CoverImage  string   `json:"cover_image"`
	IsPublished *bool    `json:"is_published"`
	Order       int      `json:"order"`
}

// Validate returns structured field errors; empty means valid.
func (in *createInput) Validate() map[string]string {
	errs := make(map[string]string)
	if strings.TrimSpace(in.Title) == "" {
		errs["title"] = "title is required"
	}
	if strings.TrimSpace(in.Content) == "" {
		errs["content"] = "content is required"
	}
	if in.Slug != "" && normalize.Slug(in.Slug) == "" {
		errs["slug"] = "slug must contain letters or digits"
	}
	return errs
}

func (in *createInput) toModel() models.Post {
	slug := in.Slug
	if slug == "" {
		slug = in.Title
	}
	published := true
	if in.IsPublished != nil {
		published = *in.IsPublished
	}
	content := htmlsanitize.Content(in.Content)
	return models.Post{
		Title:       normalize.Name(in.Title),
		Slug:        normalize.Slug(slug),
		Excerpt:     htmlsanitize.Plain(in.Excerpt),
		Content:     content,
		Tags:        models.StringList(in.Tags),
		Category:    strings.TrimSpace(in.Category),
		CoverImage:  strings.TrimSpace(in.CoverImage),
		ReadingTime: readingTime(content),
		IsPublished: published,
		Order:       in.Order,
	}
}

type updateInput struct {
	Title       *string   `json:"title"`
	Slug        *string   `json:"slug"`
	Excerpt     *string   `json:"excerpt"`
	Content     *string   `json:"content"`
	Tags        *[]string `json:"tags"`
	Category    *string   `json:"category"`
	CoverImage  *string   `json:"cover_image"`
	IsPublished *bool     `json:"is_published"`
	Order       *int      `json:"order"`
}

// Validate returns structured field errors; empty means valid.
func (in *updateInput) Validate() map[string]string {
	errs := make(map[string]string)
	if in.Title != nil && strings.TrimSpace(*in.Title) == "" {
		errs["title"] = "title cannot be empty"
	}
	if in.Content != nil && strings.TrimSpace(*in.Content) == "" {
		errs["content"] = "content cannot be empty"
	}
	if in.Slug != nil && normalize.Slug(*in.Slug) == "" {
		errs["slug"] = "slug must contain letters or digits"
	}
	return errs
}

// changes builds the column change set from present fields only.
// Changing content re-derives reading_time.
func (in *updateInput) changes() map[string]any {
	ch := make(map[string]any)
	if in.Title != nil {
		ch["title"] = normalize.Name(*in.Title)
	}
	if in.Slug != nil {
		ch["slug"] = normalize.Slug(*in.Slug)
	}
	if in.Excerpt != nil {
		ch["excerpt"] = htmlsanitize.Plain(*in.Excerpt)
	}
	if in.Content != nil {
		content := htmlsanitize.Content(*in.Content)
		ch["content"] = content
		ch["reading_time"] = readingTime(content)
	}
	if in.Tags != nil {
		ch["tags"] = models.StringList(*in.Tags)
	}
	if in.Category != nil {
		ch["category"] = strings.TrimSpace(*in.Category)
	}
	if in.CoverImage != nil {
		ch["cover_image"] = strings.TrimSpace(*in.CoverImage)
	}
	if in.IsPublished != nil {
		ch["is_published"] = *in.IsPublished
		if *in.IsPublished {
			// first publish stamps the timestamp; republishing keeps it
			ch["published_at"] = gorm.Expr("COALESCE(published_at, ?)", time.Now())
		}
	}
	if in.Order != nil {
		ch["display_order"] = *in.Order
	}
	return ch
}
