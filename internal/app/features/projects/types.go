// internal/app/features/projects/types.go
package projects

import (
	"strings"

	"github.com/robilprogramer/portofolio-sub001/internal/app/system/htmlsanitize"
	"github.com/robilprogramer/portofolio-sub001/internal/app/system/normalize"
	"github.com/robilprogramer/portofolio-sub001/internal/domain/models"
)

var projectStatuses = map[string]struct{}{
	models.ProjectStatusInProgress: {},
	models.ProjectStatusCompleted:  {},
	models.ProjectStatusArchived:   {},
}

// createInput is the JSON body for creating a project. Pointer fields on
// updateInput distinguish "absent" from "zero"; create uses plain fields
// with defaults.
type createInput struct {
	Title       string   `json:"title"`
	Slug        string   `json:"slug"`
	Description string   `json:"description"`
	Content     string   `json:"content"`
	TechStack   []string `json:"tech_stack"`
	RepoURL     string   `json:"repo_url"`
	DemoURL     string   `json:"demo_url"`
	ImageURL    string   `json:"image_url"`
	Status      string   `json:"status"`
	Featured    bool     `json:"featured"`
	IsPublished *bool    `json:"is_published"`
	Order       int      `json:"order"`
}

// Validate returns structured field errors; empty means valid.
func (in *createInput) Validate() map[string]string {
	errs := make(map[string]string)
	if strings.TrimSpace(in.Title) == "" {
		errs["title"] = "title is required"
	}
	if in.Slug != "" && normalize.Slug(in.Slug) == "" {
		errs["slug"] = "slug must contain letters or digits"
	}
	if in.Status != "" {
		if _, ok := projectStatuses[in.Status]; !ok {
			errs["status"] = "status must be in_progress, completed, or archived"
		}
	}
	return errs
}

// toModel converts validated input into a Project, applying defaults,
// slug normalization, and content sanitization.
func (in *createInput) toModel() models.Project {
	slug := in.Slug
	if slug == "" {
		slug = in.Title
	}
	published := true
	if in.IsPublished != nil {
		published = *in.IsPublished
	}
	status := in.Status
	if status == "" {
		status = models.ProjectStatusCompleted
	}
	return models.Project{
		Title:       normalize.Name(in.Title),
		Slug:        normalize.Slug(slug),
		Description: htmlsanitize.Content(in.Description),
		Content:     htmlsanitize.Content(in.Content),
		TechStack:   models.StringList(in.TechStack),
		RepoURL:     strings.TrimSpace(in.RepoURL),
		DemoURL:     strings.TrimSpace(in.DemoURL),
		ImageURL:    strings.TrimSpace(in.ImageURL),
		Status:      status,
		Featured:    in.Featured,
		IsPublished: published,
		Order:       in.Order,
	}
}

// updateInput is the JSON body for partial updates: only present fields
// are applied.
type updateInput struct {
	Title       *string   `json:"title"`
	Slug        *string   `json:"slug"`
	Description *string   `json:"description"`
	Content     *string   `json:"content"`
	TechStack   *[]string `json:"tech_stack"`
	RepoURL     *string   `json:"repo_url"`
	DemoURL     *string   `json:"demo_url"`
	ImageURL    *string   `json:"image_url"`
	Status      *string   `json:"status"`
	Featured    *bool     `json:"featured"`
	IsPublished *bool     `json:"is_published"`
	Order       *int      `json:"order"`
}

// Validate returns structured field errors; empty means valid.
func (in *updateInput) Validate() map[string]string {
	errs := make(map[string]string)
	if in.Title != nil && strings.TrimSpace(*in.Title) == "" {
		errs["title"] = "title cannot be empty"
	}
	if in.Slug != nil && normalize.Slug(*in.Slug) == "" {
		errs["slug"] = "slug must contain letters or digits"
	}
	if in.Status != nil {
		if _, ok := projectStatuses[*in.Status]; !ok {
			errs["status"] = "status must be in_progress, completed, or archived"
		}
	}
	return errs
}

// changes builds the column change set from present fields only.
func (in *updateInput) changes() map[string]any {
	ch := make(map[string]any)
	if in.Title != nil {
		ch["title"] = normalize.Name(*in.Title)
	}
	if in.Slug != nil {
		ch["slug"] = normalize.Slug(*in.Slug)
	}
	if in.Description != nil {
		ch["description"] = htmlsanitize.Content(*in.Description)
	}
	if in.Content != nil {
		ch["content"] = htmlsanitize.Content(*in.Content)
	}
	if in.TechStack != nil {
		ch["tech_stack"] = models.StringList(*in.TechStack)
	}
	if in.RepoURL != nil {
		ch["repo_url"] = strings.TrimSpace(*in.RepoURL)
	}
	if in.DemoURL != nil {
		ch["demo_url"] = strings.TrimSpace(*in.DemoURL)
	}
	if in.ImageURL != nil {
		ch["image_url"] = strings.TrimSpace(*in.ImageURL)
	}
	if in.Status != nil {
		ch["status"] = *in.Status
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
