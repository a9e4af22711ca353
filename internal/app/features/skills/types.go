// internal/app/features/skills/types.go
package skills

import (
	"slices"
	"strings"

	"github.com/robilprogramer/portofolio-sub001/internal/app/system/normalize"
	"github.com/robilprogramer/portofolio-sub001/internal/domain/models"
)

type createInput struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	Level       string `json:"level"`
	Proficiency int    `json:"proficiency"`
	Icon        string `json:"icon"`
	IsPublished *bool  `json:"is_published"`
	Order       int    `json:"order"`
}

// Validate returns structured field errors; empty means valid.
func (in *createInput) Validate() map[string]string {
	errs := make(map[string]string)
	if strings.TrimSpace(in.Name) == "" {
		errs["name"] = "name is required"
	}
	if !slices.Contains(models.SkillCategories, in.Category) {
		errs["category"] = "category must be one of: " + strings.Join(models.SkillCategories, ", ")
	}
	if in.Level != "" && !slices.Contains(models.SkillLevels, in.Level) {
		errs["level"] = "level must be one of: " + strings.Join(models.SkillLevels, ", ")
	}
	if in.Proficiency < 0 || in.Proficiency > 100 {
		errs["proficiency"] = "proficiency must be between 0 and 100"
	}
	return errs
}

func (in *createInput) toModel() models.Skill {
	published := true
	if in.IsPublished != nil {
		published = *in.IsPublished
	}
	level := in.Level
	if level == "" {
		level = models.SkillLevelIntermediate
	}
	return models.Skill{
		Name:        normalize.Name(in.Name),
		Category:    in.Category,
		Level:       level,
		Proficiency: in.Proficiency,
		Icon:        strings.TrimSpace(in.Icon),
		IsPublished: published,
		Order:       in.Order,
	}
}

type updateInput struct {
	Name        *string `json:"name"`
	Category    *string `json:"category"`
	Level       *string `json:"level"`
	Proficiency *int    `json:"proficiency"`
	Icon        *string `json:"icon"`
	IsPublished *bool   `json:"is_published"`
	Order       *int    `json:"order"`
}

// Validate returns structured field errors; empty means valid.
func (in *updateInput) Validate() map[string]string {
	errs := make(map[string]string)
	if in.Name != nil && strings.TrimSpace(*in.Name) == "" {
		errs["name"] = "name cannot be empty"
	}
	if in.Category != nil && !slices.Contains(models.SkillCategories, *in.Category) {
		errs["category"] = "category must be one of: " + strings.Join(models.SkillCategories, ", ")
	}
	if in.Level != nil && !slices.Contains(models.SkillLevels, *in.Level) {
		errs["level"] = "level must be one of: " + strings.Join(models.SkillLevels, ", ")
	}
	if in.Proficiency != nil && (*in.Proficiency < 0 || *in.Proficiency > 100) {
		errs["proficiency"] = "proficiency must be between 0 and 100"
	}
	return errs
}

func (in *updateInput) changes() map[string]any {
	ch := make(map[string]any)
	if in.Name != nil {
		ch["name"] = normalize.Name(*in.Name)
	}
	if in.Category != nil {
		ch["category"] = *in.Category
	}
	if in.Level != nil {
		ch["level"] = *in.Level
	}
	if in.Proficiency != nil {
		ch["proficiency"] = *in.Proficiency
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
