// internal/domain/models/skill.go
package models

import "time"

// Skill categories.
const (
	SkillCategoryFrontend = "frontend"
	SkillCategoryBackend  = "backend"
	SkillCategoryDevOps   = "devops"
	SkillCategoryDatabase = "database"
	SkillCategoryTools    = "tools"
	SkillCategoryOther    = "other"
)

// SkillCategories lists every valid skill category.
var SkillCategories = []string{
	SkillCategoryFrontend,
	SkillCategoryBackend,
	SkillCategoryDevOps,
	SkillCategoryDatabase,
	SkillCategoryTools,
	SkillCategoryOther,
}

// Skill levels.
const (
	SkillLevelBeginner     = "beginner"
	SkillLevelIntermediate = "intermediate"
	SkillLevelAdvanced     = "advanced"
	SkillLevelExpert       = "expert"
)

// SkillLevels lists every valid skill level.
var SkillLevels = []string{
	SkillLevelBeginner,
	SkillLevelIntermediate,
	SkillLevelAdvanced,
	SkillLevelExpert,
}

// Skill is a single technology or competency shown on the skills page.
// Proficiency is a 0-100 display value; Level is the coarse label.
type Skill struct {
	ID          string `gorm:"type:text;primaryKey" json:"id"`
	Name        string `gorm:"size:128;not null" json:"name"`
	Category    string `gorm:"size:32;index;not null" json:"category"`
	Level       string `gorm:"size:32;default:intermediate" json:"level"`
	Proficiency int    `gorm:"default:0" json:"proficiency"`
	Icon        string `gorm:"size:255" json:"icon"`

	IsPublished bool `gorm:"index;default:true" json:"is_published"`
	Order       int  `gorm:"column:display_order;default:0" json:"order"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
