package testutil

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/robilprogramer/portofolio-sub001/internal/domain/models"
)

// Fixtures seeds rows directly through gorm so store logic under test is
// not also the logic creating the test data.
type Fixtures struct {
	t  *testing.T
	db *gorm.DB
}

// NewFixtures wraps a test database for seeding.
func NewFixtures(t *testing.T, db *gorm.DB) *Fixtures {
	return &Fixtures{t: t, db: db}
}

// DB exposes the underlying database for direct assertions.
func (f *Fixtures) DB() *gorm.DB { return f.db }

func (f *Fixtures) create(v any) {
	f.t.Helper()
	if err := f.db.Create(v).Error; err != nil {
		f.t.Fatalf("seed %T: %v", v, err)
	}
}

// SeedUser inserts an admin account and returns it.
func (f *Fixtures) SeedUser(email, role string) models.User {
	u := models.User{
		ID:           uuid.NewString(),
		Email:        email,
		Name:         "Seeded User",
		PasswordHash: "$2a$10$invalidinvalidinvalidinvalidinvalidinvalidinvalidinval",
		Role:         role,
	}
	f.create(&u)
	return u
}

// SeedProject inserts a project with the given slug and publication state.
func (f *Fixtures) SeedProject(slug string, published bool) models.Project {
	p := models.Project{
		ID:          uuid.NewString(),
		Title:       "Project " + slug,
		Slug:        slug,
		Description: "seeded project",
		TechStack:   models.StringList{"go", "sqlite"},
		Status:      models.ProjectStatusCompleted,
		IsPublished: published,
	}
	f.create(&p)
	return p
}

// SeedPost inserts a post with the given slug and publication state.
func (f *Fixtures) SeedPost(slug string, published bool) models.Post {
	now := time.Now()
	p := models.Post{
		ID:          uuid.NewString(),
		Title:       "Post " + slug,
		Slug:        slug,
		Excerpt:     "seeded post",
		Content:     "<p>seeded content</p>",
		Tags:        models.StringList{"go"},
		Category:    "engineering",
		IsPublished: published,
	}
	if published {
		p.PublishedAt = &now
	}
	f.create(&p)
	return p
}

// SeedSkill inserts a skill in the given category.
func (f *Fixtures) SeedSkill(name, category string, published bool) models.Skill {
	s := models.Skill{
		ID:          uuid.NewString(),
		Name:        name,
		Category:    category,
		Level:       models.SkillLevelAdvanced,
		Proficiency: 80,
		IsPublished: published,
	}
	f.create(&s)
	return s
}

// SeedExperience inserts an experience entry.
func (f *Fixtures) SeedExperience(company string, current bool, start time.Time) models.Experience {
	e := models.Experience{
		ID:          uuid.NewString(),
		Company:     company,
		Position:    "Engineer",
		StartDate:   start,
		IsCurrent:   current,
		IsPublished: true,
	}
	if !current {
		end := start.AddDate(1, 0, 0)
		e.EndDate = &end
	}
	f.create(&e)
	return e
}

// SeedTestimonial inserts a testimonial.
func (f *Fixtures) SeedTestimonial(author string, featured, published bool) models.Testimonial {
	tm := models.Testimonial{
		ID:          uuid.NewString(),
		AuthorName:  author,
		Message:     "seeded testimonial",
		Rating:      5,
		Featured:    featured,
		IsPublished: published,
	}
	f.create(&tm)
	return tm
}

// SeedSocialLink inserts a social link owned by userID.
func (f *Fixtures) SeedSocialLink(platform, userID string, published bool) models.SocialLink {
	l := models.SocialLink{
		ID:          uuid.NewString(),
		Platform:    platform,
		URL:         "https://" + platform + ".example.com/me",
		UserID:      userID,
		IsPublished: published,
	}
	f.create(&l)
	return l
}

// SeedPageView inserts a pageview event at the given time.
func (f *Fixtures) SeedPageView(path string, at time.Time) models.PageView {
	pv := models.PageView{
		ID:        uuid.NewString(),
		Path:      path,
		Referrer:  "https://ref.example.com",
		UserAgent: "test-agent",
		IP:        "203.0.113.9",
		CreatedAt: at,
	}
	f.create(&pv)
	return pv
}
