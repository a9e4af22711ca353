// internal/app/features/educations/types.go
package educations

import (
	"strings"
	"time"

	"github.com/robilprogramer/portofolio-sub001/internal/app/system/dates"
	"github.com/robilprogramer/portofolio-sub001/internal/app/system/htmlsanitize"
	"github.com/robilprogramer/portofolio-sub001/internal/app/system/normalize"
	"github.com/robilprogramer/portofolio-sub001/internal/domain/models"
)

type createInput struct {
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Field       string `json:"field"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	IsCurrent   bool   `json:"is_current"`
	GPA         string `json:"gpa"`
	Description string `json:"description"`
	IsPublished *bool  `json:"is_published"`
	Order       int    `json:"order"`

	start time.Time
	end   *time.Time
}

// Validate parses dates as a side effect so toModel never re-parses.
func (in *createInput) Validate() map[string]string {
	errs := make(map[string]string)
	if strings.TrimSpace(in.Institution) == "" {
		errs["institution"] = "institution is required"
	}
	if strings.TrimSpace(in.Degree) == "" {
		errs["degree"] = "degree is required"
	}
	if in.StartDate == "" {
		errs["start_date"] = "start_date is required"
	} else if t, err := dates.Parse(in.StartDate); err != nil {
		errs["start_date"] = err.Error()
	} else {
		in.start = t
	}
	if in.EndDate != "" && !in.IsCurrent {
		if t, err := dates.Parse(in.EndDate); err != nil {
			errs["end_date"] = err.Error()
		} else {
			in.end = &t
		}
	}
	if in.end != nil && in.end.Before(in.start) {
		errs["end_date"] = "end_date cannot precede start_date"
	}
	return errs
}

func (in *createInput) toModel() models.Education {
	published := true
	if in.IsPublished != nil {
		published = *in.IsPublished
	}
	return models.Education{
		Institution: normalize.Name(in.Institution),
		Degree:      normalize.Name(in.Degree),
		Field:       strings.TrimSpace(in.Field),
		StartDate:   in.start,
		EndDate:     in.end,
		IsCurrent:   in.IsCurrent,
		GPA:         strings.TrimSpace(in.GPA),
		Description: htmlsanitize.Content(in.Description),
		IsPublished: published,
		Order:       in.Order,
	}
}

type updateInput struct {
	Institution *string `json:"institution"`
	Degree      *string `json:"degree"`
	Field       *string `json:"field"`
	StartDate   *string `json:"start_date"`
	EndDate     *string `json:"end_date"`
	IsCurrent   *bool   `json:"is_current"`
	GPA         *string `json:"gpa"`
	Description *string `json:"description"`
	IsPublished *bool   `json:"is_published"`
	Order       *int    `json:"order"`

	start *time.Time
	end   *time.Time
}

// Validate parses dates as a side effect, mirroring createInput.
func (in *updateInput) Validate() map[string]string {
	errs := make(map[string]string)
	if in.Institution != nil && strings.TrimSpace(*in.Institution) == "" {
		errs["institution"] = "institution cannot be empty"
	}
	if in.Degree != nil && strings.TrimSpace(*in.Degree) == "" {
		errs["degree"] = "degree cannot be empty"
	}
	if in.StartDate != nil {
		if t, err := dates.Parse(*in.StartDate); err != nil {
			errs["start_date"] = err.Error()
		} else {
			in.start = &t
		}
	}
	if in.EndDate != nil && *in.EndDate != "" {
		if t, err := dates.Parse(*in.EndDate); err != nil {
			errs["end_date"] = err.Error()
		} else {
			in.end = &t
		}
	}
	return errs
}

func (in *updateInput) changes() map[string]any {
	ch := make(map[string]any)
	if in.Institution != nil {
		ch["institution"] = normalize.Name(*in.Institution)
	}
	if in.Degree != nil {
		ch["degree"] = normalize.Name(*in.Degree)
	}
	if in.Field != nil {
		ch["field"] = strings.TrimSpace(*in.Field)
	}
	if in.start != nil {
		ch["start_date"] = *in.start
	}
	if in.end != nil {
		ch["end_date"] = *in.end
	}
	if in.IsCurrent != nil {
		ch["is_current"] = *in.IsCurrent
		if *in.IsCurrent {
			ch["end_date"] = nil
		}
	}
	if in.GPA != nil {
		ch["gpa"] = strings.TrimSpace(*in.GPA)
	}
	if in.Description != nil {
		ch["description"] = htmlsanitize.Content(*in.Description)
	}
	if in.IsPublished != nil {
		ch["is_published"] = *in.IsPublished
	}
	if in.Order != nil {
		ch["display_order"] = *in.Order
	}
	return ch
}
