// internal/app/features/experiences/types.go
package experiences

import (
	"strings"
	"time"

	"github.com/robilprogramer/portofolio-sub001/internal/app/system/dates"
	"github.com/robilprogramer/portofolio-sub001/internal/app/system/htmlsanitize"
	"github.com/robilprogramer/portofolio-sub001/internal/app/system/normalize"
	"github.com/robilprogramer/portofolio-sub001/internal/domain/models"
)

type createInput struct {
	Company     string `json:"company"`
	Position    string `json:"position"`
	Location    string `json:"location"`
	Description string `json:"description"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	IsCurrent   bool   `json:"is_current"`
	IsPublished *bool  `json:"is_published"`
	Order       int    `json:"order"`

	start time.Time
	end   *time.Time
}

// Validate parses dates as a side effect so toModel never re-parses.
func (in *createInput) Validate() map[string]string {
	errs := make(map[string]string)
	if strings.TrimSpace(in.Company) == "" {
		errs["company"] = "company is required"
	}
	if strings.TrimSpace(in.Position) == "" {
		errs["position"] = "position is required"
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

func (in *createInput) toModel() models.Experience {
	published := true
	if in.IsPublished != nil {
		published = *in.IsPublished
	}
	return models.Experience{
		Company:     normalize.Name(in.Company),
		Position:    normalize.Name(in.Position),
		Location:    strings.TrimSpace(in.Location),
		Description: htmlsanitize.Content(in.Description),
		StartDate:   in.start,
		EndDate:     in.end,
		IsCurrent:   in.IsCurrent,
		IsPublished: published,
		Order:       in.Order,
	}
}

type updateInput struct {
	Company     *string `json:"company"`
	Position    *string `json:"position"`
	Location    *string `json:"location"`
	Description *string `json:"description"`
	StartDate   *string `json:"start_date"`
	EndDate     *string `json:"end_date"`
	IsCurrent   *bool   `json:"is_current"`
	IsPublished *bool   `json:"is_published"`
	Order       *int    `json:"order"`

	start *time.Time
	end   *time.Time
}

// Validate parses dates as a side effect, mirroring createInput.
func (in *updateInput) Validate() map[string]string {
	errs := make(map[string]string)
	if in.Company != nil && strings.TrimSpace(*in.Company) == "" {
		errs["company"] = "company cannot be empty"
	}
	if in.Position != nil && strings.TrimSpace(*in.Position) == "" {
		errs["position"] = "position cannot be empty"
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

// changes builds the column change set. Marking an entry current clears
// its end date.
func (in *updateInput) changes() map[string]any {
	ch := make(map[string]any)
	if in.Company != nil {
		ch["company"] = normalize.Name(*in.Company)
	}
	if in.Position != nil {
		ch["position"] = normalize.Name(*in.Position)
	}
	if in.Location != nil {
		ch["location"] = strings.TrimSpace(*in.Location)
	}
	if in.Description != nil {
		ch["description"] = htmlsanitize.Content(*in.Description)
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
	if in.IsPublished != nil {
		ch["is_published"] = *in.IsPublished
	}
	if in.Order != nil {
		ch["display_order"] = *in.Order
	}
	return ch
}
