// internal/app/system/dates/dates.go

// Package dates parses the date fields accepted by the timeline APIs
// (experience, education, certificates).
package dates

import (
	"errors"
	"time"
)

// ErrBadFormat is returned for values in neither accepted layout.
var ErrBadFormat = errors.New("date must be YYYY-MM-DD or RFC 3339")

// Parse accepts a calendar date ("2006-01-02") or a full RFC 3339
// timestamp. Calendar dates resolve to midnight UTC.
func Parse(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Time{}, ErrBadFormat
}
