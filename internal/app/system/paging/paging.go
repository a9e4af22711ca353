// internal/app/system/paging/paging.go

// Package paging parses page/limit query parameters for list endpoints.
//
// All list endpoints use offset pagination: ?page=N&limit=M with page
// starting at 1. Invalid or missing values fall back to defaults rather
// than failing the request.
package paging

import (
	"net/http"
	"strconv"

	"github.com/dalemusser/waffle/pantry/query"
)

const (
	// DefaultLimit is the page size when the caller does not specify one.
	DefaultLimit = 10

	// MaxLimit caps the page size; larger requests are clamped, not rejected.
	MaxLimit = 100
)

// Page holds the parsed pagination window for one request.
type Page struct {
	Number int // 1-based page number
	Limit  int
}

// Offset returns the row offset for the window.
func (p Page) Offset() int {
	return (p.Number - 1) * p.Limit
}

// Parse extracts page and limit from the request query string.
// page defaults to 1, limit to DefaultLimit; limit is clamped to MaxLimit.
func Parse(r *http.Request) Page {
	p := Page{Number: 1, Limit: DefaultLimit}

	if s := query.Get(r, "page"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n >= 1 {
			p.Number = n
		}
	}
	if s := query.Get(r, "limit"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n >= 1 {
			p.Limit = n
		}
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	return p
}
