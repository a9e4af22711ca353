// internal/app/system/normalize/normalize.go

// Package normalize holds the canonical forms for stored string fields.
package normalize

import (
	"regexp"
	"strings"
)

// Email lowercases and trims an email address.
func Email(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Name trims surrounding whitespace but preserves case.
func Name(s string) string {
	return strings.TrimSpace(s)
}

var (
	slugInvalid = regexp.MustCompile(`[^a-z0-9]+`)
	slugDashes  = regexp.MustCompile(`-{2,}`)
)

// Slug converts an arbitrary title into a URL slug: lowercase,
// non-alphanumerics collapsed to single dashes, no leading/trailing dash.
// An explicit client-supplied slug passes through the same function, so
// lookups are always against the canonical form.
func Slug(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = slugInvalid.ReplaceAllString(s, "-")
	s = slugDashes.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
