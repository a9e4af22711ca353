// internal/app/system/search/search.go
package search

import "strings"

// likeEscaper neutralizes LIKE metacharacters in user-supplied search
// text. Backslash is the ESCAPE character the stores declare.
var likeEscaper = strings.NewReplacer(
	`\`, `\\`,
	`%`, `\%`,
	`_`, `\_`,
)

// LikePattern turns free-form search text into a substring LIKE pattern.
// Returns "" when the trimmed query is empty, which callers treat as
// "no search constraint".
func LikePattern(q string) string {
	q = strings.TrimSpace(q)
	if q == "" {
		return ""
	}
	return "%" + likeEscaper.Replace(q) + "%"
}
