// internal/app/system/htmlsanitize/htmlsanitize.go

// Package htmlsanitize strips unsafe markup from rich-text content
// before it is persisted. Post content, project descriptions, and
// testimonial messages are authored in the admin editor as HTML and
// served raw to the public frontend, so sanitization happens on write.
package htmlsanitize

import "github.com/microcosm-cc/bluemonday"

var ugc = bluemonday.UGCPolicy()

// Content sanitizes rich-text HTML with the UGC policy (common
// formatting tags, links with rel=nofollow, no scripts or event
// handlers).
func Content(html string) string {
	return ugc.Sanitize(html)
}

var strict = bluemonday.StrictPolicy()

// Plain strips all markup, leaving text only. Used for fields that are
// rendered into attributes or plain-text contexts (titles, names).
func Plain(s string) string {
	return strict.Sanitize(s)
}
