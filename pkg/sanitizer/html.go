// Package sanitizer cleans untrusted text before it is turned into a slug.
package sanitizer

import (
	"html"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	strictPolicy *bluemonday.Policy
	initOnce     sync.Once
)

// StripHTML removes all HTML elements from s and decodes entities, leaving
// plain text. Script and style contents are dropped entirely.
//
//	sanitizer.StripHTML("<h1>Fish &amp; Chips</h1>") // "Fish & Chips"
func StripHTML(s string) string {
	initOnce.Do(func() {
		strictPolicy = bluemonday.StrictPolicy()
	})
	return html.UnescapeString(strictPolicy.Sanitize(s))
}
