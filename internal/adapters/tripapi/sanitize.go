package tripapi

import (
	"regexp"
	"strings"
)

var markupTag = regexp.MustCompile(`<[^>]*>`)

// stripMarkup reduces backend instruction HTML to plain display text:
// tags removed, non-breaking spaces unified, whitespace collapsed. Total
// over arbitrary input and idempotent, so already-clean text passes
// through unchanged.
func stripMarkup(s string) string {
	s = markupTag.ReplaceAllString(s, " ")
	s = strings.ReplaceAll(s, "&nbsp;", " ")
	return strings.Join(strings.Fields(s), " ")
}
