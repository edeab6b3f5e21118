package sanitizer

import (
	"html"
	"regexp"
	"strings"
)

var (
	dotRegex        = regexp.MustCompile(`\.{2,}`)
	whitespaceRegex = regexp.MustCompile(`\s+`)
	htmlTagRegex    = regexp.MustCompile(`<[^>]*>`)
)

// Trim removes leading and trailing whitespace.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// TrimToLower trims whitespace and lowercases the result.
func TrimToLower(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// RemoveExtraWhitespace collapses runs of whitespace into single spaces.
func RemoveExtraWhitespace(s string) string {
	return whitespaceRegex.ReplaceAllString(strings.TrimSpace(s), " ")
}

// StripHTML removes HTML tags, keeping the inner text.
func StripHTML(s string) string {
	return htmlTagRegex.ReplaceAllString(s, "")
}

// EscapeHTML escapes characters with special meaning in HTML.
func EscapeHTML(s string) string {
	return html.EscapeString(s)
}

// PersonName normalizes a free-text display name: trims, collapses
// whitespace, strips markup and escapes what remains. The escaped form is
// what the name validator sees, so injected markup fails the letters-and-
// spaces shape check instead of being stored.
func PersonName(s string) string {
	return EscapeHTML(StripHTML(RemoveExtraWhitespace(s)))
}
