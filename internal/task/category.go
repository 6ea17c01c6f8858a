package task

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// hashtagPattern matches "#" followed by one or more ASCII word characters.
var hashtagPattern = regexp.MustCompile(`#(\w+)`)

// CategoryFromText returns the first #tag in text, lowercased, or "" when there is none.
// The tag is not removed from text.
func CategoryFromText(text string) string {
	m := hashtagPattern.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	return strings.ToLower(m[1])
}

// NormalizeCategory trims and lowercases a user-supplied category.
func NormalizeCategory(category string) string {
	return strings.ToLower(strings.TrimSpace(category))
}

// CategoryLabel capitalizes the first letter for display.
func CategoryLabel(category string) string {
	r, size := utf8.DecodeRuneInString(category)
	if r == utf8.RuneError {
		return category
	}
	return string(unicode.ToUpper(r)) + category[size:]
}
