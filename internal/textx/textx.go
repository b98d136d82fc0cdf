// Package textx holds small pure helpers for deriving article metadata from
// rich-text content.
package textx

import (
	"regexp"
	"strings"
)

// wordsPerMinute matches the reading speed the platform advertises.
const wordsPerMinute = 200

var tagPattern = regexp.MustCompile(`<[^>]*>`)

// StripTags removes markup tags, leaving the plain text.
func StripTags(content string) string {
	return tagPattern.ReplaceAllString(content, "")
}

// Excerpt returns the first max characters of the tag-stripped content with
// a trailing ellipsis.
func Excerpt(content string, max int) string {
	text := StripTags(content)
	if len(text) > max {
		text = text[:max]
	}
	return text + "..."
}

// ReadTime estimates reading time in whole minutes, rounding up.
func ReadTime(content string) int {
	words := len(strings.Fields(StripTags(content)))
	minutes := (words + wordsPerMinute - 1) / wordsPerMinute
	return minutes
}
