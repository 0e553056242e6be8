package domain

import (
	"strings"
)

// NormalizeText prepares a word for comparison:
//   - trims leading/trailing whitespace
//   - converts to lowercase
//   - collapses inner whitespace runs (spaces, tabs, newlines) into one space
//
// Diacritics, hyphens, and apostrophes are preserved.
func NormalizeText(text string) string {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return ""
	}
	return strings.ToLower(strings.Join(fields, " "))
}

// CleanWord trims the text read from a page element and collapses inner
// whitespace, keeping the original casing for display and lookup.
func CleanWord(text string) string {
	return strings.Join(strings.Fields(text), " ")
}
