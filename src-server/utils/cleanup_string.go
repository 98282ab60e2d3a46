package utils

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// CleanupSummary normalizes a user-supplied event summary: collapses
// whitespace runs, drops a trailing period, uppercases the first letter.
func CleanupSummary(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	s = strings.TrimSuffix(s, ".")
	if s == "" {
		return s
	}
	first, size := utf8.DecodeRuneInString(s)
	return cases.Upper(language.English).String(string(first)) + s[size:]
}
