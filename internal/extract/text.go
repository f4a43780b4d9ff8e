package extract

import "strings"

// CleanText collapses whitespace runs to single spaces and trims the ends.
// Empty or whitespace-only input yields "", never an error.
func CleanText(s string) string {
	s = strings.ReplaceAll(s, "\u00a0", " ")
	s = strings.Join(strings.Fields(s), " ")
	return strings.TrimSpace(s)
}
