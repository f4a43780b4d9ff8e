package extract

import "strings"

// IsInternship reports whether the combined title+description looks like an
// internship posting. Substring matching is deliberately unbounded, so
// "internal" also hits; tightening this would shift the analytics.
func IsInternship(title, description string) bool {
	text := strings.ToLower(title + " " + description)
	return strings.Contains(text, "intern") ||
		strings.Contains(text, "trainee") ||
		strings.Contains(text, "apprentice")
}
