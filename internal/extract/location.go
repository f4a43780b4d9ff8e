package extract

import (
	"strings"

	"kazi-engine/internal/patterns"
)

// CanonicalLocation maps free-text location onto the fixed vocabulary.
// Remote/Hybrid win over city names; anything unresolvable falls back to
// the library default (Nairobi) rather than an Unknown sentinel, since the
// bulk of postings are Nairobi-based. That conflation is intentional.
func CanonicalLocation(lib *patterns.Library, raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return lib.DefaultLocation()
	}

	low := strings.ToLower(raw)
	if strings.Contains(low, "remote") {
		return "Remote"
	}
	if strings.Contains(low, "hybrid") {
		return "Hybrid"
	}

	for _, city := range lib.Cities() {
		if strings.Contains(low, city) {
			return titleCase(city)
		}
	}
	return lib.DefaultLocation()
}
