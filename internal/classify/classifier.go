package classify

import (
	"strings"

	"kazi-engine/internal/domain"
	"kazi-engine/internal/patterns"
)

// Hints a source may pre-supply that we trust outright. network_systems is
// deliberately absent: sources only tag the three primary tracks reliably.
var trustedHints = map[string]domain.Domain{
	string(domain.DataScience):   domain.DataScience,
	string(domain.WebDev):        domain.WebDev,
	string(domain.CyberSecurity): domain.CyberSecurity,
}

// JobDomain classifies a title into a career domain. A trusted hint
// short-circuits; otherwise the library's keyword lists are scanned in
// order (data_science, web_dev, cyber_security, network_systems) and the
// first list with a substring hit wins.
func JobDomain(lib *patterns.Library, title, hint string) domain.Domain {
	if d, ok := trustedHints[hint]; ok {
		return d
	}

	low := strings.ToLower(title)
	for _, tk := range lib.DomainKeywords() {
		for _, kw := range tk.Keywords {
			if strings.Contains(low, kw) {
				return tk.Track
			}
		}
	}
	return domain.Other
}

// CareerTrack produces a track hint from title+description using the
// shorter career-track keyword lists, first substring hit wins.
func CareerTrack(lib *patterns.Library, title, description string) string {
	text := strings.ToLower(title + " " + description)
	for _, tk := range lib.CareerTracks() {
		for _, kw := range tk.Keywords {
			if strings.Contains(text, kw) {
				return string(tk.Track)
			}
		}
	}
	return string(domain.Other)
}

// BySimilarity scores each track by how many of its space-split keyword
// tokens appear in the text and returns the best. Ties keep the earlier
// track in library order; a zero total stays "other". Used only after the
// keyword pass produced "other".
func BySimilarity(lib *patterns.Library, text string) string {
	low := strings.ToLower(text)

	best := string(domain.Other)
	maxScore := 0

	for _, tk := range lib.CareerTracks() {
		tokens := strings.Fields(strings.ToLower(strings.Join(tk.Keywords, " ")))
		score := 0
		for _, tok := range tokens {
			if strings.Contains(low, tok) {
				score++
			}
		}
		if score > maxScore {
			maxScore = score
			best = string(tk.Track)
		}
	}
	return best
}

// TrackOrSimilar is the two-stage hint producer: keyword pass first, then
// the similarity fallback when that lands on "other".
func TrackOrSimilar(lib *patterns.Library, title, description string) string {
	track := CareerTrack(lib, title, description)
	if track == string(domain.Other) {
		track = BySimilarity(lib, title+" "+description)
	}
	return track
}
