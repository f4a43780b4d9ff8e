package skills

import (
	"regexp"
	"strings"

	"kazi-engine/internal/domain"
	"kazi-engine/internal/patterns"
)

type matcher struct {
	re        *regexp.Regexp
	canonical string
	dom       domain.Domain
	category  string
}

// Extractor scans text against compiled word-boundary patterns for every
// canonical skill and every known variant spelling. Built once, read-only
// afterwards, safe for concurrent use.
type Extractor struct {
	matchers []matcher
}

// NewExtractor compiles one case-insensitive pattern per skill and per
// variant. Variants record hits under their canonical name so two
// spellings of the same skill collapse to one tag.
func NewExtractor(lib *patterns.Library) *Extractor {
	var ms []matcher

	for _, s := range lib.Skills() {
		ms = append(ms, matcher{
			re:        compileSkill(s.Name),
			canonical: s.Name,
			dom:       s.Domain,
			category:  s.Category,
		})
	}

	for _, v := range lib.Variants() {
		if strings.EqualFold(v.Raw, v.Canonical) {
			continue // same spelling, the canonical pattern already covers it
		}
		s, ok := lib.Skill(v.Canonical)
		if !ok {
			continue // library construction already rejects this
		}
		ms = append(ms, matcher{
			re:        compileSkill(v.Raw),
			canonical: s.Name,
			dom:       s.Domain,
			category:  s.Category,
		})
	}

	return &Extractor{matchers: ms}
}

// compileSkill builds a word-boundary pattern. A ".js" suffix gets an
// optional dot so "Nodejs" and "Node.js" both match the same pattern.
func compileSkill(name string) *regexp.Regexp {
	esc := regexp.QuoteMeta(name)
	esc = strings.ReplaceAll(esc, `\.js`, `\.?js`)
	return regexp.MustCompile(`(?i)\b` + esc + `\b`)
}

// Extract returns the deduplicated skill set found in text. Output order
// is unspecified; callers needing determinism must sort.
func (e *Extractor) Extract(text string) []domain.SkillTag {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	found := make(map[string]domain.SkillTag)
	for _, m := range e.matchers {
		if _, seen := found[m.canonical]; seen {
			continue
		}
		if m.re.MatchString(text) {
			found[m.canonical] = domain.SkillTag{
				Name:     m.canonical,
				Domain:   m.dom,
				Category: m.category,
			}
		}
	}

	out := make([]domain.SkillTag, 0, len(found))
	for _, tag := range found {
		out = append(out, tag)
	}
	return out
}
