package patterns

import (
	"fmt"
	"strings"

	"kazi-engine/internal/domain"
)

// SkillEntry is one canonical skill with its domain and category tags.
type SkillEntry struct {
	Name     string
	Domain   domain.Domain
	Category string
}

// CompanyAlias maps a raw substring to a canonical company name.
// Order matters: overlapping aliases resolve to the first entry.
type CompanyAlias struct {
	Alias     string
	Canonical string
}

// Variant maps an alternate spelling to a canonical skill name.
type Variant struct {
	Raw       string
	Canonical string
}

// TrackKeywords is an ordered keyword list for one career domain.
type TrackKeywords struct {
	Track    domain.Domain
	Keywords []string
}

// Tables is the raw material a Library is built from.
type Tables struct {
	Skills          []SkillEntry
	Variants        []Variant
	CompanyAliases  []CompanyAlias
	Cities          []string
	DomainKeywords  []TrackKeywords // classifier lists, checked in order
	CareerTracks    []TrackKeywords // hint producer + similarity fallback
	DefaultLocation string
}

// Library is the read-only lookup state every extractor depends on.
// Built once at startup, safe to share across workers without locking.
type Library struct {
	skills         []SkillEntry
	skillByName    map[string]SkillEntry
	variants       []Variant
	companyAliases []CompanyAlias
	cities         []string
	domainKeywords []TrackKeywords
	careerTracks   []TrackKeywords
	defaultLoc     string
}

// New validates tables and builds a Library. A variant pointing at a skill
// missing from the dictionary is a configuration defect and fails here,
// never during extraction.
func New(t Tables) (*Library, error) {
	byName := make(map[string]SkillEntry, len(t.Skills))
	for _, s := range t.Skills {
		name := strings.TrimSpace(s.Name)
		if name == "" {
			return nil, fmt.Errorf("patterns: skill with empty name (domain=%s category=%s)", s.Domain, s.Category)
		}
		if prev, dup := byName[name]; dup {
			return nil, fmt.Errorf("patterns: skill %q listed twice (%s/%s and %s/%s)",
				name, prev.Domain, prev.Category, s.Domain, s.Category)
		}
		byName[name] = s
	}

	for _, v := range t.Variants {
		if strings.TrimSpace(v.Raw) == "" {
			return nil, fmt.Errorf("patterns: variant with empty raw spelling (canonical=%q)", v.Canonical)
		}
		if _, ok := byName[v.Canonical]; !ok {
			return nil, fmt.Errorf("patterns: variant %q maps to unknown skill %q", v.Raw, v.Canonical)
		}
	}

	for _, a := range t.CompanyAliases {
		if strings.TrimSpace(a.Alias) == "" || strings.TrimSpace(a.Canonical) == "" {
			return nil, fmt.Errorf("patterns: company alias with empty side (alias=%q canonical=%q)", a.Alias, a.Canonical)
		}
	}

	defaultLoc := t.DefaultLocation
	if defaultLoc == "" {
		defaultLoc = "Nairobi"
	}

	return &Library{
		skills:         t.Skills,
		skillByName:    byName,
		variants:       t.Variants,
		companyAliases: t.CompanyAliases,
		cities:         t.Cities,
		domainKeywords: t.DomainKeywords,
		careerTracks:   t.CareerTracks,
		defaultLoc:     defaultLoc,
	}, nil
}

// Default builds the Library from the built-in tables.
func Default() (*Library, error) {
	return New(BuiltinTables())
}

func (l *Library) Skills() []SkillEntry           { return l.skills }
func (l *Library) Variants() []Variant            { return l.variants }
func (l *Library) CompanyAliases() []CompanyAlias { return l.companyAliases }
func (l *Library) Cities() []string               { return l.cities }
func (l *Library) DomainKeywords() []TrackKeywords { return l.domainKeywords }
func (l *Library) CareerTracks() []TrackKeywords  { return l.careerTracks }
func (l *Library) DefaultLocation() string        { return l.defaultLoc }

// Skill looks up a canonical skill entry by exact name.
func (l *Library) Skill(name string) (SkillEntry, bool) {
	s, ok := l.skillByName[name]
	return s, ok
}
