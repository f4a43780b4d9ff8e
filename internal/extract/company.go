package extract

import (
	"regexp"
	"strings"
	"unicode"

	"kazi-engine/internal/patterns"
)

// UnknownCompany is the sentinel for an unresolvable company name.
const UnknownCompany = "Unknown"

// Kenyan boards post titles as "[COMPANY] Hiring [JOB TITLE]".
var hiringRe = regexp.MustCompile(`(?i)^(.+?)\s+hiring\s+(.+)$`)

// TitleSplit is one strategy's answer: a company plus the leftover title.
type TitleSplit struct {
	Company string
	Title   string
}

type splitStrategy func(lib *patterns.Library, title string) (TitleSplit, bool)

// Ordered; first strategy that answers wins.
var splitStrategies = []splitStrategy{
	splitOnHiring,
	splitOnDash,
	scanKnownAliases,
}

// CompanyFromTitle splits a combined posting title into (company, job title).
// Falls through the strategy chain; no match yields ("Unknown", title).
func CompanyFromTitle(lib *patterns.Library, title string) (company, jobTitle string) {
	title = strings.TrimSpace(title)
	if title == "" {
		return UnknownCompany, ""
	}

	for _, strat := range splitStrategies {
		if sp, ok := strat(lib, title); ok {
			return sp.Company, sp.Title
		}
	}
	return UnknownCompany, title
}

func splitOnHiring(lib *patterns.Library, title string) (TitleSplit, bool) {
	m := hiringRe.FindStringSubmatch(title)
	if m == nil {
		return TitleSplit{}, false
	}

	companyRaw := strings.TrimSpace(m[1])
	jobTitle := strings.TrimSpace(m[2])

	if len(companyRaw) < 2 || !containsLetter(companyRaw) {
		return TitleSplit{}, false
	}
	return TitleSplit{Company: CanonicalCompany(lib, companyRaw), Title: jobTitle}, true
}

// "Data Scientist - Equity Bank": the segment whose canonicalization changes
// it is the company, the rest rejoined is the title.
func splitOnDash(lib *patterns.Library, title string) (TitleSplit, bool) {
	if !strings.Contains(title, " - ") {
		return TitleSplit{}, false
	}

	parts := strings.Split(title, " - ")
	for _, part := range parts {
		part = strings.TrimSpace(part)
		canonical := CanonicalCompany(lib, part)
		if canonical == part {
			continue
		}
		var rest []string
		for _, p := range parts {
			if strings.TrimSpace(p) != part {
				rest = append(rest, strings.TrimSpace(p))
			}
		}
		return TitleSplit{Company: canonical, Title: strings.Join(rest, " - ")}, true
	}
	return TitleSplit{}, false
}

// Last resort: any known alias appearing anywhere in the title. The full
// title stays as the job title since we cannot tell where the company ends.
func scanKnownAliases(lib *patterns.Library, title string) (TitleSplit, bool) {
	low := strings.ToLower(title)
	for _, a := range lib.CompanyAliases() {
		if strings.Contains(low, a.Alias) {
			return TitleSplit{Company: a.Canonical, Title: title}, true
		}
	}
	return TitleSplit{}, false
}

// CanonicalCompany maps a raw company string onto its canonical name.
// An alias matches when it contains the input or the input contains it,
// first table entry wins. Unmatched input comes back title-cased.
func CanonicalCompany(lib *patterns.Library, raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return UnknownCompany
	}

	low := strings.ToLower(raw)
	for _, a := range lib.CompanyAliases() {
		if strings.Contains(low, a.Alias) || strings.Contains(a.Alias, low) {
			return a.Canonical
		}
	}
	return titleCase(raw)
}

func containsLetter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}

// titleCase uppercases the first letter of every run of letters, so
// "i&m holdings" becomes "I&M Holdings".
func titleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			if prevLetter {
				b.WriteRune(unicode.ToLower(r))
			} else {
				b.WriteRune(unicode.ToUpper(r))
			}
			prevLetter = true
		} else {
			b.WriteRune(r)
			prevLetter = false
		}
	}
	return b.String()
}
