package domain

import "time"

// Domain is a coarse career-market category.
type Domain string

const (
	DataScience    Domain = "data_science"
	WebDev         Domain = "web_dev"
	CyberSecurity  Domain = "cyber_security"
	NetworkSystems Domain = "network_systems"
	General        Domain = "general" // soft skills only, never a job domain
	Other          Domain = "other"
)

// RawJobRecord is a posting exactly as a source handed it over.
// URL is the natural dedupe key; everything else is free text.
type RawJobRecord struct {
	Title          string
	Description    string
	Location       string
	SalaryText     string
	ExperienceText string
	CareerTrack    string // optional hint from the source query, may be empty
	Source         string
	URL            string
	PostedAt       *time.Time
}

// NormalizedJobRecord is produced once per raw record and not mutated after.
// Every field has a defined default; extraction degrades, it never errors.
type NormalizedJobRecord struct {
	Company        string // "Unknown" when unresolvable
	Title          string // company substring stripped when detectable
	Location       string // fixed vocabulary, "Nairobi" fallback
	Domain         Domain
	SalaryMin      *float64
	SalaryMax      *float64
	SalaryCurrency string // KES or USD
	ExperienceMin  *int
	ExperienceMax  *int
	EducationLevel string // "Not Specified" fallback
	IsInternship   bool
	Description    string
	Source         string
	URL            string
	PostedAt       *time.Time
	ScrapedAt      time.Time
}

// SkillTag is one recognized skill on a job. Name is always the canonical
// spelling; a job's skill set is unique by Name.
type SkillTag struct {
	Name     string
	Domain   Domain
	Category string
}
