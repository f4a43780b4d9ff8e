package pipeline

import (
	"errors"
	"strings"
	"time"

	"kazi-engine/internal/classify"
	"kazi-engine/internal/domain"
	"kazi-engine/internal/extract"
	"kazi-engine/internal/patterns"
	"kazi-engine/internal/skills"
)

// ErrMissingURL marks a raw record without its dedupe key. This is the one
// per-record condition that rejects the record instead of degrading.
var ErrMissingURL = errors.New("raw record missing url")

// Normalizer turns raw postings into normalized records plus skill sets.
// It holds only read-only state and is safe to share across workers.
type Normalizer struct {
	lib    *patterns.Library
	skills *skills.Extractor
}

func NewNormalizer(lib *patterns.Library) *Normalizer {
	return &Normalizer{lib: lib, skills: skills.NewExtractor(lib)}
}

// Normalize produces the structured record for one raw posting. Every
// field degrades to its documented default; the only error is a missing
// URL, which rejects the record at the batch boundary.
func (n *Normalizer) Normalize(raw domain.RawJobRecord) (domain.NormalizedJobRecord, []domain.SkillTag, error) {
	if strings.TrimSpace(raw.URL) == "" {
		return domain.NormalizedJobRecord{}, nil, ErrMissingURL
	}

	title := extract.CleanText(raw.Title)
	description := extract.CleanText(raw.Description)

	company, jobTitle := extract.CompanyFromTitle(n.lib, title)

	salaryMin, salaryMax, currency := extract.SalaryRange(raw.SalaryText)
	if salaryMin == nil && salaryMax == nil {
		// No dedicated salary field; some boards bury pay mid-description.
		if snippet := extract.SalarySnippet(description); snippet != "" {
			if sMin, sMax, sCur := extract.SalaryRange(snippet); sMin != nil || sMax != nil {
				salaryMin, salaryMax, currency = sMin, sMax, sCur
			}
		}
	}

	expText := raw.ExperienceText
	if strings.TrimSpace(expText) == "" {
		expText = description
	}
	expMin, expMax := extract.ExperienceYears(expText)

	track := strings.TrimSpace(raw.CareerTrack)
	if track == "" {
		track = classify.TrackOrSimilar(n.lib, title, description)
	}

	rec := domain.NormalizedJobRecord{
		Company:        company,
		Title:          jobTitle,
		Location:       extract.CanonicalLocation(n.lib, raw.Location),
		Domain:         classify.JobDomain(n.lib, jobTitle, track),
		SalaryMin:      salaryMin,
		SalaryMax:      salaryMax,
		SalaryCurrency: currency,
		ExperienceMin:  expMin,
		ExperienceMax:  expMax,
		EducationLevel: extract.EducationLevel(description),
		IsInternship:   extract.IsInternship(title, description),
		Description:    description,
		Source:         raw.Source,
		URL:            strings.TrimSpace(raw.URL),
		PostedAt:       raw.PostedAt,
		ScrapedAt:      time.Now().UTC(),
	}

	tags := n.skills.Extract(title + " " + description)
	return rec, tags, nil
}
