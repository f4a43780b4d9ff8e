package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kazi-engine/internal/domain"
	"kazi-engine/internal/extract"
	"kazi-engine/internal/patterns"
)

func testNormalizer(t *testing.T) *Normalizer {
	t.Helper()
	lib, err := patterns.Default()
	require.NoError(t, err)
	return NewNormalizer(lib)
}

func TestNormalizeFullRecord(t *testing.T) {
	n := testNormalizer(t)

	rec, tags, err := n.Normalize(domain.RawJobRecord{
		Title:       "Safaricom Hiring Data Scientist",
		Description: "Looking for 3-5 years experience with Python and SQL. Bachelor's degree required.",
		Location:    "Nairobi, Kenya",
		SalaryText:  "KES 150,000 - 250,000",
		URL:         "https://example.co.ke/jobs/1",
	})
	require.NoError(t, err)

	assert.Equal(t, "Safaricom PLC", rec.Company)
	assert.Equal(t, "Data Scientist", rec.Title)
	assert.Equal(t, "Nairobi", rec.Location)
	assert.Equal(t, domain.DataScience, rec.Domain)

	require.NotNil(t, rec.SalaryMin)
	assert.Equal(t, 150000.0, *rec.SalaryMin)
	require.NotNil(t, rec.SalaryMax)
	assert.Equal(t, 250000.0, *rec.SalaryMax)
	assert.Equal(t, "KES", rec.SalaryCurrency)

	require.NotNil(t, rec.ExperienceMin)
	assert.Equal(t, 3, *rec.ExperienceMin)
	require.NotNil(t, rec.ExperienceMax)
	assert.Equal(t, 5, *rec.ExperienceMax)

	assert.Equal(t, "Bachelor's", rec.EducationLevel)
	assert.False(t, rec.IsInternship)
	assert.False(t, rec.ScrapedAt.IsZero())

	var skillNames []string
	for _, tag := range tags {
		skillNames = append(skillNames, tag.Name)
	}
	assert.Contains(t, skillNames, "Python")
	assert.Contains(t, skillNames, "SQL")
}

func TestNormalizeDefaults(t *testing.T) {
	n := testNormalizer(t)

	rec, tags, err := n.Normalize(domain.RawJobRecord{
		Title: "Mystery Role",
		URL:   "https://example.co.ke/jobs/2",
	})
	require.NoError(t, err)

	assert.Equal(t, extract.UnknownCompany, rec.Company)
	assert.Equal(t, "Nairobi", rec.Location)
	assert.Equal(t, domain.Other, rec.Domain)
	assert.Nil(t, rec.SalaryMin)
	assert.Nil(t, rec.SalaryMax)
	assert.Equal(t, "KES", rec.SalaryCurrency)
	assert.Nil(t, rec.ExperienceMin)
	assert.Equal(t, extract.EducationNotSpecified, rec.EducationLevel)
	assert.Empty(t, tags)
}

func TestNormalizeMissingURL(t *testing.T) {
	n := testNormalizer(t)

	_, _, err := n.Normalize(domain.RawJobRecord{Title: "Engineer"})
	assert.ErrorIs(t, err, ErrMissingURL)

	_, _, err = n.Normalize(domain.RawJobRecord{Title: "Engineer", URL: "   "})
	assert.ErrorIs(t, err, ErrMissingURL)
}

func TestNormalizeExperienceFallsBackToDescription(t *testing.T) {
	n := testNormalizer(t)

	rec, _, err := n.Normalize(domain.RawJobRecord{
		Title:       "Backend Developer",
		Description: "Minimum 2 years experience with Go.",
		URL:         "https://example.co.ke/jobs/3",
	})
	require.NoError(t, err)
	require.NotNil(t, rec.ExperienceMin)
	assert.Equal(t, 2, *rec.ExperienceMin)
}

func TestNormalizeSalaryFallsBackToDescription(t *testing.T) {
	n := testNormalizer(t)

	rec, _, err := n.Normalize(domain.RawJobRecord{
		Title:       "Accountant",
		Description: "Exciting role. Salary Ksh. 60,000 - 90,000 per month.",
		URL:         "https://example.co.ke/jobs/5",
	})
	require.NoError(t, err)
	require.NotNil(t, rec.SalaryMin)
	assert.Equal(t, 60000.0, *rec.SalaryMin)
	require.NotNil(t, rec.SalaryMax)
	assert.Equal(t, 90000.0, *rec.SalaryMax)
	assert.Equal(t, "KES", rec.SalaryCurrency)
}

func TestNormalizeDedicatedSalaryWinsOverDescription(t *testing.T) {
	n := testNormalizer(t)

	rec, _, err := n.Normalize(domain.RawJobRecord{
		Title:       "Accountant",
		Description: "Previously advertised at Ksh 40,000.",
		SalaryText:  "KES 100,000",
		URL:         "https://example.co.ke/jobs/6",
	})
	require.NoError(t, err)
	require.NotNil(t, rec.SalaryMin)
	assert.Equal(t, 100000.0, *rec.SalaryMin)
}

func TestNormalizeTrustsCareerTrackHint(t *testing.T) {
	n := testNormalizer(t)

	rec, _, err := n.Normalize(domain.RawJobRecord{
		Title:       "Consultant",
		CareerTrack: string(domain.CyberSecurity),
		URL:         "https://example.co.ke/jobs/4",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.CyberSecurity, rec.Domain)
}
