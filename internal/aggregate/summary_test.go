package aggregate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kazi-engine/internal/domain"
)

func intPtr(v int) *int { return &v }

func tag(name, category string) domain.SkillTag {
	return domain.SkillTag{Name: name, Domain: domain.DataScience, Category: category}
}

func TestSummarizeCountsAndPct(t *testing.T) {
	jobs := []JobSkills{
		{JobID: 1, ExpMin: intPtr(2), ExpMax: intPtr(4), Skills: []domain.SkillTag{tag("Python", "languages"), tag("SQL", "languages")}},
		{JobID: 2, Skills: []domain.SkillTag{tag("Python", "languages")}},
	}

	rows := Summarize(jobs, 4)
	require.Len(t, rows, 2)

	// Sorted by job count descending.
	assert.Equal(t, "Python", rows[0].Skill)
	assert.Equal(t, 2, rows[0].JobCount)
	assert.Equal(t, 50.0, rows[0].PctOfTotal)

	assert.Equal(t, "SQL", rows[1].Skill)
	assert.Equal(t, 1, rows[1].JobCount)
	assert.Equal(t, 25.0, rows[1].PctOfTotal)
}

func TestSummarizeExperienceExcludesNulls(t *testing.T) {
	jobs := []JobSkills{
		{JobID: 1, ExpMin: intPtr(2), ExpMax: intPtr(4), Skills: []domain.SkillTag{tag("Python", "languages")}},
		{JobID: 2, Skills: []domain.SkillTag{tag("Python", "languages")}}, // no exp data
		{JobID: 3, ExpMin: intPtr(5), Skills: []domain.SkillTag{tag("Python", "languages")}},
	}

	rows := Summarize(jobs, 3)
	require.Len(t, rows, 1)

	// Mean over jobs that actually had a value: (2+5)/2, max only from job 1.
	require.NotNil(t, rows[0].AvgExpMin)
	assert.Equal(t, 3.5, *rows[0].AvgExpMin)
	require.NotNil(t, rows[0].AvgExpMax)
	assert.Equal(t, 4.0, *rows[0].AvgExpMax)
}

func TestSummarizeNoExperienceAnywhere(t *testing.T) {
	jobs := []JobSkills{
		{JobID: 1, Skills: []domain.SkillTag{tag("Python", "languages")}},
	}
	rows := Summarize(jobs, 1)
	require.Len(t, rows, 1)
	assert.Nil(t, rows[0].AvgExpMin)
	assert.Nil(t, rows[0].AvgExpMax)
}

func TestSummarizeTieBreakByName(t *testing.T) {
	jobs := []JobSkills{
		{JobID: 1, Skills: []domain.SkillTag{tag("Zebra", "languages"), tag("Alpha", "languages")}},
	}
	rows := Summarize(jobs, 1)
	require.Len(t, rows, 2)
	assert.Equal(t, "Alpha", rows[0].Skill)
	assert.Equal(t, "Zebra", rows[1].Skill)
}

func TestSummarizeEmpty(t *testing.T) {
	assert.Empty(t, Summarize(nil, 0))
}
