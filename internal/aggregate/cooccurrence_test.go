package aggregate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kazi-engine/internal/domain"
)

func TestMakePairSorted(t *testing.T) {
	assert.Equal(t, MakePair("a", "b"), MakePair("b", "a"))
	assert.Equal(t, Pair{A: "a", B: "b"}, MakePair("b", "a"))
}

func TestCooccurrenceCountsAndPct(t *testing.T) {
	jobs := []JobSkills{
		{JobID: 1, Skills: []domain.SkillTag{tag("Python", "languages"), tag("SQL", "languages")}},
		{JobID: 2, Skills: []domain.SkillTag{tag("Python", "languages"), tag("SQL", "languages"), tag("Spark", "big_data")}},
		{JobID: 3, Skills: []domain.SkillTag{tag("Python", "languages")}},
	}

	rows := Cooccurrence(jobs, CoocOptions{})
	require.NotEmpty(t, rows)

	// Python+SQL co-occur twice; SQL appears in 2 jobs, so pct is 100.
	top := rows[0]
	assert.Equal(t, "Python", top.Skill1)
	assert.Equal(t, "SQL", top.Skill2)
	assert.Equal(t, 2, top.Count)
	assert.Equal(t, 100.0, top.Pct)

	// Every pair is emitted once, never mirrored.
	seen := map[Pair]bool{}
	for _, row := range rows {
		p := MakePair(row.Skill1, row.Skill2)
		assert.False(t, seen[p], "pair emitted twice: %v", p)
		seen[p] = true
		assert.LessOrEqual(t, row.Skill1, row.Skill2)
	}
}

func TestCooccurrenceTopNLimitsSkills(t *testing.T) {
	jobs := []JobSkills{
		{JobID: 1, Skills: []domain.SkillTag{tag("A", "languages"), tag("B", "languages"), tag("C", "languages")}},
		{JobID: 2, Skills: []domain.SkillTag{tag("A", "languages"), tag("B", "languages")}},
	}

	// Only the two most frequent skills participate.
	rows := Cooccurrence(jobs, CoocOptions{TopN: 2})
	require.Len(t, rows, 1)
	assert.Equal(t, "A", rows[0].Skill1)
	assert.Equal(t, "B", rows[0].Skill2)
}

func TestCooccurrenceHardSkillsFilter(t *testing.T) {
	soft := domain.SkillTag{Name: "communication", Domain: domain.General, Category: "soft_skills"}
	generic := domain.SkillTag{Name: "agile", Domain: domain.WebDev, Category: "concepts"}
	hard := tag("Python", "languages")
	concept := tag("machine learning", "concepts")

	jobs := []JobSkills{
		{JobID: 1, Skills: []domain.SkillTag{soft, generic, hard, concept}},
		{JobID: 2, Skills: []domain.SkillTag{soft, generic, hard, concept}},
	}

	rows := Cooccurrence(jobs, CoocOptions{HardSkillsOnly: true})
	require.Len(t, rows, 1)

	// Technical concept survives, soft skill and generic concept do not.
	assert.Equal(t, "Python", rows[0].Skill1)
	assert.Equal(t, "machine learning", rows[0].Skill2)
}

func TestCooccurrenceDuplicateTagsCountOnce(t *testing.T) {
	jobs := []JobSkills{
		{JobID: 1, Skills: []domain.SkillTag{tag("A", "languages"), tag("A", "languages"), tag("B", "languages")}},
	}
	rows := Cooccurrence(jobs, CoocOptions{})
	require.Len(t, rows, 1)
	assert.Equal(t, 1, rows[0].Count)
}

func TestCooccurrenceEmpty(t *testing.T) {
	assert.Empty(t, Cooccurrence(nil, CoocOptions{}))
}
