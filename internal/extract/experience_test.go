package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExperienceYearsRange(t *testing.T) {
	min, max := ExperienceYears("3-5 years of experience required")
	require.NotNil(t, min)
	require.NotNil(t, max)
	assert.Equal(t, 3, *min)
	assert.Equal(t, 5, *max)
}

func TestExperienceYearsSingle(t *testing.T) {
	min, max := ExperienceYears("At least 5 years in a similar role")
	require.NotNil(t, min)
	assert.Equal(t, 5, *min)
	assert.Nil(t, max)
}

func TestExperienceYearsPlusSuffix(t *testing.T) {
	min, max := ExperienceYears("5+ years experience")
	require.NotNil(t, min)
	assert.Equal(t, 5, *min)
	assert.Nil(t, max)

	min, max = ExperienceYears("10 + yrs")
	require.NotNil(t, min)
	assert.Equal(t, 10, *min)
	assert.Nil(t, max)
}

func TestExperienceYearsAbbreviated(t *testing.T) {
	min, _ := ExperienceYears("2 yrs minimum")
	require.NotNil(t, min)
	assert.Equal(t, 2, *min)
}

func TestExperienceYearsCaseInsensitive(t *testing.T) {
	min, max := ExperienceYears("4 - 6 YEARS")
	require.NotNil(t, min)
	require.NotNil(t, max)
	assert.Equal(t, 4, *min)
	assert.Equal(t, 6, *max)
}

func TestExperienceYearsNoMatch(t *testing.T) {
	min, max := ExperienceYears("fresh graduates welcome")
	assert.Nil(t, min)
	assert.Nil(t, max)

	min, max = ExperienceYears("")
	assert.Nil(t, min)
	assert.Nil(t, max)
}

func TestExperienceYearsFirstMatchWins(t *testing.T) {
	min, max := ExperienceYears("2 years preferred, 5 years ideal")
	require.NotNil(t, min)
	assert.Equal(t, 2, *min)
	assert.Nil(t, max)
}
