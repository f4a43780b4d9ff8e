package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSalaryRangeTwoNumbers(t *testing.T) {
	min, max, cur := SalaryRange("KES 50,000 - 80,000 per month")
	require.NotNil(t, min)
	require.NotNil(t, max)
	assert.Equal(t, 50000.0, *min)
	assert.Equal(t, 80000.0, *max)
	assert.Equal(t, "KES", cur)
}

func TestSalaryRangeOrderDoesNotMatter(t *testing.T) {
	min, max, _ := SalaryRange("between 80,000 and 50,000")
	require.NotNil(t, min)
	require.NotNil(t, max)
	assert.Equal(t, 50000.0, *min)
	assert.Equal(t, 80000.0, *max)
}

func TestSalaryRangeSingleNumberIsFloorOnly(t *testing.T) {
	min, max, _ := SalaryRange("from 120,000.50")
	require.NotNil(t, min)
	assert.Equal(t, 120000.5, *min)
	assert.Nil(t, max)
}

func TestSalaryRangeNoNumbers(t *testing.T) {
	min, max, cur := SalaryRange("Competitive salary")
	assert.Nil(t, min)
	assert.Nil(t, max)
	assert.Equal(t, "KES", cur)
}

func TestSalaryRangeEmpty(t *testing.T) {
	min, max, cur := SalaryRange("")
	assert.Nil(t, min)
	assert.Nil(t, max)
	assert.Equal(t, "KES", cur)
}

func TestSalarySnippet(t *testing.T) {
	got := SalarySnippet("Great role in Nairobi. Salary Ksh. 60,000 - 90,000 per month, benefits included.")
	assert.Equal(t, "Ksh. 60,000 - 90,000", got)

	min, max, cur := SalaryRange(got)
	require.NotNil(t, min)
	require.NotNil(t, max)
	assert.Equal(t, 60000.0, *min)
	assert.Equal(t, 90000.0, *max)
	assert.Equal(t, "KES", cur)
}

func TestSalarySnippetCaseAndPrefixVariants(t *testing.T) {
	assert.NotEmpty(t, SalarySnippet("pay: KES 120,000"))
	assert.NotEmpty(t, SalarySnippet("kshs 80,000 monthly"))
	assert.Empty(t, SalarySnippet("competitive remuneration"))
	assert.Empty(t, SalarySnippet(""))
}

func TestSalaryRangeUSD(t *testing.T) {
	_, _, cur := SalaryRange("$1,500 monthly")
	assert.Equal(t, "USD", cur)

	_, _, cur = SalaryRange("1500 USD")
	assert.Equal(t, "USD", cur)
}
