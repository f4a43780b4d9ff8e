package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kazi-engine/internal/patterns"
)

func testLibrary(t *testing.T) *patterns.Library {
	t.Helper()
	lib, err := patterns.Default()
	require.NoError(t, err)
	return lib
}

func TestCompanyFromTitleHiringSplit(t *testing.T) {
	lib := testLibrary(t)

	company, title := CompanyFromTitle(lib, "Safaricom Hiring Data Scientist")
	assert.Equal(t, "Safaricom PLC", company)
	assert.Equal(t, "Data Scientist", title)
}

func TestCompanyFromTitleHiringUnknownCompany(t *testing.T) {
	lib := testLibrary(t)

	company, title := CompanyFromTitle(lib, "Acme Widgets Hiring Backend Engineer")
	assert.Equal(t, "Acme Widgets", company)
	assert.Equal(t, "Backend Engineer", title)
}

func TestCompanyFromTitleDashSplit(t *testing.T) {
	lib := testLibrary(t)

	company, title := CompanyFromTitle(lib, "Data Scientist - Equity Bank")
	assert.Equal(t, "Equity Bank Kenya", company)
	assert.Equal(t, "Data Scientist", title)
}

func TestCompanyFromTitleAliasScanKeepsFullTitle(t *testing.T) {
	lib := testLibrary(t)

	company, title := CompanyFromTitle(lib, "Senior Network Engineer at KCB")
	assert.Equal(t, "KCB Bank Kenya", company)
	assert.Equal(t, "Senior Network Engineer at KCB", title)
}

func TestCompanyFromTitleNoMatch(t *testing.T) {
	lib := testLibrary(t)

	company, title := CompanyFromTitle(lib, "Head Chef Needed Urgently")
	assert.Equal(t, UnknownCompany, company)
	assert.Equal(t, "Head Chef Needed Urgently", title)
}

func TestCompanyFromTitleRejectsShortOrNumericCompany(t *testing.T) {
	lib := testLibrary(t)

	// "12" fails the letter check, so the hiring split is skipped entirely.
	company, title := CompanyFromTitle(lib, "12 Hiring Engineer")
	assert.Equal(t, UnknownCompany, company)
	assert.Equal(t, "12 Hiring Engineer", title)
}

func TestCompanyFromTitleEmpty(t *testing.T) {
	lib := testLibrary(t)

	company, title := CompanyFromTitle(lib, "   ")
	assert.Equal(t, UnknownCompany, company)
	assert.Equal(t, "", title)
}

func TestCanonicalCompanyBidirectionalMatch(t *testing.T) {
	lib := testLibrary(t)

	// Input shorter than the alias still resolves.
	assert.Equal(t, "Equity Bank Kenya", CanonicalCompany(lib, "equity"))
	// Input longer than the alias resolves too.
	assert.Equal(t, "I&M Bank", CanonicalCompany(lib, "I&M Holdings"))
}

func TestCanonicalCompanyFallbackTitleCase(t *testing.T) {
	lib := testLibrary(t)

	assert.Equal(t, "Acme Widgets Ltd", CanonicalCompany(lib, "acme widgets ltd"))
	assert.Equal(t, UnknownCompany, CanonicalCompany(lib, ""))
}
