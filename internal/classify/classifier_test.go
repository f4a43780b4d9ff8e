package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kazi-engine/internal/domain"
	"kazi-engine/internal/patterns"
)

func testLibrary(t *testing.T) *patterns.Library {
	t.Helper()
	lib, err := patterns.Default()
	require.NoError(t, err)
	return lib
}

func TestJobDomainTrustedHint(t *testing.T) {
	lib := testLibrary(t)

	// A trusted hint wins even when the title says otherwise.
	got := JobDomain(lib, "Network Administrator", string(domain.DataScience))
	assert.Equal(t, domain.DataScience, got)
}

func TestJobDomainNetworkHintNotTrusted(t *testing.T) {
	lib := testLibrary(t)

	// network_systems hints fall through to the keyword scan.
	got := JobDomain(lib, "Data Analyst", string(domain.NetworkSystems))
	assert.Equal(t, domain.DataScience, got)
}

func TestJobDomainKeywordOrder(t *testing.T) {
	lib := testLibrary(t)

	cases := []struct {
		title string
		want  domain.Domain
	}{
		{"Senior Data Scientist", domain.DataScience},
		{"Machine Learning Engineer", domain.DataScience},
		{"Frontend Developer", domain.WebDev},
		{"Security Analyst", domain.CyberSecurity},
		{"Network Engineer", domain.NetworkSystems},
		{"ICT Officer", domain.NetworkSystems},
		{"Accountant", domain.Other},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, JobDomain(lib, c.title, ""), "title=%q", c.title)
	}
}

func TestJobDomainFirstListWins(t *testing.T) {
	lib := testLibrary(t)

	// "data scientist" (data_science list) outranks "developer" (web_dev
	// list) because lists are scanned in order.
	got := JobDomain(lib, "Data Scientist / Developer", "")
	assert.Equal(t, domain.DataScience, got)
}

func TestCareerTrack(t *testing.T) {
	lib := testLibrary(t)

	assert.Equal(t, string(domain.WebDev), CareerTrack(lib, "Full Stack Web Developer", ""))
	assert.Equal(t, string(domain.Other), CareerTrack(lib, "Receptionist", "front desk duties"))
}

func TestBySimilarityTieKeepsEarlierTrack(t *testing.T) {
	lib := testLibrary(t)

	// No text at all: every track scores zero, answer stays "other".
	assert.Equal(t, string(domain.Other), BySimilarity(lib, "office administration"))
}

func TestTrackOrSimilarFallsBack(t *testing.T) {
	lib := testLibrary(t)

	// "security" alone misses the career-track phrases but scores in the
	// similarity pass via the cyber keyword tokens.
	got := TrackOrSimilar(lib, "Head of Security Operations", "security monitoring")
	assert.Equal(t, string(domain.CyberSecurity), got)
}
