package source

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kazi-engine/internal/domain"
)

func doc(t *testing.T, html string) *goquery.Document {
	t.Helper()
	d, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return d
}

func TestOYKSearchURL(t *testing.T) {
	b := NewOYK()
	assert.Equal(t, "https://opportunitiesforyoungkenyans.co.ke/?s=data+science", b.SearchURL("data science", 1))
	assert.Equal(t, "https://opportunitiesforyoungkenyans.co.ke/?paged=2&s=data+science", b.SearchURL("data science", 2))
}

func TestOYKParseListing(t *testing.T) {
	b := NewOYK()
	d := doc(t, `
<article>
  <h2 class="entry-title"><a href="/2026/01/safaricom-hiring-data-scientist/">Safaricom Hiring Data Scientist</a></h2>
  <time datetime="2026-01-15T08:00:00Z">Jan 15</time>
</article>
<article>
  <h2 class="entry-title"><a href="https://other.example/post">Photo Gallery From Our Event</a></h2>
</article>
<article>
  <h3><a href="/2026/01/kcb-hiring-backend-engineer/">KCB Hiring Backend Engineer</a></h3>
</article>
<article>
  <h2 class="entry-title"><a href="">Missing Link</a></h2>
</article>`)

	recs := b.ParseListing(d)
	require.Len(t, recs, 2)

	assert.Equal(t, "Safaricom Hiring Data Scientist", recs[0].Title)
	assert.Equal(t, "https://opportunitiesforyoungkenyans.co.ke/2026/01/safaricom-hiring-data-scientist/", recs[0].URL)
	require.NotNil(t, recs[0].PostedAt)
	assert.Equal(t, 2026, recs[0].PostedAt.Year())

	assert.Equal(t, "KCB Hiring Backend Engineer", recs[1].Title)
}

func TestOYKParseDetail(t *testing.T) {
	b := NewOYK()
	d := doc(t, `
<article>
  <div class="entry-content">
    <p>We need   3-5 years experience.</p>
    <p>Apply in Nairobi.</p>
  </div>
</article>`)

	rec := domain.RawJobRecord{Title: "x", URL: "https://x"}
	b.ParseDetail(d, &rec)
	assert.Equal(t, "We need 3-5 years experience. Apply in Nairobi.", rec.Description)
}

func TestOYKParseDetailNoContent(t *testing.T) {
	b := NewOYK()
	rec := domain.RawJobRecord{Title: "x", URL: "https://x"}
	b.ParseDetail(doc(t, `<p>nothing here</p>`), &rec)
	assert.Empty(t, rec.Description)
}

func TestBrighterMondaySearchURL(t *testing.T) {
	b := NewBrighterMonday()
	assert.Equal(t, "https://www.brightermonday.co.ke/jobs?q=software+engineer", b.SearchURL("software engineer", 1))
}

func TestBrighterMondayParseListing(t *testing.T) {
	b := NewBrighterMonday()
	d := doc(t, `
<div class="search-result">
  <h3><a href="/jobs/backend-engineer-123">Backend Engineer</a></h3>
  <span class="company-name">Twiga Foods</span>
  <span class="location">Nairobi</span>
  <span class="salary">KES 120,000 - 180,000</span>
</div>`)

	recs := b.ParseListing(d)
	require.Len(t, recs, 1)

	rec := recs[0]
	assert.Equal(t, "Twiga Foods - Backend Engineer", rec.Title)
	assert.Equal(t, "https://www.brightermonday.co.ke/jobs/backend-engineer-123", rec.URL)
	assert.Equal(t, "Nairobi", rec.Location)
	assert.Equal(t, "KES 120,000 - 180,000", rec.SalaryText)
}
