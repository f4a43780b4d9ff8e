package source

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"kazi-engine/internal/domain"
)

// BrighterMonday scrapes brightermonday.co.ke search results. Cards carry
// company, location and sometimes salary right on the listing page.
type BrighterMonday struct {
	BaseURL string
}

func NewBrighterMonday() *BrighterMonday {
	return &BrighterMonday{BaseURL: "https://www.brightermonday.co.ke"}
}

func (b *BrighterMonday) Name() string { return "brightermonday" }

func (b *BrighterMonday) SearchURL(query string, page int) string {
	q := url.Values{"q": {query}}
	if page > 1 {
		q.Set("page", fmt.Sprint(page))
	}
	return b.BaseURL + "/jobs?" + q.Encode()
}

func (b *BrighterMonday) ParseListing(doc *goquery.Document) []domain.RawJobRecord {
	var out []domain.RawJobRecord

	doc.Find(`article.mx-5, div.search-result, div[class*="JobCard"], div.job-card`).Each(func(_ int, card *goquery.Selection) {
		link := card.Find(`h3 a, h2 a, .job-title a, a[href*="/jobs/"]`).First()
		title := strings.TrimSpace(link.Text())
		href, _ := link.Attr("href")
		if title == "" || href == "" {
			return
		}

		rec := domain.RawJobRecord{
			Title:      title,
			URL:        b.absURL(href),
			Location:   strings.TrimSpace(card.Find(`.location, span[class*="location"]`).First().Text()),
			SalaryText: strings.TrimSpace(card.Find(`.salary, span[class*="salary"]`).First().Text()),
		}

		// Card title usually lacks the company; stitch it in so the
		// company split strategies have something to work with.
		if company := strings.TrimSpace(card.Find(`.company-name, span[class*="company"]`).First().Text()); company != "" &&
			!strings.Contains(strings.ToLower(title), strings.ToLower(company)) {
			rec.Title = company + " - " + title
		}

		out = append(out, rec)
	})
	return out
}

func (b *BrighterMonday) ParseDetail(doc *goquery.Document, rec *domain.RawJobRecord) {
	desc := doc.Find(`div[class*="description"], .job-description, article`).First()
	if desc.Length() > 0 {
		rec.Description = strings.Join(strings.Fields(desc.Text()), " ")
	}
	if rec.SalaryText == "" {
		rec.SalaryText = strings.TrimSpace(doc.Find(`span[class*="salary"], .salary`).First().Text())
	}
	if rec.Location == "" {
		rec.Location = strings.TrimSpace(doc.Find(`span[class*="location"], .location`).First().Text())
	}
}

func (b *BrighterMonday) absURL(href string) string {
	if strings.HasPrefix(href, "http") {
		return href
	}
	return b.BaseURL + href
}
