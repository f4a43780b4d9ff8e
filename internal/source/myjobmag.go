package source

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"kazi-engine/internal/domain"
)

// MyJobMag scrapes myjobmag.co.ke. Search URLs are slug-based rather than
// query-string based, and cards often carry experience text where other
// boards show salary.
type MyJobMag struct {
	BaseURL string
}

func NewMyJobMag() *MyJobMag {
	return &MyJobMag{BaseURL: "https://www.myjobmag.co.ke"}
}

func (m *MyJobMag) Name() string { return "myjobmag" }

func (m *MyJobMag) SearchURL(query string, page int) string {
	slug := strings.ToLower(strings.ReplaceAll(query, " ", "-"))
	if page > 1 {
		return fmt.Sprintf("%s/jobs/search/%s?page=%d", m.BaseURL, slug, page)
	}
	return m.BaseURL + "/jobs/search/" + slug
}

func (m *MyJobMag) ParseListing(doc *goquery.Document) []domain.RawJobRecord {
	var out []domain.RawJobRecord

	doc.Find("div.job-list-item, article.job-item, li.job-item, div.mag-b").Each(func(_ int, card *goquery.Selection) {
		link := card.Find(`a.job-title, h2 a, .job-title a, a[href*="/job/"]`).First()
		title := strings.TrimSpace(link.Text())
		href, _ := link.Attr("href")
		if title == "" || href == "" {
			return
		}

		rec := domain.RawJobRecord{
			Title:          title,
			URL:            m.absURL(href),
			Location:       strings.TrimSpace(card.Find(".location, .job-location, span[class*=\"location\"]").First().Text()),
			ExperienceText: strings.TrimSpace(card.Find(".experience, .job-exp, span[class*=\"experience\"]").First().Text()),
		}

		if company := strings.TrimSpace(card.Find(`.company-name, .job-company, span.company`).First().Text()); company != "" &&
			!strings.Contains(strings.ToLower(title), strings.ToLower(company)) {
			rec.Title = company + " - " + title
		}

		out = append(out, rec)
	})
	return out
}

func (m *MyJobMag) ParseDetail(doc *goquery.Document, rec *domain.RawJobRecord) {
	desc := doc.Find(`div.job-details, div[class*="description"], article`).First()
	if desc.Length() > 0 {
		rec.Description = strings.Join(strings.Fields(desc.Text()), " ")
	}
	if rec.Location == "" {
		rec.Location = strings.TrimSpace(doc.Find(`.job-location, .location`).First().Text())
	}
}

func (m *MyJobMag) absURL(href string) string {
	if strings.HasPrefix(href, "http") {
		return href
	}
	return m.BaseURL + href
}
