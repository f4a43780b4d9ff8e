package source

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"kazi-engine/internal/domain"
)

// OYK scrapes opportunitiesforyoungkenyans.co.ke, a WordPress blog where
// postings are ordinary posts titled "Company Hiring Position".
type OYK struct {
	BaseURL string
}

func NewOYK() *OYK {
	return &OYK{BaseURL: "https://opportunitiesforyoungkenyans.co.ke"}
}

func (o *OYK) Name() string { return "oyk" }

func (o *OYK) SearchURL(query string, page int) string {
	q := url.Values{"s": {query}}
	if page > 1 {
		q.Set("paged", fmt.Sprint(page))
	}
	return o.BaseURL + "/?" + q.Encode()
}

func (o *OYK) ParseListing(doc *goquery.Document) []domain.RawJobRecord {
	var out []domain.RawJobRecord

	doc.Find("article, div.post, li.post-item").Each(func(_ int, card *goquery.Selection) {
		link := card.Find("h2.entry-title a, h3 a, .post-title a").First()
		title := strings.TrimSpace(link.Text())
		href, _ := link.Attr("href")
		if title == "" || href == "" {
			return
		}
		low := strings.ToLower(title)
		if strings.Contains(low, "gallery") || strings.Contains(low, "video") ||
			strings.Contains(low, "news update") {
			return
		}

		rec := domain.RawJobRecord{
			Title: title,
			URL:   o.absURL(href),
		}

		if dt, ok := card.Find("time").First().Attr("datetime"); ok {
			if t, err := time.Parse(time.RFC3339, dt); err == nil {
				rec.PostedAt = &t
			}
		}

		out = append(out, rec)
	})
	return out
}

func (o *OYK) ParseDetail(doc *goquery.Document, rec *domain.RawJobRecord) {
	content := doc.Find("article .entry-content, div.post-content, .single-content").First()
	if content.Length() == 0 {
		return
	}
	rec.Description = strings.Join(strings.Fields(content.Text()), " ")
}

func (o *OYK) absURL(href string) string {
	if strings.HasPrefix(href, "http") {
		return href
	}
	return o.BaseURL + href
}
