package source

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"kazi-engine/internal/domain"
)

// Board is one scrapeable job board. Implementations only know their
// own URL scheme and markup; fetching, paging and rate limiting live in
// the Runner.
type Board interface {
	Name() string
	// SearchURL returns the listing page for a query. Pages start at 1.
	SearchURL(query string, page int) string
	// ParseListing pulls the postings off a listing page. Records carry
	// at least Title and URL; detail fields are filled later.
	ParseListing(doc *goquery.Document) []domain.RawJobRecord
	// ParseDetail fills description, location, salary and date from a
	// posting's own page.
	ParseDetail(doc *goquery.Document, rec *domain.RawJobRecord)
}

// Runner fetches from boards with per-host rate limiting.
type Runner struct {
	hc      *http.Client
	limiter *HostLimiter
}

func NewRunner(reqPerSec float64, burst int) *Runner {
	return &Runner{
		hc:      &http.Client{Timeout: 20 * time.Second},
		limiter: NewHostLimiter(reqPerSec, burst),
	}
}

// Fetch pages through a board's listings for one query until limit
// records are collected or a listing page comes back empty. Detail
// fetch failures degrade to the listing-level record.
func (r *Runner) Fetch(ctx context.Context, b Board, query string, limit int) ([]domain.RawJobRecord, error) {
	if limit <= 0 {
		limit = 50
	}

	var out []domain.RawJobRecord
	for page := 1; len(out) < limit; page++ {
		doc, err := r.get(ctx, b.SearchURL(query, page))
		if err != nil {
			if page == 1 {
				return nil, fmt.Errorf("%s listing: %w", b.Name(), err)
			}
			log.Printf("[source:%s] page %d failed, stopping: %v", b.Name(), page, err)
			break
		}

		recs := b.ParseListing(doc)
		if len(recs) == 0 {
			break
		}

		for _, rec := range recs {
			if len(out) >= limit {
				break
			}
			rec.Source = b.Name()
			if strings.TrimSpace(rec.URL) == "" {
				continue
			}
			if detail, err := r.get(ctx, rec.URL); err != nil {
				log.Printf("[source:%s] detail fetch failed url=%s err=%v", b.Name(), rec.URL, err)
			} else {
				b.ParseDetail(detail, &rec)
			}
			out = append(out, rec)
		}
	}
	return out, nil
}

func (r *Runner) get(ctx context.Context, rawURL string) (*goquery.Document, error) {
	if err := r.limiter.WaitURL(ctx, rawURL); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "KaziEngine/1.0 (+local)")

	res, err := r.hc.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	if res.StatusCode >= 400 {
		return nil, fmt.Errorf("status %d", res.StatusCode)
	}
	return goquery.NewDocumentFromReader(res.Body)
}
