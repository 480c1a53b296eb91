package fetch

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/vijay-prabhu/internmatch/internal/posting"
)

// linkedInBaseURL is the guest search endpoint that serves job cards
// without authentication.
const linkedInBaseURL = "https://www.linkedin.com/jobs-guest/jobs/api/seeMoreJobPostings/search"

// LinkedInSource scrapes the LinkedIn guest job search HTML.
type LinkedInSource struct {
	client  *http.Client
	baseURL string
}

// NewLinkedInSource creates a LinkedIn source with sane timeouts.
func NewLinkedInSource() *LinkedInSource {
	return &LinkedInSource{
		client:  &http.Client{Timeout: 15 * time.Second},
		baseURL: linkedInBaseURL,
	}
}

func (s *LinkedInSource) Name() string { return "linkedin" }

// Fetch runs one guest search and parses the returned job cards. Cards with
// missing fields are kept with whatever could be extracted; the pipeline's
// filter decides what survives.
func (s *LinkedInSource) Fetch(ctx context.Context, q Query) ([]posting.Raw, error) {
	params := url.Values{}
	params.Set("keywords", q.Term)
	if q.Location != "" {
		params.Set("location", q.Location)
	}
	params.Set("start", "0")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36")
	req.Header.Set("Accept", "text/html,application/xhtml+xml")
	req.Header.Set("Accept-Language", "en-US,en;q=0.5")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("linkedin: unexpected status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, err
	}

	var raws []posting.Raw
	doc.Find("div.job-search-card").EachWithBreak(func(_ int, card *goquery.Selection) bool {
		if q.Limit > 0 && len(raws) >= q.Limit {
			return false
		}

		link, _ := card.Find("a.base-card__full-link").Attr("href")
		datePosted, _ := card.Find("time.job-search-card__listdate").Attr("datetime")

		raws = append(raws, posting.Raw{
			Title:      card.Find("h3.base-search-card__title").Text(),
			Company:    card.Find("h4.base-search-card__subtitle a").Text(),
			Location:   card.Find("span.job-search-card__location").Text(),
			ApplyURL:   link,
			DatePosted: datePosted,
			Source:     s.Name(),
		})
		return true
	})

	return raws, nil
}
