package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/tidwall/gjson"

	"github.com/vijay-prabhu/internmatch/internal/posting"
)

// remotiveBaseURL is Remotive's public remote-jobs API.
const remotiveBaseURL = "https://remotive.com/api/remote-jobs"

// RemotiveSource queries the Remotive JSON API for remote postings.
type RemotiveSource struct {
	client  *http.Client
	baseURL string
}

// NewRemotiveSource creates a Remotive source with sane timeouts.
func NewRemotiveSource() *RemotiveSource {
	return &RemotiveSource{
		client:  &http.Client{Timeout: 15 * time.Second},
		baseURL: remotiveBaseURL,
	}
}

func (s *RemotiveSource) Name() string { return "remotive" }

// Fetch queries the API and maps its jobs array onto raw postings. The
// salary text is folded into the description so stipend extraction can see
// it; absent fields simply stay empty.
func (s *RemotiveSource) Fetch(ctx context.Context, q Query) ([]posting.Raw, error) {
	params := url.Values{}
	params.Set("search", q.Term)
	if q.Limit > 0 {
		params.Set("limit", strconv.Itoa(q.Limit))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("remotive: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	jobs := gjson.GetBytes(body, "jobs").Array()
	raws := make([]posting.Raw, 0, len(jobs))
	for _, job := range jobs {
		description := job.Get("description").String()
		if salary := job.Get("salary").String(); salary != "" {
			description += "\nsalary: " + salary
		}

		raws = append(raws, posting.Raw{
			Title:       job.Get("title").String(),
			Company:     job.Get("company_name").String(),
			Location:    job.Get("candidate_required_location").String(),
			Description: description,
			ApplyURL:    job.Get("url").String(),
			DatePosted:  job.Get("publication_date").String(),
			Source:      s.Name(),
		})
	}

	return raws, nil
}
