package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

const linkedInFixture = `
<ul>
  <li>
    <div class="job-search-card">
      <a class="base-card__full-link" href="https://example.com/jobs/1">view</a>
      <h3 class="base-search-card__title"> Python Intern </h3>
      <h4 class="base-search-card__subtitle"><a>Acme Corp</a></h4>
      <span class="job-search-card__location">Remote</span>
      <time class="job-search-card__listdate" datetime="2025-03-10">3 days ago</time>
    </div>
  </li>
  <li>
    <div class="job-search-card">
      <a class="base-card__full-link" href="https://example.com/jobs/2">view</a>
      <h3 class="base-search-card__title">Data Intern</h3>
      <h4 class="base-search-card__subtitle"><a>Beta Labs</a></h4>
      <span class="job-search-card__location">New York</span>
    </div>
  </li>
</ul>`

func TestLinkedInFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("keywords"); got != "python intern" {
			t.Errorf("keywords = %q, want %q", got, "python intern")
		}
		if got := r.URL.Query().Get("location"); got != "Remote" {
			t.Errorf("location = %q, want %q", got, "Remote")
		}
		w.Write([]byte(linkedInFixture))
	}))
	defer srv.Close()

	src := NewLinkedInSource()
	src.baseURL = srv.URL
	src.client = srv.Client()

	raws, err := src.Fetch(context.Background(), Query{
		Term:     "python intern",
		Location: "Remote",
		Limit:    10,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(raws) != 2 {
		t.Fatalf("expected 2 cards parsed, got %d", len(raws))
	}

	first := raws[0]
	if got := first.Title; got != " Python Intern " {
		t.Errorf("Title = %q, want raw card text", got)
	}
	if first.Company != "Acme Corp" {
		t.Errorf("Company = %q, want %q", first.Company, "Acme Corp")
	}
	if first.ApplyURL != "https://example.com/jobs/1" {
		t.Errorf("ApplyURL = %q", first.ApplyURL)
	}
	if first.DatePosted != "2025-03-10" {
		t.Errorf("DatePosted = %q, want %q", first.DatePosted, "2025-03-10")
	}
	if first.Source != "linkedin" {
		t.Errorf("Source = %q, want linkedin", first.Source)
	}

	// Card without a date keeps an empty DatePosted.
	if raws[1].DatePosted != "" {
		t.Errorf("second card DatePosted = %q, want empty", raws[1].DatePosted)
	}
}

func TestLinkedInFetchRespectsLimit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(linkedInFixture))
	}))
	defer srv.Close()

	src := NewLinkedInSource()
	src.baseURL = srv.URL
	src.client = srv.Client()

	raws, err := src.Fetch(context.Background(), Query{Term: "intern", Limit: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(raws) != 1 {
		t.Errorf("expected limit to cap results at 1, got %d", len(raws))
	}
}

func TestLinkedInFetchBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	src := NewLinkedInSource()
	src.baseURL = srv.URL
	src.client = srv.Client()

	if _, err := src.Fetch(context.Background(), Query{Term: "intern"}); err == nil {
		t.Fatal("expected error for non-200 response")
	}
}
