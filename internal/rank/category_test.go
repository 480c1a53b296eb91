package rank

import (
	"testing"

	"github.com/vijay-prabhu/internmatch/internal/posting"
)

func sampleScored() []ScoredPosting {
	postings := []posting.Posting{
		{Title: "A", Company: "Google", Location: "Remote", Stipend: 1000, AgeDays: 10, Relevance: 4, ApplyURL: "http://a"},
		{Title: "B", Company: "Widgets Inc", Location: "NYC", Stipend: 3000, AgeDays: 2, Relevance: 9, ApplyURL: "http://b"},
		{Title: "C", Company: "Family Bakery", Location: "Remote", Stipend: 500, AgeDays: posting.AgeUnknown, Relevance: 7, ApplyURL: "http://c"},
	}
	return Score(postings, DefaultConfig())
}

func TestParseCategory(t *testing.T) {
	if _, err := ParseCategory("high_stipend"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if _, err := ParseCategory(" Recent "); err != nil {
		t.Errorf("unexpected error for trimmed/case input: %v", err)
	}
	if _, err := ParseCategory("bogus"); err == nil {
		t.Errorf("expected error for unknown category")
	}
}

func TestTopByCategory(t *testing.T) {
	scored := sampleScored()

	tests := []struct {
		name     string
		category Category
		want     []string // expected title order
	}{
		{"high stipend", CategoryHighStipend, []string{"B", "A", "C"}},
		{"recent orders unknown age last", CategoryRecent, []string{"B", "A", "C"}},
		{"high relevance", CategoryHighRelevance, []string{"B", "C", "A"}},
		{"prestigious keeps top tier only", CategoryPrestigious, []string{"A"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TopByCategory(scored, tt.category, 10)

			if len(got) != len(tt.want) {
				t.Fatalf("got %d postings, want %d", len(got), len(tt.want))
			}
			for i, title := range tt.want {
				if got[i].Title != title {
					t.Errorf("position %d: got %q, want %q", i, got[i].Title, title)
				}
			}
		})
	}
}

func TestTopByCategoryTruncates(t *testing.T) {
	got := TopByCategory(sampleScored(), CategoryHighStipend, 1)
	if len(got) != 1 || got[0].Title != "B" {
		t.Errorf("expected only the top stipend posting, got %v", got)
	}
}

func TestSummarize(t *testing.T) {
	s := Summarize(sampleScored())

	if s.Total != 3 {
		t.Errorf("Total = %d, want 3", s.Total)
	}
	if s.MaxStipend != 3000 || s.MinStipend != 500 {
		t.Errorf("stipend spread = %v..%v, want 500..3000", s.MinStipend, s.MaxStipend)
	}
	if s.AvgStipend != 1500 {
		t.Errorf("AvgStipend = %v, want 1500", s.AvgStipend)
	}
	if s.RemoteCount != 2 {
		t.Errorf("RemoteCount = %d, want 2", s.RemoteCount)
	}
	if s.PrestigiousHits != 1 {
		t.Errorf("PrestigiousHits = %d, want 1", s.PrestigiousHits)
	}
	if s.RecentCount != 1 {
		t.Errorf("RecentCount = %d, want 1 (unknown age is not recent)", s.RecentCount)
	}
	// Unknown-age posting excluded from the age average: (10+2)/2.
	if s.AvgAgeDays != 6 {
		t.Errorf("AvgAgeDays = %v, want 6", s.AvgAgeDays)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	if s := Summarize(nil); s.Total != 0 {
		t.Errorf("expected zero summary for empty input, got %+v", s)
	}
}
