package filter

import (
	"reflect"
	"testing"

	"github.com/vijay-prabhu/internmatch/internal/posting"
)

// valid returns a posting that passes every filter step.
func valid() posting.Posting {
	return posting.Posting{
		Title:     "Python Intern",
		Company:   "Acme",
		ApplyURL:  "http://example.com/apply",
		Stipend:   1000,
		AgeDays:   2,
		Relevance: 5,
	}
}

func TestApplySteps(t *testing.T) {
	tests := []struct {
		name     string
		modify   func(*posting.Posting)
		criteria Criteria
		kept     bool
	}{
		{
			name:     "passes all constraints",
			modify:   func(p *posting.Posting) {},
			criteria: Criteria{MinStipend: 500, MaxAgeDays: 7},
			kept:     true,
		},
		{
			name:     "below stipend floor",
			modify:   func(p *posting.Posting) { p.Stipend = 400 },
			criteria: Criteria{MinStipend: 500, MaxAgeDays: 7},
			kept:     false,
		},
		{
			name:     "zero floor disables stipend filter",
			modify:   func(p *posting.Posting) { p.Stipend = 0 },
			criteria: Criteria{MinStipend: 0, MaxAgeDays: 7},
			kept:     true,
		},
		{
			name:     "too old",
			modify:   func(p *posting.Posting) { p.AgeDays = 8 },
			criteria: Criteria{MaxAgeDays: 7},
			kept:     false,
		},
		{
			name:     "known multi-year age excluded",
			modify:   func(p *posting.Posting) { p.AgeDays = 1200 },
			criteria: Criteria{MaxAgeDays: 7},
			kept:     false,
		},
		{
			name:     "unknown age survives age filter",
			modify:   func(p *posting.Posting) { p.AgeDays = posting.AgeUnknown },
			criteria: Criteria{MaxAgeDays: 1},
			kept:     true,
		},
		{
			name:     "unlimited sentinel disables age filter",
			modify:   func(p *posting.Posting) { p.AgeDays = 500 },
			criteria: Criteria{MaxAgeDays: UnlimitedAge},
			kept:     true,
		},
		{
			name:     "missing title",
			modify:   func(p *posting.Posting) { p.Title = "" },
			criteria: Criteria{MaxAgeDays: 7},
			kept:     false,
		},
		{
			name:     "missing company",
			modify:   func(p *posting.Posting) { p.Company = "   " },
			criteria: Criteria{MaxAgeDays: 7},
			kept:     false,
		},
		{
			name:     "whitespace apply url excluded even when otherwise excellent",
			modify:   func(p *posting.Posting) { p.ApplyURL = "  " },
			criteria: Criteria{MaxAgeDays: 7},
			kept:     false,
		},
		{
			name:     "relevance below floor",
			modify:   func(p *posting.Posting) { p.Relevance = 0.05 },
			criteria: Criteria{MaxAgeDays: 7},
			kept:     false,
		},
		{
			name:     "relevance exactly at floor",
			modify:   func(p *posting.Posting) { p.Relevance = RelevanceFloor },
			criteria: Criteria{MaxAgeDays: 7},
			kept:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := valid()
			tt.modify(&p)

			got := Apply([]posting.Posting{p}, tt.criteria)

			if kept := len(got) == 1; kept != tt.kept {
				t.Errorf("kept = %v, want %v", kept, tt.kept)
			}
		})
	}
}

func TestApplyEmptyInput(t *testing.T) {
	got := Apply(nil, Criteria{MaxAgeDays: 7})
	if len(got) != 0 {
		t.Errorf("expected empty output for empty input, got %d", len(got))
	}
}

func TestApplyIdempotent(t *testing.T) {
	postings := []posting.Posting{
		valid(),
		{Title: "No URL", Company: "Acme", Relevance: 5},
		{Title: "Old", Company: "Acme", ApplyURL: "http://x", AgeDays: 40, Relevance: 5},
		{Title: "Unknown Age", Company: "Acme", ApplyURL: "http://x", AgeDays: posting.AgeUnknown, Relevance: 5},
	}
	c := Criteria{MinStipend: 0, MaxAgeDays: 7}

	once := Apply(postings, c)
	twice := Apply(once, c)

	if !reflect.DeepEqual(once, twice) {
		t.Errorf("filtering is not idempotent: %v != %v", once, twice)
	}
}

func TestApplyPreservesOrder(t *testing.T) {
	a, b, c := valid(), valid(), valid()
	a.Title, b.Title, c.Title = "A", "B", "C"

	got := Apply([]posting.Posting{a, b, c}, Criteria{MaxAgeDays: 7})

	if len(got) != 3 || got[0].Title != "A" || got[1].Title != "B" || got[2].Title != "C" {
		t.Errorf("input order not preserved: %v", got)
	}
}
