package rank

import (
	"math"
	"testing"

	"github.com/vijay-prabhu/internmatch/internal/posting"
)

func TestDefaultWeightsSumToOne(t *testing.T) {
	w := DefaultConfig().Weights
	if math.Abs(w.Sum()-1.0) > 1e-9 {
		t.Errorf("weights sum = %v, want 1.0", w.Sum())
	}
}

func TestRankWorkedExample(t *testing.T) {
	postings := []posting.Posting{
		{Title: "Python Intern", Company: "Google", Stipend: 250, AgeDays: 1,
			Relevance: 8.5, ApplyURL: "http://a"},
		{Title: "Data Intern", Company: "Startup Inc", Stipend: 166.7, AgeDays: 5,
			Relevance: 7.2, ApplyURL: "http://b"},
	}

	ranked := Rank(postings, DefaultConfig(), 5)

	if len(ranked) != 2 {
		t.Fatalf("expected both postings retained, got %d", len(ranked))
	}

	google, startup := ranked[0], ranked[1]
	if google.Company != "Google" {
		t.Fatalf("expected Google ranked first, got %q", google.Company)
	}

	if google.ReputationNorm != 1.0 {
		t.Errorf("Google ReputationNorm = %v, want 1.0", google.ReputationNorm)
	}
	if startup.ReputationNorm != 0.5 {
		t.Errorf("Startup Inc ReputationNorm = %v, want 0.5", startup.ReputationNorm)
	}
	if google.StipendNorm != 1.0 {
		t.Errorf("Google StipendNorm = %v, want 1.0 (set maximum)", google.StipendNorm)
	}

	// 0.4*0.85 + 0.3*1.0 + 0.2*(1-1/30) + 0.1*1.0 = 0.9333 -> 0.93
	if google.FinalScore != 0.93 {
		t.Errorf("Google FinalScore = %v, want 0.93", google.FinalScore)
	}
	// 0.4*0.72 + 0.3*(166.7/250) + 0.2*(1-5/30) + 0.1*0.5 = 0.7047 -> 0.70
	if startup.FinalScore != 0.70 {
		t.Errorf("Startup FinalScore = %v, want 0.70", startup.FinalScore)
	}
}

func TestScoreRanges(t *testing.T) {
	postings := []posting.Posting{
		{Title: "A", Company: "Google", Stipend: 9000, AgeDays: 0, Relevance: 10},
		{Title: "B", Company: "", Stipend: 0, AgeDays: posting.AgeUnknown, Relevance: 0},
		{Title: "C", Company: "Tiny Startup", Stipend: 50, AgeDays: 400, Relevance: 3.3},
	}

	for _, s := range Score(postings, DefaultConfig()) {
		for name, v := range map[string]float64{
			"RelevanceNorm":  s.RelevanceNorm,
			"StipendNorm":    s.StipendNorm,
			"RecencyNorm":    s.RecencyNorm,
			"ReputationNorm": s.ReputationNorm,
			"FinalScore":     s.FinalScore,
		} {
			if v < 0 || v > 1 {
				t.Errorf("%s: %s = %v, want in [0,1]", s.Title, name, v)
			}
		}
	}
}

func TestScoreNoStipendData(t *testing.T) {
	postings := []posting.Posting{
		{Title: "A", Company: "X", Stipend: 0, AgeDays: 1, Relevance: 5},
		{Title: "B", Company: "Y", Stipend: 0, AgeDays: 2, Relevance: 6},
	}

	for _, s := range Score(postings, DefaultConfig()) {
		if s.StipendNorm != 0 {
			t.Errorf("%s: StipendNorm = %v, want 0 when no posting has stipend data", s.Title, s.StipendNorm)
		}
	}
}

func TestRecencyScore(t *testing.T) {
	tests := []struct {
		name    string
		ageDays int
		want    float64
	}{
		{"fresh", 0, 1.0},
		{"half decayed", 15, 0.5},
		{"at horizon", 30, 0.0},
		{"past horizon", 45, 0.0},
		{"unknown age treated as 30 days", posting.AgeUnknown, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := recencyScore(tt.ageDays); got != tt.want {
				t.Errorf("recencyScore(%d) = %v, want %v", tt.ageDays, got, tt.want)
			}
		})
	}
}

func TestReputationScore(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		company string
		want    float64
	}{
		{"Google", 1.0},
		{"Google LLC", 1.0}, // prestigious match wins over corporate token
		{"goldman sachs & co", 1.0},
		{"Widgets Inc", 0.5},
		{"SomeTech", 0.5},
		{"Family Bakery", 0.3},
		{"", 0.0},
		{"   ", 0.0},
	}

	for _, tt := range tests {
		if got := reputationScore(tt.company, cfg); got != tt.want {
			t.Errorf("reputationScore(%q) = %v, want %v", tt.company, got, tt.want)
		}
	}
}

func TestRankSortedAndTruncated(t *testing.T) {
	var postings []posting.Posting
	for i := 0; i < 10; i++ {
		postings = append(postings, posting.Posting{
			Title:     "P",
			Company:   "X",
			AgeDays:   i * 3,
			Relevance: float64(i),
			ApplyURL:  "http://x",
		})
	}

	ranked := Rank(postings, DefaultConfig(), 4)

	if len(ranked) != 4 {
		t.Fatalf("expected 4 results, got %d", len(ranked))
	}
	for i := 1; i < len(ranked); i++ {
		if ranked[i].FinalScore > ranked[i-1].FinalScore {
			t.Errorf("output not sorted descending at %d: %v > %v",
				i, ranked[i].FinalScore, ranked[i-1].FinalScore)
		}
	}
}

func TestRankStableTies(t *testing.T) {
	// Identical postings apart from the title produce identical scores;
	// insertion order must be preserved.
	postings := []posting.Posting{
		{Title: "First", Company: "X", AgeDays: 5, Relevance: 5, ApplyURL: "http://a"},
		{Title: "Second", Company: "X", AgeDays: 5, Relevance: 5, ApplyURL: "http://b"},
		{Title: "Third", Company: "X", AgeDays: 5, Relevance: 5, ApplyURL: "http://c"},
	}

	ranked := Rank(postings, DefaultConfig(), 10)

	if ranked[0].Title != "First" || ranked[1].Title != "Second" || ranked[2].Title != "Third" {
		t.Errorf("tie-break did not preserve insertion order: %v, %v, %v",
			ranked[0].Title, ranked[1].Title, ranked[2].Title)
	}
}

func TestRankEmptyInput(t *testing.T) {
	if got := Rank(nil, DefaultConfig(), 10); len(got) != 0 {
		t.Errorf("expected empty output for empty input, got %d", len(got))
	}
}

func TestRankDoesNotMutateInput(t *testing.T) {
	postings := []posting.Posting{
		{Title: "Low", Company: "X", Relevance: 1, ApplyURL: "http://a"},
		{Title: "High", Company: "X", Relevance: 9, ApplyURL: "http://b"},
	}

	Rank(postings, DefaultConfig(), 10)

	if postings[0].Title != "Low" || postings[1].Title != "High" {
		t.Errorf("input slice was reordered")
	}
}
