// Package rank turns a filtered posting collection into an ordered top-N
// list of scored postings. Scoring is a pure function of the candidate set
// and the ranker configuration.
package rank

import (
	"sort"

	"github.com/vijay-prabhu/internmatch/internal/enrich"
	"github.com/vijay-prabhu/internmatch/internal/posting"
)

// Weights distribute the final score across the four sub-scores. They are
// fixed policy, not user configuration, and always sum to 1.0.
type Weights struct {
	Relevance  float64
	Stipend    float64
	Recency    float64
	Reputation float64
}

// Sum returns the total of all weights.
func (w Weights) Sum() float64 {
	return w.Relevance + w.Stipend + w.Recency + w.Reputation
}

// Config is the immutable ranker configuration. Build it with
// DefaultConfig; sharing one Config between goroutines is safe because the
// ranker never mutates it.
type Config struct {
	Weights              Weights
	PrestigiousCompanies []string
	CorporateTokens      []string
}

const (
	// recencyHorizonDays is where linear recency decay reaches zero.
	recencyHorizonDays = 30
	// unknownAgeAssumed stands in for a missing posting date.
	unknownAgeAssumed = 30
)

// DefaultConfig returns the standard ranking policy.
func DefaultConfig() Config {
	return Config{
		Weights: Weights{
			Relevance:  0.4,
			Stipend:    0.3,
			Recency:    0.2,
			Reputation: 0.1,
		},
		PrestigiousCompanies: []string{
			"google", "microsoft", "apple", "amazon", "meta", "facebook",
			"netflix", "uber", "airbnb", "spotify", "twitter", "linkedin",
			"salesforce", "oracle", "ibm", "intel", "nvidia", "tesla",
			"spacex", "palantir", "stripe", "square", "paypal", "visa",
			"mastercard", "goldman sachs", "morgan stanley", "jpmorgan",
			"mckinsey", "bain", "bcg", "deloitte", "pwc", "kpmg",
			"accenture", "cognizant", "infosys", "tcs", "wipro",
		},
		CorporateTokens: []string{
			"inc", "llc", "corp", "ltd", "startup", "tech", "software",
		},
	}
}

// ScoredPosting is a Posting plus its four normalized sub-scores and the
// weighted final score. It is derived per ranking pass and never persisted.
type ScoredPosting struct {
	posting.Posting
	RelevanceNorm  float64 `json:"relevance_normalized"`
	StipendNorm    float64 `json:"stipend_normalized"`
	RecencyNorm    float64 `json:"recency_normalized"`
	ReputationNorm float64 `json:"reputation_normalized"`
	FinalScore     float64 `json:"final_score"`
}

// Rank scores every posting, sorts descending by final score, and truncates
// to topN. Ties keep the insertion order of the input. The input slice is
// not modified; an empty input yields an empty output.
func Rank(postings []posting.Posting, cfg Config, topN int) []ScoredPosting {
	scored := Score(postings, cfg)

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].FinalScore > scored[j].FinalScore
	})

	if topN >= 0 && len(scored) > topN {
		scored = scored[:topN]
	}
	return scored
}

// Score computes sub-scores and final scores without reordering. The
// stipend sub-score is relative to the current candidate set: the best-paid
// posting scores 1.0, and when nobody has stipend data everyone scores 0.
func Score(postings []posting.Posting, cfg Config) []ScoredPosting {
	maxStipend := 0.0
	for _, p := range postings {
		if p.Stipend > maxStipend {
			maxStipend = p.Stipend
		}
	}

	scored := make([]ScoredPosting, 0, len(postings))
	for _, p := range postings {
		s := ScoredPosting{
			Posting:        p,
			RelevanceNorm:  clamp01(p.Relevance / 10),
			StipendNorm:    stipendScore(p.Stipend, maxStipend),
			RecencyNorm:    recencyScore(p.AgeDays),
			ReputationNorm: reputationScore(p.Company, cfg),
		}
		s.FinalScore = enrich.Round2(
			s.RelevanceNorm*cfg.Weights.Relevance +
				s.StipendNorm*cfg.Weights.Stipend +
				s.RecencyNorm*cfg.Weights.Recency +
				s.ReputationNorm*cfg.Weights.Reputation)
		scored = append(scored, s)
	}

	return scored
}

func stipendScore(stipend, maxStipend float64) float64 {
	if maxStipend <= 0 {
		return 0
	}
	return clamp01(stipend / maxStipend)
}

// recencyScore decays linearly from 1.0 at zero days to 0 at the horizon.
// Unknown age gets a neutral middling assumption instead of a penalty.
func recencyScore(ageDays int) float64 {
	if ageDays == posting.AgeUnknown {
		ageDays = unknownAgeAssumed
	}
	return clamp01(1 - float64(ageDays)/recencyHorizonDays)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
