package rank

import (
	"fmt"
	"sort"
	"strings"

	"github.com/vijay-prabhu/internmatch/internal/posting"
)

// Category selects a single-dimension view of the scored set.
type Category string

const (
	CategoryHighStipend   Category = "high_stipend"
	CategoryRecent        Category = "recent"
	CategoryHighRelevance Category = "high_relevance"
	CategoryPrestigious   Category = "prestigious"
)

// ParseCategory validates a user-supplied category name.
func ParseCategory(s string) (Category, error) {
	switch c := Category(strings.ToLower(strings.TrimSpace(s))); c {
	case CategoryHighStipend, CategoryRecent, CategoryHighRelevance, CategoryPrestigious:
		return c, nil
	default:
		return "", fmt.Errorf("unknown category: %q (use high_stipend, recent, high_relevance, prestigious)", s)
	}
}

// TopByCategory reorders the scored postings by one dimension and truncates
// to topN. The prestigious view keeps only top-tier employers, ordered by
// final score. Ties keep the input order.
func TopByCategory(scored []ScoredPosting, category Category, topN int) []ScoredPosting {
	out := make([]ScoredPosting, 0, len(scored))

	switch category {
	case CategoryHighStipend:
		out = append(out, scored...)
		sort.SliceStable(out, func(i, j int) bool { return out[i].Stipend > out[j].Stipend })
	case CategoryRecent:
		out = append(out, scored...)
		sort.SliceStable(out, func(i, j int) bool {
			return effectiveAge(out[i].Posting) < effectiveAge(out[j].Posting)
		})
	case CategoryHighRelevance:
		out = append(out, scored...)
		sort.SliceStable(out, func(i, j int) bool { return out[i].Relevance > out[j].Relevance })
	case CategoryPrestigious:
		for _, s := range scored {
			if s.ReputationNorm >= reputationPrestigious {
				out = append(out, s)
			}
		}
		sort.SliceStable(out, func(i, j int) bool { return out[i].FinalScore > out[j].FinalScore })
	default:
		out = append(out, scored...)
	}

	if topN >= 0 && len(out) > topN {
		out = out[:topN]
	}
	return out
}

// effectiveAge orders unknown-age postings after every dated one.
func effectiveAge(p posting.Posting) int {
	if !p.HasAge() {
		return posting.AgeUnknown
	}
	return p.AgeDays
}
