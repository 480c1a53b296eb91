// Package filter applies hard constraints to a posting collection before
// ranking. Every step is a monotonic reduction of the candidate set; output
// order is input order, ordering belongs to rank.
package filter

import (
	"strings"

	"github.com/vijay-prabhu/internmatch/internal/posting"
)

// UnlimitedAge disables the age filter entirely.
const UnlimitedAge = 999

// RelevanceFloor drops postings that provably share no text overlap with
// the user's skills. It is a near-zero floor, not a quality bar.
const RelevanceFloor = 0.1

// Criteria are the user-facing hard constraints.
type Criteria struct {
	MinStipend float64 // drop below this monthly stipend; 0 disables
	MaxAgeDays int     // drop older postings; UnlimitedAge disables
}

// Apply filters postings against the criteria. The input is read-only; a
// new slice is returned. An empty input yields an empty output and a record
// missing a required field is silently excluded, never an error.
func Apply(postings []posting.Posting, c Criteria) []posting.Posting {
	out := make([]posting.Posting, 0, len(postings))

	for _, p := range postings {
		if keep(p, c) {
			out = append(out, p)
		}
	}

	return out
}

func keep(p posting.Posting, c Criteria) bool {
	if c.MinStipend > 0 && p.Stipend < c.MinStipend {
		return false
	}

	// Postings of unknown age are never excluded by the age filter:
	// a missing source field is not evidence of staleness.
	if c.MaxAgeDays < UnlimitedAge && p.HasAge() && p.AgeDays > c.MaxAgeDays {
		return false
	}

	if strings.TrimSpace(p.Title) == "" || strings.TrimSpace(p.Company) == "" {
		return false
	}
	if strings.TrimSpace(p.ApplyURL) == "" {
		return false
	}

	if p.Relevance < RelevanceFloor {
		return false
	}

	return true
}
