package posting

import (
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/vijay-prabhu/internmatch/internal/enrich"
)

// AgeUnknown marks a posting whose source provided no parseable date.
// It shares the numeric value of the "unlimited" age filter on purpose:
// both come from the upstream data contract.
const AgeUnknown = enrich.AgeUnknown

// Posting is one job/internship listing with its extracted attributes.
// Stipend is always a monthly-equivalent figure; AgeDays is either a
// non-negative day count or AgeUnknown.
type Posting struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Company     string    `json:"company"`
	Location    string    `json:"location"`
	Stipend     float64   `json:"stipend"`
	AgeDays     int       `json:"days_old"`
	Relevance   float64   `json:"relevance_score"`
	ApplyURL    string    `json:"apply_url"`
	Description string    `json:"description,omitempty"`
	Source      string    `json:"source,omitempty"`
	FetchedAt   time.Time `json:"fetched_at,omitempty"`
}

// HasAge reports whether the posting carries a real age.
func (p *Posting) HasAge() bool {
	return p.AgeDays != AgeUnknown
}

// dedupeKey identifies a posting for duplicate removal.
func (p *Posting) dedupeKey() string {
	return strings.ToLower(strings.TrimSpace(p.Title)) + "\x00" +
		strings.ToLower(strings.TrimSpace(p.Company)) + "\x00" +
		strings.ToLower(strings.TrimSpace(p.Location))
}

// idNamespace is a fixed namespace so the same posting always gets the
// same ID across fetches.
var idNamespace = uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")

// MakeID derives a deterministic UUID from the posting's identity fields.
func (p *Posting) MakeID() string {
	return uuid.NewSHA1(idNamespace, []byte(p.dedupeKey())).String()
}

// Dedupe removes duplicate postings by (title, company, location),
// keeping the first occurrence. The input slice is not modified.
func Dedupe(postings []Posting) []Posting {
	seen := make(map[string]bool, len(postings))
	out := make([]Posting, 0, len(postings))

	for _, p := range postings {
		key := p.dedupeKey()
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, p)
	}

	return out
}

// sanitizeScore coerces NaN, infinite, and negative values to 0.
func sanitizeScore(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

// sanitizeAge coerces negative day counts to AgeUnknown. Large counts pass
// through: a known old age must stay distinguishable from a missing date.
func sanitizeAge(days int) int {
	if days < 0 {
		return AgeUnknown
	}
	return days
}
