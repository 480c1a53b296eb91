package posting

import (
	"strings"
	"time"

	"github.com/vijay-prabhu/internmatch/internal/enrich"
)

// Raw is an untyped posting record as produced by a fetch source or read
// from a user-supplied file. Any field may be missing or garbage; FromRaw
// is the single place where missing-data policy is applied.
type Raw struct {
	Title       string  `json:"title"`
	Company     string  `json:"company"`
	Location    string  `json:"location"`
	Description string  `json:"description"`
	ApplyURL    string  `json:"apply_url"`
	DatePosted  string  `json:"date_posted"`
	Source      string  `json:"source"`
	Stipend     float64 `json:"stipend"`
	AgeDays     *int    `json:"days_old"`
	Relevance   float64 `json:"relevance_score"`
}

// FromRaw converts a raw record into a Posting, substituting conservative
// defaults for anything missing or malformed: 0 stipend, AgeUnknown,
// 0 relevance. Stipend and relevance are recomputed from the text when the
// record does not already carry them.
func FromRaw(raw Raw, skills []string, now time.Time) Posting {
	p := Posting{
		Title:       strings.TrimSpace(raw.Title),
		Company:     strings.TrimSpace(raw.Company),
		Location:    strings.TrimSpace(raw.Location),
		Description: strings.TrimSpace(raw.Description),
		ApplyURL:    strings.TrimSpace(raw.ApplyURL),
		Source:      strings.TrimSpace(raw.Source),
		FetchedAt:   now,
	}

	p.Stipend = sanitizeScore(raw.Stipend)
	if p.Stipend == 0 {
		p.Stipend = enrich.ExtractStipend(p.Title, p.Description)
	}

	if raw.AgeDays != nil {
		p.AgeDays = sanitizeAge(*raw.AgeDays)
	} else {
		p.AgeDays = enrich.AgeDays(raw.DatePosted, now)
	}

	p.Relevance = sanitizeScore(raw.Relevance)
	if p.Relevance == 0 && len(skills) > 0 {
		p.Relevance = enrich.RelevanceScore(p.Title, p.Description, p.Company, skills)
	}

	p.ID = p.MakeID()
	return p
}

// FromRawBatch converts a batch of raw records, preserving order.
func FromRawBatch(raws []Raw, skills []string, now time.Time) []Posting {
	out := make([]Posting, 0, len(raws))
	for _, r := range raws {
		out = append(out, FromRaw(r, skills, now))
	}
	return out
}
