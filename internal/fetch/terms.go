package fetch

import (
	"strings"

	"github.com/vijay-prabhu/internmatch/internal/enrich"
)

const (
	maxSkillTerms   = 5
	maxKeywordTerms = 3
	maxSearchTerms  = 8
)

// SearchTerms expands a skill profile into board search queries: each of
// the top skills paired with the top internship keywords, plus one combined
// multi-skill term, capped to keep request volume bounded.
func SearchTerms(skills []string) []string {
	cleaned := make([]string, 0, len(skills))
	for _, s := range skills {
		if s = strings.TrimSpace(s); s != "" {
			cleaned = append(cleaned, s)
		}
	}
	if len(cleaned) == 0 {
		return nil
	}

	var terms []string

	skillCount := len(cleaned)
	if skillCount > maxSkillTerms {
		skillCount = maxSkillTerms
	}
	for _, skill := range cleaned[:skillCount] {
		for _, kw := range enrich.InternshipKeywords[:maxKeywordTerms] {
			terms = append(terms, skill+" "+kw)
		}
	}

	if len(cleaned) >= 2 {
		combined := cleaned
		if len(combined) > 3 {
			combined = combined[:3]
		}
		terms = append(terms, strings.Join(combined, " ")+" internship")
	}

	if len(terms) > maxSearchTerms {
		terms = terms[:maxSearchTerms]
	}
	return terms
}
