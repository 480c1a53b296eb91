// Package enrich computes the derived posting attributes (relevance score,
// monthly stipend, posting age) from raw scraped text. Everything here is a
// pure function so the ranking pipeline stays deterministic.
package enrich

import (
	"math"
	"strings"
)

// InternshipKeywords are the title/description markers that identify an
// internship-category posting. Order matters: the fetch layer uses the
// leading entries to build search terms.
var InternshipKeywords = []string{
	"intern", "internship", "co-op", "coop", "trainee", "apprentice",
	"entry level", "junior", "graduate", "student", "summer intern",
}

// SeniorityMarkers exclude postings that are clearly not entry-level.
var SeniorityMarkers = []string{"senior", "lead", "principal", "manager", "director"}

// RelevanceScore measures textual overlap between a posting and the user's
// skills on a 0-10 scale: (matches/total)*10, plus 1.0 per skill appearing
// in the title and 0.5 per internship keyword in the title, capped at 10.
func RelevanceScore(title, description, company string, skills []string) float64 {
	if len(skills) == 0 {
		return 0
	}

	titleLower := strings.ToLower(title)
	text := titleLower + " " + strings.ToLower(description) + " " + strings.ToLower(company)

	matches := 0
	titleBonus := 0.0
	for _, skill := range skills {
		skillLower := strings.ToLower(skill)
		if skillLower == "" {
			continue
		}
		if strings.Contains(text, skillLower) {
			matches++
		}
		if strings.Contains(titleLower, skillLower) {
			titleBonus += 1.0
		}
	}

	keywordBonus := 0.0
	for _, kw := range InternshipKeywords {
		if strings.Contains(titleLower, kw) {
			keywordBonus += 0.5
		}
	}

	base := float64(matches) / float64(len(skills)) * 10
	return Round2(math.Min(10, base+titleBonus+keywordBonus))
}

// IsInternship reports whether the posting text mentions any internship
// keyword while the title carries no seniority marker.
func IsInternship(title, description string) bool {
	titleLower := strings.ToLower(title)
	descLower := strings.ToLower(description)

	mentioned := false
	for _, kw := range InternshipKeywords {
		if strings.Contains(titleLower, kw) || strings.Contains(descLower, kw) {
			mentioned = true
			break
		}
	}
	if !mentioned {
		return false
	}

	for _, marker := range SeniorityMarkers {
		if strings.Contains(titleLower, marker) {
			return false
		}
	}
	return true
}

// Round2 rounds to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
