package rank

import (
	"strings"

	"github.com/vijay-prabhu/internmatch/internal/enrich"
)

// Summary aggregates a scored posting set for the stats view.
type Summary struct {
	Total           int     `json:"total_postings"`
	AvgStipend      float64 `json:"avg_stipend"`
	MaxStipend      float64 `json:"max_stipend"`
	MinStipend      float64 `json:"min_stipend"`
	AvgRelevance    float64 `json:"avg_relevance_score"`
	AvgAgeDays      float64 `json:"avg_days_old"`
	RemoteCount     int     `json:"remote_count"`
	PrestigiousHits int     `json:"prestigious_companies"`
	RecentCount     int     `json:"recent_postings"`
}

// recentThresholdDays marks a posting as "recent" in the summary.
const recentThresholdDays = 3

// Summarize computes aggregate statistics over scored postings. Unknown-age
// postings are excluded from the age average rather than skewing it.
func Summarize(scored []ScoredPosting) Summary {
	if len(scored) == 0 {
		return Summary{}
	}

	s := Summary{
		Total:      len(scored),
		MinStipend: scored[0].Stipend,
	}

	var stipendSum, relevanceSum, ageSum float64
	aged := 0
	for _, sp := range scored {
		stipendSum += sp.Stipend
		relevanceSum += sp.Relevance

		if sp.Stipend > s.MaxStipend {
			s.MaxStipend = sp.Stipend
		}
		if sp.Stipend < s.MinStipend {
			s.MinStipend = sp.Stipend
		}

		if sp.HasAge() {
			ageSum += float64(sp.AgeDays)
			aged++
			if sp.AgeDays <= recentThresholdDays {
				s.RecentCount++
			}
		}

		if strings.Contains(strings.ToLower(sp.Location), "remote") {
			s.RemoteCount++
		}
		if sp.ReputationNorm >= reputationPrestigious {
			s.PrestigiousHits++
		}
	}

	s.AvgStipend = enrich.Round2(stipendSum / float64(len(scored)))
	s.AvgRelevance = enrich.Round2(relevanceSum / float64(len(scored)))
	if aged > 0 {
		s.AvgAgeDays = enrich.Round2(ageSum / float64(aged))
	}

	return s
}
