package rank

import "strings"

// Reputation tiers for the coarse employer-prestige sub-score.
const (
	reputationPrestigious = 1.0
	reputationCorporate   = 0.5
	reputationDefault     = 0.3
)

// reputationScore classifies the employer by case-insensitive substring
// match: a well-known company scores 1.0, a name with a generic corporate
// token scores 0.5, anything else 0.3. An empty name scores 0.
func reputationScore(company string, cfg Config) float64 {
	name := strings.ToLower(strings.TrimSpace(company))
	if name == "" {
		return 0
	}

	for _, prestigious := range cfg.PrestigiousCompanies {
		if strings.Contains(name, prestigious) {
			return reputationPrestigious
		}
	}

	for _, token := range cfg.CorporateTokens {
		if strings.Contains(name, token) {
			return reputationCorporate
		}
	}

	return reputationDefault
}

// IsPrestigious reports whether the company lands in the top reputation tier.
func IsPrestigious(company string, cfg Config) bool {
	return reputationScore(company, cfg) >= reputationPrestigious
}
