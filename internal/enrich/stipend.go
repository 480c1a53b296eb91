package enrich

import (
	"regexp"
	"strconv"
	"strings"
)

// monthlyWorkHours converts an hourly rate into a monthly figure.
const monthlyWorkHours = 160

// Stipend extraction patterns, tried in order; the first match wins.
var stipendPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\$(\d{1,3}(?:,\d{3})*(?:\.\d{2})?)`),
	regexp.MustCompile(`(\d{1,3}(?:,\d{3})*(?:\.\d{2})?)\s*(?:per\s+)?(?:hour|hr|/h)`),
	regexp.MustCompile(`(\d{1,3}(?:,\d{3})*(?:\.\d{2})?)\s*(?:per\s+)?(?:month|mo)`),
}

// ExtractStipend pulls a monthly-equivalent stipend out of the posting text.
// Hourly figures are scaled by an assumed 160 work hours per month. Monthly
// figures are multiplied by 12 and divided back by 12; the round trip is
// intentional and mirrors the upstream extraction contract. No match yields 0.
func ExtractStipend(title, description string) float64 {
	descLower := strings.ToLower(description)
	text := descLower + " " + strings.ToLower(title)

	for _, pattern := range stipendPatterns {
		match := pattern.FindStringSubmatch(text)
		if match == nil {
			continue
		}

		amount, err := strconv.ParseFloat(strings.ReplaceAll(match[1], ",", ""), 64)
		if err != nil {
			continue
		}

		// Rate qualifiers are read from the description only, matching
		// the upstream extraction behavior.
		if strings.Contains(descLower, "hour") || strings.Contains(descLower, "hr") ||
			strings.Contains(descLower, "/h") {
			amount *= monthlyWorkHours
		}
		if strings.Contains(descLower, "month") || strings.Contains(descLower, "mo") {
			amount = amount * 12 / 12
		}

		return amount
	}

	return 0
}
