package enrich

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// AgeUnknown marks a posting date that could not be parsed. The value is
// shared with the filter's "unlimited" age sentinel by data contract.
const AgeUnknown = 999

var isoDatePrefix = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}`)

// AgeDays converts a posted-date string into a day count relative to now.
// Supported forms: ISO dates (with or without a time component), RFC3339,
// and dd/mm/yyyy. A parseable date always yields its real day count (future
// dates clamp to 0); only an unparseable one degrades to AgeUnknown, so the
// age filter never mistakes old data for missing data.
func AgeDays(dateStr string, now time.Time) int {
	dateStr = strings.TrimSpace(dateStr)
	if dateStr == "" {
		return AgeUnknown
	}

	if posted, ok := parseDate(dateStr); ok {
		days := int(now.Sub(posted).Hours() / 24)
		if days < 0 {
			return 0
		}
		return days
	}

	return AgeUnknown
}

func parseDate(dateStr string) (time.Time, bool) {
	if isoDatePrefix.MatchString(dateStr) {
		if t, err := time.Parse("2006-01-02", dateStr[:10]); err == nil {
			return t, true
		}
	}

	if t, err := time.Parse(time.RFC3339, dateStr); err == nil {
		return t, true
	}

	// dd/mm/yyyy
	if strings.Contains(dateStr, "/") {
		parts := strings.Split(dateStr, "/")
		if len(parts) == 3 {
			day, err1 := strconv.Atoi(parts[0])
			month, err2 := strconv.Atoi(parts[1])
			year, err3 := strconv.Atoi(parts[2])
			if err1 == nil && err2 == nil && err3 == nil &&
				month >= 1 && month <= 12 && day >= 1 && day <= 31 && year > 1970 {
				return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC), true
			}
		}
	}

	return time.Time{}, false
}
