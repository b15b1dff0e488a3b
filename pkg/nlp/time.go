package nlp

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/thinktank-analytics/thinktank-engine/pkg/models"
	"github.com/thinktank-analytics/thinktank-engine/pkg/textmatch"
)

// monthFuzzyCutoff is the minimum score for resolving a misspelled month
// name ("agust" -> august).
const monthFuzzyCutoff = 80

var monthNumbers = map[string]int{
	"january": 1, "jan": 1,
	"february": 2, "feb": 2,
	"march": 3, "mar": 3,
	"april": 4, "apr": 4,
	"may":  5,
	"june": 6, "jun": 6,
	"july": 7, "jul": 7,
	"august": 8, "aug": 8,
	"september": 9, "sept": 9, "sep": 9,
	"october": 10, "oct": 10,
	"november": 11, "nov": 11,
	"december": 12, "dec": 12,
}

var monthNames = func() []string {
	names := make([]string, 0, len(monthNumbers))
	for name := range monthNumbers {
		names = append(names, name)
	}
	return names
}()

// Phrases signalling a month-over-month breakdown.
var monthwiseSignals = []string{
	"month wise", "monthwise", "month-wise", "month on month",
	"month-on-month", "month over month", "mom", "trend",
}

var (
	rangeFromRe = regexp.MustCompile(`(?:from|between)\s+([a-zA-Z]+)\s+to\s+([a-zA-Z]+)\s+((?:20)?\d{2})`)
	rangeBareRe = regexp.MustCompile(`([a-zA-Z]+)\s+to\s+([a-zA-Z]+)\s+((?:20)?\d{2})`)
	sinceRe     = regexp.MustCompile(`\bsince\s+([a-zA-Z]+)(?:\s+((?:20)?\d{2}))?`)
	bareYearRe  = regexp.MustCompile(`\b(20\d{2})\b`)
)

// augmentTime derives explicit date ranges and granularity from raw-text
// phrases the model tends to miss ("from jan to aug 2025", "since march",
// "month wise 2025"). An explicit range already present always wins.
func (e *Extractor) augmentTime(text string, ts models.TimeSpec) models.TimeSpec {
	t := strings.ToLower(text)
	if ts.HasRange() {
		return ts
	}

	monthwise := false
	for _, sig := range monthwiseSignals {
		if strings.Contains(t, sig) {
			monthwise = true
			break
		}
	}

	if m := rangeFromRe.FindStringSubmatch(t); m != nil {
		if out, ok := monthRange(ts, m[1], m[2], m[3], monthwise); ok {
			return out
		}
	}
	if m := rangeBareRe.FindStringSubmatch(t); m != nil {
		if out, ok := monthRange(ts, m[1], m[2], m[3], monthwise); ok {
			return out
		}
	}

	if m := sinceRe.FindStringSubmatch(t); m != nil {
		if mm, ok := resolveMonth(m[1]); ok {
			today := e.now()
			year := today.Year()
			if m[2] != "" {
				year = parseYear(m[2])
			} else if time.Date(year, time.Month(mm), 1, 0, 0, 0, 0, time.UTC).After(today) {
				// Month start in the future means the user meant last year.
				year--
			}
			ts.StartDate = fmt.Sprintf("%d-%02d-01", year, mm)
			ts.EndDate = today.Format("2006-01-02")
			if monthwise {
				ts.Granularity = "month"
			}
			ts.Key = ""
			return ts
		}
	}

	if m := bareYearRe.FindStringSubmatch(t); m != nil && monthwise {
		year := parseYear(m[1])
		ts.StartDate = fmt.Sprintf("%d-01-01", year)
		ts.EndDate = fmt.Sprintf("%d-12-31", year)
		ts.Granularity = "month"
		ts.Key = ""
		return ts
	}

	if strings.Contains(t, "this year") {
		year := e.now().Year()
		ts.StartDate = fmt.Sprintf("%d-01-01", year)
		ts.EndDate = fmt.Sprintf("%d-12-31", year)
		if monthwise {
			ts.Granularity = "month"
		}
		ts.Key = ""
		return ts
	}

	return ts
}

func monthRange(ts models.TimeSpec, startTok, endTok, yearTok string, monthwise bool) (models.TimeSpec, bool) {
	start, okStart := resolveMonth(startTok)
	end, okEnd := resolveMonth(endTok)
	if !okStart || !okEnd {
		return ts, false
	}

	year := parseYear(yearTok)
	ts.StartDate = fmt.Sprintf("%d-%02d-01", year, start)
	ts.EndDate = fmt.Sprintf("%d-%02d-%02d", year, end, lastDayOfMonth(year, end))
	if monthwise {
		ts.Granularity = "month"
	}
	return ts, true
}

// resolveMonth maps a month token to its number, falling back to fuzzy
// matching for misspellings.
func resolveMonth(token string) (int, bool) {
	t := strings.ToLower(strings.TrimSpace(token))
	if mm, ok := monthNumbers[t]; ok {
		return mm, true
	}
	if name, _, ok := textmatch.BestMatch(t, monthNames, monthFuzzyCutoff); ok {
		return monthNumbers[name], true
	}
	return 0, false
}

// parseYear accepts both 4-digit and 2-digit years ("2025" and "25").
func parseYear(tok string) int {
	year, _ := strconv.Atoi(tok)
	if year < 100 {
		year += 2000
	}
	return year
}

func lastDayOfMonth(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
