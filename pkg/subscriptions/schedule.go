// Package subscriptions records recurring alerts on saved queries. The store
// is the write contract toward the scheduling daemon; running the alerts is
// someone else's job.
package subscriptions

import (
	"time"

	"github.com/thinktank-analytics/thinktank-engine/pkg/models"
)

// deliveryHour is when daily and weekly alerts go out.
const deliveryHour = 9

// NextRun computes when a subscription fires next: hourly on the hour mark
// from now, daily at 09:00, weekly on Monday 09:00. Unknown frequencies
// fall back to a day out.
func NextRun(frequency string, now time.Time) time.Time {
	switch frequency {
	case models.FreqHourly:
		return now.Add(time.Hour)
	case models.FreqDaily:
		target := time.Date(now.Year(), now.Month(), now.Day(), deliveryHour, 0, 0, 0, now.Location())
		if !now.Before(target) {
			target = target.AddDate(0, 0, 1)
		}
		return target
	case models.FreqWeekly:
		target := time.Date(now.Year(), now.Month(), now.Day(), deliveryHour, 0, 0, 0, now.Location())
		daysAhead := (int(time.Monday) - int(now.Weekday()) + 7) % 7
		if daysAhead == 0 && now.Hour() >= deliveryHour {
			daysAhead = 7
		}
		return target.AddDate(0, 0, daysAhead)
	default:
		return now.AddDate(0, 0, 1)
	}
}

// ValidFrequency reports whether the frequency is one the scheduler honors.
func ValidFrequency(frequency string) bool {
	switch frequency {
	case models.FreqHourly, models.FreqDaily, models.FreqWeekly:
		return true
	}
	return false
}
