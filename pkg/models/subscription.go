package models

import "time"

// Subscription frequencies.
const (
	FreqHourly = "hourly"
	FreqDaily  = "daily"
	FreqWeekly = "weekly"
)

// Subscription is a recurring alert on a saved query. This record shape is
// the write contract toward the scheduling daemon, which runs outside this
// service.
type Subscription struct {
	ID          int64      `json:"id"`
	UserID      string     `json:"user_id"`
	Channel     string     `json:"channel"`
	SQL         string     `json:"sql"`
	Explanation string     `json:"explanation"`
	Frequency   string     `json:"frequency"`
	CreatedAt   time.Time  `json:"created_at"`
	LastRunAt   *time.Time `json:"last_run_at,omitempty"`
	NextRunAt   time.Time  `json:"next_run_at"`
}
