package models

import "time"

// Result is a stored, already-masked query result a user can export or
// subscribe to.
type Result struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	SQL         string    `json:"sql"`
	Explanation string    `json:"explanation"`
	Table       *Table    `json:"table"`
	CreatedAt   time.Time `json:"created_at"`
}
