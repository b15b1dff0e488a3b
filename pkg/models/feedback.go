package models

import "time"

// Feedback lifecycle states. A record transitions out of pending exactly
// once; re-applying the same terminal transition is an idempotent no-op.
const (
	FeedbackPending  = "pending"
	FeedbackApproved = "approved"
	FeedbackRejected = "rejected"
)

// FeedbackContext is the snapshot attached to a feedback record at capture
// time: the SQL/explanation pair (which becomes an approved business-logic
// entry when present at approval) and the extracted entities the reviewer
// sees alongside the message.
type FeedbackContext struct {
	SQL         string  `json:"sql,omitempty"`
	Explanation string  `json:"explanation,omitempty"`
	Entities    *Intent `json:"entities,omitempty"`
}

// Feedback is one user feedback record awaiting expert review.
type Feedback struct {
	ID            int64           `json:"id"` // time-based, monotonic by creation
	UserID        string          `json:"user_id"`
	OriginalQuery string          `json:"original_query"`
	FeedbackText  string          `json:"feedback_text"`
	Context       FeedbackContext `json:"context"`
	Status        string          `json:"status"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// ApprovedLogic is a reviewed piece of guidance derived from approved
// feedback; its text is injected as context into future generations.
type ApprovedLogic struct {
	OriginalQuery  string    `json:"original_query"`
	LogicStatement string    `json:"logic_statement"`
	SQL            string    `json:"sql"`
	Explanation    string    `json:"explanation"`
	ApprovedBy     string    `json:"approved_by"`
	ApprovedAt     time.Time `json:"approved_at"`
}
