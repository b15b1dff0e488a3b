// Package feedback stores user corrections and the expert-approved business
// logic distilled from them. Approved logic feeds back into extraction as
// prompt context, so the store sits on the write path of the review workflow
// and the read path of every query.
package feedback

import (
	"context"

	"github.com/thinktank-analytics/thinktank-engine/pkg/models"
)

// ApprovedBy is recorded on every approved-logic entry. Approval always
// comes through the human review endpoint, never from the model.
const ApprovedBy = "human_expert"

// Store is the persistence surface for feedback records and approved logic.
type Store interface {
	// StoreFeedback captures a new pending record and returns its id.
	// IDs are time-based and strictly increasing.
	StoreFeedback(ctx context.Context, userID, originalQuery, feedbackText string, fc models.FeedbackContext) (int64, error)

	// Get returns the record or apperrors.ErrNotFound.
	Get(ctx context.Context, id int64) (*models.Feedback, error)

	// UpdateStatus moves a pending record to approved or rejected. Approval
	// of a record whose context carries SQL appends exactly one approved-logic
	// entry. Re-applying the same terminal status returns (true, nil) without
	// side effects; switching between terminal statuses returns
	// apperrors.ErrStatusFinalized.
	UpdateStatus(ctx context.Context, id int64, status string) (bool, error)

	// Pending lists records still awaiting review, oldest first.
	Pending(ctx context.Context) ([]models.Feedback, error)

	// ApprovedLogic lists every approved entry in approval order.
	ApprovedLogic(ctx context.Context) ([]models.ApprovedLogic, error)
}
