package feedback

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/thinktank-analytics/thinktank-engine/pkg/apperrors"
	"github.com/thinktank-analytics/thinktank-engine/pkg/models"
)

func newTestStore() *MemoryStore {
	s := NewMemoryStore(zap.NewNop())
	base := time.Date(2025, 8, 31, 10, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return base }
	return s
}

func TestStoreFeedbackMonotonicIDs(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()

	// Same clock second for every call; ids must still increase.
	first, err := s.StoreFeedback(ctx, "u1", "ghi bookings", "should exclude test leads", models.FeedbackContext{})
	require.NoError(t, err)
	second, err := s.StoreFeedback(ctx, "u1", "wc revenue", "wrong", models.FeedbackContext{})
	require.NoError(t, err)

	assert.Greater(t, second, first)

	fb, err := s.Get(ctx, first)
	require.NoError(t, err)
	assert.Equal(t, models.FeedbackPending, fb.Status)
	assert.Equal(t, "ghi bookings", fb.OriginalQuery)
}

func TestGetNotFound(t *testing.T) {
	s := newTestStore()

	_, err := s.Get(context.Background(), 999)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestApproveAppendsLogicOnce(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()

	id, err := s.StoreFeedback(ctx, "u1", "ghi bookings last month",
		"should always exclude cancelled bookings",
		models.FeedbackContext{SQL: "SELECT 1", Explanation: "bookings for GHI"})
	require.NoError(t, err)

	ok, err := s.UpdateStatus(ctx, id, models.FeedbackApproved)
	require.NoError(t, err)
	assert.True(t, ok)

	logic, err := s.ApprovedLogic(ctx)
	require.NoError(t, err)
	require.Len(t, logic, 1)
	assert.Equal(t, "ghi bookings last month", logic[0].OriginalQuery)
	assert.Equal(t, "should always exclude cancelled bookings", logic[0].LogicStatement)
	assert.Equal(t, "SELECT 1", logic[0].SQL)
	assert.Equal(t, ApprovedBy, logic[0].ApprovedBy)

	// A repeated approval is a no-op, not a second entry.
	ok, err = s.UpdateStatus(ctx, id, models.FeedbackApproved)
	require.NoError(t, err)
	assert.True(t, ok)

	logic, err = s.ApprovedLogic(ctx)
	require.NoError(t, err)
	assert.Len(t, logic, 1)
}

func TestApproveWithoutContextSQL(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()

	id, err := s.StoreFeedback(ctx, "u1", "hello", "please use monthly buckets", models.FeedbackContext{})
	require.NoError(t, err)

	ok, err := s.UpdateStatus(ctx, id, models.FeedbackApproved)
	require.NoError(t, err)
	assert.True(t, ok)

	logic, err := s.ApprovedLogic(ctx)
	require.NoError(t, err)
	assert.Empty(t, logic)
}

func TestUpdateStatusTerminal(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()

	id, err := s.StoreFeedback(ctx, "u1", "q", "wrong", models.FeedbackContext{SQL: "SELECT 1"})
	require.NoError(t, err)

	ok, err := s.UpdateStatus(ctx, id, models.FeedbackRejected)
	require.NoError(t, err)
	assert.True(t, ok)

	// Flipping a rejected record to approved is refused.
	ok, err = s.UpdateStatus(ctx, id, models.FeedbackApproved)
	assert.ErrorIs(t, err, apperrors.ErrStatusFinalized)
	assert.False(t, ok)

	logic, err := s.ApprovedLogic(ctx)
	require.NoError(t, err)
	assert.Empty(t, logic)
}

func TestUpdateStatusValidation(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()

	_, err := s.UpdateStatus(ctx, 1, "escalated")
	assert.ErrorIs(t, err, apperrors.ErrInvalidStatus)

	// Records cannot be moved back to pending.
	_, err = s.UpdateStatus(ctx, 1, models.FeedbackPending)
	assert.ErrorIs(t, err, apperrors.ErrInvalidStatus)

	_, err = s.UpdateStatus(ctx, 42, models.FeedbackApproved)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestPendingExcludesReviewed(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()

	first, err := s.StoreFeedback(ctx, "u1", "q1", "f1", models.FeedbackContext{})
	require.NoError(t, err)
	second, err := s.StoreFeedback(ctx, "u2", "q2", "f2", models.FeedbackContext{})
	require.NoError(t, err)

	_, err = s.UpdateStatus(ctx, first, models.FeedbackRejected)
	require.NoError(t, err)

	pending, err := s.Pending(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, second, pending[0].ID)
}

func TestRelevantLogic(t *testing.T) {
	entries := []models.ApprovedLogic{
		{OriginalQuery: "ghi bookings last month", LogicStatement: "exclude cancelled bookings"},
		{OriginalQuery: "agent performance", LogicStatement: "use leadassignedagentname"},
	}

	rules := RelevantLogic(entries, "show me bookings for ghi")
	require.Len(t, rules, 1)
	assert.Contains(t, rules[0], "exclude cancelled bookings")

	// Short tokens never match; "me" is not a keyword.
	assert.Empty(t, RelevantLogic(entries, "me ok"))
	assert.Empty(t, RelevantLogic(nil, "bookings"))

	// Overlap against the logic statement also counts.
	rules = RelevantLogic(entries, "which agent closed most leads")
	require.Len(t, rules, 1)
	assert.Contains(t, rules[0], "agent performance")
}
