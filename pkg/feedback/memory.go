package feedback

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/thinktank-analytics/thinktank-engine/pkg/apperrors"
	"github.com/thinktank-analytics/thinktank-engine/pkg/models"
)

// MemoryStore keeps feedback in process memory. It backs single-instance
// deployments and tests; multi-instance deployments use PostgresStore.
type MemoryStore struct {
	mu      sync.Mutex
	records map[int64]*models.Feedback
	order   []int64
	logic   []models.ApprovedLogic
	lastID  int64

	logger *zap.Logger
	now    func() time.Time
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore(logger *zap.Logger) *MemoryStore {
	return &MemoryStore{
		records: make(map[int64]*models.Feedback),
		logger:  logger.Named("feedback"),
		now:     time.Now,
	}
}

func (s *MemoryStore) StoreFeedback(ctx context.Context, userID, originalQuery, feedbackText string, fc models.FeedbackContext) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Unix-second ids collide under bursts; bump past the last issued id.
	id := s.now().Unix()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id

	now := s.now()
	s.records[id] = &models.Feedback{
		ID:            id,
		UserID:        userID,
		OriginalQuery: originalQuery,
		FeedbackText:  feedbackText,
		Context:       fc,
		Status:        models.FeedbackPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	s.order = append(s.order, id)

	s.logger.Info("feedback stored",
		zap.Int64("feedback_id", id),
		zap.String("user_id", userID))
	return id, nil
}

func (s *MemoryStore) Get(ctx context.Context, id int64) (*models.Feedback, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	fb, ok := s.records[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	out := *fb
	return &out, nil
}

func (s *MemoryStore) UpdateStatus(ctx context.Context, id int64, status string) (bool, error) {
	if status != models.FeedbackApproved && status != models.FeedbackRejected {
		return false, apperrors.ErrInvalidStatus
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	fb, ok := s.records[id]
	if !ok {
		return false, apperrors.ErrNotFound
	}
	if fb.Status == status {
		return true, nil
	}
	if fb.Status != models.FeedbackPending {
		return false, apperrors.ErrStatusFinalized
	}

	fb.Status = status
	fb.UpdatedAt = s.now()

	if status == models.FeedbackApproved && fb.Context.SQL != "" {
		s.logic = append(s.logic, models.ApprovedLogic{
			OriginalQuery:  fb.OriginalQuery,
			LogicStatement: fb.FeedbackText,
			SQL:            fb.Context.SQL,
			Explanation:    fb.Context.Explanation,
			ApprovedBy:     ApprovedBy,
			ApprovedAt:     fb.UpdatedAt,
		})
	}

	s.logger.Info("feedback status updated",
		zap.Int64("feedback_id", id),
		zap.String("status", status))
	return true, nil
}

func (s *MemoryStore) Pending(ctx context.Context) ([]models.Feedback, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var pending []models.Feedback
	for _, id := range s.order {
		if fb := s.records[id]; fb.Status == models.FeedbackPending {
			pending = append(pending, *fb)
		}
	}
	return pending, nil
}

func (s *MemoryStore) ApprovedLogic(ctx context.Context) ([]models.ApprovedLogic, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]models.ApprovedLogic(nil), s.logic...), nil
}
