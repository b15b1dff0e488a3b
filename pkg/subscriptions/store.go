package subscriptions

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/thinktank-analytics/thinktank-engine/pkg/apperrors"
	"github.com/thinktank-analytics/thinktank-engine/pkg/models"
)

// Store is the persistence surface for alert subscriptions.
type Store interface {
	// Add records a subscription with its first next-run time computed from
	// the frequency. IDs are time-based and strictly increasing.
	Add(ctx context.Context, userID, channel, sqlText, explanation, frequency string) (int64, error)

	// Due lists subscriptions whose next run is at or before now.
	Due(ctx context.Context, now time.Time) ([]models.Subscription, error)

	// MarkRan stamps the last run and advances the next run.
	MarkRan(ctx context.Context, id int64, now time.Time) error

	// Remove deletes the subscription, apperrors.ErrNotFound if absent.
	Remove(ctx context.Context, id int64) error

	// ForUser lists a user's subscriptions, oldest first.
	ForUser(ctx context.Context, userID string) ([]models.Subscription, error)
}

// MemoryStore keeps subscriptions in process memory.
type MemoryStore struct {
	mu     sync.Mutex
	subs   map[int64]*models.Subscription
	order  []int64
	lastID int64

	logger *zap.Logger
	now    func() time.Time
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore(logger *zap.Logger) *MemoryStore {
	return &MemoryStore{
		subs:   make(map[int64]*models.Subscription),
		logger: logger.Named("subscriptions"),
		now:    time.Now,
	}
}

func (s *MemoryStore) Add(ctx context.Context, userID, channel, sqlText, explanation, frequency string) (int64, error) {
	if !ValidFrequency(frequency) {
		return 0, apperrors.ErrInvalidFrequency
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.now().Unix()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id

	now := s.now()
	s.subs[id] = &models.Subscription{
		ID:          id,
		UserID:      userID,
		Channel:     channel,
		SQL:         sqlText,
		Explanation: explanation,
		Frequency:   frequency,
		CreatedAt:   now,
		NextRunAt:   NextRun(frequency, now),
	}
	s.order = append(s.order, id)

	s.logger.Info("subscription added",
		zap.Int64("subscription_id", id),
		zap.String("user_id", userID),
		zap.String("frequency", frequency))
	return id, nil
}

func (s *MemoryStore) Due(ctx context.Context, now time.Time) ([]models.Subscription, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var due []models.Subscription
	for _, id := range s.order {
		if sub := s.subs[id]; !sub.NextRunAt.After(now) {
			due = append(due, *sub)
		}
	}
	return due, nil
}

func (s *MemoryStore) MarkRan(ctx context.Context, id int64, now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sub, ok := s.subs[id]
	if !ok {
		return apperrors.ErrNotFound
	}
	ran := now
	sub.LastRunAt = &ran
	sub.NextRunAt = NextRun(sub.Frequency, now)
	return nil
}

func (s *MemoryStore) Remove(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.subs[id]; !ok {
		return apperrors.ErrNotFound
	}
	delete(s.subs, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

func (s *MemoryStore) ForUser(ctx context.Context, userID string) ([]models.Subscription, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var subs []models.Subscription
	for _, id := range s.order {
		if sub := s.subs[id]; sub.UserID == userID {
			subs = append(subs, *sub)
		}
	}
	return subs, nil
}
