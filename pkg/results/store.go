// Package results keeps already-masked query results addressable by an
// opaque id, so export and subscription actions can reference a result
// without re-running or re-masking the query.
package results

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/thinktank-analytics/thinktank-engine/pkg/apperrors"
	"github.com/thinktank-analytics/thinktank-engine/pkg/models"
)

// defaultTTL bounds how long a stored result stays exportable.
const defaultTTL = 24 * time.Hour

// Store holds recent results in memory. Results are ephemeral by design;
// the warehouse remains the source of truth.
type Store struct {
	mu      sync.Mutex
	results map[string]*models.Result
	ttl     time.Duration

	logger *zap.Logger
	now    func() time.Time
}

// NewStore creates a result store. A zero ttl gets the default.
func NewStore(ttl time.Duration, logger *zap.Logger) *Store {
	if ttl == 0 {
		ttl = defaultTTL
	}
	return &Store{
		results: make(map[string]*models.Result),
		ttl:     ttl,
		logger:  logger.Named("results"),
		now:     time.Now,
	}
}

// Save stores a masked table under a fresh opaque id and returns the id.
func (s *Store) Save(ctx context.Context, userID, sqlText, explanation string, table *models.Table) string {
	id := uuid.NewString()

	s.mu.Lock()
	s.pruneLocked()
	s.results[id] = &models.Result{
		ID:          id,
		UserID:      userID,
		SQL:         sqlText,
		Explanation: explanation,
		Table:       table.Clone(),
		CreatedAt:   s.now(),
	}
	s.mu.Unlock()

	s.logger.Debug("result stored",
		zap.String("result_id", id),
		zap.String("user_id", userID),
		zap.Int("rows", len(table.Rows)))
	return id
}

// Get returns the stored result or apperrors.ErrNotFound. Expired results
// count as absent.
func (s *Store) Get(ctx context.Context, id string) (*models.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, ok := s.results[id]
	if !ok || s.expiredLocked(res) {
		delete(s.results, id)
		return nil, apperrors.ErrNotFound
	}

	out := *res
	out.Table = res.Table.Clone()
	return &out, nil
}

func (s *Store) expiredLocked(res *models.Result) bool {
	return s.now().Sub(res.CreatedAt) > s.ttl
}

func (s *Store) pruneLocked() {
	for id, res := range s.results {
		if s.expiredLocked(res) {
			delete(s.results, id)
		}
	}
}
