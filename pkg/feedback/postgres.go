package feedback

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/thinktank-analytics/thinktank-engine/pkg/apperrors"
	"github.com/thinktank-analytics/thinktank-engine/pkg/models"
)

// PostgresStore persists feedback in the application database so review
// state survives restarts and is shared across instances.
type PostgresStore struct {
	pool   *pgxpool.Pool
	logger *zap.Logger
	now    func() time.Time
}

var _ Store = (*PostgresStore)(nil)

// NewPostgresStore creates a store backed by the given pool.
func NewPostgresStore(pool *pgxpool.Pool, logger *zap.Logger) *PostgresStore {
	return &PostgresStore{
		pool:   pool,
		logger: logger.Named("feedback"),
		now:    time.Now,
	}
}

func (s *PostgresStore) StoreFeedback(ctx context.Context, userID, originalQuery, feedbackText string, fc models.FeedbackContext) (int64, error) {
	contextJSON, err := json.Marshal(fc)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal feedback context: %w", err)
	}

	now := s.now()

	// Time-based id, bumped past the current maximum so bursts within the
	// same second still get distinct, increasing ids.
	query := `
		INSERT INTO engine_feedback (id, user_id, original_query, feedback_text, context, status, created_at, updated_at)
		SELECT GREATEST($1::bigint, COALESCE(MAX(id) + 1, $1::bigint)), $2, $3, $4, $5, $6, $7, $7
		FROM engine_feedback
		RETURNING id`

	var id int64
	err = s.pool.QueryRow(ctx, query,
		now.Unix(), userID, originalQuery, feedbackText, contextJSON,
		models.FeedbackPending, now,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to store feedback: %w", err)
	}

	s.logger.Info("feedback stored",
		zap.Int64("feedback_id", id),
		zap.String("user_id", userID))
	return id, nil
}

func (s *PostgresStore) Get(ctx context.Context, id int64) (*models.Feedback, error) {
	query := `
		SELECT id, user_id, original_query, feedback_text, context, status, created_at, updated_at
		FROM engine_feedback
		WHERE id = $1`

	fb, err := scanFeedback(s.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get feedback: %w", err)
	}
	return fb, nil
}

func (s *PostgresStore) UpdateStatus(ctx context.Context, id int64, status string) (bool, error) {
	if status != models.FeedbackApproved && status != models.FeedbackRejected {
		return false, apperrors.ErrInvalidStatus
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		SELECT id, user_id, original_query, feedback_text, context, status, created_at, updated_at
		FROM engine_feedback
		WHERE id = $1
		FOR UPDATE`

	fb, err := scanFeedback(tx.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, apperrors.ErrNotFound
		}
		return false, fmt.Errorf("failed to lock feedback: %w", err)
	}

	if fb.Status == status {
		return true, nil
	}
	if fb.Status != models.FeedbackPending {
		return false, apperrors.ErrStatusFinalized
	}

	now := s.now()
	_, err = tx.Exec(ctx,
		`UPDATE engine_feedback SET status = $2, updated_at = $3 WHERE id = $1`,
		id, status, now)
	if err != nil {
		return false, fmt.Errorf("failed to update feedback status: %w", err)
	}

	if status == models.FeedbackApproved && fb.Context.SQL != "" {
		_, err = tx.Exec(ctx, `
			INSERT INTO engine_approved_logic (original_query, logic_statement, sql, explanation, approved_by, approved_at)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			fb.OriginalQuery, fb.FeedbackText, fb.Context.SQL, fb.Context.Explanation,
			ApprovedBy, now)
		if err != nil {
			return false, fmt.Errorf("failed to store approved logic: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return false, fmt.Errorf("failed to commit status update: %w", err)
	}

	s.logger.Info("feedback status updated",
		zap.Int64("feedback_id", id),
		zap.String("status", status))
	return true, nil
}

func (s *PostgresStore) Pending(ctx context.Context) ([]models.Feedback, error) {
	query := `
		SELECT id, user_id, original_query, feedback_text, context, status, created_at, updated_at
		FROM engine_feedback
		WHERE status = $1
		ORDER BY id`

	rows, err := s.pool.Query(ctx, query, models.FeedbackPending)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending feedback: %w", err)
	}
	defer rows.Close()

	var pending []models.Feedback
	for rows.Next() {
		fb, err := scanFeedback(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan feedback: %w", err)
		}
		pending = append(pending, *fb)
	}
	return pending, rows.Err()
}

func (s *PostgresStore) ApprovedLogic(ctx context.Context) ([]models.ApprovedLogic, error) {
	query := `
		SELECT original_query, logic_statement, sql, explanation, approved_by, approved_at
		FROM engine_approved_logic
		ORDER BY id`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list approved logic: %w", err)
	}
	defer rows.Close()

	var logic []models.ApprovedLogic
	for rows.Next() {
		var entry models.ApprovedLogic
		if err := rows.Scan(&entry.OriginalQuery, &entry.LogicStatement, &entry.SQL,
			&entry.Explanation, &entry.ApprovedBy, &entry.ApprovedAt); err != nil {
			return nil, fmt.Errorf("failed to scan approved logic: %w", err)
		}
		logic = append(logic, entry)
	}
	return logic, rows.Err()
}

func scanFeedback(row pgx.Row) (*models.Feedback, error) {
	var fb models.Feedback
	var contextJSON []byte
	if err := row.Scan(&fb.ID, &fb.UserID, &fb.OriginalQuery, &fb.FeedbackText,
		&contextJSON, &fb.Status, &fb.CreatedAt, &fb.UpdatedAt); err != nil {
		return nil, err
	}
	if len(contextJSON) > 0 {
		if err := json.Unmarshal(contextJSON, &fb.Context); err != nil {
			return nil, fmt.Errorf("failed to unmarshal feedback context: %w", err)
		}
	}
	return &fb, nil
}
