package subscriptions

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/thinktank-analytics/thinktank-engine/pkg/apperrors"
	"github.com/thinktank-analytics/thinktank-engine/pkg/models"
)

// PostgresStore persists subscriptions in the application database.
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
		logger: logger.Named("subscriptions"),
		now:    time.Now,
	}
}

const subscriptionColumns = "id, user_id, channel, sql, explanation, frequency, created_at, last_run_at, next_run_at"

func (s *PostgresStore) Add(ctx context.Context, userID, channel, sqlText, explanation, frequency string) (int64, error) {
	if !ValidFrequency(frequency) {
		return 0, apperrors.ErrInvalidFrequency
	}

	now := s.now()
	query := `
		INSERT INTO engine_subscriptions (id, user_id, channel, sql, explanation, frequency, created_at, next_run_at)
		SELECT GREATEST($1::bigint, COALESCE(MAX(id) + 1, $1::bigint)), $2, $3, $4, $5, $6, $7, $8
		FROM engine_subscriptions
		RETURNING id`

	var id int64
	err := s.pool.QueryRow(ctx, query,
		now.Unix(), userID, channel, sqlText, explanation, frequency,
		now, NextRun(frequency, now),
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to add subscription: %w", err)
	}

	s.logger.Info("subscription added",
		zap.Int64("subscription_id", id),
		zap.String("user_id", userID),
		zap.String("frequency", frequency))
	return id, nil
}

func (s *PostgresStore) Due(ctx context.Context, now time.Time) ([]models.Subscription, error) {
	query := fmt.Sprintf(
		"SELECT %s FROM engine_subscriptions WHERE next_run_at <= $1 ORDER BY id",
		subscriptionColumns)
	return s.list(ctx, query, now)
}

func (s *PostgresStore) MarkRan(ctx context.Context, id int64, now time.Time) error {
	var frequency string
	err := s.pool.QueryRow(ctx,
		`SELECT frequency FROM engine_subscriptions WHERE id = $1`, id).Scan(&frequency)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("failed to load subscription: %w", err)
	}

	_, err = s.pool.Exec(ctx,
		`UPDATE engine_subscriptions SET last_run_at = $2, next_run_at = $3 WHERE id = $1`,
		id, now, NextRun(frequency, now))
	if err != nil {
		return fmt.Errorf("failed to mark subscription ran: %w", err)
	}
	return nil
}

func (s *PostgresStore) Remove(ctx context.Context, id int64) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM engine_subscriptions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to remove subscription: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (s *PostgresStore) ForUser(ctx context.Context, userID string) ([]models.Subscription, error) {
	query := fmt.Sprintf(
		"SELECT %s FROM engine_subscriptions WHERE user_id = $1 ORDER BY id",
		subscriptionColumns)
	return s.list(ctx, query, userID)
}

func (s *PostgresStore) list(ctx context.Context, query string, args ...any) ([]models.Subscription, error) {
	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list subscriptions: %w", err)
	}
	defer rows.Close()

	var subs []models.Subscription
	for rows.Next() {
		var sub models.Subscription
		if err := rows.Scan(&sub.ID, &sub.UserID, &sub.Channel, &sub.SQL, &sub.Explanation,
			&sub.Frequency, &sub.CreatedAt, &sub.LastRunAt, &sub.NextRunAt); err != nil {
			return nil, fmt.Errorf("failed to scan subscription: %w", err)
		}
		subs = append(subs, sub)
	}
	return subs, rows.Err()
}
