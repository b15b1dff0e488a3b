package warehouse

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/thinktank-analytics/thinktank-engine/pkg/apperrors"
	"github.com/thinktank-analytics/thinktank-engine/pkg/logging"
	"github.com/thinktank-analytics/thinktank-engine/pkg/models"
)

const (
	defaultCacheTTL     = 5 * time.Minute
	defaultQueryTimeout = 60 * time.Second
)

// Config tunes the gateway.
type Config struct {
	CacheTTL     time.Duration
	QueryTimeout time.Duration
}

// Gateway validates, executes, and caches analytics queries. The db handle
// is a database/sql connection using the trino driver; it may be nil in
// storeless test setups, in which case only cache hits succeed.
type Gateway struct {
	db      *sql.DB
	local   *resultCache
	shared  *redisCache
	timeout time.Duration
	logger  *zap.Logger
}

// NewGateway creates a gateway. redisClient may be nil to run without the
// shared cache layer.
func NewGateway(db *sql.DB, redisClient *redis.Client, cfg Config, logger *zap.Logger) *Gateway {
	if cfg.CacheTTL == 0 {
		cfg.CacheTTL = defaultCacheTTL
	}
	if cfg.QueryTimeout == 0 {
		cfg.QueryTimeout = defaultQueryTimeout
	}

	g := &Gateway{
		db:      db,
		local:   newResultCache(cfg.CacheTTL),
		timeout: cfg.QueryTimeout,
		logger:  logger.Named("warehouse"),
	}
	if redisClient != nil {
		g.shared = &redisCache{client: redisClient, ttl: cfg.CacheTTL, logger: g.logger}
	}
	return g
}

// Run validates and executes a query. With useCache, a hit returns a deep
// copy of the cached table and skips the warehouse entirely.
func (g *Gateway) Run(ctx context.Context, sqlText string, useCache bool) (*models.Table, error) {
	normalized, err := ValidateQuery(sqlText)
	if err != nil {
		return nil, err
	}

	key := cacheKey(normalized)
	if useCache {
		if table, ok := g.local.get(key); ok {
			g.logger.Debug("query cache hit", zap.String("key", key[:12]))
			return table, nil
		}
		if g.shared != nil {
			if table, ok := g.shared.get(ctx, key); ok {
				g.local.put(key, table)
				return table.Clone(), nil
			}
		}
	}

	if g.db == nil {
		return nil, apperrors.ErrNoConnection
	}

	queryCtx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	start := time.Now()
	rows, err := g.db.QueryContext(queryCtx, normalized)
	if err != nil {
		g.logger.Error("warehouse query failed",
			zap.String("query", logging.SanitizeQuery(normalized)),
			zap.Duration("elapsed", time.Since(start)),
			zap.Error(err))
		return nil, fmt.Errorf("execute query: %w", err)
	}
	defer rows.Close()

	table, err := scanTable(rows)
	if err != nil {
		return nil, err
	}

	g.logger.Info("warehouse query completed",
		zap.Int("rows", len(table.Rows)),
		zap.Duration("elapsed", time.Since(start)))

	g.local.put(key, table)
	if g.shared != nil {
		g.shared.put(ctx, key, table)
	}
	return table, nil
}

// scanTable drains rows into a Table, normalizing []byte cells to strings.
func scanTable(rows *sql.Rows) (*models.Table, error) {
	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("read columns: %w", err)
	}

	table := &models.Table{Columns: cols}
	for rows.Next() {
		values := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		for i, v := range values {
			if b, ok := v.([]byte); ok {
				values[i] = string(b)
			}
		}
		table.Rows = append(table.Rows, values)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}
	return table, nil
}
