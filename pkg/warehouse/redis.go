package warehouse

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/thinktank-analytics/thinktank-engine/pkg/models"
)

const redisKeyPrefix = "queryresult:"

// redisCache is the optional shared L2. All failures are soft: a broken
// redis degrades to warehouse reads, never to request errors.
type redisCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

func (r *redisCache) get(ctx context.Context, key string) (*models.Table, bool) {
	raw, err := r.client.Get(ctx, redisKeyPrefix+key).Bytes()
	if err != nil {
		if err != redis.Nil {
			r.logger.Debug("redis cache read failed", zap.Error(err))
		}
		return nil, false
	}

	var table models.Table
	if err := json.Unmarshal(raw, &table); err != nil {
		r.logger.Debug("redis cache entry corrupt", zap.Error(err))
		return nil, false
	}
	return &table, true
}

func (r *redisCache) put(ctx context.Context, key string, table *models.Table) {
	raw, err := json.Marshal(table)
	if err != nil {
		return
	}
	if err := r.client.Set(ctx, redisKeyPrefix+key, raw, r.ttl).Err(); err != nil {
		r.logger.Debug("redis cache write failed", zap.Error(err))
	}
}
