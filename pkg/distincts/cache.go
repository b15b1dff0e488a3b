// Package distincts maintains a slow-moving cache of distinct values for a
// shortlist of categorical columns. The values feed prompt context and the
// fuzzy filter fallback; staleness is acceptable, a thundering herd of
// DISTINCT scans is not.
package distincts

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/thinktank-analytics/thinktank-engine/pkg/models"
	"github.com/thinktank-analytics/thinktank-engine/pkg/schema"
)

// QueryRunner is the warehouse surface the cache needs.
type QueryRunner interface {
	Run(ctx context.Context, sqlText string, useCache bool) (*models.Table, error)
}

// Default shortlist probed when no whitelist is configured.
var defaultColumns = []string{
	"mkt_category",
	"leadcreationsource",
	"booking_status",
	"leadassignedagentname",
}

// Config tunes the cache.
type Config struct {
	TTL          time.Duration
	Limit        int      // per-column LIMIT on the DISTINCT scan
	MaxColumns   int      // cap on how many columns are probed
	Whitelist    []string // overrides the default shortlist when set
	SnapshotPath string   // optional JSON snapshot surviving restarts
}

// Cache holds the distinct values and the refresh state.
type Cache struct {
	cfg    Config
	runner QueryRunner
	logger *zap.Logger

	mu         sync.Mutex
	data       map[string][]string
	lastLoaded time.Time
	refreshing bool

	now func() time.Time
}

// New creates a cache. Zero config fields get conservative defaults.
func New(runner QueryRunner, cfg Config, logger *zap.Logger) *Cache {
	if cfg.TTL == 0 {
		cfg.TTL = 6 * time.Hour
	}
	if cfg.Limit == 0 {
		cfg.Limit = 200
	}
	if cfg.MaxColumns == 0 {
		cfg.MaxColumns = 12
	}
	return &Cache{
		cfg:    cfg,
		runner: runner,
		logger: logger.Named("distincts"),
		data:   map[string][]string{},
		now:    time.Now,
	}
}

// EffectiveColumns returns the columns considered for distincts and fuzzy
// guessing: the whitelist filtered against the registry, or the default
// shortlist padded with other categoricals, capped at MaxColumns.
func (c *Cache) EffectiveColumns() []string {
	var cols []string
	if len(c.cfg.Whitelist) > 0 {
		for _, col := range c.cfg.Whitelist {
			if schema.Exists(col) {
				cols = append(cols, col)
			}
		}
	} else {
		seen := make(map[string]struct{})
		for _, col := range defaultColumns {
			if schema.Exists(col) {
				cols = append(cols, col)
				seen[col] = struct{}{}
			}
		}
		for _, col := range schema.CategoricalColumns() {
			if _, dup := seen[col]; !dup {
				cols = append(cols, col)
			}
		}
	}
	if len(cols) > c.cfg.MaxColumns {
		cols = cols[:c.cfg.MaxColumns]
	}
	return cols
}

// Get returns the current distinct-value map. A stale or empty cache first
// tries the disk snapshot, then triggers one background refresh and returns
// the last known values without blocking.
func (c *Cache) Get() map[string][]string {
	c.mu.Lock()
	if len(c.data) == 0 || !c.freshLocked() {
		c.loadSnapshotLocked()
	}
	if len(c.data) > 0 && c.freshLocked() {
		out := copyData(c.data)
		c.mu.Unlock()
		return out
	}
	out := copyData(c.data)
	c.mu.Unlock()

	c.RefreshAsync()
	return out
}

// RefreshAsync starts a background rebuild unless one is already in flight.
// Returns whether a refresh was started.
func (c *Cache) RefreshAsync() bool {
	c.mu.Lock()
	if c.refreshing {
		c.mu.Unlock()
		return false
	}
	c.refreshing = true
	c.mu.Unlock()

	go func() {
		defer func() {
			c.mu.Lock()
			c.refreshing = false
			c.mu.Unlock()
		}()

		fresh := c.buildFresh(context.Background())

		c.mu.Lock()
		c.data = fresh
		c.lastLoaded = c.now()
		c.mu.Unlock()

		c.saveSnapshot(fresh)
	}()
	return true
}

// buildFresh scans each effective column. Failures are isolated per column:
// one broken scan yields an empty list, not a failed refresh.
func (c *Cache) buildFresh(ctx context.Context) map[string][]string {
	fresh := make(map[string][]string)
	for _, col := range c.EffectiveColumns() {
		query := fmt.Sprintf(
			"SELECT DISTINCT %s FROM %s WHERE %s IS NOT NULL LIMIT %d",
			col, schema.Table, col, c.cfg.Limit)

		table, err := c.runner.Run(ctx, query, false)
		if err != nil {
			c.logger.Warn("distinct scan failed",
				zap.String("column", col), zap.Error(err))
			fresh[col] = []string{}
			continue
		}

		var values []string
		for _, row := range table.Rows {
			if len(row) == 0 || row[0] == nil {
				continue
			}
			s := fmt.Sprintf("%v", row[0])
			if s != "" && s != "null" && s != "NULL" {
				values = append(values, s)
			}
		}
		fresh[col] = values
	}
	return fresh
}

func (c *Cache) freshLocked() bool {
	return c.now().Sub(c.lastLoaded) < c.cfg.TTL
}

type snapshot struct {
	Timestamp int64               `json:"timestamp"`
	Data      map[string][]string `json:"data"`
}

func (c *Cache) loadSnapshotLocked() {
	if c.cfg.SnapshotPath == "" {
		return
	}
	raw, err := os.ReadFile(c.cfg.SnapshotPath)
	if err != nil {
		return
	}
	var snap snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		c.logger.Warn("distinct snapshot corrupt", zap.Error(err))
		return
	}
	c.data = snap.Data
	c.lastLoaded = time.Unix(snap.Timestamp, 0)
}

func (c *Cache) saveSnapshot(data map[string][]string) {
	if c.cfg.SnapshotPath == "" {
		return
	}
	raw, err := json.Marshal(snapshot{Timestamp: c.now().Unix(), Data: data})
	if err != nil {
		return
	}
	if err := os.MkdirAll(filepath.Dir(c.cfg.SnapshotPath), 0o755); err != nil {
		return
	}
	if err := os.WriteFile(c.cfg.SnapshotPath, raw, 0o644); err != nil {
		c.logger.Warn("distinct snapshot write failed", zap.Error(err))
	}
}

func copyData(data map[string][]string) map[string][]string {
	out := make(map[string][]string, len(data))
	for col, vals := range data {
		out[col] = append([]string(nil), vals...)
	}
	return out
}
