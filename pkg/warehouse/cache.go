package warehouse

import (
	"crypto/sha256"
	"encoding/hex"
	"sync"
	"time"

	"github.com/thinktank-analytics/thinktank-engine/pkg/models"
)

// cacheKey is the SHA-256 of the normalized SQL text, so identical queries
// share an entry regardless of who asked.
func cacheKey(sqlText string) string {
	sum := sha256.Sum256([]byte(sqlText))
	return hex.EncodeToString(sum[:])
}

type cacheEntry struct {
	table   *models.Table
	expires time.Time
}

// resultCache is the in-process L1: a TTL map handing out deep copies.
type resultCache struct {
	mu      sync.Mutex
	entries map[string]cacheEntry
	ttl     time.Duration
	now     func() time.Time
}

func newResultCache(ttl time.Duration) *resultCache {
	return &resultCache{
		entries: make(map[string]cacheEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// get returns a clone of the cached table, never the cached pointer.
func (c *resultCache) get(key string) (*models.Table, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if c.now().After(entry.expires) {
		delete(c.entries, key)
		return nil, false
	}
	return entry.table.Clone(), true
}

// put stores a clone so later caller mutations cannot reach the cache.
func (c *resultCache) put(key string, table *models.Table) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = cacheEntry{
		table:   table.Clone(),
		expires: c.now().Add(c.ttl),
	}
}
