package distincts

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/thinktank-analytics/thinktank-engine/pkg/models"
)

type fakeRunner struct {
	mu      sync.Mutex
	calls   []string
	results map[string]*models.Table
	err     error
	block   chan struct{} // when set, Run waits until closed
}

func (f *fakeRunner) Run(ctx context.Context, sqlText string, useCache bool) (*models.Table, error) {
	if f.block != nil {
		<-f.block
	}
	f.mu.Lock()
	f.calls = append(f.calls, sqlText)
	f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	for col, table := range f.results {
		if strings.Contains(sqlText, col) {
			return table, nil
		}
	}
	return &models.Table{Columns: []string{"v"}}, nil
}

func (f *fakeRunner) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func newTestCache(runner QueryRunner, cfg Config) *Cache {
	return New(runner, cfg, zap.NewNop())
}

func TestEffectiveColumnsWhitelist(t *testing.T) {
	c := newTestCache(&fakeRunner{}, Config{
		Whitelist:  []string{"mkt_category", "no_such_column", "booking_status"},
		MaxColumns: 10,
	})

	assert.Equal(t, []string{"mkt_category", "booking_status"}, c.EffectiveColumns())
}

func TestEffectiveColumnsDefaultsCapped(t *testing.T) {
	c := newTestCache(&fakeRunner{}, Config{MaxColumns: 3})

	cols := c.EffectiveColumns()
	require.Len(t, cols, 3)
	// The curated shortlist comes first.
	assert.Equal(t, []string{"mkt_category", "leadcreationsource", "booking_status"}, cols)
}

func TestRefreshSingleFlight(t *testing.T) {
	runner := &fakeRunner{block: make(chan struct{})}
	c := newTestCache(runner, Config{Whitelist: []string{"mkt_category"}})

	started := c.RefreshAsync()
	assert.True(t, started)

	// A second trigger while the first is in flight is a no-op.
	assert.False(t, c.RefreshAsync())

	close(runner.block)
	require.Eventually(t, func() bool {
		c.mu.Lock()
		defer c.mu.Unlock()
		return !c.refreshing
	}, time.Second, 5*time.Millisecond)

	assert.Equal(t, 1, runner.callCount())

	// After completion a new refresh can start.
	assert.True(t, c.RefreshAsync())
}

func TestRefreshFailureIsolation(t *testing.T) {
	runner := &fakeRunner{err: errors.New("warehouse down")}
	c := newTestCache(runner, Config{Whitelist: []string{"mkt_category", "booking_status"}})

	fresh := c.buildFresh(context.Background())
	assert.Equal(t, map[string][]string{
		"mkt_category":   {},
		"booking_status": {},
	}, fresh)
}

func TestBuildFreshCollectsValues(t *testing.T) {
	runner := &fakeRunner{results: map[string]*models.Table{
		"mkt_category": {
			Columns: []string{"mkt_category"},
			Rows:    [][]any{{"CRM"}, {nil}, {"SMS"}, {"null"}, {int64(7)}},
		},
	}}
	c := newTestCache(runner, Config{Whitelist: []string{"mkt_category"}})

	fresh := c.buildFresh(context.Background())
	assert.Equal(t, []string{"CRM", "SMS", "7"}, fresh["mkt_category"])
}

func TestSnapshotRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "distincts.json")

	base := time.Date(2025, 8, 31, 10, 0, 0, 0, time.UTC)

	writer := newTestCache(&fakeRunner{}, Config{SnapshotPath: path, Whitelist: []string{"mkt_category"}})
	writer.now = func() time.Time { return base }
	writer.saveSnapshot(map[string][]string{"mkt_category": {"CRM"}})

	reader := newTestCache(&fakeRunner{}, Config{SnapshotPath: path, Whitelist: []string{"mkt_category"}})
	reader.now = func() time.Time { return base.Add(time.Minute) }

	got := reader.Get()
	assert.Equal(t, map[string][]string{"mkt_category": {"CRM"}}, got)
}

func TestGetReturnsCopy(t *testing.T) {
	c := newTestCache(&fakeRunner{block: make(chan struct{})}, Config{Whitelist: []string{"mkt_category"}})
	c.data = map[string][]string{"mkt_category": {"CRM"}}
	c.lastLoaded = c.now()

	got := c.Get()
	got["mkt_category"][0] = "mutated"

	c.mu.Lock()
	defer c.mu.Unlock()
	assert.Equal(t, "CRM", c.data["mkt_category"][0])
}
