package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "bind_addr: 0.0.0.0\n")
	t.Chdir(dir)

	cfg, err := Load("test-version")
	require.NoError(t, err)

	assert.Equal(t, "test-version", cfg.Version)
	assert.Equal(t, "0.0.0.0", cfg.BindAddr)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "openai", cfg.LLM.Provider)
	assert.Equal(t, 300*time.Second, cfg.Warehouse.CacheTTL())
	assert.Equal(t, 60*time.Second, cfg.Warehouse.QueryTimeout())
	assert.Equal(t, 6*time.Hour, cfg.Distincts.TTL())
	assert.Equal(t, 24*time.Hour, cfg.Results.TTL())
	assert.False(t, cfg.Redis.Enabled())
}

func TestLoadEnvOverridesYAML(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "port: \"9000\"\nredis:\n  host: cache.internal\n")
	t.Chdir(dir)
	t.Setenv("PORT", "9100")
	t.Setenv("REDIS_PORT", "6380")
	t.Setenv("TRINO_DSN", "http://analyst@trino.internal:8080?catalog=hive")

	cfg, err := Load("v1")
	require.NoError(t, err)

	assert.Equal(t, "9100", cfg.Port)
	assert.True(t, cfg.Redis.Enabled())
	assert.Equal(t, "cache.internal:6380", cfg.Redis.Addr())
	assert.Equal(t, "http://analyst@trino.internal:8080?catalog=hive", cfg.Warehouse.DSN)
}

func TestConnectionString(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "db.internal",
		Port:     5433,
		User:     "engine",
		Password: "hunter2",
		Database: "thinktank_engine",
		SSLMode:  "require",
	}
	assert.Equal(t,
		"host=db.internal port=5433 user=engine password=hunter2 dbname=thinktank_engine sslmode=require",
		cfg.ConnectionString())
}

func TestDistinctsWhitelist(t *testing.T) {
	cfg := DistinctsConfig{WhitelistStr: "leadstatus, investmenttypeid ,utm_source"}
	assert.Equal(t, []string{"leadstatus", "investmenttypeid", "utm_source"}, cfg.Whitelist())

	cfg.WhitelistStr = ""
	assert.Nil(t, cfg.Whitelist())
}

func writeConfig(t *testing.T, dir, body string) {
	t.Helper()
	err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(body), 0o644)
	require.NoError(t, err)
}
