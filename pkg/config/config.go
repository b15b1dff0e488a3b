// Package config loads service configuration from config.yaml with
// environment variable overrides. Secrets (passwords, API keys, DSNs
// with embedded credentials) must only come from environment variables.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds all configuration for thinktank-engine.
// Environment variables always override YAML values for fields that
// support both.
type Config struct {
	// Server configuration
	BindAddr string `yaml:"bind_addr" env:"BIND_ADDR" env-default:"127.0.0.1"`
	Port     string `yaml:"port" env:"PORT" env-default:"8080"`
	Env      string `yaml:"env" env:"ENVIRONMENT" env-default:"local"`
	Version  string `yaml:"-"` // Set at load time, not from config

	LLM          LLMConfig          `yaml:"llm"`
	Database     DatabaseConfig     `yaml:"database"`
	Warehouse    WarehouseConfig    `yaml:"warehouse"`
	Redis        RedisConfig        `yaml:"redis"`
	AgentTracker AgentTrackerConfig `yaml:"agent_tracker"`
	Distincts    DistinctsConfig    `yaml:"distincts"`
	Products     ProductsConfig     `yaml:"products"`
	Results      ResultsConfig      `yaml:"results"`
}

// LLMConfig selects and configures the intent extraction model.
type LLMConfig struct {
	Provider string `yaml:"provider" env:"LLM_PROVIDER" env-default:"openai"`
	Endpoint string `yaml:"endpoint" env:"LLM_ENDPOINT" env-default:""`
	Model    string `yaml:"model" env:"LLM_MODEL" env-default:"gpt-4o-mini"`
	APIKey   string `yaml:"-" env:"LLM_API_KEY"` // Secret - not in YAML
}

// DatabaseConfig holds the application PostgreSQL configuration. This
// database stores feedback, approved logic, and subscriptions; the
// analytical warehouse is configured separately.
type DatabaseConfig struct {
	Host           string `yaml:"host" env:"PGHOST" env-default:"localhost"`
	Port           int    `yaml:"port" env:"PGPORT" env-default:"5432"`
	User           string `yaml:"user" env:"PGUSER" env-default:"thinktank"`
	Password       string `yaml:"-" env:"PGPASSWORD"` // Secret - not in YAML
	Database       string `yaml:"database" env:"PGDATABASE" env-default:"thinktank_engine"`
	SSLMode        string `yaml:"ssl_mode" env:"PGSSLMODE" env-default:"disable"`
	MaxConnections int32  `yaml:"max_connections" env:"PGMAX_CONNECTIONS" env-default:"25"`
	MigrationsPath string `yaml:"migrations_path" env:"PGMIGRATIONS_PATH" env-default:"migrations"`
}

// ConnectionString returns a PostgreSQL connection string.
func (c *DatabaseConfig) ConnectionString() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Database, c.SSLMode,
	)
}

// WarehouseConfig holds the analytical warehouse (Trino) configuration.
type WarehouseConfig struct {
	// DSN carries credentials, so it is environment-only.
	// Format: http[s]://user[:pass]@host:port?catalog=...&schema=...
	DSN                 string `yaml:"-" env:"TRINO_DSN"`
	CacheTTLSeconds     int    `yaml:"cache_ttl_seconds" env:"WAREHOUSE_CACHE_TTL_SECONDS" env-default:"300"`
	QueryTimeoutSeconds int    `yaml:"query_timeout_seconds" env:"WAREHOUSE_QUERY_TIMEOUT_SECONDS" env-default:"60"`
}

// CacheTTL returns the query result cache TTL as a duration.
func (c *WarehouseConfig) CacheTTL() time.Duration {
	return time.Duration(c.CacheTTLSeconds) * time.Second
}

// QueryTimeout returns the per-query execution timeout as a duration.
func (c *WarehouseConfig) QueryTimeout() time.Duration {
	return time.Duration(c.QueryTimeoutSeconds) * time.Second
}

// RedisConfig holds the optional shared query cache configuration.
// An empty host disables Redis; the in-process cache still applies.
type RedisConfig struct {
	Host     string `yaml:"host" env:"REDIS_HOST" env-default:""`
	Port     int    `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
	Password string `yaml:"-" env:"REDIS_PASSWORD"` // Secret - not in YAML
	DB       int    `yaml:"db" env:"REDIS_DB" env-default:"0"`
}

// Enabled reports whether a Redis endpoint is configured.
func (c *RedisConfig) Enabled() bool {
	return c.Host != ""
}

// Addr returns the host:port address for the Redis client.
func (c *RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// AgentTrackerConfig points at the internal agent realtime status API.
type AgentTrackerConfig struct {
	BaseURL string `yaml:"base_url" env:"AGENT_TRACKER_BASE_URL" env-default:""`
}

// DistinctsConfig tunes the distinct value cache used for entity
// grounding in SQL generation.
type DistinctsConfig struct {
	TTLMinutes   int    `yaml:"ttl_minutes" env:"DISTINCTS_TTL_MINUTES" env-default:"360"`
	Limit        int    `yaml:"limit" env:"DISTINCTS_LIMIT" env-default:"200"`
	MaxColumns   int    `yaml:"max_columns" env:"DISTINCTS_MAX_COLUMNS" env-default:"12"`
	WhitelistStr string `yaml:"whitelist" env:"DISTINCTS_WHITELIST" env-default:""`
	SnapshotPath string `yaml:"snapshot_path" env:"DISTINCTS_SNAPSHOT_PATH" env-default:""`
}

// TTL returns the cache TTL as a duration.
func (c *DistinctsConfig) TTL() time.Duration {
	return time.Duration(c.TTLMinutes) * time.Minute
}

// Whitelist returns the parsed comma-separated column whitelist.
func (c *DistinctsConfig) Whitelist() []string {
	if c.WhitelistStr == "" {
		return nil
	}
	var cols []string
	for _, col := range strings.Split(c.WhitelistStr, ",") {
		if col = strings.TrimSpace(col); col != "" {
			cols = append(cols, col)
		}
	}
	return cols
}

// ProductsConfig holds product alias resolution settings.
type ProductsConfig struct {
	// AliasOverridesPath optionally points at a YAML file of extra
	// alias -> product id mappings merged over the built-in set.
	AliasOverridesPath string `yaml:"alias_overrides_path" env:"PRODUCT_ALIAS_OVERRIDES_PATH" env-default:""`
}

// ResultsConfig tunes retention of stored query results.
type ResultsConfig struct {
	TTLHours int `yaml:"ttl_hours" env:"RESULTS_TTL_HOURS" env-default:"24"`
}

// TTL returns the result retention window as a duration.
func (c *ResultsConfig) TTL() time.Duration {
	return time.Duration(c.TTLHours) * time.Hour
}

// Load reads configuration from config.yaml with environment variable
// overrides. The version parameter is injected at build time and set on
// the returned Config.
func Load(version string) (*Config, error) {
	cfg := &Config{
		Version: version,
	}

	if err := cleanenv.ReadConfig("config.yaml", cfg); err != nil {
		return nil, fmt.Errorf("failed to read config.yaml: %w", err)
	}

	return cfg, nil
}
