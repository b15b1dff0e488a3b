package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/trinodb/trino-go-client/trino"
)

// NewTrinoConnection opens a database/sql handle against the analytical
// warehouse. The DSN carries credentials and comes from the environment.
func NewTrinoConnection(ctx context.Context, dsn string) (*sql.DB, error) {
	if dsn == "" {
		return nil, fmt.Errorf("warehouse DSN is not configured")
	}

	db, err := sql.Open("trino", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open warehouse connection: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(2)
	db.SetConnMaxIdleTime(5 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping warehouse: %w", err)
	}

	return db, nil
}
