// Package db constructs the application's database handle.
package db

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
)

// Open connects to Postgres and wraps the connection in a bun.DB. The
// handle is constructed once at startup and passed to the repository.
func Open(ctx context.Context, databaseURL string) (*bun.DB, error) {
	if databaseURL == "" {
		return nil, fmt.Errorf("database URL is not configured")
	}
	sqldb, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open db connection: %w", err)
	}
	if err := sqldb.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping db: %w", err)
	}
	return bun.NewDB(sqldb, pgdialect.New()), nil
}
