// Package database provides database connection management and utilities.
package database

import (
	"context"
	"database/sql"
	"time"

	// PostgreSQL driver registration.
	_ "github.com/lib/pq"

	apperrors "github.com/idforge/credentials/internal/errors"
)

// Options configures the database connection pool.
type Options struct {
	ConnectionString   string
	MaxOpenConnections int
	MaxIdleConnections int
	ConnMaxLifetime    time.Duration
}

// Open creates a PostgreSQL connection pool and verifies connectivity.
func Open(ctx context.Context, opts Options) (*sql.DB, error) {
	db, err := sql.Open("postgres", opts.ConnectionString)
	if err != nil {
		return nil, apperrors.Technical(err, "failed to open database")
	}

	db.SetMaxOpenConns(opts.MaxOpenConnections)
	db.SetMaxIdleConns(opts.MaxIdleConnections)
	db.SetConnMaxLifetime(opts.ConnMaxLifetime)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, apperrors.Technical(err, "failed to ping database")
	}

	return db, nil
}

// Querier represents a database query executor (either *sql.DB or *sql.Tx).
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}
