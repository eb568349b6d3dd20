// Package db defines the contract for PostgreSQL connection management.
package db

import (
	"context"

	"github.com/gnames/watchseed/pkg/config"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Operator manages a PostgreSQL connection pool. Exporters use Pool() for
// bulk loading with CopyFrom and for GORM AutoMigrate.
type Operator interface {
	// Connect establishes a connection pool to the database.
	Connect(context.Context, *config.DatabaseConfig) error

	// Close closes the database connection pool.
	Close() error

	// Pool returns the underlying pgxpool.Pool, or nil before Connect.
	Pool() *pgxpool.Pool

	// TableExists checks if a table exists in the public schema.
	TableExists(ctx context.Context, tableName string) (bool, error)

	// DropTables drops the given tables if they exist.
	DropTables(ctx context.Context, tables ...string) error
}
