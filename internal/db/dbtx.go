package db

import (
	"context"
	"database/sql"
)

// DBTX is the common interface satisfied by both *DB and *Tx.
// Repository implementations depend on this interface instead of the
// concrete *DB, enabling transactional composition.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Compile-time verification that *DB and *Tx satisfy DBTX.
var (
	_ DBTX = (*DB)(nil)
	_ DBTX = (*Tx)(nil)
)
