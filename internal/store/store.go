// Package store defines the persistence contracts for the credential
// service and the sentinel errors shared by all implementations. The
// interfaces accept a context on every operation so in-flight requests
// can abort pending lookups, and they surface conflicts and missing
// records as typed errors rather than transport concerns.
package store

import (
	"context"
	"database/sql"
)

// DBTX is the query surface the user and API key stores run on. Both
// *sql.DB and *sql.Tx satisfy it, so a store constructed over a
// transaction (seeding, tests) behaves identically to one over the
// pooled connection.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	PrepareContext(ctx context.Context, query string) (*sql.Stmt, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}
