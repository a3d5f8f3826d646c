package dialect

import "context"

// Dialect names.
const (
	MySQL    = "mysql"
	SQLite   = "sqlite"
	Postgres = "postgres"
)

// ExecQuerier wraps the two database operations.
type ExecQuerier interface {
	// Exec executes a query that does not return records.
	Exec(ctx context.Context, query string, args, v any) error
	// Query executes a query that returns rows, typically a SELECT.
	Query(ctx context.Context, query string, args, v any) error
}

// Driver is the interface that wraps all necessary operations for storage clients.
type Driver interface {
	ExecQuerier
	// Close closes the underlying connection.
	Close() error
	// Dialect returns the dialect name of the driver.
	Dialect() string
}

// Scope acquires storage sessions.
type Scope interface {
	// Create acquires a session. The caller must Close it on every path.
	Create(ctx context.Context) (Session, error)
}

// Session is a storage handle bound to a single connection.
type Session interface {
	ExecQuerier
	// Scalar executes query and returns the first column of the first row,
	// or nil when there are no rows or the column is NULL.
	Scalar(ctx context.Context, query string, args []any) (any, error)
	// Close releases the session.
	Close() error
}
