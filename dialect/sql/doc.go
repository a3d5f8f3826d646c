// Package sql runs the storage side of cardorm over database/sql.
//
// # Driver
//
// Driver wraps a *sql.DB and reports the dialect derived from the
// database/sql driver name ("pgx" is Postgres, "sqlite3" is SQLite):
//
//	drv, err := sql.Open("sqlite", "file:cards.db")
//
// # Scopes and sessions
//
// Scope implements dialect.Scope. Each Create acquires one pooled connection
// and the returned Session keeps it until Close:
//
//	scope := sql.NewScope(drv, sql.WithLogger(logger), sql.WithSlowQueryLog())
//	sess, err := scope.Create(ctx)
//	if err != nil {
//	    return err
//	}
//	defer sess.Close()
//	v, err := sess.Scalar(ctx, "SELECT Number FROM Contracts WHERE ID=@ID", []any{sql.Named("ID", id)})
//
// Queries are written with "@name" placeholders. Rebind rewrites them to
// "$n" for Postgres and "?" for MySQL; SQLite binds them by name.
//
// # Statistics
//
// Every scalar query is counted in a QueryStats, and queries slower than the
// configured threshold are reported to a SlowQueryHook.
//
// SQL fragments are built by the sibling package part.
package sql
