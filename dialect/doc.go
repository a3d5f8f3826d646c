// Package dialect defines the storage capability consumed by cardorm.
//
// # Supported Dialects
//
//	dialect.Postgres = "postgres"
//	dialect.MySQL    = "mysql"
//	dialect.SQLite   = "sqlite"
//
// # Interfaces
//
// ExecQuerier is implemented by drivers and sessions:
//
//	type ExecQuerier interface {
//	    Exec(ctx context.Context, query string, args, v any) error
//	    Query(ctx context.Context, query string, args, v any) error
//	}
//
// A Scope hands out Sessions. A Session is bound to one connection from
// Create until Close and runs scalar queries with named parameters:
//
//	sess, err := scope.Create(ctx)
//	if err != nil {
//	    return err
//	}
//	defer sess.Close()
//	n, err := sess.Scalar(ctx, "SELECT COUNT(*) FROM Files WHERE ID=@ID", []any{sql.Named("ID", id)})
//
// The implementation over database/sql lives in dialect/sql.
package dialect
