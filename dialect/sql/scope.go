package sql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/syssam/cardorm/dialect"
)

// Scope is a dialect.Scope over a Driver. Every Create acquires a dedicated
// connection from the pool; Close on the returned session releases it.
type Scope struct {
	drv           *Driver
	stats         *QueryStats
	slowThreshold time.Duration
	slowHook      SlowQueryHook
	log           *slog.Logger
}

// ScopeOption configures the Scope.
type ScopeOption func(*Scope)

// WithStats records statistics into stats instead of a private QueryStats.
func WithStats(stats *QueryStats) ScopeOption {
	return func(s *Scope) {
		s.stats = stats
	}
}

// WithSlowThreshold sets the threshold for slow query detection.
// Queries taking longer than this duration will be counted as slow queries.
// Default is 100ms.
func WithSlowThreshold(d time.Duration) ScopeOption {
	return func(s *Scope) {
		s.slowThreshold = d
	}
}

// WithSlowQueryHook sets a callback function for slow queries.
func WithSlowQueryHook(hook SlowQueryHook) ScopeOption {
	return func(s *Scope) {
		s.slowHook = hook
	}
}

// WithSlowQueryLog logs slow queries to the scope logger.
// This is a convenience wrapper around WithSlowQueryHook.
func WithSlowQueryLog() ScopeOption {
	return func(s *Scope) {
		s.slowHook = func(ctx context.Context, query string, args []any, duration time.Duration) {
			s.log.WarnContext(ctx, "slow query detected", "duration", duration, "query", query, "args", args)
		}
	}
}

// WithLogger sets the logger used for query and slow query logging.
// The default discards everything.
func WithLogger(l *slog.Logger) ScopeOption {
	return func(s *Scope) {
		s.log = l
	}
}

// NewScope returns a Scope over drv.
//
//	drv, _ := sql.Open("sqlite", "file:cards.db")
//	scope := sql.NewScope(drv,
//	    sql.WithLogger(logger),
//	    sql.WithSlowThreshold(200*time.Millisecond),
//	    sql.WithSlowQueryLog(),
//	)
func NewScope(drv *Driver, opts ...ScopeOption) *Scope {
	s := &Scope{
		drv:           drv,
		stats:         &QueryStats{},
		slowThreshold: 100 * time.Millisecond,
		log:           slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// QueryStats returns the statistics recorded by the scope.
func (s *Scope) QueryStats() *QueryStats {
	return s.stats
}

// Create implements dialect.Scope.
func (s *Scope) Create(ctx context.Context) (dialect.Session, error) {
	conn, err := s.drv.DB().Conn(ctx)
	if err != nil {
		return nil, fmt.Errorf("dialect/sql: acquire connection: %w", err)
	}
	s.stats.TotalSessions.Add(1)
	return &Session{Conn: Conn{conn, s.drv.dialect}, conn: conn, scope: s}, nil
}

// Session is a dialect.Session bound to one pooled connection.
type Session struct {
	Conn
	conn  *sql.Conn
	scope *Scope
}

// ErrSessionClosed is returned by operations on a closed session.
var ErrSessionClosed = errors.New("dialect/sql: session closed")

// Scalar implements dialect.Session. Named arguments are rebound for the dialect.
func (s *Session) Scalar(ctx context.Context, query string, args []any) (v any, rerr error) {
	if s.conn == nil {
		return nil, ErrSessionClosed
	}
	start := time.Now()
	defer func() { s.scope.record(ctx, query, args, start, rerr) }()

	q, argv, err := Rebind(s.dialect, query, args)
	if err != nil {
		return nil, err
	}
	var rows Rows
	if err := s.Query(ctx, q, argv, &rows); err != nil {
		return nil, err
	}
	defer rows.Close()
	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("dialect/sql: scalar: %w", err)
		}
		return nil, nil
	}
	if err := rows.Scan(&v); err != nil {
		return nil, fmt.Errorf("dialect/sql: scalar: %w", err)
	}
	return v, rows.Err()
}

// Close implements dialect.Session. Closing twice is a no-op.
func (s *Session) Close() error {
	if s.conn == nil {
		return nil
	}
	err := s.conn.Close()
	s.conn = nil
	return err
}

var (
	_ dialect.Scope   = (*Scope)(nil)
	_ dialect.Session = (*Session)(nil)
)
