package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/phrazzld/todo-server/internal/platform/logger"
)

// ConnFn runs against a single connection checked out of the pool.
type ConnFn func(ctx context.Context, conn DBTX) error

// Pool is a fixed-size set of reusable database connections shared by all requests.
// It is created once at startup, passed explicitly to whoever needs it, and closed at shutdown.
type Pool struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewPool wraps db, capping it at maxOpen connections. When all connections are
// in use, WithConn waits for one to be returned rather than failing.
func NewPool(db *sql.DB, maxOpen int, logger *slog.Logger) *Pool {
	if db == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	db.SetMaxOpenConns(maxOpen)
	db.SetMaxIdleConns(maxOpen)

	return &Pool{
		db:     db,
		logger: logger.With(slog.String("component", "pool")),
	}
}

// OpenPool opens a database with the given driver and DSN, sizes the pool and
// verifies connectivity with a ping.
func OpenPool(
	ctx context.Context,
	driverName, dsn string,
	maxOpen int,
	logger *slog.Logger,
) (*Pool, error) {
	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	pool := NewPool(db, maxOpen, logger)
	if err := pool.Ping(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	pool.logger.Info("database connection established",
		slog.String("driver", driverName),
		slog.Int("max_open_conns", maxOpen))
	return pool, nil
}

// DB returns the underlying handle, for schema setup and stores that run on the whole pool.
func (p *Pool) DB() *sql.DB {
	return p.db
}

// WithConn checks a connection out of the pool, blocking until one is free or ctx
// is done, and runs fn on it. The connection goes back to the pool when WithConn
// returns, whether fn succeeded, failed or panicked.
//
// A failed checkout is reported as a pool error; errors returned by fn pass through unchanged.
func (p *Pool) WithConn(ctx context.Context, fn ConnFn) error {
	log := logger.FromContextOrDefault(ctx, p.logger)

	conn, err := p.db.Conn(ctx)
	if err != nil {
		log.Error("failed to acquire connection", slog.String("error", err.Error()))
		return NewPoolError("checkout", err)
	}
	defer func() {
		if err := conn.Close(); err != nil {
			log.Warn("failed to release connection", slog.String("error", err.Error()))
		}
	}()

	return fn(ctx, conn)
}

// Ping verifies that a connection can be established.
func (p *Pool) Ping(ctx context.Context) error {
	if err := p.db.PingContext(ctx); err != nil {
		return NewPoolError("ping", err)
	}
	return nil
}

// Stats reports current pool usage.
func (p *Pool) Stats() sql.DBStats {
	return p.db.Stats()
}

// Close releases every connection. Further checkouts fail with a pool error.
func (p *Pool) Close() error {
	return p.db.Close()
}
