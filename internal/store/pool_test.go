package store_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/phrazzld/todo-server/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func newTestPool(t *testing.T, maxOpen int) *store.Pool {
	t.Helper()
	dsn := "file:" + filepath.Join(t.TempDir(), "pool.db")
	pool, err := store.OpenPool(context.Background(), "sqlite", dsn, maxOpen, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pool.Close() })
	return pool
}

func TestPool_WithConnReleasesOnSuccess(t *testing.T) {
	pool := newTestPool(t, 2)

	err := pool.WithConn(context.Background(), func(ctx context.Context, conn store.DBTX) error {
		assert.Equal(t, 1, pool.Stats().InUse)
		var one int
		return conn.QueryRowContext(ctx, `SELECT 1`).Scan(&one)
	})

	require.NoError(t, err)
	assert.Equal(t, 0, pool.Stats().InUse)
}

func TestPool_WithConnReleasesOnError(t *testing.T) {
	pool := newTestPool(t, 1)
	fnErr := errors.New("statement failed")

	err := pool.WithConn(context.Background(), func(ctx context.Context, conn store.DBTX) error {
		return fnErr
	})

	assert.Same(t, fnErr, err, "errors from fn pass through unchanged")
	assert.False(t, store.IsPoolError(err))
	assert.Equal(t, 0, pool.Stats().InUse)
}

func TestPool_WithConnReleasesOnPanic(t *testing.T) {
	pool := newTestPool(t, 1)

	assert.Panics(t, func() {
		_ = pool.WithConn(context.Background(), func(ctx context.Context, conn store.DBTX) error {
			panic("boom")
		})
	})

	assert.Equal(t, 0, pool.Stats().InUse)

	// The single connection must be usable again.
	err := pool.WithConn(context.Background(), func(ctx context.Context, conn store.DBTX) error {
		return nil
	})
	assert.NoError(t, err)
}

func TestPool_ExhaustionWaits(t *testing.T) {
	pool := newTestPool(t, 1)

	held := make(chan struct{})
	release := make(chan struct{})
	done := make(chan error, 1)
	go func() {
		done <- pool.WithConn(context.Background(), func(ctx context.Context, conn store.DBTX) error {
			close(held)
			<-release
			return nil
		})
	}()
	<-held

	t.Run("times out while the only connection is held", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		err := pool.WithConn(ctx, func(ctx context.Context, conn store.DBTX) error {
			t.Fatal("fn must not run without a connection")
			return nil
		})

		require.Error(t, err)
		assert.True(t, store.IsPoolError(err))
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})

	t.Run("proceeds once the connection is returned", func(t *testing.T) {
		acquired := make(chan error, 1)
		go func() {
			acquired <- pool.WithConn(context.Background(), func(ctx context.Context, conn store.DBTX) error {
				return nil
			})
		}()

		select {
		case <-acquired:
			t.Fatal("second checkout should wait for the held connection")
		case <-time.After(20 * time.Millisecond):
		}

		close(release)
		require.NoError(t, <-done)
		require.NoError(t, <-acquired)
	})
}

func TestPool_ClosedPoolReportsPoolError(t *testing.T) {
	pool := newTestPool(t, 1)
	require.NoError(t, pool.Close())

	err := pool.WithConn(context.Background(), func(ctx context.Context, conn store.DBTX) error {
		return nil
	})
	assert.True(t, store.IsPoolError(err))
	assert.False(t, store.IsQueryError(err))

	assert.True(t, store.IsPoolError(pool.Ping(context.Background())))
}

func TestNewPool_NilDB(t *testing.T) {
	assert.Panics(t, func() { store.NewPool(nil, 1, nil) })
}
