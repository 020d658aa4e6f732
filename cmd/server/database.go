package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/todo-server/internal/config"
	"github.com/phrazzld/todo-server/internal/platform/postgres"
	"github.com/phrazzld/todo-server/internal/platform/sqlite"
	"github.com/phrazzld/todo-server/internal/store"
)

// dbConnectTimeout bounds the startup ping.
const dbConnectTimeout = 5 * time.Second

// setupAppDatabase opens the configured backend and returns its connection pool
// together with a store for the todo table.
func setupAppDatabase(
	ctx context.Context,
	cfg config.DatabaseConfig,
	logger *slog.Logger,
) (*store.Pool, store.TodoStore, error) {
	ctx, cancel := context.WithTimeout(ctx, dbConnectTimeout)
	defer cancel()

	switch cfg.Driver {
	case "sqlite":
		pool, err := sqlite.OpenPool(ctx, cfg.Path, cfg.MaxOpenConns, logger)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open sqlite database %q: %w", cfg.Path, err)
		}
		return pool, sqlite.NewTodoStore(pool.DB(), logger), nil

	case "postgres":
		pool, err := postgres.OpenPool(ctx, cfg.URL, cfg.MaxOpenConns, logger)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open postgres database: %w", err)
		}
		return pool, postgres.NewPostgresTodoStore(pool.DB(), logger), nil

	default:
		return nil, nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}
