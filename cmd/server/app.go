package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/todo-server/internal/config"
	"github.com/phrazzld/todo-server/internal/platform/logger"
	"github.com/phrazzld/todo-server/internal/redact"
	"github.com/phrazzld/todo-server/internal/store"
	"github.com/phrazzld/todo-server/internal/view"
)

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger

	pool     *store.Pool
	todos    store.TodoStore
	renderer *view.Renderer
}

// loadAppConfig loads the application configuration from environment variables or config file.
func loadAppConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}

// setupAppLogger configures and initializes the application logger based on config settings.
func setupAppLogger(cfg *config.Config) (*slog.Logger, error) {
	l, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}
	return l, nil
}

// newApplication creates a new application instance with all dependencies initialized:
// the connection pool, the schema, and the page renderer.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
	}

	logger.Info("Server configuration loaded",
		"addr", cfg.Server.Addr(),
		"log_level", cfg.Server.LogLevel,
		"database_driver", cfg.Database.Driver,
		"database_path", cfg.Database.Path,
		"database_url", redact.URL(cfg.Database.URL))

	var err error
	app.pool, app.todos, err = setupAppDatabase(ctx, cfg.Database, logger)
	if err != nil {
		return nil, err
	}

	if err := app.todos.EnsureSchema(ctx); err != nil {
		app.cleanup()
		return nil, fmt.Errorf("failed to ensure schema: %w", err)
	}

	app.renderer, err = view.NewRenderer()
	if err != nil {
		app.cleanup()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run starts the application server, handling lifecycle and cleanup.
// It returns an error if the server fails to start or encounters problems.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.pool != nil {
		if err := app.pool.Close(); err != nil {
			app.logger.Error("Error closing database connection", "error", err)
		}
	}

	app.logger.Info("Application shutdown completed")
}
