package postgres

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"

	// Registers the "pgx" database/sql driver.
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/phrazzld/todo-server/internal/platform/migrate"
	"github.com/phrazzld/todo-server/internal/store"
)

// DriverName is the database/sql driver name registered by pgx.
const DriverName = "pgx"

//go:embed migrations/*.sql
var embedMigrations embed.FS

// OpenPool connects to the database at url as a pool of at most maxOpen connections.
func OpenPool(ctx context.Context, url string, maxOpen int, logger *slog.Logger) (*store.Pool, error) {
	return store.OpenPool(ctx, DriverName, url, maxOpen, logger)
}

// Migrate brings the schema of db up to date.
func Migrate(ctx context.Context, db *sql.DB, logger *slog.Logger) error {
	migrations, err := fs.Sub(embedMigrations, "migrations")
	if err != nil {
		return fmt.Errorf("failed to load embedded migrations: %w", err)
	}
	return migrate.Up(ctx, db, "postgres", migrations, logger)
}
