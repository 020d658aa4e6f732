package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"net/url"
	"strings"

	"github.com/phrazzld/todo-server/internal/platform/migrate"
	"github.com/phrazzld/todo-server/internal/store"

	// Registers the "sqlite" database/sql driver.
	_ "modernc.org/sqlite"
)

// DriverName is the database/sql driver name registered by modernc.org/sqlite.
const DriverName = "sqlite"

// busyTimeoutMillis is how long a connection waits on the file lock held by
// another writer before reporting SQLITE_BUSY.
const busyTimeoutMillis = 5000

//go:embed migrations/*.sql
var embedMigrations embed.FS

// uriPathEscaper escapes the characters that would end the path part of a
// file: URI. SQLite decodes %HH sequences in the filename.
var uriPathEscaper = strings.NewReplacer("%", "%25", "?", "%3F", "#", "%23")

// DSN builds a connection string for the database file at path.
func DSN(path string) string {
	q := url.Values{}
	q.Add("_pragma", fmt.Sprintf("busy_timeout(%d)", busyTimeoutMillis))
	return "file:" + uriPathEscaper.Replace(path) + "?" + q.Encode()
}

// OpenPool opens the database file at path as a pool of at most maxOpen connections.
func OpenPool(ctx context.Context, path string, maxOpen int, logger *slog.Logger) (*store.Pool, error) {
	return store.OpenPool(ctx, DriverName, DSN(path), maxOpen, logger)
}

// Migrate brings the schema of db up to date.
func Migrate(ctx context.Context, db *sql.DB, logger *slog.Logger) error {
	migrations, err := fs.Sub(embedMigrations, "migrations")
	if err != nil {
		return fmt.Errorf("failed to load embedded migrations: %w", err)
	}
	return migrate.Up(ctx, db, "sqlite3", migrations, logger)
}
