package postgres

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/phrazzld/todo-server/internal/domain"
	"github.com/phrazzld/todo-server/internal/platform/logger"
	"github.com/phrazzld/todo-server/internal/store"
)

const entityTodo = "todo"

// PostgresTodoStore implements the store.TodoStore interface
// using a PostgreSQL database as the storage backend.
type PostgresTodoStore struct {
	schemaDB *sql.DB
	db       store.DBTX
	logger   *slog.Logger
}

// Ensure PostgresTodoStore implements store.TodoStore interface
var _ store.TodoStore = (*PostgresTodoStore)(nil)

// NewPostgresTodoStore creates a new PostgreSQL implementation of the TodoStore interface.
// If logger is nil, a default logger will be used.
func NewPostgresTodoStore(db *sql.DB, logger *slog.Logger) *PostgresTodoStore {
	if db == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresTodoStore{
		schemaDB: db,
		db:       db,
		logger:   logger.With(slog.String("component", "todo_store")),
	}
}

// WithConn implements store.TodoStore.WithConn
func (s *PostgresTodoStore) WithConn(conn store.DBTX) store.TodoStore {
	return &PostgresTodoStore{
		schemaDB: s.schemaDB,
		db:       conn,
		logger:   s.logger,
	}
}

// EnsureSchema implements store.TodoStore.EnsureSchema
func (s *PostgresTodoStore) EnsureSchema(ctx context.Context) error {
	if err := Migrate(ctx, s.schemaDB, s.logger); err != nil {
		return store.NewQueryError(entityTodo, "ensure_schema", "failed to create table", err)
	}
	return nil
}

// Insert implements store.TodoStore.Insert
// pgx does not support LastInsertId, so the id comes back through RETURNING.
func (s *PostgresTodoStore) Insert(ctx context.Context, text string) (uint32, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var id int64
	err := s.db.QueryRowContext(ctx, `INSERT INTO todo (text) VALUES ($1) RETURNING id`, text).Scan(&id)
	if err != nil {
		log.Error("failed to insert todo entry", slog.String("error", err.Error()))
		return 0, MapError(entityTodo, "insert", err)
	}

	todoID, err := store.NarrowTodoID("insert", id)
	if err != nil {
		log.Error("inserted id out of range", slog.Int64("todo_id", id))
		return 0, err
	}

	log.Debug("todo entry inserted", slog.Int64("todo_id", id))
	return todoID, nil
}

// Delete implements store.TodoStore.Delete
func (s *PostgresTodoStore) Delete(ctx context.Context, id uint32) (int64, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM todo WHERE id = $1`, int64(id))
	if err != nil {
		log.Error("failed to delete todo entry",
			slog.Any("todo_id", id),
			slog.String("error", err.Error()))
		return 0, MapError(entityTodo, "delete", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, MapError(entityTodo, "delete", err)
	}
	return affected, nil
}

// List implements store.TodoStore.List
func (s *PostgresTodoStore) List(ctx context.Context) ([]domain.TodoEntry, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, `SELECT id, text FROM todo`)
	if err != nil {
		log.Error("failed to query todo entries", slog.String("error", err.Error()))
		return nil, MapError(entityTodo, "list", err)
	}
	defer func() { _ = rows.Close() }()

	entries := []domain.TodoEntry{}
	for rows.Next() {
		var (
			id   int64
			text string
		)
		if err := rows.Scan(&id, &text); err != nil {
			return nil, MapError(entityTodo, "list", err)
		}
		todoID, err := store.NarrowTodoID("list", id)
		if err != nil {
			log.Error("listed id out of range", slog.Int64("todo_id", id))
			return nil, err
		}
		entries = append(entries, domain.TodoEntry{ID: todoID, Text: text})
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(entityTodo, "list", err)
	}

	return entries, nil
}
