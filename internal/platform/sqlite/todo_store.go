package sqlite

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/phrazzld/todo-server/internal/domain"
	"github.com/phrazzld/todo-server/internal/platform/logger"
	"github.com/phrazzld/todo-server/internal/store"
)

const entityTodo = "todo"

// TodoStore implements the store.TodoStore interface
// using a SQLite database as the storage backend.
type TodoStore struct {
	schemaDB *sql.DB
	db       store.DBTX
	logger   *slog.Logger
}

// Ensure TodoStore implements store.TodoStore interface
var _ store.TodoStore = (*TodoStore)(nil)

// NewTodoStore creates a TodoStore running on the whole pool behind db.
// If logger is nil, a default logger will be used.
func NewTodoStore(db *sql.DB, logger *slog.Logger) *TodoStore {
	if db == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &TodoStore{
		schemaDB: db,
		db:       db,
		logger:   logger.With(slog.String("component", "todo_store")),
	}
}

// WithConn implements store.TodoStore.WithConn.
func (s *TodoStore) WithConn(conn store.DBTX) store.TodoStore {
	return &TodoStore{
		schemaDB: s.schemaDB,
		db:       conn,
		logger:   s.logger,
	}
}

// EnsureSchema implements store.TodoStore.EnsureSchema.
func (s *TodoStore) EnsureSchema(ctx context.Context) error {
	if err := Migrate(ctx, s.schemaDB, s.logger); err != nil {
		return store.NewQueryError(entityTodo, "ensure_schema", "failed to create table", err)
	}
	return nil
}

// Insert implements store.TodoStore.Insert.
func (s *TodoStore) Insert(ctx context.Context, text string) (uint32, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `INSERT INTO todo (text) VALUES (?)`, text)
	if err != nil {
		log.Error("failed to insert todo entry", slog.String("error", err.Error()))
		return 0, MapError(entityTodo, "insert", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		log.Error("failed to read inserted id", slog.String("error", err.Error()))
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

// Delete implements store.TodoStore.Delete.
func (s *TodoStore) Delete(ctx context.Context, id uint32) (int64, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM todo WHERE id = ?`, id)
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

	if affected == 0 {
		log.Debug("no todo entry with id, nothing deleted", slog.Any("todo_id", id))
	}
	return affected, nil
}

// List implements store.TodoStore.List.
func (s *TodoStore) List(ctx context.Context) ([]domain.TodoEntry, error) {
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
			log.Error("failed to scan todo entry", slog.String("error", err.Error()))
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
		log.Error("error iterating todo entries", slog.String("error", err.Error()))
		return nil, MapError(entityTodo, "list", err)
	}

	return entries, nil
}
