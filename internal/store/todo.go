package store

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/phrazzld/todo-server/internal/domain"
)

// TodoStore defines the interface for to-do entry persistence.
type TodoStore interface {
	// EnsureSchema creates the todo table if it does not exist.
	// It is idempotent and safe to call on every startup. It always runs on
	// the pool the store was created with, even after WithConn.
	EnsureSchema(ctx context.Context) error

	// Insert stores a new entry with the given text and returns the ID
	// storage assigned to it. IDs are never reused.
	Insert(ctx context.Context, text string) (uint32, error)

	// Delete removes the entry with the given ID and reports how many rows
	// were removed. Deleting an ID that does not exist is not an error.
	Delete(ctx context.Context, id uint32) (int64, error)

	// List returns every entry in storage scan order. This is insertion order
	// in practice but is not guaranteed.
	List(ctx context.Context) ([]domain.TodoEntry, error)

	// WithConn returns a TodoStore that runs its statements on conn, typically
	// a connection checked out with Pool.WithConn.
	WithConn(conn DBTX) TodoStore
}

// ErrIDOutOfRange is wrapped by the query error returned when a stored row id
// does not fit an entry ID.
var ErrIDOutOfRange = errors.New("row id out of entry id range")

// NarrowTodoID converts a row id read from storage to an entry ID. Ids outside
// the uint32 range are reported as a query error instead of wrapping.
func NarrowTodoID(operation string, id int64) (uint32, error) {
	if id < 0 || id > math.MaxUint32 {
		return 0, NewQueryError("todo", operation, "id out of range",
			fmt.Errorf("%w: %d", ErrIDOutOfRange, id))
	}
	return uint32(id), nil
}
