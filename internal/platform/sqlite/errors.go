package sqlite

import (
	"errors"
	"fmt"

	"github.com/phrazzld/todo-server/internal/store"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// MapError maps a driver error to a store error of the query kind.
// Constraint violations additionally wrap store.ErrInvalidEntity. Extended
// result codes carry the primary code in their low byte.
func MapError(entity, operation string, err error) error {
	if err == nil {
		return nil
	}

	var sqliteErr *sqlite.Error
	if errors.As(err, &sqliteErr) {
		code := sqliteErr.Code()
		switch {
		case code == sqlite3.SQLITE_CONSTRAINT_NOTNULL:
			return store.NewQueryError(entity, operation, "not null violation",
				fmt.Errorf("%w: %v", store.ErrInvalidEntity, err))
		case code&0xff == sqlite3.SQLITE_CONSTRAINT:
			return store.NewQueryError(entity, operation, "constraint violation",
				fmt.Errorf("%w: %v", store.ErrInvalidEntity, err))
		case code&0xff == sqlite3.SQLITE_BUSY:
			return store.NewQueryError(entity, operation, "database is locked", err)
		}
	}

	return store.NewQueryError(entity, operation, "failed to execute statement", err)
}
