package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/phrazzld/todo-server/internal/store"
)

// PostgreSQL error codes
const (
	// checkViolationCode is the PostgreSQL error code for check constraint violations
	checkViolationCode = "23514"

	// notNullViolationCode is the PostgreSQL error code for not null violations
	notNullViolationCode = "23502"

	// undefinedTableCode is the PostgreSQL error code for a missing relation
	undefinedTableCode = "42P01"
)

// MapError maps a database error to a store error of the query kind.
// It wraps the original error to preserve context and provide better debugging information.
func MapError(entity, operation string, err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case checkViolationCode:
			return store.NewQueryError(entity, operation,
				fmt.Sprintf("check constraint violation (%s)", pgErr.ConstraintName),
				fmt.Errorf("%w: %v", store.ErrInvalidEntity, err))
		case notNullViolationCode:
			return store.NewQueryError(entity, operation,
				fmt.Sprintf("not null violation (%s)", pgErr.ColumnName),
				fmt.Errorf("%w: %v", store.ErrInvalidEntity, err))
		case undefinedTableCode:
			return store.NewQueryError(entity, operation, "table does not exist", err)
		}
	}

	return store.NewQueryError(entity, operation, "failed to execute statement", err)
}
