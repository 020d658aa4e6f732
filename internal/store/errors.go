package store

import (
	"errors"
	"fmt"
)

// Error kinds. Every failure leaving this package or a store implementation
// wraps exactly one of ErrPool or ErrQuery, so callers can tell them apart with errors.Is.
var (
	// ErrPool is returned when a connection could not be obtained from the pool.
	ErrPool = errors.New("connection pool error")

	// ErrQuery is returned when executing a statement or reading its results failed.
	ErrQuery = errors.New("query error")

	// ErrInvalidEntity is returned when the database rejected a row because it
	// violated a constraint (NOT NULL, CHECK). It is always accompanied by ErrQuery.
	ErrInvalidEntity = errors.New("invalid entity")
)

// StoreError is a custom error type for store-specific errors with additional context.
type StoreError struct {
	Kind      error  // ErrPool or ErrQuery
	Entity    string // The entity type (e.g., "todo")
	Operation string // The operation that failed (e.g., "insert", "checkout")
	Message   string // Error message
	Err       error  // Original error
}

// Error implements the error interface for StoreError.
func (e *StoreError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf(
			"%s operation on %s failed: %s: %v",
			e.Operation,
			e.Entity,
			e.Message,
			e.Err,
		)
	}
	return fmt.Sprintf("%s operation on %s failed: %s", e.Operation, e.Entity, e.Message)
}

// Unwrap exposes both the kind and the original error to errors.Is/errors.As.
func (e *StoreError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// NewStoreError creates a new StoreError of the given kind.
func NewStoreError(kind error, entity, operation, message string, err error) *StoreError {
	return &StoreError{
		Kind:      kind,
		Entity:    entity,
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}

// NewPoolError reports a failed connection checkout.
func NewPoolError(operation string, err error) *StoreError {
	return NewStoreError(ErrPool, "connection", operation, "failed to acquire connection", err)
}

// NewQueryError reports a failed statement against entity.
func NewQueryError(entity, operation, message string, err error) *StoreError {
	return NewStoreError(ErrQuery, entity, operation, message, err)
}

// IsPoolError reports whether err is a connection checkout failure.
func IsPoolError(err error) bool {
	return errors.Is(err, ErrPool)
}

// IsQueryError reports whether err is a statement execution failure.
func IsQueryError(err error) bool {
	return errors.Is(err, ErrQuery)
}
