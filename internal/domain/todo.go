package domain

import (
	"strconv"
)

// TodoEntry is a single item on the to-do list. ID is assigned by storage
// on insert and never changes afterwards; Text carries no uniqueness constraint.
type TodoEntry struct {
	ID   uint32
	Text string
}

// ParseTodoID parses a form-supplied entry ID as an unsigned 32-bit integer.
func ParseTodoID(raw string) (uint32, error) {
	if raw == "" {
		return 0, NewValidationError("id", "is required", ErrMissingField)
	}

	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, NewValidationError("id", "must be an unsigned integer", ErrInvalidID)
	}

	return uint32(id), nil
}
