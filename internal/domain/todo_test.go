package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTodoID(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    uint32
		wantErr error
	}{
		{name: "zero", raw: "0", want: 0},
		{name: "small", raw: "42", want: 42},
		{name: "max uint32", raw: "4294967295", want: 4294967295},
		{name: "empty", raw: "", wantErr: ErrMissingField},
		{name: "negative", raw: "-1", wantErr: ErrInvalidID},
		{name: "overflow", raw: "4294967296", wantErr: ErrInvalidID},
		{name: "not a number", raw: "abc", wantErr: ErrInvalidID},
		{name: "float", raw: "1.5", wantErr: ErrInvalidID},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseTodoID(tc.raw)
			if tc.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tc.wantErr)
				assert.ErrorIs(t, err, ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("text", "is required", ErrMissingField)

	assert.Equal(t, "text is required", err.Error())

	var vErr *ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, "text", vErr.Field)
	assert.True(t, errors.Is(err, ErrValidation))
}
