package api

import (
	"errors"
	"net/http"

	"github.com/phrazzld/todo-server/internal/api/shared"
	"github.com/phrazzld/todo-server/internal/domain"
	"github.com/phrazzld/todo-server/internal/store"
	"github.com/phrazzld/todo-server/internal/view"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. Malformed input is a client error; pool, query and
// render failures, and anything unrecognised, are server errors.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest

	case store.IsPoolError(err),
		store.IsQueryError(err),
		errors.Is(err, view.ErrRender):
		return http.StatusInternalServerError

	default:
		return http.StatusInternalServerError
	}
}

// HandleAPIError logs err and writes the matching opaque error response.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error) {
	shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), err)
}
