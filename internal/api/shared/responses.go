package shared

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/phrazzld/todo-server/internal/platform/logger"
	"github.com/phrazzld/todo-server/internal/redact"
)

// RespondWithHTML writes a complete HTML document with the given status code.
func RespondWithHTML(w http.ResponseWriter, r *http.Request, status int, body *bytes.Buffer) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := body.WriteTo(w); err != nil {
		logger.FromContext(r.Context()).Error("failed to write HTML response", "error", err)
	}
}

// RedirectSeeOther answers a form post with 303 See Other pointing at location.
func RedirectSeeOther(w http.ResponseWriter, r *http.Request, location string) {
	http.Redirect(w, r, location, http.StatusSeeOther)
}

// RespondWithError writes a plain-text error response carrying only the
// standard status text. Failure details are never sent to the client.
func RespondWithError(w http.ResponseWriter, r *http.Request, status int) {
	traceID := GetTraceID(r.Context())
	if traceID != "" {
		w.Header().Set("X-Trace-Id", traceID)
	}

	slog.Debug("sending error response",
		"status_code", status,
		"trace_id", traceID,
		"path", r.URL.Path,
		"method", r.Method)

	http.Error(w, http.StatusText(status), status)
}

// RespondWithErrorAndLog writes an error response and also logs the detailed error.
//
// Log level strategy:
// - 5xx errors: Always logged at ERROR level
// - 4xx errors: Logged at DEBUG level
func RespondWithErrorAndLog(w http.ResponseWriter, r *http.Request, status int, err error) {
	logAttrs := []slog.Attr{
		slog.String("trace_id", GetTraceID(r.Context())),
		slog.String("path", r.URL.Path),
		slog.String("method", r.Method),
		slog.Int("status_code", status),
	}
	if err != nil {
		logAttrs = append(logAttrs,
			slog.String("error", redact.Error(err)),
			slog.String("error_type", fmt.Sprintf("%T", err)))
	}

	logLevel := slog.LevelDebug
	if status >= http.StatusInternalServerError {
		logLevel = slog.LevelError
	}

	logger.FromContext(r.Context()).LogAttrs(r.Context(), logLevel, "request failed", logAttrs...)

	RespondWithError(w, r, status)
}
