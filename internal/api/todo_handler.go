package api

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/phrazzld/todo-server/internal/api/shared"
	"github.com/phrazzld/todo-server/internal/domain"
	"github.com/phrazzld/todo-server/internal/platform/logger"
	"github.com/phrazzld/todo-server/internal/store"
)

// ListRoute is where add and delete redirect once they are done.
const ListRoute = "/"

// ConnPool hands out scoped database connections. *store.Pool implements it.
type ConnPool interface {
	WithConn(ctx context.Context, fn store.ConnFn) error
	Ping(ctx context.Context) error
}

// IndexRenderer renders the list page. *view.Renderer implements it.
type IndexRenderer interface {
	RenderIndex(w io.Writer, entries []domain.TodoEntry) error
}

// TodoHandler handles the to-do list routes. Each request checks out one
// connection, runs exactly one statement on it, and answers with one response.
type TodoHandler struct {
	pool     ConnPool
	todos    store.TodoStore
	renderer IndexRenderer
	logger   *slog.Logger
}

// NewTodoHandler creates a new TodoHandler
func NewTodoHandler(
	pool ConnPool,
	todos store.TodoStore,
	renderer IndexRenderer,
	logger *slog.Logger,
) *TodoHandler {
	if pool == nil || todos == nil || renderer == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("pool, todos and renderer are required for TodoHandler")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &TodoHandler{
		pool:     pool,
		todos:    todos,
		renderer: renderer,
		logger:   logger.With(slog.String("component", "todo_handler")),
	}
}

// List handles GET / requests.
// It renders every stored entry as an HTML page.
func (h *TodoHandler) List(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var entries []domain.TodoEntry
	err := h.pool.WithConn(r.Context(), func(ctx context.Context, conn store.DBTX) error {
		var err error
		entries, err = h.todos.WithConn(conn).List(ctx)
		return err
	})
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	// Render fully before writing so a failed render never becomes a partial 200.
	var body bytes.Buffer
	if err := h.renderer.RenderIndex(&body, entries); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	log.Debug("rendered todo list", slog.Int("entries", len(entries)))
	shared.RespondWithHTML(w, r, http.StatusOK, &body)
}

// Add handles POST /add requests.
// The form field "text" must be present; an empty value is stored as-is.
func (h *TodoHandler) Add(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	text, err := requiredFormValue(r, "text")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	// Undecodable bytes are stored as U+FFFD rather than rejected.
	text = strings.ToValidUTF8(text, "\uFFFD")

	var id uint32
	err = h.pool.WithConn(r.Context(), func(ctx context.Context, conn store.DBTX) error {
		var err error
		id, err = h.todos.WithConn(conn).Insert(ctx, text)
		return err
	})
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	log.Info("todo entry added", slog.Any("todo_id", id))
	shared.RedirectSeeOther(w, r, ListRoute)
}

// Delete handles POST /delete requests.
// The form field "id" must be an unsigned integer. Deleting an id that does
// not exist still redirects back to the list.
func (h *TodoHandler) Delete(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	raw, err := requiredFormValue(r, "id")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	id, err := domain.ParseTodoID(raw)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	var affected int64
	err = h.pool.WithConn(r.Context(), func(ctx context.Context, conn store.DBTX) error {
		var err error
		affected, err = h.todos.WithConn(conn).Delete(ctx, id)
		return err
	})
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	log.Info("todo entry deleted", slog.Any("todo_id", id), slog.Int64("affected", affected))
	shared.RedirectSeeOther(w, r, ListRoute)
}

// Health handles GET /health requests by pinging the database.
func (h *TodoHandler) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.pool.Ping(r.Context()); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusServiceUnavailable, err)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("OK")); err != nil {
		h.logger.Error("Failed to write health check response", "error", err)
	}
}

// requiredFormValue returns the url-encoded body field name, failing when the
// body cannot be parsed or the field is absent or repeated.
func requiredFormValue(r *http.Request, name string) (string, error) {
	if err := r.ParseForm(); err != nil {
		return "", domain.NewValidationError("form", "is malformed", domain.ErrValidation)
	}
	values, ok := r.PostForm[name]
	if !ok {
		return "", domain.NewValidationError(name, "is required", domain.ErrMissingField)
	}
	if len(values) > 1 {
		return "", domain.NewValidationError(name, "is duplicated", domain.ErrDuplicateField)
	}
	return values[0], nil
}
