package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/todo-server/internal/api"
	apiMiddleware "github.com/phrazzld/todo-server/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(apiMiddleware.NewTraceMiddleware(app.logger))
	r.Use(middleware.Recoverer)

	todoHandler := api.NewTodoHandler(app.pool, app.todos, app.renderer, app.logger)

	r.Get("/", todoHandler.List)
	r.Post("/add", todoHandler.Add)
	r.Post("/delete", todoHandler.Delete)

	r.Get("/health", todoHandler.Health)

	return r
}
