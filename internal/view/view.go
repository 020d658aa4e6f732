// Package view renders the HTML pages served by the application.
package view

import (
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io"

	"github.com/phrazzld/todo-server/internal/domain"
)

// ErrRender is returned when a page could not be produced from its template.
var ErrRender = errors.New("render error")

//go:embed templates/*.html
var templateFS embed.FS

// IndexPage is the data passed to the index template.
type IndexPage struct {
	Entries []domain.TodoEntry
}

// Renderer renders the to-do list page. Templates are parsed once, at construction.
type Renderer struct {
	index *template.Template
}

// NewRenderer parses the embedded templates.
func NewRenderer() (*Renderer, error) {
	index, err := template.ParseFS(templateFS, "templates/index.html")
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse index template: %v", ErrRender, err)
	}
	return &Renderer{index: index}, nil
}

// NewRendererFromTemplate wraps an already parsed template. The template
// receives an IndexPage as its data.
func NewRendererFromTemplate(index *template.Template) *Renderer {
	return &Renderer{index: index}
}

// RenderIndex writes the list page for entries to w. Callers that need to
// avoid a partial response should render into a buffer first.
func (r *Renderer) RenderIndex(w io.Writer, entries []domain.TodoEntry) error {
	if err := r.index.Execute(w, IndexPage{Entries: entries}); err != nil {
		return fmt.Errorf("%w: failed to execute index template: %w", ErrRender, err)
	}
	return nil
}
