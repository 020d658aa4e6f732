package view

import (
	"bytes"
	"errors"
	"html/template"
	"strings"
	"testing"

	"github.com/phrazzld/todo-server/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderIndex_Empty(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.RenderIndex(&buf, nil))

	out := buf.String()
	assert.NotContains(t, out, `class="todo-id"`)
	assert.Contains(t, out, `action="/add"`)
	assert.Contains(t, out, `name="text"`)
}

func TestRenderIndex_Entries(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	entries := []domain.TodoEntry{
		{ID: 1, Text: "buy milk"},
		{ID: 2, Text: "walk dog"},
	}

	var buf bytes.Buffer
	require.NoError(t, r.RenderIndex(&buf, entries))

	out := buf.String()
	assert.Contains(t, out, `<span class="todo-id">1</span>`)
	assert.Contains(t, out, `<span class="todo-text">buy milk</span>`)
	assert.Contains(t, out, `<input type="hidden" name="id" value="2">`)
	assert.Equal(t, 2, strings.Count(out, `action="/delete"`))
	assert.Less(t, strings.Index(out, "buy milk"), strings.Index(out, "walk dog"),
		"entries render in the order given")
}

func TestRenderIndex_EscapesText(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.RenderIndex(&buf, []domain.TodoEntry{{ID: 1, Text: `<script>alert("x")</script>`}}))

	assert.NotContains(t, buf.String(), "<script>")
	assert.Contains(t, buf.String(), "&lt;script&gt;")
}

func TestRenderIndex_ExecuteFailure(t *testing.T) {
	broken := template.Must(template.New("index").Parse(`{{template "missing" .}}`))
	r := NewRendererFromTemplate(broken)

	err := r.RenderIndex(&bytes.Buffer{}, nil)

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrRender))
}
