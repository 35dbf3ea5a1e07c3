package view

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEngine(t *testing.T) {
	engine, err := NewEngine()
	assert.NoError(t, err, "Templates should parse without error")
	assert.NotNil(t, engine)
}

func TestRenderShell(t *testing.T) {
	engine, err := NewEngine()
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	require.NoError(t, engine.Render(rr, http.StatusOK, "layouts/shell.html", TemplateData{Title: "Quality Desk"}))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "text/html; charset=utf-8", rr.Header().Get("Content-Type"))
	assert.Contains(t, rr.Body.String(), `id="main-content"`)
	assert.Contains(t, rr.Body.String(), "<title>Quality Desk</title>")
}

func TestRenderErrorFragmentEscapesMessage(t *testing.T) {
	engine, err := NewEngine()
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	err = engine.Render(rr, http.StatusOK, "partials/error.html", TemplateData{Data: map[string]any{
		"Heading": "Error loading DMT records",
		"Message": "<script>x</script>",
	}})
	require.NoError(t, err)

	assert.Contains(t, rr.Body.String(), "Error loading DMT records")
	assert.NotContains(t, rr.Body.String(), "<script>x</script>")
}

func TestRenderNilEngine(t *testing.T) {
	var engine *Engine
	assert.Error(t, engine.Render(httptest.NewRecorder(), http.StatusOK, "pages/home.html", TemplateData{}))
}
