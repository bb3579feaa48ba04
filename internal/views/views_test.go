package views

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rogerio-castellano/inventory-panel/internal/models"
)

func strPtr(s string) *string { return &s }

func TestRender_ProductsPage(t *testing.T) {
	v, err := NewRenderer()
	require.NoError(t, err)

	desc := "<b>bold</b>"
	w := httptest.NewRecorder()
	err = v.Render(w, http.StatusOK, "produtos.html", ProductsPage{
		Products: []models.Product{{ID: 7, Name: strPtr("Widget"), Description: &desc, Price: 9.5, Quantity: 3}},
		Q:        "Wid",
	})
	require.NoError(t, err)

	body := w.Body.String()
	require.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))
	require.Contains(t, body, "<td>Widget</td>")
	require.Contains(t, body, "<td>9.50</td>")
	require.Contains(t, body, "&lt;b&gt;bold&lt;/b&gt;")
	require.Contains(t, body, `action="/produtos/excluir/7"`)
	require.Contains(t, body, `value="Wid"`)
}

func TestRender_UnknownTemplateWritesNothing(t *testing.T) {
	v, err := NewRenderer()
	require.NoError(t, err)

	w := httptest.NewRecorder()
	err = v.Render(w, http.StatusOK, "missing.html", nil)
	require.Error(t, err)
	require.Zero(t, w.Body.Len())
}

func TestRender_FormPage(t *testing.T) {
	v, err := NewRenderer()
	require.NoError(t, err)

	w := httptest.NewRecorder()
	require.NoError(t, v.Render(w, http.StatusOK, "form.html", FormPage{}))
	require.True(t, strings.Contains(w.Body.String(), "Novo produto"))

	w = httptest.NewRecorder()
	require.NoError(t, v.Render(w, http.StatusOK, "form.html", FormPage{Product: &models.Product{ID: 3, Name: strPtr("Lamp")}}))
	require.Contains(t, w.Body.String(), `action="/produtos/editar/3"`)
}
