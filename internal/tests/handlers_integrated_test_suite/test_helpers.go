package handlers_integrated_test_suite

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/rogerio-castellano/inventory-panel/internal/config"
	"github.com/rogerio-castellano/inventory-panel/internal/db"
	api "github.com/rogerio-castellano/inventory-panel/internal/http"
	handler "github.com/rogerio-castellano/inventory-panel/internal/http/handlers"
	"github.com/rogerio-castellano/inventory-panel/internal/models"
	"github.com/rogerio-castellano/inventory-panel/internal/repo"
	"github.com/rogerio-castellano/inventory-panel/internal/views"
)

// newRouter wires the real SQL repositories on a fresh SQLite file.
func newRouter(t *testing.T) (http.Handler, *db.Database) {
	t.Helper()

	database, err := db.Connect(context.Background(), config.DatabaseConfig{
		Driver:       "sqlite",
		URL:          t.TempDir() + "/db.sqlite",
		QueryTimeout: 3 * time.Second,
	})
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	require.NoError(t, database.Migrate(context.Background()))

	renderer, err := views.NewRenderer()
	require.NoError(t, err)

	products := repo.NewSQLProductRepository(database)
	srv := handler.NewServer(handler.Dependencies{
		Products: products,
		Metrics:  repo.NewSQLMetricsRepository(database),
		Store:    products,
		Views:    renderer,
	})
	return api.NewRouter(srv, api.RouterOptions{}), database
}

func postForm(r http.Handler, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func get(r http.Handler, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func createProduct(r http.Handler, nome, preco, quantidade string) *httptest.ResponseRecorder {
	return postForm(r, "/produtos", url.Values{
		"nome":       {nome},
		"preco":      {preco},
		"quantidade": {quantidade},
	})
}

func listJSON(r http.Handler) ([]models.Product, error) {
	w := get(r, "/api/produtos")
	if w.Code != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", w.Code)
	}
	var products []models.Product
	if err := json.NewDecoder(w.Body).Decode(&products); err != nil {
		return nil, fmt.Errorf("decoding products: %w", err)
	}
	return products, nil
}
