package handlers_test_suite

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"

	api "github.com/rogerio-castellano/inventory-panel/internal/http"
	handler "github.com/rogerio-castellano/inventory-panel/internal/http/handlers"
	"github.com/rogerio-castellano/inventory-panel/internal/models"
	"github.com/rogerio-castellano/inventory-panel/internal/repo"
	"github.com/rogerio-castellano/inventory-panel/internal/views"
)

var (
	productRepo *repo.InMemoryProductRepository
	renderer    *views.Renderer
)

func init() {
	var err error
	renderer, err = views.NewRenderer()
	if err != nil {
		panic(fmt.Sprintf("error loading templates: %v", err))
	}
	productRepo = repo.NewInMemoryProductRepository()
}

func newRouter() http.Handler {
	srv := handler.NewServer(handler.Dependencies{
		Products: productRepo,
		Metrics:  repo.NewInMemoryMetricsRepository(productRepo),
		Store:    productRepo,
		Views:    renderer,
	})
	return api.NewRouter(srv, api.RouterOptions{})
}

func clearAllProducts() {
	productRepo.Clear()
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

func multipartCSV(csvContent string, filename string) (*bytes.Buffer, string) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, _ := writer.CreateFormFile("file", filename)
	part.Write([]byte(csvContent))

	writer.Close()
	return &buf, writer.FormDataContentType()
}
