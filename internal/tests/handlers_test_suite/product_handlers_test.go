package handlers_test_suite

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"testing"
)

func TestCreateProductHandler_Valid(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := newRouter()

	before, err := listJSON(r)
	if err != nil {
		t.Fatal(err)
	}
	var maxID int64
	for _, p := range before {
		maxID = max(maxID, p.ID)
	}

	w := createProduct(r, "Widget", "9.99", "3")
	if w.Code != http.StatusFound {
		t.Fatalf("expected 302 Found, got %d", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/produtos" {
		t.Errorf("expected redirect to /produtos, got %q", loc)
	}

	products, err := listJSON(r)
	if err != nil {
		t.Fatal(err)
	}
	if len(products) != 1 {
		t.Fatalf("expected 1 product, got %d", len(products))
	}
	p := products[0]
	if p.NameText() != "Widget" || p.Price != 9.99 || p.Quantity != 3 {
		t.Errorf("unexpected product %+v", p)
	}
	if p.ID <= maxID {
		t.Errorf("expected id greater than %d, got %d", maxID, p.ID)
	}

	page := get(r, "/produtos")
	if page.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", page.Code)
	}
	if !strings.Contains(page.Body.String(), "Widget") {
		t.Error("expected list page to contain Widget")
	}
}

func TestCreateProductHandler_Coercion(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := newRouter()

	tests := []struct {
		name      string
		preco     string
		qtd       string
		wantPrice float64
		wantQty   int64
	}{
		{"non-numeric price", "abc", "1", 0, 1},
		{"missing values", "", "", 0, 0},
		{"numeric prefix", "12.5kg", "4 units", 12.5, 4},
		{"fractional quantity", "1", "3.9", 1, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := createProduct(r, tt.name, tt.preco, tt.qtd)
			if w.Code != http.StatusFound {
				t.Fatalf("expected 302 Found, got %d", w.Code)
			}

			products, err := listJSON(r)
			if err != nil {
				t.Fatal(err)
			}
			got := products[0]
			if got.NameText() != tt.name {
				t.Fatalf("expected newest product %q, got %q", tt.name, got.NameText())
			}
			if got.Price != tt.wantPrice {
				t.Errorf("expected price %v, got %v", tt.wantPrice, got.Price)
			}
			if got.Quantity != tt.wantQty {
				t.Errorf("expected quantity %v, got %v", tt.wantQty, got.Quantity)
			}
		})
	}
}

func TestCreateProductHandler_MissingNameFails(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := newRouter()

	w := postForm(r, "/produtos", url.Values{"preco": {"1"}})
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	if got := w.Body.String(); got != "Erro ao criar produto\n" {
		t.Errorf("unexpected body %q", got)
	}

	products, _ := listJSON(r)
	if len(products) != 0 {
		t.Errorf("expected nothing stored, got %+v", products)
	}
}

func TestCreateProductHandler_EmptyNameIsStored(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := newRouter()

	w := postForm(r, "/produtos", url.Values{"nome": {""}, "preco": {"1"}})
	if w.Code != http.StatusFound {
		t.Fatalf("expected 302 Found, got %d", w.Code)
	}

	products, _ := listJSON(r)
	if len(products) != 1 || products[0].Name == nil || *products[0].Name != "" {
		t.Fatalf("expected one product with empty name, got %+v", products)
	}
	if products[0].Description != nil {
		t.Errorf("expected NULL description, got %q", *products[0].Description)
	}
}

func TestUpdateProductHandler_MissingName(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := newRouter()

	createProduct(r, "Cable", "3", "9")
	products, _ := listJSON(r)

	w := postForm(r, fmt.Sprintf("/produtos/editar/%d", products[0].ID), url.Values{"preco": {"4"}})
	if w.Code != http.StatusInternalServerError || w.Body.String() != "Erro ao atualizar\n" {
		t.Errorf("expected generic 500, got %d %q", w.Code, w.Body.String())
	}

	// unknown id touches no row
	w = postForm(r, "/produtos/editar/424242", url.Values{"preco": {"4"}})
	if w.Code != http.StatusFound {
		t.Errorf("expected 302 Found for unknown id, got %d", w.Code)
	}
}

func TestListProductsHandler_Search(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := newRouter()

	createProduct(r, "Widget", "9.99", "3")
	createProduct(r, "Gadget", "1", "1")

	products, _ := listJSON(r)
	var widgetID, gadgetID int64
	for _, p := range products {
		switch p.NameText() {
		case "Widget":
			widgetID = p.ID
		case "Gadget":
			gadgetID = p.ID
		}
	}

	w := get(r, "/produtos?q=Widget")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, "Widget") {
		t.Error("expected Widget in search results")
	}
	if strings.Contains(body, "Gadget") {
		t.Error("did not expect Gadget in search results")
	}

	// id lookup ignores the name
	w = get(r, fmt.Sprintf("/produtos?q=%d", gadgetID))
	body = w.Body.String()
	if !strings.Contains(body, "Gadget") {
		t.Errorf("expected product %d in id search", gadgetID)
	}
	if widgetID != gadgetID && strings.Contains(body, ">Widget<") {
		t.Error("did not expect Widget in id search")
	}

	w = get(r, "/produtos?q=nothing-matches")
	if !strings.Contains(w.Body.String(), "Nenhum produto encontrado") {
		t.Error("expected empty-state message")
	}
}

func TestEditProductFormHandler(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := newRouter()

	createProduct(r, "Monitor", "150", "2")
	products, _ := listJSON(r)
	id := products[0].ID

	w := get(r, fmt.Sprintf("/produtos/editar/%d", id))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `value="Monitor"`) {
		t.Error("expected form pre-filled with the product name")
	}

	for _, path := range []string{"/produtos/editar/999999", "/produtos/editar/abc"} {
		w = get(r, path)
		if w.Code != http.StatusNotFound {
			t.Errorf("%s: expected 404, got %d", path, w.Code)
		}
		if w.Body.String() != "Produto não encontrado\n" {
			t.Errorf("%s: unexpected body %q", path, w.Body.String())
		}
	}
}

func TestUpdateProductHandler(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := newRouter()

	createProduct(r, "Keyboard", "40", "10")
	products, _ := listJSON(r)
	id := products[0].ID

	w := postForm(r, fmt.Sprintf("/produtos/editar/%d", id), url.Values{
		"nome":       {"Mechanical keyboard"},
		"descricao":  {"brown switches"},
		"preco":      {"89.90"},
		"quantidade": {"4"},
	})
	if w.Code != http.StatusFound {
		t.Fatalf("expected 302 Found, got %d", w.Code)
	}

	products, _ = listJSON(r)
	p := products[0]
	if p.ID != id || p.NameText() != "Mechanical keyboard" || p.Price != 89.90 || p.Quantity != 4 {
		t.Errorf("unexpected product after update: %+v", p)
	}
	if p.Description == nil || *p.Description != "brown switches" {
		t.Errorf("expected description to be updated, got %v", p.Description)
	}
}

func TestUpdateProductHandler_UnknownIDRedirects(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := newRouter()

	createProduct(r, "Mouse", "20", "1")

	w := postForm(r, "/produtos/editar/424242", url.Values{"nome": {"Ghost"}})
	if w.Code != http.StatusFound {
		t.Fatalf("expected 302 Found for unknown id, got %d", w.Code)
	}

	products, _ := listJSON(r)
	if len(products) != 1 || products[0].NameText() != "Mouse" {
		t.Errorf("expected store unchanged, got %+v", products)
	}
}

func TestDeleteProductHandler_Twice(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := newRouter()

	createProduct(r, "Lamp", "15", "1")
	products, _ := listJSON(r)
	path := fmt.Sprintf("/produtos/excluir/%d", products[0].ID)

	for i := range 2 {
		w := postForm(r, path, nil)
		if w.Code != http.StatusFound {
			t.Fatalf("delete #%d: expected 302 Found, got %d", i+1, w.Code)
		}
	}

	products, _ = listJSON(r)
	if len(products) != 0 {
		t.Errorf("expected no products, got %d", len(products))
	}
}

func TestNewProductFormHandler(t *testing.T) {
	r := newRouter()

	w := get(r, "/produtos/novo")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `action="/produtos"`) {
		t.Error("expected blank form posting to /produtos")
	}
}

func TestListProductsJSONHandler_Ordering(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := newRouter()

	w := get(r, "/api/produtos")
	if got := strings.TrimSpace(w.Body.String()); got != "[]" {
		t.Errorf("expected empty JSON array, got %q", got)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected application/json, got %q", ct)
	}

	for i := range 5 {
		createProduct(r, fmt.Sprintf("P%d", i), "1", "1")
	}

	products, err := listJSON(r)
	if err != nil {
		t.Fatal(err)
	}
	for i := 1; i < len(products); i++ {
		if products[i-1].ID <= products[i].ID {
			t.Fatalf("expected strictly descending ids, got %d then %d", products[i-1].ID, products[i].ID)
		}
	}
}
