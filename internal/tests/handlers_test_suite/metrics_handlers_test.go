package handlers_test_suite

import (
	"net/http"
	"strings"
	"testing"
)

func TestDashboardHandler_EmptyTable(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := newRouter()

	w := get(r, "/")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	body := w.Body.String()
	for _, want := range []string{
		`id="total">0<`,
		`id="estoque">0<`,
		`id="valor">R$ 0.00<`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("expected dashboard to contain %q", want)
		}
	}
}

func TestDashboardHandler(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := newRouter()

	products := []struct{ nome, preco, qtd string }{
		{"Keyboard", "50", "5"},
		{"Mouse", "25", "2"},
		{"Monitor", "200", "1"},
	}
	for _, p := range products {
		if w := createProduct(r, p.nome, p.preco, p.qtd); w.Code != http.StatusFound {
			t.Fatalf("product creation failed: %d", w.Code)
		}
	}

	w := get(r, "/")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	body := w.Body.String()
	wantTotalStockValue := "500.00" // 50*5 + 25*2 + 200*1
	for _, want := range []string{
		`id="total">3<`,
		`id="estoque">8<`,
		`id="valor">R$ ` + wantTotalStockValue + `<`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("expected dashboard to contain %q", want)
		}
	}
}
