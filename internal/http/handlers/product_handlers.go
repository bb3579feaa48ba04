package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rogerio-castellano/inventory-panel/internal/models"
	repo "github.com/rogerio-castellano/inventory-panel/internal/repo"
	"github.com/rogerio-castellano/inventory-panel/internal/views"
)

const productsPath = "/produtos"

func productID(r *http.Request) int64 {
	return models.ParseID(chi.URLParam(r, "id"))
}

func redirectToList(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, productsPath, http.StatusFound)
}

// DashboardHandler renders the landing page with aggregate stock statistics.
func (s *Server) DashboardHandler(w http.ResponseWriter, r *http.Request) {
	stats, err := s.metrics.GetDashboardStats(r.Context())
	if err != nil {
		s.storeError(w, r, "DB error", err)
		return
	}
	s.render(w, r, "index.html", views.DashboardPage{Stats: stats})
}

// ListProductsHandler lists products, optionally filtered by ?q=.
func (s *Server) ListProductsHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")

	products, err := s.products.List(r.Context(), repo.ProductFilter{Query: q})
	if err != nil {
		s.storeError(w, r, "DB error", err)
		return
	}
	s.render(w, r, "produtos.html", views.ProductsPage{Products: products, Q: q})
}

func (s *Server) NewProductFormHandler(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, "form.html", views.FormPage{})
}

func (s *Server) CreateProductHandler(w http.ResponseWriter, r *http.Request) {
	in, err := parseProductForm(r)
	if err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	if _, err := s.products.Create(r.Context(), in.Product(0)); err != nil {
		s.storeError(w, r, "Erro ao criar produto", err)
		return
	}
	redirectToList(w, r)
}

func (s *Server) EditProductFormHandler(w http.ResponseWriter, r *http.Request) {
	product, err := s.products.GetByID(r.Context(), productID(r))
	if err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			http.Error(w, "Produto não encontrado", http.StatusNotFound)
			return
		}
		s.storeError(w, r, "Erro DB", err)
		return
	}
	s.render(w, r, "form.html", views.FormPage{Product: &product})
}

// UpdateProductHandler overwrites every mutable field. An unknown id is a
// silent no-op and still redirects to the list.
func (s *Server) UpdateProductHandler(w http.ResponseWriter, r *http.Request) {
	in, err := parseProductForm(r)
	if err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	if err := s.products.Update(r.Context(), in.Product(productID(r))); err != nil {
		s.storeError(w, r, "Erro ao atualizar", err)
		return
	}
	redirectToList(w, r)
}

// DeleteProductHandler removes the product if present; deleting twice is fine.
func (s *Server) DeleteProductHandler(w http.ResponseWriter, r *http.Request) {
	if err := s.products.Delete(r.Context(), productID(r)); err != nil {
		s.storeError(w, r, "Erro ao excluir", err)
		return
	}
	redirectToList(w, r)
}
