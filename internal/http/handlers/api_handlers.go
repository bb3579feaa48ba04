package handlers

import (
	"net/http"

	"go.uber.org/zap"

	repo "github.com/rogerio-castellano/inventory-panel/internal/repo"
)

// ListProductsJSONHandler godoc
// @Summary List all products
// @Description Every product, newest first (id descending).
// @Tags products
// @Produce json
// @Success 200 {array} models.Product
// @Failure 500 {object} ErrorResponse
// @Router /api/produtos [get]
func (s *Server) ListProductsJSONHandler(w http.ResponseWriter, r *http.Request) {
	products, err := s.products.List(r.Context(), repo.ProductFilter{})
	if err != nil {
		s.log.Error("store operation failed", zap.String("path", r.URL.Path), zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "DB error"})
		return
	}
	if err := writeJSON(w, http.StatusOK, products); err != nil {
		s.log.Warn("failed to write JSON response", zap.Error(err))
	}
}
