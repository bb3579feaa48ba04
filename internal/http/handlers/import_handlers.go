package handlers

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

type csvRow struct {
	line  int
	input ProductInput
}

// parseCSV maps rows by header name, so columns may come in any order. A
// missing descricao column stores NULL descriptions.
func parseCSV(file io.Reader) ([]csvRow, error) {
	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	headers, err := reader.Read()
	if err != nil {
		return nil, errors.New("invalid CSV header")
	}

	index := map[string]int{}
	for i, h := range headers {
		index[strings.ToLower(strings.TrimSpace(h))] = i
	}
	if _, ok := index["nome"]; !ok {
		return nil, errors.New("CSV header must contain a nome column")
	}

	field := func(record []string, col string) (string, bool) {
		i, ok := index[col]
		if !ok || i >= len(record) {
			return "", false
		}
		return record[i], true
	}

	var rows []csvRow
	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("CSV read error: %v", err)
		}

		var in ProductInput
		if n, ok := field(record, "nome"); ok {
			in.Name = &n
		}
		if d, ok := field(record, "descricao"); ok {
			in.Description = &d
		}
		price, _ := field(record, "preco")
		qty, _ := field(record, "quantidade")
		in.Price = ParsePrice(price)
		in.Quantity = ParseQuantity(qty)

		rows = append(rows, csvRow{line: line, input: in})
	}
	return rows, nil
}

// ImportProductsHandler godoc
// @Summary Import products via CSV
// @Description Header row names the columns (nome, descricao, preco, quantidade). Numbers are coerced like the HTML form does.
// @Tags products
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "CSV file"
// @Success 200 {object} ImportProductsResult
// @Failure 400 {string} string "Invalid file"
// @Router /api/produtos/import [post]
func (s *Server) ImportProductsHandler(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "missing file", http.StatusBadRequest)
		return
	}
	defer file.Close()

	records, err := parseCSV(file)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result := ImportProductsResult{Errors: []ImportRowError{}}
	for _, rec := range records {
		if rec.input.Name == nil || strings.TrimSpace(*rec.input.Name) == "" {
			result.Errors = append(result.Errors, ImportRowError{Row: rec.line, Description: "missing nome"})
			continue
		}
		if _, err := s.products.Create(r.Context(), rec.input.Product(0)); err != nil {
			s.log.Error("import row failed", zap.Int("row", rec.line), zap.Error(err))
			result.Errors = append(result.Errors, ImportRowError{Row: rec.line, Description: "could not store product"})
			continue
		}
		result.ImportedProductsCount++
	}

	if err := writeJSON(w, http.StatusOK, result); err != nil {
		s.log.Warn("failed to write JSON response", zap.Error(err))
	}
}
