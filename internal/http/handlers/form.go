package handlers

import (
	"math"
	"net/http"
	"regexp"
	"strconv"
	"strings"

	"github.com/rogerio-castellano/inventory-panel/internal/models"
)

var (
	decimalPrefix = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)
	integerPrefix = regexp.MustCompile(`^[+-]?\d+`)
)

// ParsePrice reads the longest leading decimal number of s ("9.99abc" is 9.99).
// Input without a numeric prefix is 0.
func ParsePrice(s string) float64 {
	m := decimalPrefix.FindString(strings.TrimSpace(s))
	if m == "" {
		return 0
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// ParseQuantity reads the leading integer of s ("3.7" is 3). Input without
// digits, or out of range, is 0.
func ParseQuantity(s string) int64 {
	m := integerPrefix.FindString(strings.TrimSpace(s))
	if m == "" {
		return 0
	}
	v, err := strconv.ParseInt(m, 10, 64)
	if err != nil {
		return 0
	}
	return v
}

// ProductInput is the decoded product form, with numbers already coerced. An
// absent nome stays nil so the store's NOT NULL rule rejects it.
type ProductInput struct {
	Name        *string
	Description *string
	Price       float64
	Quantity    int64
}

// formField returns nil when the field was not submitted at all.
func formField(r *http.Request, key string) *string {
	vals, ok := r.PostForm[key]
	if !ok || len(vals) == 0 {
		return nil
	}
	v := vals[0]
	return &v
}

func parseProductForm(r *http.Request) (ProductInput, error) {
	if err := r.ParseForm(); err != nil {
		return ProductInput{}, err
	}
	return ProductInput{
		Name:        formField(r, "nome"),
		Description: formField(r, "descricao"),
		Price:       ParsePrice(r.PostForm.Get("preco")),
		Quantity:    ParseQuantity(r.PostForm.Get("quantidade")),
	}, nil
}

func (in ProductInput) Product(id int64) models.Product {
	return models.Product{
		ID:          id,
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Quantity:    in.Quantity,
	}
}
