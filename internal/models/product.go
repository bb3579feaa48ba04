package models

import (
	"math"
	"strconv"
	"strings"
)

// NoID never matches a stored product. Ids are assigned from 1 upwards.
const NoID int64 = -1

// Product represents a product entity in the inventory system.
type Product struct {
	ID          int64   `json:"id" db:"id"`
	Name        *string `json:"nome" db:"nome"`
	Description *string `json:"descricao" db:"descricao"`
	Price       float64 `json:"preco" db:"preco"`
	Quantity    int64   `json:"quantidade" db:"quantidade"`
}

// NameText returns the name or an empty string when it is NULL. Stored rows
// always carry a name; only unsaved input may lack one.
func (p Product) NameText() string {
	if p.Name == nil {
		return ""
	}
	return *p.Name
}

// DescriptionText returns the description or an empty string when it is NULL.
func (p Product) DescriptionText() string {
	if p.Description == nil {
		return ""
	}
	return *p.Description
}

// StockValue is price times quantity on hand.
func (p Product) StockValue() float64 {
	return p.Price * float64(p.Quantity)
}

// ParseID reads a path segment or search term as a product id. Anything that is
// not a positive whole number yields NoID.
func ParseID(s string) int64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return NoID
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return NoID
	}
	if f != math.Trunc(f) || f <= 0 || f >= math.MaxInt64 {
		return NoID
	}
	return int64(f)
}
