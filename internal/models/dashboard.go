package models

import (
	"math"
	"strconv"

	"github.com/shopspring/decimal"
)

// DashboardStats holds the aggregates shown on the landing page.
type DashboardStats struct {
	Total int64  `json:"total"`
	Stock int64  `json:"estoque"`
	Value string `json:"valor"`
}

// NewDashboardStats formats the inventory value with two decimals.
func NewDashboardStats(total, stock int64, value float64) DashboardStats {
	return DashboardStats{
		Total: total,
		Stock: stock,
		Value: FormatMoney(value),
	}
}

// FormatMoney renders v with two decimals, rounding the exact binary value
// half away from zero. 1.005 is stored as 1.00499... and renders as "1.00".
func FormatMoney(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return decimal.NewFromFloatWithExponent(v, -2).StringFixed(2)
}
