package domain

import (
	"math"

	"github.com/shopspring/decimal"
)

// MaxAmount is the largest value a NUMERIC(14, 2) money column holds.
var MaxAmount = decimal.RequireFromString("999999999999.99")

// ValidAmount reports whether v is a positive amount in whole cents that fits
// the money columns.
func ValidAmount(v float64) bool {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return false
	}
	d := decimal.NewFromFloat(v)
	return d.IsPositive() && d.LessThanOrEqual(MaxAmount) && d.Exponent() >= -2
}
