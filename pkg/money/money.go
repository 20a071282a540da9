// Package money provides decimal-backed helpers for the monetary arithmetic
// used by bills and reports. All amounts are carried as float64 at the edges
// but rounded, formatted and compared through shopspring/decimal so two
// rendering backends never disagree on a digit.
package money

import "github.com/shopspring/decimal"

// Tolerance is the accepted rounding drift for monetary invariants.
const Tolerance = 0.01

// Round2 rounds a value to two decimal places.
func Round2(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f
}

// Format renders a value with exactly two decimal digits and no currency symbol.
func Format(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}

// Equal reports whether two amounts agree within Tolerance.
func Equal(a, b float64) bool {
	diff := decimal.NewFromFloat(a).Sub(decimal.NewFromFloat(b)).Abs()
	return diff.LessThanOrEqual(decimal.NewFromFloat(Tolerance))
}

// Mul multiplies quantity by unit price, rounded to two decimals.
func Mul(qty, price float64) float64 {
	f, _ := decimal.NewFromFloat(qty).Mul(decimal.NewFromFloat(price)).Round(2).Float64()
	return f
}

// Sum adds amounts without accumulating float drift.
func Sum(values ...float64) float64 {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(decimal.NewFromFloat(v))
	}
	f, _ := total.Round(2).Float64()
	return f
}
