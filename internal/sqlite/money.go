package sqlite

import "github.com/shopspring/decimal"

// Money columns store integer cents rather than floating point, so SUM()
// over sales stays exact. Conversion happens only at the storage edge;
// everything above works in decimal.Decimal.

// cents converts a monetary decimal into integer cents for storage.
// Values are rounded to two places first; validated prices and totals
// already carry at most two, so the rounding is a no-op for them.
func cents(d decimal.Decimal) int64 {
	return d.Round(2).Shift(2).IntPart()
}

// fromCents converts stored integer cents back into a two-place decimal.
func fromCents(c int64) decimal.Decimal {
	return decimal.New(c, -2)
}
