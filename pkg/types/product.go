package types

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is one catalog entry. Stock counts on-hand units and never goes
// negative; every stock change is guarded by the store (see Catalog).
type Product struct {
	ID        string          `json:"id"`         // UUID v7, generated on creation.
	Barcode   string          `json:"barcode"`    // Unique lookup key, fixed after creation.
	Name      string          `json:"name"`       // Display name (required, non-empty).
	Price     decimal.Decimal `json:"price"`      // Unit price, two decimal places.
	Stock     int             `json:"stock"`      // On-hand units, >= 0 at all times.
	CreatedAt time.Time       `json:"created_at"` // Timestamp of creation.
	UpdatedAt time.Time       `json:"updated_at"` // Timestamp of last modification.
}

// ValidatePrice checks that p can serve as a product price: non-negative
// with at most two decimal places. Returns ErrInvalidPrice otherwise.
func ValidatePrice(p decimal.Decimal) error {
	if p.IsNegative() || !p.Equal(p.Round(2)) {
		return ErrInvalidPrice
	}
	return nil
}
