package types

import (
	"time"

	"github.com/shopspring/decimal"
)

// Totals is the priced view of a cart: subtotal, the flat discount that
// was applied, and the final total clamped at zero.
type Totals struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Discount decimal.Decimal `json:"discount"`
	Total    decimal.Decimal `json:"total"`
}

// ReceiptLine is one sold position as rendered on a receipt.
type ReceiptLine struct {
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	LineTotal decimal.Decimal `json:"line_total"`
}

// Receipt is the value returned by a successful checkout: an ordered
// sequence of lines plus the totals and the ledger's commit timestamp.
// Any renderer can consume it without further computation.
type Receipt struct {
	SaleID    string          `json:"sale_id"`
	Items     []ReceiptLine   `json:"items"`
	Subtotal  decimal.Decimal `json:"subtotal"`
	Discount  decimal.Decimal `json:"discount"`
	Total     decimal.Decimal `json:"total"`
	Timestamp time.Time       `json:"timestamp"`
}
