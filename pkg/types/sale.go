package types

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale is the header of one committed transaction. Immutable once recorded.
type Sale struct {
	ID        string          `json:"id"`        // UUID v7, assigned at commit time.
	Timestamp time.Time       `json:"timestamp"` // Commit time, UTC, second precision.
	Total     decimal.Decimal `json:"total"`     // Final charged amount, >= 0.
}

// SaleLine is one product position within a sale. Quantity and LineTotal
// are fixed at commit time; the product reference is historical and may
// outlive the product itself.
type SaleLine struct {
	ProductID string          `json:"product_id"`
	Quantity  int             `json:"quantity"`
	LineTotal decimal.Decimal `json:"line_total"`
}

// SaleLineDetail is a stored line joined with current catalog display data.
// Name and Barcode are empty when the product has since been deleted;
// Price is the product's price at query time, not at sale time.
type SaleLineDetail struct {
	ProductID string          `json:"product_id"`
	Quantity  int             `json:"quantity"`
	LineTotal decimal.Decimal `json:"line_total"`
	Name      string          `json:"name"`
	Barcode   string          `json:"barcode"`
	Price     decimal.Decimal `json:"price"`
}

// SaleDetails is a sale header with its joined lines, shaped for rendering.
type SaleDetails struct {
	Sale  Sale             `json:"sale"`
	Lines []SaleLineDetail `json:"lines"`
}

// DaySummary aggregates committed sales over one UTC calendar day.
type DaySummary struct {
	Day          string          `json:"day"` // "2006-01-02"
	Transactions int             `json:"transactions"`
	Revenue      decimal.Decimal `json:"revenue"`
}
