package types

import (
	"time"

	"github.com/shopspring/decimal"
)

// Catalog is the single source of truth for product identity, pricing,
// and stock. Implementations guard the stock >= 0 invariant: no call may
// drive a stock count negative, and a call that would does nothing.
type Catalog interface {
	// AddProduct creates a product with the given initial stock and
	// returns it. Fails with ErrDuplicateBarcode if the barcode is
	// already registered, ErrInvalidPrice for a bad price, and
	// ErrInvalidQuantity for negative initial stock.
	AddProduct(barcode, name string, price decimal.Decimal, stock int) (*Product, error)

	// ProductByBarcode returns the product with exactly this barcode.
	// Returns ErrNotFound if absent; no partial matches.
	ProductByBarcode(barcode string) (*Product, error)

	// ProductByID returns the product with this id, or ErrNotFound.
	ProductByID(id string) (*Product, error)

	// Search returns all products whose name or barcode contains the
	// keyword, case-insensitively. The order is stable within one call.
	Search(keyword string) ([]*Product, error)

	// UpdateProduct replaces the mutable fields (name, price, stock) of
	// an existing product and returns the updated record. The barcode is
	// not touched. Returns ErrNotFound if the id is absent.
	UpdateProduct(id, name string, price decimal.Decimal, stock int) (*Product, error)

	// DeleteProduct removes the product and reports whether a record was
	// actually removed. Deleting an absent id is not an error, just a
	// false result. Historical sale lines keep their product reference.
	DeleteProduct(id string) (bool, error)

	// AdjustStock atomically applies stock += delta only if the result
	// stays non-negative; otherwise nothing changes and an
	// InsufficientStockError is returned. The check and the update are
	// one indivisible step, safe under concurrent callers. Returns the
	// updated product, or ErrNotFound if the id is absent.
	AdjustStock(id string, delta int) (*Product, error)

	// Products returns a full snapshot of the catalog.
	Products() ([]*Product, error)

	// LowStock returns all products with stock <= threshold, ascending
	// by stock.
	LowStock(threshold int) ([]*Product, error)
}

// Ledger is the durable, append-only history of completed sales. Records
// enter only through RecordSale and are never mutated afterward.
type Ledger interface {
	// RecordSale commits one sale: the header, every line, and a stock
	// decrement per line, all-or-nothing. If any decrement would drive a
	// stock count negative the entire sale is rejected with an
	// InsufficientStockError and nothing is persisted. Storage failures
	// surface as errors wrapping ErrCommitFailed.
	RecordSale(lines []SaleLine, total decimal.Decimal) (*Sale, error)

	// Sales returns sale headers in the inclusive timestamp range,
	// descending by timestamp. Zero time values leave that bound open.
	Sales(from, to time.Time) ([]*Sale, error)

	// SaleDetails returns the header plus its lines joined with current
	// product display data. Returns ErrNotFound for an unknown sale id.
	SaleDetails(id string) (*SaleDetails, error)

	// SalesByDay aggregates transaction count and revenue per UTC
	// calendar day over the inclusive range, descending by day.
	SalesByDay(from, to time.Time) ([]DaySummary, error)
}
