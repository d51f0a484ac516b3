package types

import (
	"errors"
	"fmt"
)

// Validation errors. All are detected before any mutation takes place.
var (
	ErrInvalidID       = errors.New("id must not be empty")
	ErrInvalidBarcode  = errors.New("barcode must not be empty")
	ErrInvalidName     = errors.New("name must not be empty")
	ErrInvalidPrice    = errors.New("price must be non-negative with at most two decimal places")
	ErrInvalidQuantity = errors.New("quantity must be a positive integer")
	ErrInvalidDiscount = errors.New("discount must not be negative")
)

// Catalog errors.
var (
	ErrDuplicateBarcode = errors.New("barcode already registered")
	ErrNotFound         = errors.New("not found")
)

// Checkout and ledger errors.
var (
	ErrEmptyCart         = errors.New("cart is empty")
	ErrNoLineItems       = errors.New("sale requires at least one line item")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrCommitFailed      = errors.New("sale commit failed")
)

// Store lifecycle errors.
var (
	ErrStoreClosed = errors.New("store is closed")
)

// InsufficientStockError reports a stock guard failure for one product:
// the requested quantity exceeds what is on hand. The call that produced
// it has not mutated anything; the caller can lower the quantity and retry.
type InsufficientStockError struct {
	ProductID string
	Name      string
	Requested int
	Available int
}

// Error formats the failure with the detail a cashier needs to adjust.
func (e *InsufficientStockError) Error() string {
	label := e.Name
	if label == "" {
		label = e.ProductID
	}
	return fmt.Sprintf("insufficient stock for %s: requested %d, available %d",
		label, e.Requested, e.Available)
}

// Unwrap returns ErrInsufficientStock so errors.Is matches the sentinel.
func (e *InsufficientStockError) Unwrap() error {
	return ErrInsufficientStock
}
