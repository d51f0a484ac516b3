// Package checkout turns a cart into a committed sale. The Register is
// the only component allowed to do that: it prices the cart, applies the
// discount, and hands the ledger an all-or-nothing commit. A failed
// commit leaves the cart exactly as it was so the cashier loses no work.
package checkout

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/counterware/tally/pkg/types"
)

// Phase is where a Register stands in its current or most recent
// checkout attempt.
type Phase string

// Checkout phases. A fresh Register is idle; each Checkout call walks
// validating -> committing -> done, detouring to failed on any error.
const (
	PhaseIdle       Phase = "idle"
	PhaseValidating Phase = "validating"
	PhaseCommitting Phase = "committing"
	PhaseDone       Phase = "done"
	PhaseFailed     Phase = "failed"
)

// Register is one cashier station: a cart plus the engine that prices
// and commits it. Like the cart it owns, a Register belongs to a single
// cashier flow and is not safe for concurrent use; the catalog and
// ledger behind it are shared and may serve many registers at once.
type Register struct {
	catalog types.Catalog
	ledger  types.Ledger
	cart    types.Cart
	phase   Phase
	log     zerolog.Logger
}

// New creates an idle Register over the shared catalog and ledger.
func New(catalog types.Catalog, ledger types.Ledger, logger zerolog.Logger) *Register {
	return &Register{
		catalog: catalog,
		ledger:  ledger,
		phase:   PhaseIdle,
		log:     logger.With().Str("component", "register").Logger(),
	}
}

// Cart exposes the working cart for line edits between scans.
func (r *Register) Cart() *types.Cart {
	return &r.cart
}

// Phase reports the state of the current or last checkout attempt.
func (r *Register) Phase() Phase {
	return r.phase
}

// ScanAndAdd looks up a barcode and merges the quantity into the cart.
// The stock comparison here is a pre-check for immediate cashier
// feedback only; stock may move between scan and checkout (another
// register may sell the same product), so the authoritative guard runs
// again inside the commit. On any failure the cart is left unchanged.
func (r *Register) ScanAndAdd(barcode string, qty int) (types.CartItem, error) {
	if qty < 1 {
		return types.CartItem{}, types.ErrInvalidQuantity
	}

	p, err := r.catalog.ProductByBarcode(barcode)
	if err != nil {
		return types.CartItem{}, fmt.Errorf("scanning %q: %w", barcode, err)
	}

	if qty > p.Stock {
		return types.CartItem{}, &types.InsufficientStockError{
			ProductID: p.ID,
			Name:      p.Name,
			Requested: qty,
			Available: p.Stock,
		}
	}

	item, err := r.cart.Add(p, qty)
	if err != nil {
		return types.CartItem{}, err
	}
	r.log.Debug().
		Str("barcode", barcode).
		Int("qty", qty).
		Int("line_qty", item.Quantity).
		Msg("scanned")
	return item, nil
}

// Totals prices the cart: subtotal, the flat discount, and the final
// total, where total = max(round(subtotal - discount, 2), 0). A discount
// larger than the subtotal clamps the total at zero and the excess is
// discarded; a negative discount is rejected with ErrInvalidDiscount.
func (r *Register) Totals(discount decimal.Decimal) (types.Totals, error) {
	if discount.IsNegative() {
		return types.Totals{}, types.ErrInvalidDiscount
	}

	subtotal := r.cart.Subtotal()
	total := subtotal.Sub(discount).Round(2)
	if total.IsNegative() {
		total = decimal.Zero
	}
	return types.Totals{Subtotal: subtotal, Discount: discount, Total: total}, nil
}

// Checkout commits the cart as one sale. The line snapshot and every
// stock decrement happen atomically inside the ledger; if any product
// comes up short the whole attempt fails, nothing is persisted, and the
// cart stays exactly as it was so quantities can be adjusted for a
// retry. On success the cart is cleared and the receipt returned.
func (r *Register) Checkout(discount decimal.Decimal) (*types.Receipt, error) {
	r.phase = PhaseValidating

	totals, err := r.Totals(discount)
	if err != nil {
		r.phase = PhaseFailed
		return nil, err
	}

	items := r.cart.Items()
	if len(items) == 0 {
		r.phase = PhaseFailed
		return nil, types.ErrEmptyCart
	}

	lines := make([]types.SaleLine, 0, len(items))
	receiptLines := make([]types.ReceiptLine, 0, len(items))
	for _, it := range items {
		lineTotal := it.LineTotal().Round(2)
		lines = append(lines, types.SaleLine{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			LineTotal: lineTotal,
		})
		receiptLines = append(receiptLines, types.ReceiptLine{
			Name:      it.Name,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
			LineTotal: lineTotal,
		})
	}

	r.phase = PhaseCommitting
	sale, err := r.ledger.RecordSale(lines, totals.Total)
	if err != nil {
		r.phase = PhaseFailed
		return nil, fmt.Errorf("recording sale: %w", err)
	}

	r.cart.Clear()
	r.phase = PhaseDone
	r.log.Info().
		Str("sale_id", sale.ID).
		Str("total", sale.Total.String()).
		Int("items", len(receiptLines)).
		Msg("checkout complete")

	return &types.Receipt{
		SaleID:    sale.ID,
		Items:     receiptLines,
		Subtotal:  totals.Subtotal,
		Discount:  totals.Discount,
		Total:     totals.Total,
		Timestamp: sale.Timestamp,
	}, nil
}
