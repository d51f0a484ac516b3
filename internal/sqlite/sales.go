// This file implements the sale ledger side of the Store. RecordSale is
// the only write path: one transaction covers the header, every line, and
// every stock decrement, so a failed sale leaves no trace.
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/counterware/tally/pkg/types"
)

// RecordSale commits one sale atomically. Lines are validated before the
// transaction starts; inside it, each line's stock decrement is a
// conditional UPDATE guarded on stock >= quantity. Any refused decrement
// aborts the whole transaction with an InsufficientStockError (or
// ErrNotFound for a vanished product) and nothing is persisted. Storage
// failures wrap ErrCommitFailed.
func (s *Store) RecordSale(lines []types.SaleLine, total decimal.Decimal) (*types.Sale, error) {
	if len(lines) == 0 {
		return nil, types.ErrNoLineItems
	}
	for _, ln := range lines {
		if ln.ProductID == "" {
			return nil, types.ErrInvalidID
		}
		if ln.Quantity < 1 {
			return nil, types.ErrInvalidQuantity
		}
	}
	if total.IsNegative() {
		return nil, types.ErrInvalidPrice
	}

	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC().Truncate(time.Second)
	sale := &types.Sale{
		ID:        generateUUID(),
		Timestamp: now,
		Total:     total.Round(2),
	}

	tx, err := db.Begin()
	if err != nil {
		return nil, s.commitErr("beginning sale transaction", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		"INSERT INTO sales (sale_id, sold_at, total_cents) VALUES (?, ?, ?)",
		sale.ID, now.Format(time.RFC3339), cents(sale.Total),
	)
	if err != nil {
		return nil, s.commitErr("inserting sale header", err)
	}

	for _, ln := range lines {
		_, err := tx.Exec(
			"INSERT INTO sale_items (sale_id, product_id, quantity, line_total_cents) VALUES (?, ?, ?, ?)",
			sale.ID, ln.ProductID, ln.Quantity, cents(ln.LineTotal),
		)
		if err != nil {
			return nil, s.commitErr("inserting sale line", err)
		}

		res, err := tx.Exec(
			"UPDATE products SET stock = stock - ?, updated_at = ? WHERE product_id = ? AND stock >= ?",
			ln.Quantity, now.Format(time.RFC3339), ln.ProductID, ln.Quantity,
		)
		if err != nil {
			return nil, s.commitErr("decrementing stock", err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return nil, s.commitErr("checking stock decrement", err)
		}
		if n == 0 {
			// Rollback via the deferred call undoes the header and any
			// lines already inserted.
			return nil, stockShortage(tx, ln)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, s.commitErr("committing sale", err)
	}

	s.log.Info().
		Str("sale_id", sale.ID).
		Str("total", sale.Total.String()).
		Int("lines", len(lines)).
		Msg("sale committed")
	return sale, nil
}

// Sales returns sale headers in the inclusive timestamp range, newest
// first. Zero time values leave that bound open.
func (s *Store) Sales(from, to time.Time) ([]*types.Sale, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	query := "SELECT sale_id, sold_at, total_cents FROM sales"
	conds, args := saleRangeConds(from, to)
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY sold_at DESC, sale_id DESC"

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing sales: %w", err)
	}
	defer rows.Close()

	results := []*types.Sale{}
	for rows.Next() {
		sale, err := hydrateSale(rows)
		if err != nil {
			return nil, fmt.Errorf("hydrating sale: %w", err)
		}
		results = append(results, sale)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sales: %w", err)
	}
	return results, nil
}

// SaleDetails returns the header plus its lines joined with current
// product display data. Lines whose product has since been deleted come
// back with empty name and barcode; the stored quantity and line total
// are always exactly as recorded at sale time.
func (s *Store) SaleDetails(id string) (*types.SaleDetails, error) {
	if id == "" {
		return nil, types.ErrInvalidID
	}
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	row := db.QueryRow("SELECT sale_id, sold_at, total_cents FROM sales WHERE sale_id = ?", id)
	sale, err := hydrateSale(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("sale %s: %w", id, types.ErrNotFound)
		}
		return nil, fmt.Errorf("getting sale %s: %w", id, err)
	}

	rows, err := db.Query(
		`SELECT si.product_id, si.quantity, si.line_total_cents,
            COALESCE(p.name, ''), COALESCE(p.barcode, ''), COALESCE(p.price_cents, 0)
         FROM sale_items si
         LEFT JOIN products p ON p.product_id = si.product_id
         WHERE si.sale_id = ?
         ORDER BY si.rowid`,
		id,
	)
	if err != nil {
		return nil, fmt.Errorf("listing sale lines: %w", err)
	}
	defer rows.Close()

	details := &types.SaleDetails{Sale: *sale, Lines: []types.SaleLineDetail{}}
	for rows.Next() {
		var d types.SaleLineDetail
		var lineCents, priceCents int64
		if err := rows.Scan(&d.ProductID, &d.Quantity, &lineCents, &d.Name, &d.Barcode, &priceCents); err != nil {
			return nil, fmt.Errorf("scanning sale line: %w", err)
		}
		d.LineTotal = fromCents(lineCents)
		d.Price = fromCents(priceCents)
		details.Lines = append(details.Lines, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sale lines: %w", err)
	}
	return details, nil
}

// SalesByDay aggregates transaction count and revenue per UTC calendar
// day over the inclusive range, most recent day first. Revenue is summed
// in integer cents, so repeated small totals cannot drift.
func (s *Store) SalesByDay(from, to time.Time) ([]types.DaySummary, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	query := "SELECT date(sold_at) AS day, COUNT(*), SUM(total_cents) FROM sales"
	conds, args := saleRangeConds(from, to)
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " GROUP BY date(sold_at) ORDER BY day DESC"

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("aggregating sales: %w", err)
	}
	defer rows.Close()

	results := []types.DaySummary{}
	for rows.Next() {
		var d types.DaySummary
		var revenueCents int64
		if err := rows.Scan(&d.Day, &d.Transactions, &revenueCents); err != nil {
			return nil, fmt.Errorf("scanning day summary: %w", err)
		}
		d.Revenue = fromCents(revenueCents)
		results = append(results, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating day summaries: %w", err)
	}
	return results, nil
}

// saleRangeConds builds WHERE conditions for an inclusive sold_at range.
// RFC3339 UTC strings compare lexicographically in timestamp order.
func saleRangeConds(from, to time.Time) ([]string, []any) {
	var conds []string
	var args []any
	if !from.IsZero() {
		conds = append(conds, "sold_at >= ?")
		args = append(args, from.UTC().Format(time.RFC3339))
	}
	if !to.IsZero() {
		conds = append(conds, "sold_at <= ?")
		args = append(args, to.UTC().Format(time.RFC3339))
	}
	return conds, args
}

// hydrateSale converts one sales row into a *types.Sale.
func hydrateSale(row rowScanner) (*types.Sale, error) {
	var sale types.Sale
	var totalCents int64
	var soldAt string
	if err := row.Scan(&sale.ID, &soldAt, &totalCents); err != nil {
		return nil, err
	}
	sale.Total = fromCents(totalCents)
	var err error
	sale.Timestamp, err = time.Parse(time.RFC3339, soldAt)
	if err != nil {
		return nil, fmt.Errorf("parsing sold_at: %w", err)
	}
	return &sale, nil
}

// stockShortage explains a refused decrement: the product either lacks
// stock or no longer exists. Read inside the open transaction so the
// numbers match what the guard saw.
func stockShortage(tx *sql.Tx, ln types.SaleLine) error {
	var name string
	var stock int
	err := tx.QueryRow("SELECT name, stock FROM products WHERE product_id = ?", ln.ProductID).
		Scan(&name, &stock)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("product %s: %w", ln.ProductID, types.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("reading product %s after refused decrement: %w", ln.ProductID, err)
	}
	return &types.InsufficientStockError{
		ProductID: ln.ProductID,
		Name:      name,
		Requested: ln.Quantity,
		Available: stock,
	}
}

// commitErr classifies a storage failure during the sale commit so
// callers can match ErrCommitFailed while keeping the cause. Logged at
// warn: a commit that fails for any reason other than the stock guard is
// worth noticing.
func (s *Store) commitErr(step string, err error) error {
	s.log.Warn().Err(err).Str("step", step).Msg("sale aborted")
	return fmt.Errorf("%s: %w: %w", step, types.ErrCommitFailed, err)
}
