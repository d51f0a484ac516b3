// This file implements the product catalog side of the Store: CRUD,
// search, and the guarded stock adjustment that keeps counts non-negative.
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	sqlite3 "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"

	"github.com/counterware/tally/pkg/types"
)

const productColumns = "product_id, barcode, name, price_cents, stock, created_at, updated_at"

// AddProduct creates a product with the given initial stock. The barcode
// must not already be registered; uniqueness is enforced by the schema,
// not by a separate lookup, so concurrent creates cannot both win.
func (s *Store) AddProduct(barcode, name string, price decimal.Decimal, stock int) (*types.Product, error) {
	if barcode == "" {
		return nil, types.ErrInvalidBarcode
	}
	if name == "" {
		return nil, types.ErrInvalidName
	}
	if err := types.ValidatePrice(price); err != nil {
		return nil, err
	}
	if stock < 0 {
		return nil, types.ErrInvalidQuantity
	}

	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC().Truncate(time.Second)
	p := &types.Product{
		ID:        generateUUID(),
		Barcode:   barcode,
		Name:      name,
		Price:     price.Round(2),
		Stock:     stock,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err = db.Exec(
		"INSERT INTO products (product_id, barcode, name, price_cents, stock, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?)",
		p.ID, p.Barcode, p.Name, cents(p.Price), p.Stock,
		now.Format(time.RFC3339), now.Format(time.RFC3339),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("barcode %q: %w", barcode, types.ErrDuplicateBarcode)
		}
		return nil, fmt.Errorf("inserting product: %w", err)
	}
	return p, nil
}

// ProductByBarcode retrieves the product with exactly this barcode.
func (s *Store) ProductByBarcode(barcode string) (*types.Product, error) {
	if barcode == "" {
		return nil, types.ErrInvalidBarcode
	}
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	row := db.QueryRow("SELECT "+productColumns+" FROM products WHERE barcode = ?", barcode)
	p, err := hydrateProduct(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("barcode %q: %w", barcode, types.ErrNotFound)
		}
		return nil, fmt.Errorf("getting product by barcode: %w", err)
	}
	return p, nil
}

// ProductByID retrieves the product with this id.
func (s *Store) ProductByID(id string) (*types.Product, error) {
	if id == "" {
		return nil, types.ErrInvalidID
	}
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	row := db.QueryRow("SELECT "+productColumns+" FROM products WHERE product_id = ?", id)
	p, err := hydrateProduct(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("product %s: %w", id, types.ErrNotFound)
		}
		return nil, fmt.Errorf("getting product %s: %w", id, err)
	}
	return p, nil
}

// Search returns all products whose name or barcode contains the keyword,
// case-insensitively, ordered by name then barcode. An empty keyword
// matches everything.
func (s *Store) Search(keyword string) ([]*types.Product, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	pattern := "%" + keyword + "%"
	rows, err := db.Query(
		"SELECT "+productColumns+" FROM products WHERE name LIKE ? OR barcode LIKE ? ORDER BY name, barcode",
		pattern, pattern,
	)
	if err != nil {
		return nil, fmt.Errorf("searching products: %w", err)
	}
	return collectProducts(rows)
}

// UpdateProduct replaces the mutable fields of an existing product and
// returns the updated record. The barcode is never touched on this path.
func (s *Store) UpdateProduct(id, name string, price decimal.Decimal, stock int) (*types.Product, error) {
	if id == "" {
		return nil, types.ErrInvalidID
	}
	if name == "" {
		return nil, types.ErrInvalidName
	}
	if err := types.ValidatePrice(price); err != nil {
		return nil, err
	}
	if stock < 0 {
		return nil, types.ErrInvalidQuantity
	}

	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC().Truncate(time.Second)
	res, err := db.Exec(
		"UPDATE products SET name = ?, price_cents = ?, stock = ?, updated_at = ? WHERE product_id = ?",
		name, cents(price), stock, now.Format(time.RFC3339), id,
	)
	if err != nil {
		return nil, fmt.Errorf("updating product %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("updating product %s: %w", id, err)
	}
	if n == 0 {
		return nil, fmt.Errorf("product %s: %w", id, types.ErrNotFound)
	}
	return s.ProductByID(id)
}

// DeleteProduct removes the product and reports whether a record was
// actually removed. Historical sale lines keep their product_id; the
// dangling reference is intentional.
func (s *Store) DeleteProduct(id string) (bool, error) {
	if id == "" {
		return false, types.ErrInvalidID
	}
	db, err := s.conn()
	if err != nil {
		return false, err
	}

	res, err := db.Exec("DELETE FROM products WHERE product_id = ?", id)
	if err != nil {
		return false, fmt.Errorf("deleting product %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("deleting product %s: %w", id, err)
	}
	return n > 0, nil
}

// AdjustStock atomically applies stock += delta, but only when the result
// stays non-negative. The guard lives in the UPDATE itself rather than in
// a read-then-write, so two concurrent adjustments can never drive the
// count below zero. Zero rows affected means either the guard refused or
// the product does not exist; a follow-up read inside the same
// transaction tells the two apart.
func (s *Store) AdjustStock(id string, delta int) (*types.Product, error) {
	if id == "" {
		return nil, types.ErrInvalidID
	}
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	tx, err := db.Begin()
	if err != nil {
		return nil, fmt.Errorf("beginning stock adjustment: %w", err)
	}
	defer tx.Rollback()

	now := time.Now().UTC().Truncate(time.Second)
	res, err := tx.Exec(
		"UPDATE products SET stock = stock + ?, updated_at = ? WHERE product_id = ? AND stock + ? >= 0",
		delta, now.Format(time.RFC3339), id, delta,
	)
	if err != nil {
		return nil, fmt.Errorf("adjusting stock for %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("adjusting stock for %s: %w", id, err)
	}

	if n == 0 {
		row := tx.QueryRow("SELECT "+productColumns+" FROM products WHERE product_id = ?", id)
		p, err := hydrateProduct(row)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, fmt.Errorf("product %s: %w", id, types.ErrNotFound)
			}
			return nil, fmt.Errorf("reading product %s after refused adjustment: %w", id, err)
		}
		return nil, &types.InsufficientStockError{
			ProductID: p.ID,
			Name:      p.Name,
			Requested: -delta,
			Available: p.Stock,
		}
	}

	row := tx.QueryRow("SELECT "+productColumns+" FROM products WHERE product_id = ?", id)
	p, err := hydrateProduct(row)
	if err != nil {
		return nil, fmt.Errorf("reading product %s after adjustment: %w", id, err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing stock adjustment: %w", err)
	}
	return p, nil
}

// Products returns a full snapshot of the catalog ordered by name.
func (s *Store) Products() ([]*types.Product, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query("SELECT " + productColumns + " FROM products ORDER BY name, barcode")
	if err != nil {
		return nil, fmt.Errorf("listing products: %w", err)
	}
	return collectProducts(rows)
}

// LowStock returns all products at or below the threshold, the scarcest
// first.
func (s *Store) LowStock(threshold int) ([]*types.Product, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(
		"SELECT "+productColumns+" FROM products WHERE stock <= ? ORDER BY stock, name",
		threshold,
	)
	if err != nil {
		return nil, fmt.Errorf("listing low stock: %w", err)
	}
	return collectProducts(rows)
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// hydrateProduct converts one products row into a *types.Product.
func hydrateProduct(row rowScanner) (*types.Product, error) {
	var p types.Product
	var priceCents int64
	var createdAt, updatedAt string
	if err := row.Scan(&p.ID, &p.Barcode, &p.Name, &priceCents, &p.Stock, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	p.Price = fromCents(priceCents)
	var err error
	p.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	p.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt)
	if err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return &p, nil
}

// collectProducts drains rows into a slice, closing them when done.
// Returns an empty slice, not nil, when nothing matches.
func collectProducts(rows *sql.Rows) ([]*types.Product, error) {
	defer rows.Close()

	results := []*types.Product{}
	for rows.Next() {
		p, err := hydrateProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("hydrating product: %w", err)
		}
		results = append(results, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating products: %w", err)
	}
	return results, nil
}

// isUniqueViolation reports whether err is the driver's UNIQUE constraint
// failure, which AddProduct maps to ErrDuplicateBarcode.
func isUniqueViolation(err error) bool {
	var se *sqlite3.Error
	return errors.As(err, &se) && se.Code() == sqlite3lib.SQLITE_CONSTRAINT_UNIQUE
}
