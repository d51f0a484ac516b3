// Shared helpers for till CLI commands.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/counterware/tally/internal/sqlite"
	"github.com/counterware/tally/pkg/types"
)

// userErrors are the error classes the operator can correct. They exit with
// exitUserError; everything else is a system error.
var userErrors = []error{
	types.ErrInvalidID,
	types.ErrInvalidBarcode,
	types.ErrInvalidName,
	types.ErrInvalidPrice,
	types.ErrInvalidQuantity,
	types.ErrInvalidDiscount,
	types.ErrDuplicateBarcode,
	types.ErrNotFound,
	types.ErrEmptyCart,
	types.ErrNoLineItems,
	types.ErrInsufficientStock,
}

// openStore resolves the data directory, builds the logger from the loaded
// config, and opens the SQLite store. The caller must defer store.Close().
func openStore() (*sqlite.Store, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}

	cfg := types.Config{
		DataDir:           dataDir,
		LowStockThreshold: configLowStock,
		LogLevel:          configLogLevel,
	}

	store, err := sqlite.Open(cfg, newLogger(cfg.LogLevel))
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	return store, nil
}

// newLogger builds a console logger on stderr at the configured level so
// command output on stdout stays clean.
func newLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	out := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	return zerolog.New(out).Level(lvl).With().Timestamp().Logger()
}

// fail prints the error with a command prefix and exits with the code its
// class calls for.
func fail(prefix string, err error) {
	fmt.Fprintln(os.Stderr, prefix+":", err)
	os.Exit(exitCode(err))
}

// exitCode maps an error to the CLI exit code.
func exitCode(err error) int {
	for _, userErr := range userErrors {
		if errors.Is(err, userErr) {
			return exitUserError
		}
	}
	return exitSysError
}

// printJSON writes v as indented JSON to stdout.
func printJSON(v any) error {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	fmt.Println(string(output))
	return nil
}

// printProduct writes one product as text lines.
func printProduct(p *types.Product) {
	fmt.Printf("%s  %s\n", p.Barcode, p.Name)
	fmt.Printf("  id:      %s\n", p.ID)
	fmt.Printf("  price:   %s\n", p.Price.StringFixed(2))
	fmt.Printf("  stock:   %d\n", p.Stock)
	fmt.Printf("  updated: %s\n", p.UpdatedAt.Format(time.RFC3339))
}

// printProductTable writes products one per line for list and search output.
func printProductTable(products []*types.Product) {
	if len(products) == 0 {
		fmt.Println("no products")
		return
	}
	fmt.Printf("%-16s %-28s %10s %7s\n", "BARCODE", "NAME", "PRICE", "STOCK")
	for _, p := range products {
		fmt.Printf("%-16s %-28s %10s %7d\n", p.Barcode, p.Name, p.Price.StringFixed(2), p.Stock)
	}
}

// printReceipt writes the receipt as plain text.
func printReceipt(r *types.Receipt) {
	fmt.Println("Sale", r.SaleID)
	fmt.Println(" ", r.Timestamp.Format(time.RFC3339))
	for _, line := range r.Items {
		fmt.Printf("  %-28s %3d x %8s   %10s\n", line.Name, line.Quantity, line.UnitPrice.StringFixed(2), line.LineTotal.StringFixed(2))
	}
	fmt.Printf("  %-45s %10s\n", "subtotal", r.Subtotal.StringFixed(2))
	if !r.Discount.IsZero() {
		fmt.Printf("  %-45s %10s\n", "discount", "-"+r.Discount.StringFixed(2))
	}
	fmt.Printf("  %-45s %10s\n", "total", r.Total.StringFixed(2))
}

// parsePrice parses a decimal money amount and validates it as a price.
func parsePrice(s string) (decimal.Decimal, error) {
	price, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid price %q: %w", s, types.ErrInvalidPrice)
	}
	if err := types.ValidatePrice(price); err != nil {
		return decimal.Zero, fmt.Errorf("invalid price %q: %w", s, err)
	}
	return price, nil
}

// parseDay parses a YYYY-MM-DD date as midnight UTC.
func parseDay(s string) (time.Time, error) {
	day, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", s)
	}
	return day, nil
}

// parseRange converts --from/--to day strings into an inclusive timestamp
// range. The to bound extends through the end of its day; empty strings
// leave the bound open.
func parseRange(fromStr, toStr string) (time.Time, time.Time, error) {
	var from, to time.Time
	if fromStr != "" {
		day, err := parseDay(fromStr)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		from = day
	}
	if toStr != "" {
		day, err := parseDay(toStr)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		to = day.Add(24*time.Hour - time.Second)
	}
	return from, to, nil
}

// parseItemArg splits a BARCODE[:QTY] sell argument. A bare barcode means
// quantity 1.
func parseItemArg(arg string) (string, int, error) {
	barcode, qtyStr, found := strings.Cut(arg, ":")
	if !found {
		return barcode, 1, nil
	}
	qty, err := strconv.Atoi(qtyStr)
	if err != nil || qty < 1 {
		return "", 0, fmt.Errorf("bad quantity in %q: %w", arg, types.ErrInvalidQuantity)
	}
	return barcode, qty, nil
}
