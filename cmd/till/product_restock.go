// Product restock command adjusts a product's stock count.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

var productRestockDelta int

var productRestockCmd = &cobra.Command{
	Use:   "restock <id> [qty]",
	Short: "Add stock for a product",
	Long: `Restock raises the product's stock count by qty. For shrinkage or
breakage corrections, --delta applies a signed adjustment instead; an
adjustment that would push stock below zero is refused and changes nothing.

Example:
  till product restock 0198a3f2-7f7b-7c3e-9a44-52b0b2f0d3b1 50
  till product restock 0198a3f2-7f7b-7c3e-9a44-52b0b2f0d3b1 --delta -3`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runProductRestock,
}

func init() {
	productRestockCmd.Flags().IntVar(&productRestockDelta, "delta", 0, "signed stock adjustment")
}

func runProductRestock(cmd *cobra.Command, args []string) error {
	var delta int
	switch {
	case cmd.Flags().Changed("delta") && len(args) == 2:
		fmt.Fprintln(os.Stderr, "product restock: give either qty or --delta, not both")
		os.Exit(exitUserError)
	case cmd.Flags().Changed("delta"):
		delta = productRestockDelta
	case len(args) == 2:
		qty, err := strconv.Atoi(args[1])
		if err != nil || qty < 1 {
			fmt.Fprintf(os.Stderr, "product restock: bad quantity %q (want a positive count; use --delta for corrections)\n", args[1])
			os.Exit(exitUserError)
		}
		delta = qty
	default:
		fmt.Fprintln(os.Stderr, "product restock: missing qty")
		os.Exit(exitUserError)
	}

	store, err := openStore()
	if err != nil {
		fail("product restock", err)
	}
	defer store.Close()

	product, err := store.AdjustStock(args[0], delta)
	if err != nil {
		fail("product restock", err)
	}

	if flagJSON {
		return printJSON(product)
	}
	fmt.Printf("Stock for %s is now %d\n", product.Name, product.Stock)
	return nil
}
