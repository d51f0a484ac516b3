// Sales show command prints one sale with its line items.
package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var salesShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one sale with its lines",
	Long: `Show prints a sale header and every line, joined with the current
catalog entry for each product. Lines whose product was deleted since the
sale keep their recorded quantity and total but show no name.

Example:
  till sales show 0198a3f2-7f7b-7c3e-9a44-52b0b2f0d3b1`,
	Args: cobra.ExactArgs(1),
	RunE: runSalesShow,
}

func runSalesShow(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		fail("sales show", err)
	}
	defer store.Close()

	details, err := store.SaleDetails(args[0])
	if err != nil {
		fail("sales show", err)
	}

	if flagJSON {
		return printJSON(details)
	}
	fmt.Println("Sale", details.Sale.ID)
	fmt.Println(" ", details.Sale.Timestamp.Format(time.RFC3339))
	for _, line := range details.Lines {
		name := line.Name
		if name == "" {
			name = "(deleted " + line.ProductID + ")"
		}
		fmt.Printf("  %-28s %3d %10s\n", name, line.Quantity, line.LineTotal.StringFixed(2))
	}
	fmt.Printf("  %-32s %10s\n", "total", details.Sale.Total.StringFixed(2))
	return nil
}
