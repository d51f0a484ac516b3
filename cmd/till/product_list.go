// Product list command shows the catalog, optionally only low-stock items.
package main

import (
	"github.com/spf13/cobra"

	"github.com/counterware/tally/pkg/types"
)

var (
	productListLowStock  bool
	productListThreshold int
)

var productListCmd = &cobra.Command{
	Use:   "list",
	Short: "List products in the catalog",
	Long: `List shows every product in the catalog, sorted by name. With
--low-stock only products at or below the reorder threshold are shown,
lowest stock first; --threshold overrides the configured value.

Example:
  till product list
  till product list --low-stock
  till product list --low-stock --threshold 3`,
	Args: cobra.NoArgs,
	RunE: runProductList,
}

func init() {
	productListCmd.Flags().BoolVar(&productListLowStock, "low-stock", false, "only products at or below the reorder threshold")
	productListCmd.Flags().IntVar(&productListThreshold, "threshold", 0, "low-stock threshold (default from config)")
}

func runProductList(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		fail("product list", err)
	}
	defer store.Close()

	var products []*types.Product
	if productListLowStock {
		threshold := configLowStock
		if cmd.Flags().Changed("threshold") {
			threshold = productListThreshold
		}
		products, err = store.LowStock(threshold)
	} else {
		products, err = store.Products()
	}
	if err != nil {
		fail("product list", err)
	}

	if flagJSON {
		return printJSON(products)
	}
	printProductTable(products)
	return nil
}
