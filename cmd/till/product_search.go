// Product search command finds products by keyword.
package main

import (
	"github.com/spf13/cobra"
)

var productSearchCmd = &cobra.Command{
	Use:   "search <keyword>",
	Short: "Search products by name or barcode",
	Long: `Search matches the keyword against product names and barcodes,
case-insensitively. An empty keyword lists the whole catalog.

Example:
  till product search pen
  till product search 4006`,
	Args: cobra.ExactArgs(1),
	RunE: runProductSearch,
}

func runProductSearch(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		fail("product search", err)
	}
	defer store.Close()

	products, err := store.Search(args[0])
	if err != nil {
		fail("product search", err)
	}

	if flagJSON {
		return printJSON(products)
	}
	printProductTable(products)
	return nil
}
