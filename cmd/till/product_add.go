// Product add command registers a new catalog item.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	productAddBarcode string
	productAddName    string
	productAddPrice   string
	productAddStock   int
)

var productAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a product to the catalog",
	Long: `Add registers a new product under a unique barcode.

Example:
  till product add --barcode 4006381333931 --name "Ballpoint pen" --price 1.99
  till product add --barcode 4006381333931 --name "Ballpoint pen" --price 1.99 --stock 250
  till product add --barcode 4006381333931 --name "Ballpoint pen" --price 1.99 --json`,
	Args: cobra.NoArgs,
	RunE: runProductAdd,
}

func init() {
	productAddCmd.Flags().StringVar(&productAddBarcode, "barcode", "", "barcode for the product (required)")
	productAddCmd.Flags().StringVar(&productAddName, "name", "", "display name (required)")
	productAddCmd.Flags().StringVar(&productAddPrice, "price", "", "unit price, e.g. 1.99 (required)")
	productAddCmd.Flags().IntVar(&productAddStock, "stock", 0, "initial stock count")
	_ = productAddCmd.MarkFlagRequired("barcode")
	_ = productAddCmd.MarkFlagRequired("name")
	_ = productAddCmd.MarkFlagRequired("price")
}

func runProductAdd(cmd *cobra.Command, args []string) error {
	price, err := parsePrice(productAddPrice)
	if err != nil {
		fail("product add", err)
	}

	store, err := openStore()
	if err != nil {
		fail("product add", err)
	}
	defer store.Close()

	product, err := store.AddProduct(productAddBarcode, productAddName, price, productAddStock)
	if err != nil {
		fail("product add", err)
	}

	if flagJSON {
		return printJSON(product)
	}
	fmt.Printf("Added %s (%s) at %s, stock %d\n", product.Name, product.Barcode, product.Price.StringFixed(2), product.Stock)
	fmt.Println("  id:", product.ID)
	return nil
}
