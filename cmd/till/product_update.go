// Product update command replaces a product's mutable fields.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	productUpdateName  string
	productUpdatePrice string
	productUpdateStock int
)

var productUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a product's name, price, or stock",
	Long: `Update replaces the product's mutable fields. Flags that are not
given keep the current values. The barcode cannot change.

Example:
  till product update 0198a3f2-7f7b-7c3e-9a44-52b0b2f0d3b1 --price 2.49
  till product update 0198a3f2-7f7b-7c3e-9a44-52b0b2f0d3b1 --name "Gel pen" --stock 80`,
	Args: cobra.ExactArgs(1),
	RunE: runProductUpdate,
}

func init() {
	productUpdateCmd.Flags().StringVar(&productUpdateName, "name", "", "new display name")
	productUpdateCmd.Flags().StringVar(&productUpdatePrice, "price", "", "new unit price")
	productUpdateCmd.Flags().IntVar(&productUpdateStock, "stock", 0, "new absolute stock count")
}

func runProductUpdate(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		fail("product update", err)
	}
	defer store.Close()

	current, err := store.ProductByID(args[0])
	if err != nil {
		fail("product update", err)
	}

	name := current.Name
	price := current.Price
	stock := current.Stock
	if cmd.Flags().Changed("name") {
		name = productUpdateName
	}
	if cmd.Flags().Changed("price") {
		price, err = parsePrice(productUpdatePrice)
		if err != nil {
			fail("product update", err)
		}
	}
	if cmd.Flags().Changed("stock") {
		stock = productUpdateStock
	}

	product, err := store.UpdateProduct(current.ID, name, price, stock)
	if err != nil {
		fail("product update", err)
	}

	if flagJSON {
		return printJSON(product)
	}
	fmt.Printf("Updated %s (%s) at %s, stock %d\n", product.Name, product.Barcode, product.Price.StringFixed(2), product.Stock)
	return nil
}
