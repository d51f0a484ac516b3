// Product get command looks up a single catalog item.
package main

import (
	"github.com/spf13/cobra"

	"github.com/counterware/tally/pkg/types"
)

var productGetByID bool

var productGetCmd = &cobra.Command{
	Use:   "get <barcode>",
	Short: "Look up a product by barcode",
	Long: `Get fetches one product by its exact barcode. With --id the
argument is treated as the product id instead.

Example:
  till product get 4006381333931
  till product get --id 0198a3f2-7f7b-7c3e-9a44-52b0b2f0d3b1`,
	Args: cobra.ExactArgs(1),
	RunE: runProductGet,
}

func init() {
	productGetCmd.Flags().BoolVar(&productGetByID, "id", false, "look up by product id instead of barcode")
}

func runProductGet(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		fail("product get", err)
	}
	defer store.Close()

	var product *types.Product
	if productGetByID {
		product, err = store.ProductByID(args[0])
	} else {
		product, err = store.ProductByBarcode(args[0])
	}
	if err != nil {
		fail("product get", err)
	}

	if flagJSON {
		return printJSON(product)
	}
	printProduct(product)
	return nil
}
