// Product delete command removes a catalog item.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var productDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a product from the catalog",
	Long: `Delete removes the product with the given id. Past sales keep
their recorded lines.

Example:
  till product delete 0198a3f2-7f7b-7c3e-9a44-52b0b2f0d3b1`,
	Args: cobra.ExactArgs(1),
	RunE: runProductDelete,
}

func runProductDelete(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		fail("product delete", err)
	}
	defer store.Close()

	deleted, err := store.DeleteProduct(args[0])
	if err != nil {
		fail("product delete", err)
	}
	if !deleted {
		fmt.Fprintf(os.Stderr, "product delete: no product with id %q\n", args[0])
		os.Exit(exitUserError)
	}

	fmt.Println("Deleted product", args[0])
	return nil
}
