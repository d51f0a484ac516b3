// Product command group for the till CLI.
package main

import "github.com/spf13/cobra"

var productCmd = &cobra.Command{
	Use:   "product",
	Short: "Manage the product catalog",
}

func init() {
	productCmd.AddCommand(productAddCmd)
	productCmd.AddCommand(productGetCmd)
	productCmd.AddCommand(productListCmd)
	productCmd.AddCommand(productSearchCmd)
	productCmd.AddCommand(productUpdateCmd)
	productCmd.AddCommand(productDeleteCmd)
	productCmd.AddCommand(productRestockCmd)
}
