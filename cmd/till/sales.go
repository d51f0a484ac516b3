// Sales command group for the till CLI.
package main

import "github.com/spf13/cobra"

var salesCmd = &cobra.Command{
	Use:   "sales",
	Short: "Inspect the sales ledger",
}

func init() {
	salesCmd.AddCommand(salesListCmd)
	salesCmd.AddCommand(salesShowCmd)
	salesCmd.AddCommand(salesDailyCmd)
}
