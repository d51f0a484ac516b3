// Sales daily command aggregates revenue per day.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	salesDailyFrom string
	salesDailyTo   string
)

var salesDailyCmd = &cobra.Command{
	Use:   "daily",
	Short: "Daily transaction counts and revenue",
	Long: `Daily aggregates the ledger per UTC calendar day, newest day
first. --from and --to take YYYY-MM-DD dates, both inclusive.

Example:
  till sales daily
  till sales daily --from 2025-06-01 --to 2025-06-30`,
	Args: cobra.NoArgs,
	RunE: runSalesDaily,
}

func init() {
	salesDailyCmd.Flags().StringVar(&salesDailyFrom, "from", "", "start date (YYYY-MM-DD)")
	salesDailyCmd.Flags().StringVar(&salesDailyTo, "to", "", "end date (YYYY-MM-DD), inclusive")
}

func runSalesDaily(cmd *cobra.Command, args []string) error {
	from, to, err := parseRange(salesDailyFrom, salesDailyTo)
	if err != nil {
		fmt.Fprintln(os.Stderr, "sales daily:", err)
		os.Exit(exitUserError)
	}

	store, err := openStore()
	if err != nil {
		fail("sales daily", err)
	}
	defer store.Close()

	days, err := store.SalesByDay(from, to)
	if err != nil {
		fail("sales daily", err)
	}

	if flagJSON {
		return printJSON(days)
	}
	if len(days) == 0 {
		fmt.Println("no sales")
		return nil
	}
	fmt.Printf("%-12s %12s %12s\n", "DAY", "TRANSACTIONS", "REVENUE")
	for _, day := range days {
		fmt.Printf("%-12s %12d %12s\n", day.Day, day.Transactions, day.Revenue.StringFixed(2))
	}
	return nil
}
