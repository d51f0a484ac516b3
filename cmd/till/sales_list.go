// Sales list command shows sale headers in a date range.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	salesListFrom string
	salesListTo   string
)

var salesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List sales, newest first",
	Long: `List shows sale headers, newest first. --from and --to take
YYYY-MM-DD dates; both bounds are inclusive and --to runs through the end
of its day.

Example:
  till sales list
  till sales list --from 2025-06-01 --to 2025-06-30`,
	Args: cobra.NoArgs,
	RunE: runSalesList,
}

func init() {
	salesListCmd.Flags().StringVar(&salesListFrom, "from", "", "start date (YYYY-MM-DD)")
	salesListCmd.Flags().StringVar(&salesListTo, "to", "", "end date (YYYY-MM-DD), inclusive")
}

func runSalesList(cmd *cobra.Command, args []string) error {
	from, to, err := parseRange(salesListFrom, salesListTo)
	if err != nil {
		fmt.Fprintln(os.Stderr, "sales list:", err)
		os.Exit(exitUserError)
	}

	store, err := openStore()
	if err != nil {
		fail("sales list", err)
	}
	defer store.Close()

	sales, err := store.Sales(from, to)
	if err != nil {
		fail("sales list", err)
	}

	if flagJSON {
		return printJSON(sales)
	}
	if len(sales) == 0 {
		fmt.Println("no sales")
		return nil
	}
	for _, sale := range sales {
		fmt.Printf("%s  %s  %10s\n", sale.ID, sale.Timestamp.Format("2006-01-02 15:04:05"), sale.Total.StringFixed(2))
	}
	return nil
}
