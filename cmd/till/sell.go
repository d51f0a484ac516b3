// Sell command rings up one complete sale.
package main

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/counterware/tally/internal/checkout"
)

var sellDiscount string

var sellCmd = &cobra.Command{
	Use:   "sell BARCODE[:QTY]...",
	Short: "Ring up a sale",
	Long: `Sell scans each argument into a cart and checks the cart out as
one transaction. A bare barcode sells one unit; BARCODE:QTY sells several.
Stock is decremented only if every line can be covered, and the receipt is
printed on success.

Example:
  till sell 4006381333931
  till sell 4006381333931:3 7501031311309
  till sell 4006381333931:3 --discount 5.00`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSell,
}

func init() {
	sellCmd.Flags().StringVar(&sellDiscount, "discount", "", "discount amount off the subtotal, e.g. 5.00")
}

func runSell(cmd *cobra.Command, args []string) error {
	discount := decimal.Zero
	if sellDiscount != "" {
		var err error
		discount, err = decimal.NewFromString(sellDiscount)
		if err != nil {
			fmt.Fprintf(os.Stderr, "sell: bad discount %q\n", sellDiscount)
			os.Exit(exitUserError)
		}
	}

	store, err := openStore()
	if err != nil {
		fail("sell", err)
	}
	defer store.Close()

	register := checkout.New(store, store, newLogger(configLogLevel))
	for _, arg := range args {
		barcode, qty, err := parseItemArg(arg)
		if err != nil {
			fail("sell", err)
		}
		if _, err := register.ScanAndAdd(barcode, qty); err != nil {
			fail("sell", err)
		}
	}

	receipt, err := register.Checkout(discount)
	if err != nil {
		fail("sell", err)
	}

	if flagJSON {
		return printJSON(receipt)
	}
	printReceipt(receipt)
	return nil
}
