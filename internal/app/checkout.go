package app

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/blackwell-systems/bookshopctl/internal/api"
	"github.com/blackwell-systems/bookshopctl/internal/money"
	"github.com/blackwell-systems/bookshopctl/internal/util"
)

func newCheckoutCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "checkout",
		Short: "Turn the cart into a transaction",
		Long: `Submit the cart to the server as a transaction. The cart is emptied only
after the server accepts the order; on failure it is left untouched so the
checkout can be retried.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheckout(yes)
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Skip the confirmation prompt")
	return cmd
}

func runCheckout(skipConfirm bool) error {
	if err := requireLogin(); err != nil {
		return err
	}

	lines := crt.Lines()
	if len(lines) == 0 {
		return fmt.Errorf("cart is empty — add books first: bookshopctl books list")
	}

	header("Order Summary")
	for _, l := range lines {
		fmt.Printf("  %-40s ×%-3d %12s\n",
			util.Truncate(l.Title, 40), l.Quantity,
			money.Format(l.Subtotal()))
	}
	fmt.Printf("\n  %d item(s) — total %s\n\n",
		crt.ItemCount(), color.GreenString(money.Format(crt.TotalPrice())))

	if !skipConfirm {
		proceed, err := confirm("Place this order?")
		if err != nil {
			return err
		}
		if !proceed {
			fmt.Println("Canceled — cart left as is.")
			return nil
		}
	}

	items := make([]api.CheckoutItem, 0, len(lines))
	for _, l := range lines {
		items = append(items, api.CheckoutItem{BookID: l.BookID, Quantity: l.Quantity})
	}

	tx, err := client.CreateTransaction(items)
	if err != nil {
		// The cart survives so the user can retry after fixing the cause.
		return authErr(fmt.Errorf("checkout failed: %w", err))
	}

	crt.Clear()
	ok("order placed — transaction %s, total %s",
		tx.ID, money.FormatPrice(tx.TotalPrice))
	fmt.Println("View it with: bookshopctl transactions show", tx.ID)
	return nil
}
