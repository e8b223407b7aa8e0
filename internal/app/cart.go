package app

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/blackwell-systems/bookshopctl/internal/money"
	"github.com/blackwell-systems/bookshopctl/internal/tui"
	"github.com/blackwell-systems/bookshopctl/internal/util"
)

func newCartCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cart",
		Short: "Manage the local shopping cart",
		Long: `The cart is stored locally and persists between runs. On a terminal,
'bookshopctl cart' opens the interactive cart editor; otherwise it prints
the cart contents.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if tui.ShouldUseTUI(cmd) {
				return runCartView()
			}
			return printCart(false)
		},
	}

	cmd.AddCommand(
		newCartShowCmd(),
		newCartAddCmd(),
		newCartRemoveCmd(),
		newCartUpdateCmd(),
		newCartClearCmd(),
	)
	return cmd
}

func newCartShowCmd() *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the cart contents",
		RunE: func(cmd *cobra.Command, args []string) error {
			return printCart(jsonOut)
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output JSON")
	return cmd
}

func printCart(jsonOut bool) error {
	lines := crt.Lines()

	if jsonOut {
		return printJSON(lines)
	}

	if len(lines) == 0 {
		fmt.Println("Your cart is empty.")
		return nil
	}

	header("Shopping Cart")
	for _, l := range lines {
		fmt.Printf("  %-10s %-40s ×%-3d %10s %12s\n",
			util.ShortID(l.BookID, 10),
			util.Truncate(l.Title, 40),
			l.Quantity,
			money.Format(l.UnitPrice()),
			color.GreenString(money.Format(l.Subtotal())))
	}
	fmt.Printf("\n  %d item(s) — total %s\n",
		crt.ItemCount(), color.GreenString(money.Format(crt.TotalPrice())))
	return nil
}

func newCartAddCmd() *cobra.Command {
	var qty int

	cmd := &cobra.Command{
		Use:   "add <book-id>",
		Short: "Add a book to the cart",
		Long: `Add a book to the cart. The book's current stock is captured as the
quantity ceiling; asking for more than is in stock fills the cart up to
that ceiling and says so.`,
		Example: `  bookshopctl cart add bk_123
  bookshopctl cart add bk_123 --quantity 3`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if qty < 1 {
				return fmt.Errorf("quantity must be a positive integer")
			}

			book, err := client.GetBook(args[0])
			if err != nil {
				return authErr(err)
			}

			if book.StockQuantity == 0 {
				return fmt.Errorf("%q is out of stock", book.Title)
			}

			limited := crt.Add(*book, qty)
			line := crt.Find(book.ID)
			if limited {
				warn("only %d in stock — cart holds %d", book.StockQuantity, line.Quantity)
			}
			ok("cart: %q ×%d — total %s",
				book.Title, line.Quantity, money.Format(crt.TotalPrice()))
			return nil
		},
	}

	cmd.Flags().IntVarP(&qty, "quantity", "q", 1, "How many copies to add")
	return cmd
}

func newCartRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "remove <book-id>",
		Aliases: []string{"rm"},
		Short:   "Remove a book from the cart",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l := crt.Find(args[0])
			if l == nil {
				return fmt.Errorf("book %s is not in the cart", args[0])
			}
			crt.Remove(args[0])
			ok("removed %q — %d item(s) left", l.Title, crt.ItemCount())
			return nil
		},
	}
}

func newCartUpdateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "update <book-id> <quantity>",
		Short: "Set the quantity of a cart line",
		Long: `Set the quantity of a cart line. Zero removes the line. Quantities above
the stock captured when the book was added are rejected.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			l := crt.Find(args[0])
			if l == nil {
				return fmt.Errorf("book %s is not in the cart", args[0])
			}

			qty, err := parseQuantityOrZero(args[1])
			if err != nil {
				return err
			}

			if qty == 0 {
				crt.Remove(args[0])
				ok("removed %q", l.Title)
				return nil
			}

			if limited := crt.SetQuantity(args[0], qty); limited {
				return fmt.Errorf("only %d of %q in stock", l.Stock, l.Title)
			}
			ok("cart: %q ×%d — total %s", l.Title, qty, money.Format(crt.TotalPrice()))
			return nil
		},
	}
}

func parseQuantityOrZero(s string) (int, error) {
	n, err := parseQuantity(s)
	if err == nil {
		return n, nil
	}
	if s == "0" {
		return 0, nil
	}
	return 0, err
}

func newCartClearCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Empty the cart",
		RunE: func(cmd *cobra.Command, args []string) error {
			if crt.Len() == 0 {
				fmt.Println("Your cart is already empty.")
				return nil
			}

			if !yes {
				okToClear, err := confirm(fmt.Sprintf("Remove all %d item(s) from the cart?", crt.ItemCount()))
				if err != nil {
					return err
				}
				if !okToClear {
					fmt.Println("Canceled.")
					return nil
				}
			}

			crt.Clear()
			ok("cart cleared")
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Skip the confirmation prompt")
	return cmd
}

// runCartView drives the interactive cart editor, chaining into checkout
// when requested.
func runCartView() error {
	action, err := tui.RunCartView(crt)
	if err != nil {
		return err
	}
	if action == tui.CartActionCheckout {
		return runCheckout(false)
	}
	return nil
}
