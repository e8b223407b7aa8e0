package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/bookshopctl/internal/tui"
)

func newBrowseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse the catalog interactively",
		Long: `Open the interactive storefront browser: filter with /, add to the cart
with a, jump to the cart with c. Requires a terminal.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !tui.ShouldUseTUI(cmd) {
				return fmt.Errorf("browse needs a terminal — use 'bookshopctl books list' for scripting")
			}
			return runBrowse()
		},
	}
}

// runBrowse drives the browser loop: the browser quits to show details or
// open the cart, then resumes until the user is done.
func runBrowse() error {
	books, err := client.ListBooks()
	if err != nil {
		return authErr(err)
	}
	if len(books) == 0 {
		fmt.Println("The catalog is empty.")
		return nil
	}

	items := make([]tui.BookItem, 0, len(books))
	for _, b := range books {
		items = append(items, tui.BookItem{Book: b})
	}

	for {
		result, err := tui.RunBrowser(items, crt)
		if err != nil {
			return err
		}

		switch result.Action {
		case tui.ActionShowDetails:
			if result.Book != nil {
				inCart := 0
				if l := crt.Find(result.Book.Book.ID); l != nil {
					inCart = l.Quantity
				}
				printBookDetails(result.Book.Book, inCart)
			}
			return nil

		case tui.ActionOpenCart:
			if err := runCartView(); err != nil {
				return err
			}
			// Fall through and reopen the browser.

		default:
			return nil
		}
	}
}
