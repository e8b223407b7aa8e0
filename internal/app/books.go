package app

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/bookshopctl/internal/api"
	"github.com/blackwell-systems/bookshopctl/internal/query"
	"github.com/blackwell-systems/bookshopctl/internal/tui"
)

func newBooksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "books",
		Short: "Browse and manage the catalog",
	}

	cmd.AddCommand(
		newBooksListCmd(),
		newBooksShowCmd(),
		newBooksAddCmd(),
		newBooksEditCmd(),
		newBooksDeleteCmd(),
	)
	return cmd
}

func newBooksListCmd() *cobra.Command {
	var (
		search   string
		genre    string
		sortKey  string
		sortDesc bool
		page     int
		allPages bool
		jsonOut  bool
	)

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List books in the catalog",
		Long: `List the catalog, five books per page. Filtering, sorting, and paging
all happen locally over the full catalog.`,
		Example: `  bookshopctl books list
  bookshopctl books list --search tolkien --sort price --desc
  bookshopctl books list --genre Fantasy --page 2
  bookshopctl books list --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			books, err := client.ListBooks()
			if err != nil {
				return authErr(err)
			}

			filtered := query.Filter{Search: search, Genre: genre}.Apply(books)
			sorted := query.SortBooks(filtered, sortKey, sortDesc)

			if jsonOut {
				return printJSON(sorted)
			}

			size := cfg.Defaults.EffectivePageSize()
			pages := query.PageCount(sorted, size)
			if len(sorted) == 0 {
				fmt.Println("No books match.")
				return nil
			}

			shown := sorted
			if !allPages {
				shown = query.Page(sorted, page, size)
				if len(shown) == 0 {
					return fmt.Errorf("page %d is out of range (1-%d)", page, pages)
				}
			}

			header("Catalog — %d book(s)", len(sorted))
			for _, b := range shown {
				inCart := 0
				if l := crt.Find(b.ID); l != nil {
					inCart = l.Quantity
				}
				printBookRow(b, inCart)
			}
			if !allPages && pages > 1 {
				fmt.Printf("\nPage %d of %d — use --page to navigate, --all for everything\n", page, pages)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&search, "search", "", "Filter by title, author, or genre substring")
	cmd.Flags().StringVar(&genre, "genre", "", "Filter by exact genre name")
	cmd.Flags().StringVar(&sortKey, "sort", query.SortTitle, "Sort key: title, writer, price, stock, year")
	cmd.Flags().BoolVar(&sortDesc, "desc", false, "Sort in descending order")
	cmd.Flags().IntVar(&page, "page", 1, "Page number")
	cmd.Flags().BoolVar(&allPages, "all", false, "Show every page at once")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output JSON")

	return cmd
}

func newBooksShowCmd() *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "show <book-id>",
		Short: "Show one book in full",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			book, err := client.GetBook(args[0])
			if err != nil {
				return authErr(err)
			}

			if jsonOut {
				return printJSON(book)
			}

			inCart := 0
			if l := crt.Find(book.ID); l != nil {
				inCart = l.Quantity
			}
			printBookDetails(*book, inCart)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output JSON")
	return cmd
}

// bookFlags is the flag set shared by add and edit.
type bookFlags struct {
	title       string
	writer      string
	publisher   string
	year        int
	price       string
	stock       int
	genre       string
	description string
}

func (f *bookFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.title, "title", "", "Book title")
	cmd.Flags().StringVar(&f.writer, "writer", "", "Author name")
	cmd.Flags().StringVar(&f.publisher, "publisher", "", "Publisher")
	cmd.Flags().IntVar(&f.year, "year", 0, "Publication year")
	cmd.Flags().StringVar(&f.price, "price", "", "Scaled price string, e.g. 50000 for $5.00")
	cmd.Flags().IntVar(&f.stock, "stock", 0, "Stock quantity")
	cmd.Flags().StringVar(&f.genre, "genre", "", "Genre name or ID")
	cmd.Flags().StringVar(&f.description, "description", "", "Book description")
}

func newBooksAddCmd() *cobra.Command {
	var flags bookFlags

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a book to the catalog",
		Long: `Add a book. With no flags on a terminal this opens an interactive form;
with flags it runs non-interactively.`,
		Example: `  bookshopctl books add
  bookshopctl books add --title "The Hobbit" --writer "J.R.R. Tolkien" \
    --publisher "Allen & Unwin" --year 1937 --price 150000 --stock 12 \
    --genre Fantasy --description "There and back again."`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireLogin(); err != nil {
				return err
			}

			payload, err := collectBookPayload(cmd, flags, api.BookPayload{})
			if err != nil || payload == nil {
				return err
			}

			book, err := client.CreateBook(*payload)
			if err != nil {
				return authErr(err)
			}

			ok("added %q (%s)", book.Title, book.ID)
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}

func newBooksEditCmd() *cobra.Command {
	var flags bookFlags

	cmd := &cobra.Command{
		Use:   "edit <book-id>",
		Short: "Edit a book",
		Long: `Edit a book. Flags override individual fields; on a terminal with no
flags the current values are loaded into an interactive form.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireLogin(); err != nil {
				return err
			}

			current, err := client.GetBook(args[0])
			if err != nil {
				return authErr(err)
			}

			base := api.BookPayload{
				Title:           current.Title,
				Writer:          current.Writer,
				Publisher:       current.Publisher,
				PublicationYear: current.PublicationYear,
				Price:           current.Price,
				StockQuantity:   current.StockQuantity,
				GenreID:         current.GenreID,
				Description:     current.Description,
			}

			payload, err := collectBookPayload(cmd, flags, base)
			if err != nil || payload == nil {
				return err
			}

			book, err := client.UpdateBook(args[0], *payload)
			if err != nil {
				return authErr(err)
			}

			ok("updated %q (%s)", book.Title, book.ID)
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}

// collectBookPayload merges flags over the base payload, falling back to the
// interactive form when no field flags were given on a terminal. A nil
// payload with a nil error means the user canceled the form.
func collectBookPayload(cmd *cobra.Command, flags bookFlags, base api.BookPayload) (*api.BookPayload, error) {
	anyFlag := false
	for _, name := range []string{"title", "writer", "publisher", "year", "price", "stock", "genre", "description"} {
		if cmd.Flags().Changed(name) {
			anyFlag = true
			break
		}
	}

	payload := base

	if !anyFlag && tui.ShouldUseTUI(cmd) {
		data, err := tui.RunBookForm(tui.BookFormDefaults{
			Title:           base.Title,
			Writer:          base.Writer,
			Publisher:       base.Publisher,
			PublicationYear: base.PublicationYear,
			Price:           base.Price,
			StockQuantity:   base.StockQuantity,
			Description:     base.Description,
			Genres:          genreNames(),
		})
		if err != nil {
			return nil, err
		}
		if data == nil {
			fmt.Println("Canceled.")
			return nil, nil
		}
		payload = api.BookPayload{
			Title:           data.Title,
			Writer:          data.Writer,
			Publisher:       data.Publisher,
			PublicationYear: data.PublicationYear,
			Price:           data.Price,
			StockQuantity:   data.StockQuantity,
			Description:     data.Description,
		}
		// An empty genre field keeps the existing genre when editing.
		if data.GenreName == "" && base.GenreID != "" {
			payload.GenreID = base.GenreID
		} else {
			genreID, err := resolveGenre(data.GenreName)
			if err != nil {
				return nil, err
			}
			payload.GenreID = genreID
		}
	} else {
		if cmd.Flags().Changed("title") {
			payload.Title = flags.title
		}
		if cmd.Flags().Changed("writer") {
			payload.Writer = flags.writer
		}
		if cmd.Flags().Changed("publisher") {
			payload.Publisher = flags.publisher
		}
		if cmd.Flags().Changed("year") {
			payload.PublicationYear = flags.year
		}
		if cmd.Flags().Changed("price") {
			payload.Price = flags.price
		}
		if cmd.Flags().Changed("stock") {
			payload.StockQuantity = flags.stock
		}
		if cmd.Flags().Changed("description") {
			payload.Description = flags.description
		}
		if cmd.Flags().Changed("genre") {
			genreID, err := resolveGenre(flags.genre)
			if err != nil {
				return nil, err
			}
			payload.GenreID = genreID
		}
	}

	if err := validateBook(payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

func newBooksDeleteCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:     "delete <book-id>",
		Aliases: []string{"rm"},
		Short:   "Delete a book from the catalog",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireLogin(); err != nil {
				return err
			}

			book, err := client.GetBook(args[0])
			if err != nil {
				return authErr(err)
			}

			if !yes {
				okToDelete, err := confirm(fmt.Sprintf("Delete %q (%s)?", book.Title, book.ID))
				if err != nil {
					return err
				}
				if !okToDelete {
					fmt.Println("Canceled.")
					return nil
				}
			}

			if err := client.DeleteBook(args[0]); err != nil {
				return authErr(err)
			}

			// A deleted book can no longer be bought; drop it from the cart.
			if crt.Remove(args[0]) {
				warn("removed %q from your cart", book.Title)
			}

			ok("deleted %q", book.Title)
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Skip the confirmation prompt")
	return cmd
}

// parseQuantity parses a positive integer quantity argument.
func parseQuantity(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("quantity must be a positive integer, got %q", s)
	}
	return n, nil
}
