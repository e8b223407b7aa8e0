package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/bookshopctl/internal/query"
)

func newGenresCmd() *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:     "genres",
		Aliases: []string{"genre"},
		Short:   "List book genres",
		RunE: func(cmd *cobra.Command, args []string) error {
			genres, err := client.ListGenres()
			if err != nil {
				return authErr(err)
			}

			if jsonOut {
				return printJSON(genres)
			}

			if len(genres) == 0 {
				fmt.Println("No genres.")
				return nil
			}

			// Count books per genre so the list doubles as a catalog summary.
			counts := map[string]int{}
			if books, err := client.ListBooks(); err == nil {
				for _, b := range books {
					counts[b.GenreID]++
				}
			}

			header("Genres")
			for _, g := range genres {
				if n, okCount := counts[g.ID]; okCount {
					fmt.Printf("  %-24s %d book(s)\n", g.Name, n)
				} else {
					fmt.Printf("  %s\n", g.Name)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output JSON")

	cmd.AddCommand(newGenresBooksCmd())
	return cmd
}

func newGenresBooksCmd() *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "books <genre-name-or-id>",
		Short: "List books in one genre",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			genreID, err := resolveGenre(args[0])
			if err != nil {
				return err
			}

			books, err := client.BooksByGenre(genreID)
			if err != nil {
				return authErr(err)
			}

			if jsonOut {
				return printJSON(books)
			}

			if len(books) == 0 {
				fmt.Println("No books in this genre.")
				return nil
			}

			sorted := query.SortBooks(books, query.SortTitle, false)
			header("%d book(s)", len(sorted))
			for _, b := range sorted {
				inCart := 0
				if l := crt.Find(b.ID); l != nil {
					inCart = l.Quantity
				}
				printBookRow(b, inCart)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output JSON")
	return cmd
}
