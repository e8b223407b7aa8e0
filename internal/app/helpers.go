package app

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/blackwell-systems/bookshopctl/internal/api"
	"github.com/blackwell-systems/bookshopctl/internal/money"
	"github.com/blackwell-systems/bookshopctl/internal/util"
)

// printJSON writes v as indented JSON to stdout, for --json output.
func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	return nil
}

// printBookRow writes one catalog line in the list layout.
func printBookRow(b api.Book, inCart int) {
	title := util.Truncate(b.Title, 40)
	writer := util.Truncate(b.Writer, 22)

	stock := fmt.Sprintf("%d in stock", b.StockQuantity)
	if b.StockQuantity == 0 {
		stock = color.RedString("out of stock")
	}

	line := fmt.Sprintf("  %-10s %-40s %-22s %10s  %s",
		util.ShortID(b.ID, 10), title, writer,
		color.GreenString(money.FormatPrice(b.Price)), stock)
	if b.Genre != "" {
		line += "  " + color.MagentaString("["+b.Genre+"]")
	}
	if inCart > 0 {
		line += "  " + color.YellowString(fmt.Sprintf("cart×%d", inCart))
	}
	fmt.Println(line)
}

// printBookDetails writes the full record for one book.
func printBookDetails(b api.Book, inCart int) {
	header("%s", b.Title)
	fmt.Printf("  ID:        %s\n", b.ID)
	fmt.Printf("  Author:    %s\n", b.Writer)
	if b.Publisher != "" {
		fmt.Printf("  Publisher: %s\n", b.Publisher)
	}
	if b.PublicationYear > 0 {
		fmt.Printf("  Year:      %d\n", b.PublicationYear)
	}
	if b.Genre != "" {
		fmt.Printf("  Genre:     %s\n", b.Genre)
	}
	fmt.Printf("  Price:     %s\n", color.GreenString(money.FormatPrice(b.Price)))
	if b.StockQuantity == 0 {
		fmt.Printf("  Stock:     %s\n", color.RedString("out of stock"))
	} else {
		fmt.Printf("  Stock:     %d\n", b.StockQuantity)
	}
	if inCart > 0 {
		fmt.Printf("  In cart:   %d\n", inCart)
	}
	if b.Description != "" {
		fmt.Println()
		fmt.Println("  " + strings.ReplaceAll(util.Truncate(b.Description, 600), "\n", "\n  "))
	}
}

// resolveGenre maps a genre name or ID to its ID, fetching the genre list.
func resolveGenre(nameOrID string) (string, error) {
	nameOrID = strings.TrimSpace(nameOrID)
	if nameOrID == "" {
		return "", fmt.Errorf("genre is required")
	}

	genres, err := client.ListGenres()
	if err != nil {
		return "", fmt.Errorf("fetching genres: %w", err)
	}

	var names []string
	for _, g := range genres {
		if g.ID == nameOrID || strings.EqualFold(g.Name, nameOrID) {
			return g.ID, nil
		}
		names = append(names, g.Name)
	}
	return "", fmt.Errorf("unknown genre %q (known: %s)", nameOrID, strings.Join(names, ", "))
}

// genreNames returns the display names for the interactive form hint. Errors
// are swallowed; the hint is optional.
func genreNames() []string {
	genres, err := client.ListGenres()
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(genres))
	for _, g := range genres {
		names = append(names, g.Name)
	}
	return names
}

// confirm asks a yes/no question on the terminal. Non-TTY runs refuse instead
// of silently proceeding.
func confirm(prompt string) (bool, error) {
	if !util.IsTTY() {
		return false, fmt.Errorf("refusing without confirmation; pass --yes to proceed")
	}
	answer, err := promptLine(prompt + " [y/N]: ")
	if err != nil {
		return false, err
	}
	answer = strings.ToLower(answer)
	return answer == "y" || answer == "yes", nil
}
