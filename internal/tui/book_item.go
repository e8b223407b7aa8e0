package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/blackwell-systems/bookshopctl/internal/api"
	"github.com/blackwell-systems/bookshopctl/internal/money"
)

// BookItem represents a book in the storefront list.
type BookItem struct {
	Book   api.Book
	InCart int // quantity already in the cart, 0 if none
}

// FilterValue returns the string the list's live filter matches against.
func (b BookItem) FilterValue() string {
	return fmt.Sprintf("%s %s %s %s", b.Book.ID, b.Book.Title, b.Book.Writer, b.Book.Genre)
}

const (
	itemTitleWidth  = 38
	itemWriterWidth = 20
)

// bookDelegate renders one book per row: title, writer, genre, price, stock.
type bookDelegate struct{}

func (d bookDelegate) Height() int  { return 1 }
func (d bookDelegate) Spacing() int { return 0 }
func (d bookDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd {
	return nil
}

func (d bookDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	bi, ok := item.(BookItem)
	if !ok {
		return
	}

	title := ansi.Truncate(bi.Book.Title, itemTitleWidth, "…")
	writer := ansi.Truncate(bi.Book.Writer, itemWriterWidth, "…")
	row := fmt.Sprintf("%-*s  %-*s", itemTitleWidth, title, itemWriterWidth, writer)

	var tail strings.Builder
	if bi.Book.Genre != "" {
		tail.WriteString(" " + StyleGenre.Render("["+bi.Book.Genre+"]"))
	}
	tail.WriteString(" " + StylePrice.Render(money.FormatPrice(bi.Book.Price)))
	if bi.Book.StockQuantity == 0 {
		tail.WriteString(" " + StyleOutOfStock.Render("out of stock"))
	} else {
		tail.WriteString(StyleHelp.Render(fmt.Sprintf(" (%d in stock)", bi.Book.StockQuantity)))
	}
	if bi.InCart > 0 {
		tail.WriteString(" " + StyleWarn.Render(fmt.Sprintf("cart×%d", bi.InCart)))
	}

	if index == m.Index() {
		_, _ = fmt.Fprint(w, StyleHighlight.Render("› "+row)+tail.String())
	} else {
		_, _ = fmt.Fprint(w, "  "+StyleNormal.Render(row)+tail.String())
	}
}
