package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/blackwell-systems/bookshopctl/internal/cart"
	"github.com/blackwell-systems/bookshopctl/internal/money"
)

// CartAction is what the user asked for when the cart view quit.
type CartAction string

const (
	CartActionNone     CartAction = ""
	CartActionCheckout CartAction = "checkout"
)

type cartKeys struct {
	quit     key.Binding
	up       key.Binding
	down     key.Binding
	more     key.Binding
	fewer    key.Binding
	remove   key.Binding
	checkout key.Binding
}

var ckeys = cartKeys{
	quit: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q", "back"),
	),
	up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	more: key.NewBinding(
		key.WithKeys("+", "right", "l"),
		key.WithHelp("+", "more"),
	),
	fewer: key.NewBinding(
		key.WithKeys("-", "left", "h"),
		key.WithHelp("-", "fewer"),
	),
	remove: key.NewBinding(
		key.WithKeys("d", "x", "delete"),
		key.WithHelp("d", "remove"),
	),
	checkout: key.NewBinding(
		key.WithKeys("C"),
		key.WithHelp("C", "checkout"),
	),
}

type cartModel struct {
	cart     *cart.Cart
	cursor   int
	status   string
	quitting bool
	action   CartAction
}

func (m cartModel) Init() tea.Cmd {
	return nil
}

func (m cartModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	lines := m.cart.Lines()
	m.clampCursor(len(lines))

	switch {
	case key.Matches(keyMsg, ckeys.quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(keyMsg, ckeys.up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(keyMsg, ckeys.down):
		if m.cursor < len(lines)-1 {
			m.cursor++
		}

	case key.Matches(keyMsg, ckeys.more):
		if len(lines) > 0 {
			l := lines[m.cursor]
			if limited := m.cart.SetQuantity(l.BookID, l.Quantity+1); limited {
				m.status = StyleWarn.Render(fmt.Sprintf("Stock limit: only %d available", l.Stock))
			} else {
				m.status = ""
			}
		}

	case key.Matches(keyMsg, ckeys.fewer):
		if len(lines) > 0 {
			l := lines[m.cursor]
			// Quantity 0 removes the line, same as the remove key.
			m.cart.SetQuantity(l.BookID, l.Quantity-1)
			m.status = ""
		}

	case key.Matches(keyMsg, ckeys.remove):
		if len(lines) > 0 {
			m.cart.Remove(lines[m.cursor].BookID)
			m.status = ""
		}

	case key.Matches(keyMsg, ckeys.checkout):
		if m.cart.Len() > 0 {
			m.action = CartActionCheckout
			m.quitting = true
			return m, tea.Quit
		}
		m.status = StyleWarn.Render("Cart is empty")
	}

	m.clampCursor(m.cart.Len())
	return m, nil
}

func (m *cartModel) clampCursor(n int) {
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m cartModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(StyleHeader.Render("Shopping Cart") + "\n\n")

	lines := m.cart.Lines()
	if len(lines) == 0 {
		b.WriteString(StyleHelp.Render("Your cart is empty.") + "\n")
	}
	for i, l := range lines {
		title := ansi.Truncate(l.Title, 36, "…")
		row := fmt.Sprintf("%-36s  ×%-3d %8s  %10s",
			title, l.Quantity,
			money.Format(l.UnitPrice()),
			money.Format(l.Subtotal()))
		if i == m.cursor {
			b.WriteString(StyleHighlight.Render("› "+row) + "\n")
		} else {
			b.WriteString("  " + StyleNormal.Render(row) + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%d item(s)  —  total %s\n",
		m.cart.ItemCount(), StylePrice.Render(money.Format(m.cart.TotalPrice()))))
	if m.status != "" {
		b.WriteString(m.status + "\n")
	}
	b.WriteString(StyleHelp.Render("+/- quantity • d remove • C checkout • q back"))

	return StyleBorder.Render(b.String())
}

// RunCartView launches the interactive cart editor. Mutations are applied to
// the cart directly; the returned action reports whether the user asked to
// check out.
func RunCartView(crt *cart.Cart) (CartAction, error) {
	m := cartModel{cart: crt}
	p := tea.NewProgram(m, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return CartActionNone, fmt.Errorf("running TUI: %w", err)
	}
	if fm, ok := finalModel.(cartModel); ok {
		return fm.action, nil
	}
	return CartActionNone, nil
}
