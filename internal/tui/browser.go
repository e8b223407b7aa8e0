package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/blackwell-systems/bookshopctl/internal/cart"
	"github.com/blackwell-systems/bookshopctl/internal/money"
)

// browserKeys defines the storefront browser shortcuts.
type browserKeys struct {
	quit    key.Binding
	details key.Binding
	add     key.Binding
	cart    key.Binding
	filter  key.Binding
}

var bkeys = browserKeys{
	quit: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	details: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "details"),
	),
	add: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "add to cart"),
	),
	cart: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "view cart"),
	),
	filter: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "filter"),
	),
}

// BrowserAction is what the user asked for when the browser quit.
type BrowserAction string

const (
	ActionNone        BrowserAction = ""
	ActionShowDetails BrowserAction = "details"
	ActionOpenCart    BrowserAction = "cart"
)

// BrowserResult holds the result of a browser session.
type BrowserResult struct {
	Action BrowserAction
	Book   *BookItem
}

type browserModel struct {
	list     list.Model
	cart     *cart.Cart
	status   string
	quitting bool
	action   BrowserAction
	selected *BookItem
}

func (m browserModel) Init() tea.Cmd {
	return nil
}

func (m browserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Don't handle keys while the live filter is capturing input.
		if m.list.FilterState() == list.Filtering {
			break
		}

		switch {
		case key.Matches(msg, bkeys.quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, bkeys.details):
			if item, ok := m.list.SelectedItem().(BookItem); ok {
				m.action = ActionShowDetails
				m.selected = &item
				m.quitting = true
				return m, tea.Quit
			}

		case key.Matches(msg, bkeys.cart):
			m.action = ActionOpenCart
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, bkeys.add):
			if item, ok := m.list.SelectedItem().(BookItem); ok {
				m.status = m.addToCart(item)
				m.refreshItem(item)
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		h, v := StyleBorder.GetFrameSize()
		m.list.SetSize(msg.Width-h, msg.Height-v-1)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// addToCart adds one copy of the selected book and returns a status line.
func (m *browserModel) addToCart(item BookItem) string {
	limited := m.cart.Add(item.Book, 1)
	if limited {
		return StyleWarn.Render(fmt.Sprintf("Stock limit reached for %q", item.Book.Title))
	}
	return fmt.Sprintf("Added %q — cart: %d item(s), %s",
		item.Book.Title, m.cart.ItemCount(), money.Format(m.cart.TotalPrice()))
}

// refreshItem updates the in-cart badge on the row holding item's book. The
// row is found by book ID in the full item set; Index() is relative to the
// filtered view and cannot address the underlying items.
func (m *browserModel) refreshItem(item BookItem) {
	qty := 0
	if l := m.cart.Find(item.Book.ID); l != nil {
		qty = l.Quantity
	}
	for i, it := range m.list.Items() {
		if bi, ok := it.(BookItem); ok && bi.Book.ID == item.Book.ID {
			bi.InCart = qty
			m.list.SetItem(i, bi)
			return
		}
	}
}

func (m browserModel) View() string {
	if m.quitting {
		return ""
	}
	view := m.list.View()
	if m.status != "" {
		view += "\n" + m.status
	}
	return StyleBorder.Render(view)
}

// RunBrowser launches the interactive storefront browser over the given
// books. Cart mutations happen in place; the returned result tells the
// caller what to do next.
func RunBrowser(books []BookItem, crt *cart.Cart) (*BrowserResult, error) {
	if len(books) == 0 {
		return nil, fmt.Errorf("no books to display")
	}

	items := make([]list.Item, len(books))
	for i, b := range books {
		if l := crt.Find(b.Book.ID); l != nil {
			b.InCart = l.Quantity
		}
		items[i] = b
	}

	l := list.New(items, bookDelegate{}, 0, 0)
	l.Title = "Bookshop"
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = StyleHeader
	l.Styles.PaginationStyle = StyleHelp
	l.Styles.HelpStyle = StyleHelp

	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{bkeys.add, bkeys.cart}
	}
	l.AdditionalFullHelpKeys = func() []key.Binding {
		return []key.Binding{bkeys.add, bkeys.cart, bkeys.details}
	}

	m := browserModel{list: l, cart: crt}

	p := tea.NewProgram(m, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("running TUI: %w", err)
	}

	if fm, ok := finalModel.(browserModel); ok {
		return &BrowserResult{Action: fm.action, Book: fm.selected}, nil
	}
	return &BrowserResult{Action: ActionNone}, nil
}
