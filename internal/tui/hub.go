package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

// MenuItem represents an action in the hub menu.
type MenuItem struct {
	Key         string
	Label       string
	Description string
}

// FilterValue implements list.Item.
func (m MenuItem) FilterValue() string {
	return m.Label + " " + m.Description
}

// HubContext holds status info shown in the hub title.
type HubContext struct {
	Username  string // empty when logged out
	CartItems int
	CartTotal string
}

var menuItems = []MenuItem{
	{Key: "browse", Label: "Browse Books", Description: "Search the catalog and add to cart"},
	{Key: "cart", Label: "View Cart", Description: "Review quantities and totals"},
	{Key: "checkout", Label: "Checkout", Description: "Turn the cart into a transaction"},
	{Key: "history", Label: "Transaction History", Description: "Past purchases and details"},
	{Key: "quit", Label: "Quit", Description: "Exit bookshopctl"},
}

func renderMenuItem(w io.Writer, m list.Model, index int, item list.Item) {
	menuItem, ok := item.(MenuItem)
	if !ok {
		return
	}

	display := fmt.Sprintf("%-22s %s", menuItem.Label, StyleHelp.Render(menuItem.Description))

	if index == m.Index() {
		_, _ = fmt.Fprint(w, StyleHighlight.Render("› "+display))
	} else {
		_, _ = fmt.Fprint(w, "  "+StyleNormal.Render(display))
	}
}

type menuDelegate struct{}

func (d menuDelegate) Height() int  { return 1 }
func (d menuDelegate) Spacing() int { return 0 }
func (d menuDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd {
	return nil
}
func (d menuDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	renderMenuItem(w, m, index, item)
}

type hubModel struct {
	list     list.Model
	quitting bool
	action   string
}

var hubKeyMap = struct {
	quit       key.Binding
	selectItem key.Binding
}{
	quit: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	selectItem: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "select"),
	),
}

func (m hubModel) Init() tea.Cmd {
	return nil
}

func (m hubModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}

		switch {
		case key.Matches(msg, hubKeyMap.quit):
			m.quitting = true
			m.action = "quit"
			return m, tea.Quit

		case key.Matches(msg, hubKeyMap.selectItem):
			if item, ok := m.list.SelectedItem().(MenuItem); ok {
				m.action = item.Key
				m.quitting = true
				return m, tea.Quit
			}
		}

	case tea.WindowSizeMsg:
		h, v := StyleBorder.GetFrameSize()
		m.list.SetSize(msg.Width-h, msg.Height-v)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m hubModel) View() string {
	if m.quitting {
		return ""
	}
	return StyleBorder.Render(m.list.View())
}

// RunHub shows the storefront menu and returns the chosen action key.
func RunHub(ctx HubContext) (string, error) {
	items := make([]list.Item, len(menuItems))
	for i, mi := range menuItems {
		items[i] = mi
	}

	l := list.New(items, menuDelegate{}, 0, 0)
	title := "bookshopctl"
	if ctx.Username != "" {
		title += "  —  " + ctx.Username
	}
	if ctx.CartItems > 0 {
		title += fmt.Sprintf("  —  cart: %d item(s), %s", ctx.CartItems, ctx.CartTotal)
	}
	l.Title = title
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.Styles.Title = StyleHeader
	l.Styles.HelpStyle = StyleHelp

	p := tea.NewProgram(hubModel{list: l}, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return "", fmt.Errorf("running TUI: %w", err)
	}
	if fm, ok := finalModel.(hubModel); ok {
		if fm.action == "" {
			return "quit", nil
		}
		return fm.action, nil
	}
	return "quit", nil
}
