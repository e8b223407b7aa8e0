package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// BookFormData holds the book fields collected from the user.
type BookFormData struct {
	Title           string
	Writer          string
	Publisher       string
	PublicationYear int
	Price           string
	StockQuantity   int
	GenreName       string
	Description     string
}

// BookFormDefaults pre-fills the form, used when editing an existing book.
type BookFormDefaults struct {
	Title           string
	Writer          string
	Publisher       string
	PublicationYear int
	Price           string
	StockQuantity   int
	GenreName       string
	Description     string
	Genres          []string // known genre names, shown as a hint
}

const (
	formFieldTitle = iota
	formFieldWriter
	formFieldPublisher
	formFieldYear
	formFieldPrice
	formFieldStock
	formFieldGenre
	formFieldDescription
	formFieldCount
)

type bookFormModel struct {
	inputs   []textinput.Model
	focused  int
	genres   []string
	result   *BookFormData
	err      error
	canceled bool
}

func newBookForm(defaults BookFormDefaults) bookFormModel {
	m := bookFormModel{
		inputs: make([]textinput.Model, formFieldCount),
		genres: defaults.Genres,
	}

	const fieldWidth = 42

	mk := func(idx int, placeholder, value string, limit, width int) {
		in := textinput.New()
		in.Placeholder = placeholder
		in.SetValue(value)
		in.CharLimit = limit
		in.Width = width
		in.Prompt = "│ "
		m.inputs[idx] = in
	}

	mk(formFieldTitle, "Book title", defaults.Title, 200, fieldWidth)
	mk(formFieldWriter, "Author name", defaults.Writer, 100, fieldWidth)
	mk(formFieldPublisher, "Publisher", defaults.Publisher, 100, fieldWidth)

	year := ""
	if defaults.PublicationYear > 0 {
		year = strconv.Itoa(defaults.PublicationYear)
	}
	mk(formFieldYear, "2024", year, 4, 8)
	mk(formFieldPrice, "50000 (scaled, $5.00)", defaults.Price, 12, 24)

	stock := ""
	if defaults.StockQuantity > 0 {
		stock = strconv.Itoa(defaults.StockQuantity)
	}
	mk(formFieldStock, "0", stock, 5, 8)

	genreHint := "genre"
	if len(defaults.Genres) > 0 {
		genreHint = strings.Join(defaults.Genres, ", ")
	}
	mk(formFieldGenre, genreHint, defaults.GenreName, 50, fieldWidth)
	mk(formFieldDescription, "Short description", defaults.Description, 1000, fieldWidth)

	m.inputs[formFieldTitle].Focus()
	return m
}

func (m bookFormModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m bookFormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.updateInputs(msg)
	}

	switch keyMsg.String() {
	case "ctrl+c", "esc":
		m.canceled = true
		return m, tea.Quit

	case "tab", "down":
		m.focus(m.focused + 1)
		return m, nil

	case "shift+tab", "up":
		m.focus(m.focused - 1)
		return m, nil

	case "enter":
		if m.focused < formFieldCount-1 {
			m.focus(m.focused + 1)
			return m, nil
		}
		data, err := m.collect()
		if err != nil {
			m.err = err
			return m, nil
		}
		m.result = data
		return m, tea.Quit
	}

	return m.updateInputs(msg)
}

func (m *bookFormModel) focus(idx int) {
	if idx < 0 {
		idx = formFieldCount - 1
	}
	if idx >= formFieldCount {
		idx = 0
	}
	m.inputs[m.focused].Blur()
	m.focused = idx
	m.inputs[m.focused].Focus()
	m.err = nil
}

// collect parses the numeric fields; semantic validation happens in the
// caller so the CLI flag path and the TUI path share one validator.
func (m bookFormModel) collect() (*BookFormData, error) {
	year := 0
	if s := strings.TrimSpace(m.inputs[formFieldYear].Value()); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("publication year must be a number")
		}
		year = v
	}
	stock := 0
	if s := strings.TrimSpace(m.inputs[formFieldStock].Value()); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("stock quantity must be a number")
		}
		stock = v
	}

	return &BookFormData{
		Title:           strings.TrimSpace(m.inputs[formFieldTitle].Value()),
		Writer:          strings.TrimSpace(m.inputs[formFieldWriter].Value()),
		Publisher:       strings.TrimSpace(m.inputs[formFieldPublisher].Value()),
		PublicationYear: year,
		Price:           strings.TrimSpace(m.inputs[formFieldPrice].Value()),
		StockQuantity:   stock,
		GenreName:       strings.TrimSpace(m.inputs[formFieldGenre].Value()),
		Description:     strings.TrimSpace(m.inputs[formFieldDescription].Value()),
	}, nil
}

func (m bookFormModel) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.inputs[m.focused], cmd = m.inputs[m.focused].Update(msg)
	return m, cmd
}

var formLabels = [formFieldCount]string{
	"Title", "Author", "Publisher", "Year", "Price", "Stock", "Genre", "Description",
}

func (m bookFormModel) View() string {
	var b strings.Builder
	b.WriteString(StyleHeader.Render("Book Details") + "\n\n")

	for i, in := range m.inputs {
		label := formLabels[i]
		if i == m.focused {
			b.WriteString(StyleHighlight.Render(label) + "\n")
		} else {
			b.WriteString(StyleNormal.Render(label) + "\n")
		}
		b.WriteString(in.View() + "\n")
	}

	if m.err != nil {
		b.WriteString("\n" + StyleWarn.Render(m.err.Error()) + "\n")
	}
	b.WriteString("\n" + StyleHelp.Render("tab next field • enter on last field submits • esc cancel"))

	return StyleBorder.Render(b.String())
}

// RunBookForm launches the interactive add/edit book form. Returns nil data
// when the user cancels.
func RunBookForm(defaults BookFormDefaults) (*BookFormData, error) {
	p := tea.NewProgram(newBookForm(defaults))
	finalModel, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("running TUI: %w", err)
	}
	if fm, ok := finalModel.(bookFormModel); ok && !fm.canceled {
		return fm.result, nil
	}
	return nil, nil
}
