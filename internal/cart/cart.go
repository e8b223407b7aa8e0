// Package cart is the client-side shopping cart: an ordered collection of
// book-ID-keyed lines with stock-aware quantity guards, mirrored to the local
// store after every mutation. It is the only owner of cart state for the
// lifetime of the process.
package cart

import (
	"gopkg.in/yaml.v3"

	"github.com/blackwell-systems/bookshopctl/internal/api"
	"github.com/blackwell-systems/bookshopctl/internal/money"
	"github.com/blackwell-systems/bookshopctl/internal/store"
)

// StoreKey is the key the serialized line list lives under.
const StoreKey = "cart"

// Line is one cart entry: a book snapshot plus a quantity. Stock is the
// stock_quantity captured when the book was added; quantities are clamped
// against it, never against live inventory.
type Line struct {
	BookID   string `yaml:"book_id"`
	Title    string `yaml:"title"`
	Writer   string `yaml:"writer"`
	Genre    string `yaml:"genre,omitempty"`
	Price    string `yaml:"price"`
	Stock    int    `yaml:"stock_quantity"`
	Quantity int    `yaml:"quantity"`
}

// UnitPrice returns the descaled display price for one copy.
func (l Line) UnitPrice() float64 {
	v, err := money.Descale(l.Price)
	if err != nil {
		return 0
	}
	return v
}

// Subtotal returns UnitPrice × Quantity.
func (l Line) Subtotal() float64 {
	return l.UnitPrice() * float64(l.Quantity)
}

// Cart holds the in-memory line list and its backing store.
type Cart struct {
	lines []Line
	store store.Store
	warnf func(format string, a ...interface{})
}

// Load rehydrates a cart from the store. Missing or corrupt persisted data
// yields an empty cart, never an error. warnf is called on storage problems;
// nil means degrade silently.
func Load(s store.Store, warnf func(string, ...interface{})) *Cart {
	c := &Cart{store: s, warnf: warnf}

	data, ok := s.Get(StoreKey)
	if !ok {
		return c
	}
	var lines []Line
	if err := yaml.Unmarshal(data, &lines); err != nil {
		c.warn("stored cart is corrupt, starting empty: %v", err)
		return c
	}

	// Re-apply the invariants on the way in: unique IDs, positive quantities,
	// quantities within the stock snapshot.
	seen := make(map[string]bool, len(lines))
	for _, l := range lines {
		if l.BookID == "" || l.Quantity < 1 || seen[l.BookID] {
			continue
		}
		if l.Quantity > l.Stock {
			l.Quantity = l.Stock
		}
		if l.Quantity < 1 {
			continue
		}
		seen[l.BookID] = true
		c.lines = append(c.lines, l)
	}
	return c
}

// Add merges qty copies of book into the cart, creating a line if needed.
// The resulting quantity is clamped to the stock snapshot; the return value
// reports whether the request hit that limit.
func (c *Cart) Add(b api.Book, qty int) (limited bool) {
	if qty < 1 {
		qty = 1
	}
	if b.StockQuantity < 1 {
		return true
	}

	for i := range c.lines {
		if c.lines[i].BookID != b.ID {
			continue
		}
		want := c.lines[i].Quantity + qty
		if want > c.lines[i].Stock {
			want = c.lines[i].Stock
			limited = true
		}
		c.lines[i].Quantity = want
		c.persist()
		return limited
	}

	if qty > b.StockQuantity {
		qty = b.StockQuantity
		limited = true
	}
	c.lines = append(c.lines, Line{
		BookID:   b.ID,
		Title:    b.Title,
		Writer:   b.Writer,
		Genre:    b.Genre,
		Price:    b.Price,
		Stock:    b.StockQuantity,
		Quantity: qty,
	})
	c.persist()
	return limited
}

// Remove deletes the line for bookID. Returns whether a line was removed.
func (c *Cart) Remove(bookID string) bool {
	for i := range c.lines {
		if c.lines[i].BookID == bookID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			c.persist()
			return true
		}
	}
	return false
}

// SetQuantity sets the line's quantity. qty <= 0 removes the line. A qty
// above the stock snapshot is rejected as a no-op and reported via the
// return value.
func (c *Cart) SetQuantity(bookID string, qty int) (limited bool) {
	if qty <= 0 {
		c.Remove(bookID)
		return false
	}
	for i := range c.lines {
		if c.lines[i].BookID != bookID {
			continue
		}
		if qty > c.lines[i].Stock {
			return true
		}
		c.lines[i].Quantity = qty
		c.persist()
		return false
	}
	return false
}

// Clear empties the cart unconditionally.
func (c *Cart) Clear() {
	c.lines = nil
	c.persist()
}

// Lines returns a copy of the lines in insertion order.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// Find returns the line for bookID, or nil.
func (c *Cart) Find(bookID string) *Line {
	for i := range c.lines {
		if c.lines[i].BookID == bookID {
			l := c.lines[i]
			return &l
		}
	}
	return nil
}

// Len returns the number of distinct lines.
func (c *Cart) Len() int {
	return len(c.lines)
}

// ItemCount returns the sum of quantities across all lines.
func (c *Cart) ItemCount() int {
	n := 0
	for _, l := range c.lines {
		n += l.Quantity
	}
	return n
}

// TotalPrice returns the sum of descaled unit price × quantity over all lines.
func (c *Cart) TotalPrice() float64 {
	total := 0.0
	for _, l := range c.lines {
		total += l.Subtotal()
	}
	return total
}

// persist mirrors the line list to the store. Write failures degrade to
// in-memory-only operation for the session.
func (c *Cart) persist() {
	lines := c.lines
	if lines == nil {
		lines = []Line{}
	}
	data, err := yaml.Marshal(lines)
	if err != nil {
		c.warn("serializing cart: %v", err)
		return
	}
	if err := c.store.Put(StoreKey, data); err != nil {
		c.warn("saving cart (changes are in-memory only): %v", err)
	}
}

func (c *Cart) warn(format string, a ...interface{}) {
	if c.warnf != nil {
		c.warnf(format, a...)
	}
}
