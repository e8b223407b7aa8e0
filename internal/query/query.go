// Package query holds the pure list-shaping logic shared by the list views:
// text search, genre filtering, sorting, and fixed-size pagination. Everything
// here is stateless and re-derived from the full collection on each call.
package query

import (
	"sort"
	"strconv"
	"strings"

	"github.com/blackwell-systems/bookshopctl/internal/api"
)

// DefaultPageSize is the fixed page size used by the list views.
const DefaultPageSize = 5

// Filter applies all non-empty criteria and returns matching books.
type Filter struct {
	Search string // case-insensitive substring over title, writer, genre
	Genre  string // exact genre name match (case-insensitive)
}

// Apply returns the subset of books matching all non-empty filter fields.
func (f Filter) Apply(books []api.Book) []api.Book {
	var out []api.Book
	for _, b := range books {
		if f.Genre != "" && !strings.EqualFold(b.Genre, f.Genre) {
			continue
		}
		if f.Search != "" && !matchesSearch(b, f.Search) {
			continue
		}
		out = append(out, b)
	}
	return out
}

func matchesSearch(b api.Book, q string) bool {
	q = strings.ToLower(q)
	if strings.Contains(strings.ToLower(b.Title), q) {
		return true
	}
	if strings.Contains(strings.ToLower(b.Writer), q) {
		return true
	}
	return strings.Contains(strings.ToLower(b.Genre), q)
}

// Book sort keys. Text keys compare lexicographically, price/stock/year
// numerically.
const (
	SortTitle  = "title"
	SortWriter = "writer"
	SortPrice  = "price"
	SortStock  = "stock"
	SortYear   = "year"
)

// SortBooks returns a sorted copy; the input is left alone. An unknown key
// sorts by title. The sort is stable so equal elements keep catalog order.
func SortBooks(books []api.Book, key string, desc bool) []api.Book {
	out := make([]api.Book, len(books))
	copy(out, books)

	var less func(a, b api.Book) bool
	switch key {
	case SortWriter:
		less = func(a, b api.Book) bool { return lessFold(a.Writer, b.Writer) }
	case SortPrice:
		less = func(a, b api.Book) bool { return numeric(a.Price) < numeric(b.Price) }
	case SortStock:
		less = func(a, b api.Book) bool { return a.StockQuantity < b.StockQuantity }
	case SortYear:
		less = func(a, b api.Book) bool { return a.PublicationYear < b.PublicationYear }
	default:
		less = func(a, b api.Book) bool { return lessFold(a.Title, b.Title) }
	}

	sort.SliceStable(out, func(i, j int) bool {
		if desc {
			return less(out[j], out[i])
		}
		return less(out[i], out[j])
	})
	return out
}

// Transaction sort keys.
const (
	SortNewest   = "newest"
	SortTxID     = "id"
	SortTxAmount = "amount"
	SortTxPrice  = "price"
)

// FilterTransactions keeps transactions whose ID contains the query.
func FilterTransactions(txs []api.Transaction, idQuery string) []api.Transaction {
	if idQuery == "" {
		return txs
	}
	var out []api.Transaction
	for _, tx := range txs {
		if strings.Contains(tx.ID, idQuery) {
			out = append(out, tx)
		}
	}
	return out
}

// SortTransactions returns a sorted copy. The default (and "newest") order is
// most recent first by creation timestamp.
func SortTransactions(txs []api.Transaction, key string, desc bool) []api.Transaction {
	out := make([]api.Transaction, len(txs))
	copy(out, txs)

	var less func(a, b api.Transaction) bool
	switch key {
	case SortTxID:
		less = func(a, b api.Transaction) bool { return a.ID < b.ID }
	case SortTxAmount:
		less = func(a, b api.Transaction) bool { return a.TotalAmount < b.TotalAmount }
	case SortTxPrice:
		less = func(a, b api.Transaction) bool { return numeric(a.TotalPrice) < numeric(b.TotalPrice) }
	default:
		// Timestamps are RFC 3339, so string order is chronological.
		less = func(a, b api.Transaction) bool { return a.CreatedAt > b.CreatedAt }
	}

	sort.SliceStable(out, func(i, j int) bool {
		if desc {
			return less(out[j], out[i])
		}
		return less(out[i], out[j])
	})
	return out
}

// Page slices out page n (1-based) of the given size. Out-of-range pages
// return an empty slice; PageCount tells callers where the end is.
func Page[T any](items []T, n, size int) []T {
	if size < 1 {
		size = DefaultPageSize
	}
	if n < 1 {
		n = 1
	}
	start := (n - 1) * size
	if start >= len(items) {
		return nil
	}
	end := start + size
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

// PageCount returns how many pages of the given size the items span.
func PageCount[T any](items []T, size int) int {
	if size < 1 {
		size = DefaultPageSize
	}
	return (len(items) + size - 1) / size
}

func lessFold(a, b string) bool {
	return strings.ToLower(a) < strings.ToLower(b)
}

// numeric parses a scaled price string for comparison; garbage sorts first.
func numeric(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}
