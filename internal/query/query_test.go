package query_test

import (
	"testing"

	"github.com/blackwell-systems/bookshopctl/internal/api"
	"github.com/blackwell-systems/bookshopctl/internal/query"
)

var books = []api.Book{
	{ID: "b1", Title: "The Go Programming Language", Writer: "Donovan", Genre: "programming", Price: "450000", StockQuantity: 4, PublicationYear: 2015},
	{ID: "b2", Title: "Dune", Writer: "Herbert", Genre: "sci-fi", Price: "120000", StockQuantity: 9, PublicationYear: 1965},
	{ID: "b3", Title: "Neuromancer", Writer: "Gibson", Genre: "sci-fi", Price: "90000", StockQuantity: 2, PublicationYear: 1984},
	{ID: "b4", Title: "Clean Code", Writer: "Martin", Genre: "programming", Price: "380000", StockQuantity: 0, PublicationYear: 2008},
}

func ids(bs []api.Book) []string {
	out := make([]string, len(bs))
	for i, b := range bs {
		out[i] = b.ID
	}
	return out
}

func TestFilter_SearchTitle(t *testing.T) {
	got := query.Filter{Search: "neuro"}.Apply(books)
	if len(got) != 1 || got[0].ID != "b3" {
		t.Errorf("search by title: got %v", ids(got))
	}
}

func TestFilter_SearchWriter(t *testing.T) {
	got := query.Filter{Search: "HERBERT"}.Apply(books)
	if len(got) != 1 || got[0].ID != "b2" {
		t.Errorf("case-insensitive writer search: got %v", ids(got))
	}
}

func TestFilter_SearchGenre(t *testing.T) {
	got := query.Filter{Search: "sci"}.Apply(books)
	if len(got) != 2 {
		t.Errorf("genre substring search: got %v", ids(got))
	}
}

func TestFilter_GenreExact(t *testing.T) {
	got := query.Filter{Genre: "Programming"}.Apply(books)
	if len(got) != 2 {
		t.Errorf("exact genre filter: got %v", ids(got))
	}
	if (query.Filter{Genre: "program"}).Apply(books) != nil {
		t.Error("partial genre should not match the exact filter")
	}
}

func TestFilter_Combined(t *testing.T) {
	got := query.Filter{Genre: "sci-fi", Search: "dune"}.Apply(books)
	if len(got) != 1 || got[0].ID != "b2" {
		t.Errorf("combined filter: got %v", ids(got))
	}
}

func TestFilter_Empty(t *testing.T) {
	got := query.Filter{}.Apply(books)
	if len(got) != len(books) {
		t.Errorf("empty filter should return everything, got %d", len(got))
	}
}

func TestSortBooks_Title(t *testing.T) {
	got := query.SortBooks(books, query.SortTitle, false)
	want := []string{"b4", "b2", "b3", "b1"}
	for i, id := range want {
		if got[i].ID != id {
			t.Fatalf("title sort: got %v, want %v", ids(got), want)
		}
	}
}

func TestSortBooks_PriceNumeric(t *testing.T) {
	got := query.SortBooks(books, query.SortPrice, false)
	// Numeric: 90000 < 120000 < 380000 < 450000. Lexicographic would put
	// "120000" before "90000".
	want := []string{"b3", "b2", "b4", "b1"}
	for i, id := range want {
		if got[i].ID != id {
			t.Fatalf("price sort: got %v, want %v", ids(got), want)
		}
	}
}

func TestSortBooks_Descending(t *testing.T) {
	got := query.SortBooks(books, query.SortStock, true)
	if got[0].ID != "b2" || got[len(got)-1].ID != "b4" {
		t.Errorf("descending stock sort: got %v", ids(got))
	}
}

func TestSortBooks_DoesNotMutateInput(t *testing.T) {
	before := ids(books)
	_ = query.SortBooks(books, query.SortPrice, true)
	after := ids(books)
	for i := range before {
		if before[i] != after[i] {
			t.Fatal("SortBooks mutated its input")
		}
	}
}

func TestPage(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7}

	p1 := query.Page(items, 1, 5)
	if len(p1) != 5 || p1[0] != 1 {
		t.Errorf("page 1: got %v", p1)
	}
	p2 := query.Page(items, 2, 5)
	if len(p2) != 2 || p2[0] != 6 {
		t.Errorf("page 2: got %v", p2)
	}
	if query.Page(items, 3, 5) != nil {
		t.Error("page past the end should be empty")
	}
	if got := query.Page(items, 0, 5); len(got) != 5 {
		t.Errorf("page 0 should clamp to page 1, got %v", got)
	}
}

func TestPageCount(t *testing.T) {
	cases := []struct{ n, size, want int }{
		{0, 5, 0},
		{1, 5, 1},
		{5, 5, 1},
		{6, 5, 2},
		{11, 5, 3},
	}
	for _, c := range cases {
		items := make([]int, c.n)
		if got := query.PageCount(items, c.size); got != c.want {
			t.Errorf("PageCount(len %d, size %d) = %d, want %d", c.n, c.size, got, c.want)
		}
	}
}

var txs = []api.Transaction{
	{ID: "tx-aaa", TotalAmount: 2, TotalPrice: "100000", CreatedAt: "2026-08-01T09:00:00Z"},
	{ID: "tx-bbb", TotalAmount: 7, TotalPrice: "90000", CreatedAt: "2026-08-20T09:00:00Z"},
	{ID: "tx-ccc", TotalAmount: 1, TotalPrice: "500000", CreatedAt: "2026-07-15T09:00:00Z"},
}

func TestFilterTransactions(t *testing.T) {
	got := query.FilterTransactions(txs, "bbb")
	if len(got) != 1 || got[0].ID != "tx-bbb" {
		t.Errorf("ID filter: got %d results", len(got))
	}
	if len(query.FilterTransactions(txs, "")) != 3 {
		t.Error("empty query should keep all transactions")
	}
}

func TestSortTransactions_NewestDefault(t *testing.T) {
	got := query.SortTransactions(txs, query.SortNewest, false)
	if got[0].ID != "tx-bbb" || got[2].ID != "tx-ccc" {
		t.Errorf("newest-first sort wrong: %s, %s, %s", got[0].ID, got[1].ID, got[2].ID)
	}
}

func TestSortTransactions_PriceNumeric(t *testing.T) {
	got := query.SortTransactions(txs, query.SortTxPrice, false)
	if got[0].ID != "tx-bbb" || got[2].ID != "tx-ccc" {
		t.Errorf("numeric price sort wrong: %s first", got[0].ID)
	}
}

func TestSortTransactions_AmountDesc(t *testing.T) {
	got := query.SortTransactions(txs, query.SortTxAmount, true)
	if got[0].TotalAmount != 7 {
		t.Errorf("descending amount sort: first = %d", got[0].TotalAmount)
	}
}
