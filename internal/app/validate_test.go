package app

import (
	"strings"
	"testing"
	"time"

	"github.com/blackwell-systems/bookshopctl/internal/api"
)

func TestValidateEmail(t *testing.T) {
	valid := []string{
		"reader@example.com",
		"a.b+tag@sub.example.org",
	}
	for _, e := range valid {
		if err := validateEmail(e); err != nil {
			t.Errorf("validateEmail(%q) = %v, want nil", e, err)
		}
	}

	invalid := []string{
		"",
		"   ",
		"plainaddress",
		"@example.com",
		"user@",
		"user@nodot",
		"two words@example.com",
	}
	for _, e := range invalid {
		if err := validateEmail(e); err == nil {
			t.Errorf("validateEmail(%q) = nil, want error", e)
		}
	}
}

func TestValidatePassword(t *testing.T) {
	if err := validatePassword("secret"); err != nil {
		t.Errorf("6-char password rejected: %v", err)
	}
	if err := validatePassword("short"); err == nil {
		t.Error("5-char password accepted, want error")
	}
}

func TestValidateUsername(t *testing.T) {
	if err := validateUsername("bob"); err != nil {
		t.Errorf("3-char username rejected: %v", err)
	}
	if err := validateUsername("ab"); err == nil {
		t.Error("2-char username accepted, want error")
	}
	if err := validateUsername("  a  "); err == nil {
		t.Error("whitespace-padded 1-char username accepted, want error")
	}
}

func validPayload() api.BookPayload {
	return api.BookPayload{
		Title:           "The Hobbit",
		Writer:          "J.R.R. Tolkien",
		Publisher:       "Allen & Unwin",
		PublicationYear: 1937,
		Price:           "150000",
		StockQuantity:   12,
		GenreID:         "gen_1",
		Description:     "There and back again.",
	}
}

func TestValidateBook_Valid(t *testing.T) {
	if err := validateBook(validPayload()); err != nil {
		t.Fatalf("valid payload rejected: %v", err)
	}
}

func TestValidateBook_Rejections(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*api.BookPayload)
	}{
		{"empty title", func(p *api.BookPayload) { p.Title = "  " }},
		{"title too long", func(p *api.BookPayload) { p.Title = strings.Repeat("x", 201) }},
		{"empty writer", func(p *api.BookPayload) { p.Writer = "" }},
		{"empty publisher", func(p *api.BookPayload) { p.Publisher = "" }},
		{"year too early", func(p *api.BookPayload) { p.PublicationYear = 1899 }},
		{"year in the future", func(p *api.BookPayload) { p.PublicationYear = time.Now().Year() + 1 }},
		{"empty price", func(p *api.BookPayload) { p.Price = "" }},
		{"non-numeric price", func(p *api.BookPayload) { p.Price = "five dollars" }},
		{"zero price", func(p *api.BookPayload) { p.Price = "0" }},
		{"negative price", func(p *api.BookPayload) { p.Price = "-100" }},
		{"negative stock", func(p *api.BookPayload) { p.StockQuantity = -1 }},
		{"stock too large", func(p *api.BookPayload) { p.StockQuantity = 10001 }},
		{"missing genre", func(p *api.BookPayload) { p.GenreID = "" }},
		{"empty description", func(p *api.BookPayload) { p.Description = "" }},
		{"description too long", func(p *api.BookPayload) { p.Description = strings.Repeat("x", 1001) }},
	}

	for _, c := range cases {
		p := validPayload()
		c.mutate(&p)
		if err := validateBook(p); err == nil {
			t.Errorf("%s: validateBook accepted invalid payload", c.name)
		}
	}
}

func TestParseQuantity(t *testing.T) {
	if n, err := parseQuantity("3"); err != nil || n != 3 {
		t.Errorf("parseQuantity(3) = %d, %v", n, err)
	}
	for _, s := range []string{"0", "-1", "abc", "1.5", ""} {
		if _, err := parseQuantity(s); err == nil {
			t.Errorf("parseQuantity(%q) = nil error, want rejection", s)
		}
	}
}

func TestParseQuantityOrZero(t *testing.T) {
	if n, err := parseQuantityOrZero("0"); err != nil || n != 0 {
		t.Errorf("parseQuantityOrZero(0) = %d, %v, want 0, nil", n, err)
	}
	if n, err := parseQuantityOrZero("2"); err != nil || n != 2 {
		t.Errorf("parseQuantityOrZero(2) = %d, %v, want 2, nil", n, err)
	}
	if _, err := parseQuantityOrZero("-3"); err == nil {
		t.Error("parseQuantityOrZero(-3) accepted, want error")
	}
}
