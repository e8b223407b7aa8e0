package money_test

import (
	"testing"

	"github.com/blackwell-systems/bookshopctl/internal/money"
)

func TestDescale(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"50000", 5.0},
		{"10000", 1.0},
		{"0", 0},
		{"125000", 12.5},
		{" 50000 ", 5.0},
		{"5000", 0.5},
	}
	for _, c := range cases {
		got, err := money.Descale(c.in)
		if err != nil {
			t.Errorf("Descale(%q): %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("Descale(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestDescale_Invalid(t *testing.T) {
	for _, in := range []string{"", "abc", "12x"} {
		if _, err := money.Descale(in); err == nil {
			t.Errorf("Descale(%q): expected error, got nil", in)
		}
	}
}

func TestFormat(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{5, "$5.00"},
		{12.5, "$12.50"},
		{0, "$0.00"},
		{1234.56, "$1,234.56"},
		{1234567.89, "$1,234,567.89"},
		{-3.25, "-$3.25"},
		{0.999, "$1.00"},
	}
	for _, c := range cases {
		if got := money.Format(c.in); got != c.want {
			t.Errorf("Format(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFormatPrice(t *testing.T) {
	if got := money.FormatPrice("50000"); got != "$5.00" {
		t.Errorf("FormatPrice(50000) = %q, want $5.00", got)
	}
	// Unparseable prices degrade to $0.00 rather than breaking list output.
	if got := money.FormatPrice("not-a-price"); got != "$0.00" {
		t.Errorf("FormatPrice(garbage) = %q, want $0.00", got)
	}
}
