package money

import (
	"fmt"
	"strconv"
	"strings"
)

// ScaleFactor is the fixed divisor applied to the API's integer-like price
// strings. The backend stores "50000" for $5.00.
const ScaleFactor = 10000

// Descale converts an API price string into a display amount.
func Descale(price string) (float64, error) {
	price = strings.TrimSpace(price)
	if price == "" {
		return 0, fmt.Errorf("empty price")
	}
	v, err := strconv.ParseFloat(price, 64)
	if err != nil {
		return 0, fmt.Errorf("parsing price %q: %w", price, err)
	}
	return v / ScaleFactor, nil
}

// Format renders a display amount as USD, e.g. 5 -> "$5.00".
func Format(v float64) string {
	neg := ""
	if v < 0 {
		neg = "-"
		v = -v
	}
	whole := int64(v)
	cents := int64(v*100+0.5) - whole*100
	if cents >= 100 {
		whole++
		cents -= 100
	}
	return fmt.Sprintf("%s$%s.%02d", neg, group(whole), cents)
}

// FormatPrice descales and formats an API price string in one step.
// Unparseable prices render as "$0.00" so list output never breaks.
func FormatPrice(price string) string {
	v, err := Descale(price)
	if err != nil {
		return Format(0)
	}
	return Format(v)
}

// group inserts thousands separators: 1234567 -> "1,234,567".
func group(n int64) string {
	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
