// Package format renders spread metrics the way the dashboard displays them.
// Rounding goes through shopspring/decimal so values like 2.675 round half
// away from zero instead of inheriting binary float artifacts.
package format

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Currency formats v as US dollars with two decimals and thousands separators,
// e.g. 1234.5 -> "$1,234.50" and -125 -> "-$125.00".
func Currency(v float64) string {
	d := decimal.NewFromFloat(v).Round(2)
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Abs()
	}

	fixed := d.StringFixed(2)
	whole, frac, _ := strings.Cut(fixed, ".")
	return sign + "$" + groupThousands(whole) + "." + frac
}

// Percent formats a 0-100 percentage with the given number of decimals, e.g. "72.5%".
func Percent(v float64, places int32) string {
	return decimal.NewFromFloat(v).StringFixed(places) + "%"
}

// Ratio formats a profit/risk ratio as "2.11:1".
func Ratio(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2) + ":1"
}

// Round2 rounds v to cents for JSON payloads.
func Round2(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
