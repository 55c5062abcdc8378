package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatBR renders d with two fractional digits, "." between thousands and
// "," before the cents: 1234.56 -> "1.234,56". Rounds half away from zero.
func FormatBR(d decimal.Decimal) string {
	s := d.StringFixed(2)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, frac, _ := strings.Cut(s, ".")

	var b strings.Builder
	b.WriteString(sign)
	lead := len(intPart) % 3
	if lead == 0 {
		lead = 3
	}
	b.WriteString(intPart[:lead])
	for i := lead; i < len(intPart); i += 3 {
		b.WriteByte('.')
		b.WriteString(intPart[i : i+3])
	}
	b.WriteByte(',')
	b.WriteString(frac)
	return b.String()
}

// CentsToPrice converts stored minor units into a 2-place price.
func CentsToPrice(cents int64) decimal.Decimal { return decimal.New(cents, -2) }

// PriceToCents is the inverse of CentsToPrice; extra precision is rounded.
func PriceToCents(p decimal.Decimal) int64 { return p.Shift(2).Round(0).IntPart() }
