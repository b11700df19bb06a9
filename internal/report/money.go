package report

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Money formats amounts for display, e.g. "Rp 5.000.000".
type Money struct {
	Symbol    string
	Thousands string
	Decimal   string
	Places    int32
}

// DefaultMoney is rupiah with dot grouping and no minor units.
func DefaultMoney() Money {
	return Money{Symbol: "Rp", Thousands: ".", Decimal: ",", Places: 0}
}

// Format renders d rounded to m.Places with grouped thousands.
func (m Money) Format(d decimal.Decimal) string {
	s := d.Abs().StringFixed(m.Places)
	intPart, frac, _ := strings.Cut(s, ".")

	var b strings.Builder
	if m.Symbol != "" {
		b.WriteString(m.Symbol)
		b.WriteByte(' ')
	}
	if d.Round(m.Places).IsNegative() {
		b.WriteByte('-')
	}
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteString(m.Thousands)
		}
		b.WriteRune(r)
	}
	if frac != "" {
		b.WriteString(m.Decimal)
		b.WriteString(frac)
	}
	return b.String()
}
