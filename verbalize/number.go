package verbalize

import (
	"fmt"
	"strings"

	"github.com/az-ai-labs/en-itn/tagger"
)

// currencySymbols maps ISO codes to the symbol written before the amount.
var currencySymbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"JPY": "¥",
	"KRW": "₩",
	"INR": "₹",
}

// currencySuffixes maps ISO codes written after the amount instead.
var currencySuffixes = map[string]string{
	"CNY": " yuan",
}

// decimal renders "-3.14", ".5" or "5.2 million".
func decimal(d tagger.Decimal) string {
	var b strings.Builder
	writeDecimal(&b, d)
	return b.String()
}

func writeDecimal(b *strings.Builder, d tagger.Decimal) {
	if d.Negative {
		b.WriteByte('-')
	}
	writeUnsigned(b, d)
}

func writeUnsigned(b *strings.Builder, d tagger.Decimal) {
	b.WriteString(d.Integer)
	if d.Point {
		b.WriteByte('.')
		b.WriteString(d.Fraction)
	}
	if d.Scale != "" {
		b.WriteByte(' ')
		b.WriteString(d.Scale)
	}
}

// money renders "$5", "$5.50", "$0.50", "-$3", "$1.5 billion" or "5 yuan".
func money(m tagger.Money) string {
	var b strings.Builder
	if m.Amount.Negative {
		b.WriteByte('-')
	}
	b.WriteString(currencySymbols[m.Currency])

	amount := m.Amount
	if m.Cents >= 0 && amount.Scale == "" && !amount.Point {
		amount.Point = true
		amount.Fraction = fmt.Sprintf("%02d", m.Cents)
		if amount.Integer == "" {
			amount.Integer = "0"
		}
	}
	writeUnsigned(&b, amount)
	b.WriteString(currencySuffixes[m.Currency])
	return b.String()
}
