package tagger

import (
	"slices"

	"github.com/az-ai-labs/en-itn/numtext"
)

// Money is a currency amount. Amount holds the major units as spoken;
// Cents holds the minor units (0..99) or -1 when none were spoken.
type Money struct {
	Currency string // ISO 4217 code
	Amount   Decimal
	Cents    int
}

// Category implements Value.
func (Money) Category() Category { return CategoryMoney }

// currencyName is a spoken currency name.
type currencyName struct {
	words  []string
	code   string
	plural bool
}

// currencyNames lists spoken currency names, longest first so that
// "united states dollars" is preferred over "dollars".
var currencyNames = []currencyName{
	{[]string{"united", "states", "dollars"}, "USD", true},
	{[]string{"united", "states", "dollar"}, "USD", false},
	{[]string{"u", "s", "dollars"}, "USD", true},
	{[]string{"us", "dollars"}, "USD", true},
	{[]string{"pounds", "sterling"}, "GBP", true},
	{[]string{"british", "pounds"}, "GBP", true},
	{[]string{"japanese", "yen"}, "JPY", false},
	{[]string{"korean", "won"}, "KRW", false},
	{[]string{"chinese", "yuan"}, "CNY", false},
	{[]string{"indian", "rupees"}, "INR", true},
	{[]string{"dollars"}, "USD", true},
	{[]string{"dollar"}, "USD", false},
	{[]string{"euros"}, "EUR", true},
	{[]string{"euro"}, "EUR", false},
	{[]string{"pounds"}, "GBP", true},
	{[]string{"pound"}, "GBP", false},
	{[]string{"rupees"}, "INR", true},
	{[]string{"rupee"}, "INR", false},
	{[]string{"yen"}, "JPY", false},
	{[]string{"won"}, "KRW", false},
	{[]string{"yuan"}, "CNY", false},
}

// minorUnits maps minor-unit words to the currencies that use them. The
// first code is used when no major unit was spoken.
var minorUnits = map[string][]string{
	"cent":  {"USD", "EUR"},
	"cents": {"USD", "EUR"},
	"penny": {"GBP"},
	"pence": {"GBP"},
	"paisa": {"INR"},
	"paise": {"INR"},
}

type moneyTagger struct{}

func (moneyTagger) Category() Category { return CategoryMoney }

// Parse accepts:
//
//	<amount> <currency>                         five dollars, $1.5 billion
//	<amount> <currency> [and] <n> <minor unit>  five dollars and fifty cents
//	<amount> <currency> <n>                     twenty nine dollars fifty
//	<n> <minor unit>                            fifty cents
//
// "one dollars" is rejected.
func (moneyTagger) Parse(words []Word) (Value, bool) {
	lw := lowers(words)
	if len(lw) < 2 {
		return nil, false
	}

	for c := 1; c < len(lw); c++ {
		name, ok := matchCurrency(lw[c:])
		if !ok {
			continue
		}
		amount, ok := parseAmount(words[:c])
		if !ok {
			return nil, false
		}
		if name.plural && amount.IsOne() {
			return nil, false
		}
		m := Money{Currency: name.code, Amount: amount, Cents: -1}
		rest := lw[c+len(name.words):]
		if len(rest) == 0 {
			return m, true
		}
		if amount.Point || amount.Scale != "" {
			return nil, false
		}
		cents, ok := minorAmount(rest, name.code)
		if !ok {
			return nil, false
		}
		m.Cents = cents
		return m, true
	}

	codes, ok := minorUnits[lw[len(lw)-1]]
	if !ok {
		return nil, false
	}
	n, ok := numtext.Cardinal(lw[:len(lw)-1])
	if !ok || n < 0 || n > 99 {
		return nil, false
	}
	return Money{Currency: codes[0], Amount: Decimal{Integer: "0"}, Cents: int(n)}, true
}

// matchCurrency returns the longest currency name that lw starts with.
func matchCurrency(lw []string) (currencyName, bool) {
	for _, name := range currencyNames {
		if hasPrefix(lw, name.words...) {
			return name, true
		}
	}
	return currencyName{}, false
}

// minorAmount reads the part after the currency name: "and fifty cents",
// "fifty cents" or an implied "fifty". An "and" requires the unit word.
func minorAmount(rest []string, code string) (int, bool) {
	withAnd := rest[0] == "and"
	if withAnd {
		rest = rest[1:]
	}
	if len(rest) == 0 {
		return 0, false
	}

	explicit := false
	if codes, ok := minorUnits[rest[len(rest)-1]]; ok {
		if !slices.Contains(codes, code) {
			return 0, false
		}
		explicit = true
		rest = rest[:len(rest)-1]
	}
	if withAnd && !explicit {
		return 0, false
	}
	if !explicit && !hasMinorUnit(code) {
		return 0, false
	}

	n, ok := numtext.Cardinal(rest)
	if !ok || n < 0 || n > 99 {
		return 0, false
	}
	if !explicit && n == 0 {
		return 0, false
	}
	return int(n), true
}

// hasMinorUnit reports whether code has a spoken minor unit.
func hasMinorUnit(code string) bool {
	for _, codes := range minorUnits {
		if slices.Contains(codes, code) {
			return true
		}
	}
	return false
}
