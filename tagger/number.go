package tagger

import (
	"slices"
	"strconv"

	"github.com/az-ai-labs/en-itn/numtext"
)

// Cardinal is a plain integer.
type Cardinal struct {
	N int64
}

// Category implements Value.
func (Cardinal) Category() Category { return CategoryCardinal }

// Ordinal is an ordinal number rendered with its suffix (21st).
type Ordinal struct {
	N int64
}

// Category implements Value.
func (Ordinal) Category() Category { return CategoryOrdinal }

// Decimal is a number with an optional fraction and an optional magnitude
// kept as a word ("5.2 million"). The digit strings are kept as spoken, so
// "eighteen point o five" keeps its leading fractional zero.
type Decimal struct {
	Negative bool
	Integer  string // digits before the point; empty for "point five"
	Point    bool   // a point was spoken
	Fraction string // digits after the point
	Scale    string // trailing million, billion or trillion, original casing
}

// Category implements Value.
func (Decimal) Category() Category { return CategoryDecimal }

// IsOne reports whether d is exactly the integer 1.
func (d Decimal) IsOne() bool {
	return !d.Negative && d.Integer == "1" && !d.Point && d.Scale == ""
}

type cardinalTagger struct{}

func (cardinalTagger) Category() Category { return CategoryCardinal }

// Parse accepts any grammatical cardinal except zero, which is conventionally
// left spelled out.
func (cardinalTagger) Parse(words []Word) (Value, bool) {
	n, ok := numtext.Cardinal(lowers(words))
	if !ok || n == 0 {
		return nil, false
	}
	return Cardinal{N: n}, true
}

type ordinalTagger struct{}

func (ordinalTagger) Category() Category { return CategoryOrdinal }

func (ordinalTagger) Parse(words []Word) (Value, bool) {
	n, ok := numtext.Ordinal(lowers(words))
	if !ok {
		return nil, false
	}
	return Ordinal{N: n}, true
}

type decimalTagger struct{}

func (decimalTagger) Category() Category { return CategoryDecimal }

// Parse accepts numbers with a spoken point or a kept magnitude word. Plain
// integers are left to the cardinal tagger.
func (decimalTagger) Parse(words []Word) (Value, bool) {
	d, ok := parseNumber(words)
	if !ok || (!d.Point && d.Scale == "") {
		return nil, false
	}
	return d, true
}

// keptScales are the magnitudes written as words after a number of fewer
// than four digits ("fifty billion" → "50 billion").
var keptScales = map[string]bool{
	"million":  true,
	"billion":  true,
	"trillion": true,
}

// parseNumber reads an optionally negative number with an optional
// "point" fraction and an optional kept magnitude word.
func parseNumber(words []Word) (Decimal, bool) {
	var d Decimal
	lw := lowers(words)
	if lw[0] == "minus" || lw[0] == "negative" {
		d.Negative = true
		lw, words = lw[1:], words[1:]
		if len(lw) == 0 {
			return Decimal{}, false
		}
	}

	if n := len(lw); n >= 2 && keptScales[lw[n-1]] {
		scaled := d
		scaled.Scale = words[n-1].Text
		if readNumber(&scaled, lw[:n-1], true) {
			return scaled, true
		}
	}
	if !readNumber(&d, lw, false) {
		return Decimal{}, false
	}
	return d, true
}

// readNumber fills the integer and fraction of d from lw. With scaled set the
// integer part must stay below one thousand.
func readNumber(d *Decimal, lw []string, scaled bool) bool {
	p := slices.Index(lw, "point")
	intPart := lw
	if p >= 0 {
		intPart = lw[:p]
	}

	var n int64
	if len(intPart) > 0 {
		var ok bool
		n, ok = numtext.Cardinal(intPart)
		if !ok || n < 0 || (scaled && n >= 1000) {
			return false
		}
		d.Integer = strconv.FormatInt(n, 10)
	}

	if p >= 0 {
		frac, ok := fractionDigits(lw[p+1:])
		if !ok {
			return false
		}
		d.Point = true
		d.Fraction = frac
		return true
	}

	if len(intPart) == 0 || (d.Negative && n == 0) {
		return false
	}
	return true
}

// fractionDigits reads the digits spoken after "point": digit words
// ("one", "oh"), teens ("fifteen") and tens with an optional unit
// ("twenty six").
func fractionDigits(words []string) (string, bool) {
	if len(words) == 0 {
		return "", false
	}
	b := make([]byte, 0, len(words)+2)
	for i := 0; i < len(words); i++ {
		if d, ok := numtext.Digit(words[i]); ok {
			b = append(b, d)
			continue
		}
		v, ok := numtext.Small(words[i])
		if !ok {
			return "", false
		}
		if v >= 20 && i+1 < len(words) {
			if u, ok := numtext.Small(words[i+1]); ok && u < 10 {
				v += u
				i++
			}
		}
		b = strconv.AppendInt(b, v, 10)
	}
	return string(b), true
}

// parseAmount reads a money or measurement quantity: a number as in
// parseNumber, or the hundreds shorthand used for prices ("one fifty five").
func parseAmount(words []Word) (Decimal, bool) {
	if d, ok := parseNumber(words); ok {
		return d, true
	}
	if n, ok := numtext.Shorthand(lowers(words)); ok {
		return Decimal{Integer: strconv.FormatInt(n, 10)}, true
	}
	return Decimal{}, false
}
