// Text-to-number reading for English numerals.
package numtext

import (
	"slices"
	"strings"
)

// wordKind is the class of the last numeral word read within a group.
type wordKind int

const (
	kindNone     wordKind = iota
	kindUnit              // one..nine
	kindTeen              // ten..nineteen
	kindTens              // twenty..ninety
	kindTensUnit          // twenty one
)

// Small returns the value of a single numeral word in 1..90
// ("seven", "thirteen", "forty").
func Small(word string) (int64, bool) {
	v, ok := smallValues[word]
	return v, ok
}

// Digit returns the ASCII digit spoken by word. "zero", "o" and "oh" are 0.
func Digit(word string) (byte, bool) {
	d, ok := digitWords[word]
	return d, ok
}

// Scale returns the value of a scale word: thousand through quintillion,
// lakh and crore. Hundred is not a scale.
func Scale(word string) (int64, bool) {
	v, ok := scaleValues[word]
	return v, ok
}

// IsHundredOrScale reports whether word is "hundred", a scale word, or a
// scale word beyond the supported range.
func IsHundredOrScale(word string) bool {
	if word == wordHundred || tooLarge[word] {
		return true
	}
	_, ok := scaleValues[word]
	return ok
}

// SplitHyphens expands hyphenated compounds ("twenty-one" → "twenty", "one").
// The input slice is returned as is when no word holds a hyphen.
func SplitHyphens(words []string) []string {
	hyphenated := false
	for _, w := range words {
		if strings.Contains(w, "-") {
			hyphenated = true
			break
		}
	}
	if !hyphenated {
		return words
	}
	out := make([]string, 0, len(words)+2)
	for _, w := range words {
		if !strings.Contains(w, "-") {
			out = append(out, w)
			continue
		}
		for _, part := range strings.Split(w, "-") {
			if part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

// Cardinal reads lowercase English cardinal words. A leading "minus" or
// "negative" makes the result negative. A lone "zero" reads as 0.
//
// The grammar is validated: "and" is accepted only after hundred or a scale
// word and before a number below one hundred, "a" only before hundred or a
// scale word at the start, and scale words must decrease.
func Cardinal(words []string) (int64, bool) {
	words = SplitHyphens(words)
	if len(words) == 0 {
		return 0, false
	}

	negative := false
	if words[0] == wordNegative || words[0] == "negative" {
		negative = true
		words = words[1:]
		if len(words) == 0 {
			return 0, false
		}
	}

	if len(words) == 1 && words[0] == wordZero {
		return 0, true
	}

	n, ok := readCardinal(words)
	if !ok {
		return 0, false
	}
	if negative {
		n = -n
	}
	return n, true
}

func readCardinal(words []string) (int64, bool) {
	var (
		total       int64 // sum of groups already multiplied by a scale
		group       int64 // group under construction, below the next scale
		lastScale   int64 // last scale applied; later scales must be smaller
		usedHundred bool
		kind        wordKind
	)

	for i, w := range words {
		if w == wordAnd {
			if i == 0 || i == len(words)-1 || !IsHundredOrScale(words[i-1]) {
				return 0, false
			}
			if _, ok := smallValues[words[i+1]]; !ok {
				return 0, false
			}
			continue
		}

		if w == "a" {
			if i != 0 || len(words) < 2 || !IsHundredOrScale(words[1]) {
				return 0, false
			}
			group = 1
			kind = kindUnit
			continue
		}

		if w == wordHundred {
			switch {
			case usedHundred:
				return 0, false
			case group == 0 && i != 0:
				return 0, false
			case group >= 10 && lastScale != 0:
				return 0, false
			}
			if group == 0 {
				group = 1
			}
			group *= hundred
			usedHundred = true
			kind = kindNone
			continue
		}

		if val, ok := scaleValues[w]; ok {
			if group == 0 {
				if i != 0 {
					return 0, false
				}
				group = 1
			}
			if lastScale != 0 && val >= lastScale {
				return 0, false
			}
			if group > maxAbs/val {
				return 0, false
			}
			product := group * val
			if total > maxAbs-product {
				return 0, false
			}
			total += product
			group = 0
			lastScale = val
			usedHundred = false
			kind = kindNone
			continue
		}

		val, ok := smallValues[w]
		if !ok {
			return 0, false
		}
		switch {
		case val < 10 && kind == kindNone:
			kind = kindUnit
		case val < 10 && kind == kindTens:
			kind = kindTensUnit
		case val >= 10 && val < 20 && kind == kindNone:
			kind = kindTeen
		case val >= 20 && kind == kindNone:
			kind = kindTens
		default:
			return 0, false
		}
		group += val
	}

	result := total + group
	if result == 0 || result > maxAbs {
		return 0, false
	}
	return result, true
}

// Ordinal reads lowercase English ordinal words such as "first",
// "twenty third", "one hundredth" or "zeroth". Only the last word carries
// the ordinal form; the rest must read as a cardinal prefix.
func Ordinal(words []string) (int64, bool) {
	words = SplitHyphens(words)
	if len(words) == 0 {
		return 0, false
	}
	last := words[len(words)-1]
	if last == "zeroth" {
		return 0, len(words) == 1
	}
	base, ok := ordinalBase(last)
	if !ok {
		return 0, false
	}
	card := make([]string, len(words))
	copy(card, words)
	card[len(card)-1] = base
	n, ok := Cardinal(card)
	if !ok || n < 0 {
		return 0, false
	}
	return n, true
}

// IsOrdinalWord reports whether w is a single ordinal word ("fifth").
func IsOrdinalWord(w string) bool {
	if w == "zeroth" {
		return true
	}
	_, ok := ordinalBase(w)
	return ok
}

// ordinalBase maps an ordinal word to the cardinal word it is built on.
func ordinalBase(w string) (string, bool) {
	if c, ok := ordinalWords[w]; ok {
		return c, true
	}
	if stem, ok := strings.CutSuffix(w, "ieth"); ok {
		c := stem + "y"
		if v, ok := smallValues[c]; ok && v >= 20 {
			return c, true
		}
		return "", false
	}
	stem, ok := strings.CutSuffix(w, "th")
	if !ok {
		return "", false
	}
	if stem == wordHundred {
		return stem, true
	}
	if _, ok := scaleValues[stem]; ok {
		return stem, true
	}
	if v, ok := smallValues[stem]; ok && v < 20 {
		return stem, true
	}
	return "", false
}

// Year reads a spoken calendar year:
//
//   - century pairs: "nineteen ninety four" (1994), "twenty twelve" (2012),
//     "twenty twenty five" (2025)
//   - "oh" years: "nineteen oh five" (1905)
//   - thousand and hundred forms: "two thousand and twenty" (2020),
//     "nineteen hundred" (1900)
//
// Single words never read as years.
func Year(words []string) (int, bool) {
	words = SplitHyphens(words)
	if len(words) < 2 {
		return 0, false
	}
	if y, ok := centuryPair(words); ok {
		return y, true
	}
	if !slices.Contains(words, "thousand") && !slices.Contains(words, wordHundred) {
		return 0, false
	}
	n, ok := Cardinal(words)
	if !ok || n < 1000 || n > 2999 {
		return 0, false
	}
	return int(n), true
}

// centuryPair reads "<century> <two digits>" years where the century is
// ten..nineteen or twenty.
func centuryPair(words []string) (int, bool) {
	c, ok := smallValues[words[0]]
	if !ok || c < 10 || c > 20 {
		return 0, false
	}
	rest, ok := twoDigits(words[1:])
	if !ok {
		return 0, false
	}
	return int(c*100 + rest), true
}

// twoDigits reads the spoken second half of a paired number: a teen, a
// tens word with an optional unit, or "oh" plus a unit (05).
func twoDigits(words []string) (int64, bool) {
	switch len(words) {
	case 1:
		v, ok := smallValues[words[0]]
		if !ok || v < 10 {
			return 0, false
		}
		return v, true
	case 2:
		if words[0] == "oh" || words[0] == "o" {
			u, ok := smallValues[words[1]]
			if !ok || u >= 10 {
				return 0, false
			}
			return u, true
		}
		t, ok := smallValues[words[0]]
		if !ok || t < 20 || t%10 != 0 {
			return 0, false
		}
		u, ok := smallValues[words[1]]
		if !ok || u >= 10 {
			return 0, false
		}
		return t + u, true
	default:
		return 0, false
	}
}

// Decade reads a spoken decade: "eighties" (80), "nineteen eighties" (1980),
// "twenty tens" (2010), "two thousands" (2000).
func Decade(words []string) (int, bool) {
	switch len(words) {
	case 1:
		d, ok := decadeWords[words[0]]
		return d, ok
	case 2:
		if words[0] == "two" && words[1] == "thousands" {
			return 2000, true
		}
		c, ok := smallValues[words[0]]
		if !ok || c < 10 || c > 20 {
			return 0, false
		}
		d, ok := decadeWords[words[1]]
		if !ok {
			return 0, false
		}
		return int(c)*100 + d, true
	default:
		return 0, false
	}
}

// Shorthand reads the hundreds shorthand used for prices: "one fifty five"
// (155), "nine ninety nine" (999), "two oh five" (205).
func Shorthand(words []string) (int64, bool) {
	if len(words) < 2 {
		return 0, false
	}
	h, ok := smallValues[words[0]]
	if !ok || h >= 10 {
		return 0, false
	}
	rest, ok := twoDigits(words[1:])
	if !ok {
		return 0, false
	}
	return h*100 + rest, true
}
