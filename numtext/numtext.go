// Package numtext converts between integers and English number words.
//
// The package works in both directions:
//
//   - Cardinal and Ordinal read spoken English numerals ("two hundred and
//     five", "twenty first") from pre-split, lowercased words.
//   - Year and Decade read the paired forms used for calendar years
//     ("nineteen ninety four", "twenty twelve", "nineteen eighties").
//   - Parse is the string front end to Cardinal.
//   - Convert and ConvertOrdinal produce the spoken form of an integer.
//
// The readers validate numeral grammar instead of summing word values, so
// runs such as "one two" or "twenty eleven" are rejected as cardinals. Word
// slices are expected to be lowercase; hyphenated compounds ("twenty-one")
// are split before reading.
//
// All functions are safe for concurrent use by multiple goroutines.
//
// Known limitations:
//
//   - Integer range is limited to ±10^18 (quintillion). Sextillion and above
//     are rejected.
//   - The Indian scales lakh and crore are read but never produced by Convert.
//   - Fractions ("three quarters") are not read.
package numtext

import (
	"fmt"
	"strings"
)

// Convert returns the English cardinal text for n, e.g. "one hundred twenty
// three". Zero returns "zero"; negative numbers are prefixed with "minus".
// Numbers with absolute value exceeding 10^18 return an empty string.
func Convert(n int64) string {
	return convert(n)
}

// ConvertOrdinal returns the English ordinal text for n, e.g. "twenty first".
// Returns an empty string when Convert would.
func ConvertOrdinal(n int64) string {
	return convertOrdinal(n)
}

// Parse converts English cardinal number text to an integer.
// Input is whitespace-normalized and case-insensitive.
//
// Returns an error for empty, ungrammatical, or out-of-range input.
func Parse(s string) (int64, error) {
	words := strings.Fields(strings.ToLower(s))
	if len(words) == 0 {
		return 0, fmt.Errorf("numtext: empty input")
	}
	n, ok := Cardinal(words)
	if !ok {
		return 0, fmt.Errorf("numtext: not a cardinal number: %q", s)
	}
	return n, nil
}

// OrdinalSuffix returns the English ordinal suffix for n: "st", "nd", "rd"
// or "th". 11, 12 and 13 take "th".
func OrdinalSuffix(n int64) string {
	if n < 0 {
		n = -n
	}
	if r := n % 100; r >= 11 && r <= 13 {
		return "th"
	}
	switch n % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	default:
		return "th"
	}
}
