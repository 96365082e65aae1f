// Package textcase provides the case folding and Unicode composition helpers
// shared by the tokenizer-facing packages.
//
// Matching in the engine is case-insensitive, but written output keeps the
// caller's casing wherever a span is reproduced. Fold is therefore used only
// to build lookup keys, never to build output.
//
// All functions are safe for concurrent use. A cases.Caser carries state, so
// one is created per call instead of being shared.
package textcase

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// Fold returns the NFC-composed, Unicode case-folded form of s.
// Pure lowercase ASCII input is returned as is.
func Fold(s string) string {
	if isLowerASCII(s) {
		return s
	}
	return cases.Fold().String(NFC(s))
}

// NFC returns s in Unicode Normalization Form C.
// Input that is already NFC is returned without allocation.
func NFC(s string) string {
	if norm.NFC.IsNormalString(s) {
		return s
	}
	return norm.NFC.String(s)
}

// IsUpperInitial reports whether the first rune of s is an uppercase letter.
func IsUpperInitial(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.IsUpper(r)
}

// IsAllUpper reports whether s has at least one letter and no lowercase letters.
func IsAllUpper(s string) bool {
	seen := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsLetter(r) {
			seen = true
		}
	}
	return seen
}

// UpperFirst returns s with its first rune uppercased.
func UpperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || unicode.IsUpper(r) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 1)
	b.WriteRune(unicode.ToUpper(r))
	b.WriteString(s[size:])
	return b.String()
}

// MatchCase returns repl with its first rune uppercased when src starts with
// an uppercase letter. Otherwise repl is returned unchanged.
func MatchCase(src, repl string) string {
	if IsUpperInitial(src) {
		return UpperFirst(repl)
	}
	return repl
}

func isLowerASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= utf8.RuneSelf || (c >= 'A' && c <= 'Z') {
			return false
		}
	}
	return true
}
