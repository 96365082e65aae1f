// Package tokenizer splits English text into typed tokens with byte offsets.
//
// The package provides two API layers:
//
//   - Structured: Tokenize and WordTokens return []Token with byte offsets
//     and type metadata. The invariant s[t.Start:t.End] == t.Text holds for
//     every token, and concatenating all token texts reconstructs the
//     original string. Whitespace is kept as Space tokens so that callers
//     can reproduce untouched text verbatim.
//
//   - Convenience: Words returns the non-space token texts for callers that
//     only need the lexical units (rule keys, tests).
//
// Spoken numerals are never merged: "twenty one" is two Word tokens. Digit
// strings are kept whole, with comma thousands groups and a decimal point
// ("1,250.75").
//
// All functions are safe for concurrent use by multiple goroutines.
//
// Known limitations:
//
//   - Bare domains without a protocol prefix (www.example.com) are split into
//     words and punctuation. Only http:// and https:// URLs are recognized.
//   - Abbreviations with internal periods ("a.m.", "e.g.") are split into
//     single letters and punctuation.
package tokenizer

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// ErrInvalidEncoding is returned by Tokenize when the input is not valid UTF-8.
var ErrInvalidEncoding = errors.New("tokenizer: invalid UTF-8 input")

// TokenType classifies a token.
type TokenType int

const (
	Word        TokenType = iota // Letter-initial run, including joined hyphens and apostrophes
	Number                       // Digits, with comma thousands groups and a decimal point
	Punctuation                  // Punctuation marks: . , ! ? : ; ( ) etc.
	Space                        // Contiguous whitespace (spaces, tabs, newlines)
	Symbol                       // Everything else: currency signs, emoji, math symbols
	URL                          // http:// or https:// prefixed sequences
	Email                        // user@domain.tld sequences
)

// String returns the name of the token type.
func (t TokenType) String() string {
	switch t {
	case Word:
		return "Word"
	case Number:
		return "Number"
	case Punctuation:
		return "Punctuation"
	case Space:
		return "Space"
	case Symbol:
		return "Symbol"
	case URL:
		return "URL"
	case Email:
		return "Email"
	default:
		return fmt.Sprintf("TokenType(%d)", int(t))
	}
}

// Token represents a unit of text with its position and classification.
type Token struct {
	Text  string    // The token text
	Start int       // Byte offset in the original string (inclusive)
	End   int       // Byte offset in the original string (exclusive)
	Type  TokenType // Classification of the token
}

// String returns a debug representation, e.g. Word("twenty")[0:6].
func (t Token) String() string {
	return fmt.Sprintf("%s(%q)[%d:%d]", t.Type, t.Text, t.Start, t.End)
}

// Tokenize splits s into tokens. It returns ErrInvalidEncoding when s is not
// valid UTF-8 and nil, nil for empty input.
func Tokenize(s string) ([]Token, error) {
	if s == "" {
		return nil, nil
	}
	if !utf8.ValidString(s) {
		return nil, ErrInvalidEncoding
	}
	return scan(s), nil
}

// WordTokens splits text into all tokens with metadata without validating the
// encoding. Invalid bytes become single-byte Symbol tokens, so the offset and
// reconstruction invariants still hold.
func WordTokens(s string) []Token {
	if s == "" {
		return nil
	}
	return scan(s)
}

// Words returns the texts of all non-space tokens in s.
func Words(s string) []string {
	if s == "" {
		return nil
	}
	tokens := scan(s)
	words := make([]string, 0, len(tokens)/2+1)
	for _, t := range tokens {
		if t.Type != Space {
			words = append(words, t.Text)
		}
	}
	return words
}
