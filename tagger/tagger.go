// Package tagger classifies runs of spoken words into written-form categories.
//
// Each category (cardinal, money, date, ...) has its own Tagger that decides
// whether an exact run of words belongs to it and, if so, returns a typed
// Value. A Chain runs every tagger over a window of words and picks one span
// by an explicit ranking:
//
//  1. A caller-defined rule match outranks everything, whatever its length.
//  2. Otherwise the longest span wins.
//  3. Ties are broken by fixed category priority: Whitelist, Punctuation,
//     Electronic, Telephone, Date, Time, Money, Measurement, Decimal,
//     Ordinal, Cardinal.
//
// Taggers are stateless and never see whitespace: span indices count the
// non-space tokens of the input. Only Word tokens are claimed by built-in
// taggers; digits, symbols and punctuation already in written form are left
// alone.
//
// All functions are safe for concurrent use by multiple goroutines.
package tagger

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/az-ai-labs/en-itn/internal/textcase"
	"github.com/az-ai-labs/en-itn/tokenizer"
)

// Category names the kind of written form a span is rendered as.
type Category int

const (
	CategoryCardinal    Category = iota // Plain integers: "twenty one" → 21
	CategoryOrdinal                     // "twenty first" → 21st
	CategoryDecimal                     // "three point one four" → 3.14
	CategoryMeasurement                 // "five kilometers" → 5 km
	CategoryMoney                       // "five dollars" → $5
	CategoryTime                        // "quarter past two" → 02:15
	CategoryDate                        // "january fifth" → January 5
	CategoryTelephone                   // Phone numbers, IPv4 addresses, SSNs
	CategoryElectronic                  // Email addresses, URLs, domains
	CategoryPunctuation                 // Spoken punctuation, opt-in
	CategoryWhitelist                   // Fixed phrases, replaced or protected
	CategoryCustom                      // Caller-defined rules
)

// categoryNames maps Category values to their string names.
var categoryNames = [...]string{
	CategoryCardinal:    "Cardinal",
	CategoryOrdinal:     "Ordinal",
	CategoryDecimal:     "Decimal",
	CategoryMeasurement: "Measurement",
	CategoryMoney:       "Money",
	CategoryTime:        "Time",
	CategoryDate:        "Date",
	CategoryTelephone:   "Telephone",
	CategoryElectronic:  "Electronic",
	CategoryPunctuation: "Punctuation",
	CategoryWhitelist:   "Whitelist",
	CategoryCustom:      "Custom",
}

// categoryFromName maps string names back to Category values.
var categoryFromName = func() map[string]Category {
	m := make(map[string]Category, len(categoryNames))
	for c, name := range categoryNames {
		m[name] = Category(c)
	}
	return m
}()

// String returns the name of the category.
func (c Category) String() string {
	if int(c) >= 0 && int(c) < len(categoryNames) {
		return categoryNames[c]
	}
	return fmt.Sprintf("Category(%d)", int(c))
}

// MarshalJSON encodes the category as a JSON string (e.g. "Money").
func (c Category) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

// UnmarshalJSON decodes a JSON string (e.g. "Money") into a Category.
func (c *Category) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	cc, ok := categoryFromName[s]
	if !ok {
		const maxErrLen = 50
		if len(s) > maxErrLen {
			s = s[:maxErrLen] + "..."
		}
		return fmt.Errorf("tagger: unknown category: %q", s)
	}
	*c = cc
	return nil
}

// Priority returns the tie-break rank of c; higher wins. The constant order
// above is chosen so that the rank is the constant's value.
func (c Category) Priority() int {
	return int(c)
}

// Word is a non-space token as seen by taggers.
type Word struct {
	Text  string              // Original text
	Lower string              // Case-folded text used for matching
	Type  tokenizer.TokenType // Token classification
	Start int                 // Byte offset in the input (inclusive)
	End   int                 // Byte offset in the input (exclusive)
}

// Words converts tokens to words, dropping whitespace.
func Words(tokens []tokenizer.Token) []Word {
	words := make([]Word, 0, len(tokens)/2+1)
	for _, t := range tokens {
		if t.Type == tokenizer.Space {
			continue
		}
		words = append(words, Word{
			Text:  t.Text,
			Lower: textcase.Fold(t.Text),
			Type:  t.Type,
			Start: t.Start,
			End:   t.End,
		})
	}
	return words
}

// Value is the typed content of a classified span. Each category has its
// own Value type; the verbalize package renders them.
type Value interface {
	Category() Category
}

// Span is a classified run of words. Start and End index the word slice the
// span was found in; End is exclusive and always greater than Start.
type Span struct {
	Start    int
	End      int
	Category Category
	Value    Value
}

// Len returns the number of words covered by the span.
func (s Span) Len() int { return s.End - s.Start }

// String returns a debug representation, e.g. Money[2:6].
func (s Span) String() string {
	return fmt.Sprintf("%s[%d:%d]", s.Category, s.Start, s.End)
}

// Outranks reports whether a should be chosen over b when both start at the
// same word: a custom rule beats any built-in span, then the longer span
// wins, then the higher category priority.
func Outranks(a, b Span) bool {
	aCustom, bCustom := a.Category == CategoryCustom, b.Category == CategoryCustom
	if aCustom != bCustom {
		return aCustom
	}
	if a.Len() != b.Len() {
		return a.Len() > b.Len()
	}
	return a.Category.Priority() > b.Category.Priority()
}

// Tagger classifies exact runs of words.
type Tagger interface {
	// Category returns the category of the values the tagger produces.
	Category() Category
	// Parse reports whether the whole of words belongs to the category.
	// words is never empty and holds only Word tokens.
	Parse(words []Word) (Value, bool)
}

// Longest returns the longest span starting at words[start] that t can
// classify, trying at most limit words.
func Longest(t Tagger, words []Word, start, limit int) (Span, bool) {
	end := min(start+limit, len(words))
	for ; end > start; end-- {
		if v, ok := t.Parse(words[start:end]); ok {
			return Span{Start: start, End: end, Category: t.Category(), Value: v}, true
		}
	}
	return Span{}, false
}

// lowers returns the case-folded texts of words.
func lowers(words []Word) []string {
	out := make([]string, len(words))
	for i, w := range words {
		out[i] = w.Lower
	}
	return out
}

// joinLower returns the case-folded texts of words joined by single spaces.
func joinLower(words []Word) string {
	switch len(words) {
	case 0:
		return ""
	case 1:
		return words[0].Lower
	}
	var b strings.Builder
	for i, w := range words {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(w.Lower)
	}
	return b.String()
}

// joinText returns the original texts of words joined by single spaces.
func joinText(words []Word) string {
	var b strings.Builder
	for i, w := range words {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(w.Text)
	}
	return b.String()
}

// hasPrefix reports whether words starts with the given lowercase phrase.
func hasPrefix(words []string, phrase ...string) bool {
	if len(words) < len(phrase) {
		return false
	}
	for i, p := range phrase {
		if words[i] != p {
			return false
		}
	}
	return true
}

// hasSuffix reports whether words ends with the given lowercase phrase.
func hasSuffix(words []string, phrase ...string) bool {
	if len(words) < len(phrase) {
		return false
	}
	off := len(words) - len(phrase)
	for i, p := range phrase {
		if words[off+i] != p {
			return false
		}
	}
	return true
}
