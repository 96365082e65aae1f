// Package verbalize renders tagged spans in written form.
//
// Rendering is a pure function of the tagged value and, for the few
// categories that carry the caller's casing over (whitelist phrases), the
// original text of the span. Output follows US conventions: "$5.50",
// "January 5, 2025", "02:30 p.m.", "123-456-7890".
//
// All functions are safe for concurrent use by multiple goroutines.
package verbalize

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/az-ai-labs/en-itn/internal/textcase"
	"github.com/az-ai-labs/en-itn/numtext"
	"github.com/az-ai-labs/en-itn/tagger"
)

// Span renders sp, whose indices refer to words.
func Span(sp tagger.Span, words []tagger.Word) string {
	return Value(sp.Value, original(words[sp.Start:sp.End]))
}

// Value renders v. original is the spoken text of the span, words joined by
// single spaces; it is returned unchanged for verbatim whitelist phrases.
func Value(v tagger.Value, original string) string {
	switch v := v.(type) {
	case tagger.Cardinal:
		return strconv.FormatInt(v.N, 10)
	case tagger.Ordinal:
		return strconv.FormatInt(v.N, 10) + numtext.OrdinalSuffix(v.N)
	case tagger.Decimal:
		return decimal(v)
	case tagger.Money:
		return money(v)
	case tagger.Measure:
		return decimal(v.Number) + " " + v.Unit
	case tagger.Date:
		return date(v)
	case tagger.Time:
		return clock(v)
	case tagger.Electronic:
		return electronic(v)
	case tagger.Telephone:
		return telephone(v)
	case tagger.Whitelist:
		if v.Verbatim {
			return original
		}
		return textcase.MatchCase(original, v.Written)
	case tagger.Punctuation:
		return v.Symbol
	case tagger.Custom:
		return v.Written
	default:
		panic(fmt.Sprintf("verbalize: unknown value type %T", v))
	}
}

func original(words []tagger.Word) string {
	var b strings.Builder
	for i, w := range words {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(w.Text)
	}
	return b.String()
}
