package tagger

import "github.com/az-ai-labs/en-itn/tokenizer"

// RuleLookup resolves a normalized key (case-folded words joined by single
// spaces) to a caller-defined written form. *rules.Registry implements it.
type RuleLookup interface {
	Lookup(key string) (string, bool)
}

// Options selects the optional taggers of a Chain.
type Options struct {
	// Punctuation enables the spoken punctuation tagger ("question mark" → "?").
	Punctuation bool
}

// Chain runs the taggers over word windows and ranks their spans.
// A Chain is immutable after construction.
type Chain struct {
	rules   RuleLookup
	taggers []Tagger
}

// NewChain returns a chain with every built-in tagger, consulting rules (which
// may be nil) before them.
func NewChain(rules RuleLookup, opts Options) *Chain {
	taggers := []Tagger{
		whitelistTagger{},
		electronicTagger{},
		telephoneTagger{},
		dateTagger{},
		timeTagger{},
		moneyTagger{},
		measureTagger{},
		decimalTagger{},
		ordinalTagger{},
		cardinalTagger{},
	}
	if opts.Punctuation {
		taggers = append(taggers, punctuationTagger{})
	}
	return &Chain{rules: rules, taggers: taggers}
}

// Best returns the highest-ranked span starting at words[start] and covering
// at most limit words. A limit below one is treated as one.
func (c *Chain) Best(words []Word, start, limit int) (Span, bool) {
	if start < 0 || start >= len(words) {
		return Span{}, false
	}
	limit = max(limit, 1)

	if sp, ok := c.custom(words, start, limit); ok {
		return sp, true
	}

	run := wordRun(words, start, limit)
	if run == 0 {
		return Span{}, false
	}

	var (
		best  Span
		found bool
	)
	for _, t := range c.taggers {
		sp, ok := Longest(t, words, start, run)
		if ok && (!found || Outranks(sp, best)) {
			best, found = sp, true
		}
	}
	return best, found
}

// Exact classifies all of words as one span. Custom rules are tried first,
// then every tagger; among taggers that accept, the highest priority wins.
func (c *Chain) Exact(words []Word) (Span, bool) {
	if len(words) == 0 {
		return Span{}, false
	}
	if c.rules != nil {
		if written, ok := c.rules.Lookup(joinLower(words)); ok {
			return Span{End: len(words), Category: CategoryCustom, Value: Custom{Written: written}}, true
		}
	}
	if wordRun(words, 0, len(words)) != len(words) {
		return Span{}, false
	}

	var (
		best  Span
		found bool
	)
	for _, t := range c.taggers {
		v, ok := t.Parse(words)
		if !ok {
			continue
		}
		sp := Span{End: len(words), Category: t.Category(), Value: v}
		if !found || Outranks(sp, best) {
			best, found = sp, true
		}
	}
	return best, found
}

// custom returns the longest rule match starting at words[start].
func (c *Chain) custom(words []Word, start, limit int) (Span, bool) {
	if c.rules == nil {
		return Span{}, false
	}
	for end := min(start+limit, len(words)); end > start; end-- {
		if written, ok := c.rules.Lookup(joinLower(words[start:end])); ok {
			return Span{Start: start, End: end, Category: CategoryCustom, Value: Custom{Written: written}}, true
		}
	}
	return Span{}, false
}

// wordRun returns how many consecutive Word tokens start at words[start],
// capped at limit.
func wordRun(words []Word, start, limit int) int {
	n := 0
	for i := start; i < len(words) && n < limit; i++ {
		if words[i].Type != tokenizer.Word {
			break
		}
		n++
	}
	return n
}

// Custom is the value of a caller-defined rule match.
type Custom struct {
	Written string
}

// Category implements Value.
func (Custom) Category() Category { return CategoryCustom }
