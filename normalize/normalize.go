// Package normalize converts spoken-form English to written form.
//
// An Engine combines the tagger chain, the verbalizer and a registry of
// caller-defined rules. Two modes are provided:
//
//   - Normalize treats the whole input as one expression: "twenty one" → "21".
//     Input that is not entirely one recognizable expression is returned
//     unchanged, byte for byte.
//   - Sentence scans running text left to right and replaces the longest
//     recognizable span at each position: "I have twenty one apples" →
//     "I have 21 apples". Extract reports the same replacements with their
//     byte offsets.
//
// Matching is case-insensitive and NFC-composed per word, so decomposed
// input matches like its composed form. Text outside replaced spans is copied
// from the input byte for byte. Invalid UTF-8 and inputs over 1 MiB are
// returned unchanged.
//
// An Engine is safe for concurrent use by multiple goroutines, including
// rule mutations concurrent with normalization.
//
// Known limitations:
//
//   - There is no part-of-speech awareness: "may" and "march" are months
//     only before an ordinal day, and spoken punctuation is off by default.
//   - Words already in written form (digits, symbols) are never claimed.
package normalize

import (
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/az-ai-labs/en-itn/rules"
	"github.com/az-ai-labs/en-itn/tagger"
	"github.com/az-ai-labs/en-itn/tokenizer"
	"github.com/az-ai-labs/en-itn/verbalize"
)

// version is the engine version reported by Version.
const version = "0.1.0"

// DefaultMaxSpan is the number of words a sentence-mode span may cover.
const DefaultMaxSpan = 16

// maxInputBytes is the maximum input size. Inputs exceeding this are
// returned unchanged.
const maxInputBytes = 1 << 20 // 1 MiB

// Match is one replaced region of a sentence. Start and End are byte offsets
// into the input, and Text is the input between them.
type Match struct {
	Text     string          `json:"text"`
	Start    int             `json:"start"`
	End      int             `json:"end"`
	Category tagger.Category `json:"category"`
	Written  string          `json:"written"`
}

// Disambiguator decides whether spoken punctuation in running text was meant
// as a symbol. words are the non-space tokens of the sentence and
// words[start:end] is the candidate span. It is consulted only in sentence
// mode and only when the punctuation tagger is enabled.
type Disambiguator interface {
	Punctuation(words []string, start, end int) bool
}

// DisambiguatorFunc adapts an ordinary function to the Disambiguator interface.
type DisambiguatorFunc func(words []string, start, end int) bool

// Punctuation calls f.
func (f DisambiguatorFunc) Punctuation(words []string, start, end int) bool {
	return f(words, start, end)
}

// Engine normalizes spoken-form text. Create one with New.
type Engine struct {
	rules         *rules.Registry
	chain         *tagger.Chain
	plain         *tagger.Chain // chain without punctuation, used after a veto
	maxSpan       int
	punctuation   bool
	disambiguator Disambiguator
	logger        *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithMaxSpan sets the default sentence-mode span limit. Values below one
// are treated as one.
func WithMaxSpan(n int) Option {
	return func(e *Engine) { e.maxSpan = max(n, 1) }
}

// WithPunctuation enables the spoken punctuation tagger ("question mark" → "?").
func WithPunctuation(on bool) Option {
	return func(e *Engine) { e.punctuation = on }
}

// WithDisambiguator installs a hook that may veto spoken punctuation in
// sentence mode.
func WithDisambiguator(d Disambiguator) Option {
	return func(e *Engine) { e.disambiguator = d }
}

// WithRules makes the engine use r for custom rules instead of a fresh
// registry. The registry may be shared between engines.
func WithRules(r *rules.Registry) Option {
	return func(e *Engine) {
		if r != nil {
			e.rules = r
		}
	}
}

// WithLogger sets the logger for debug diagnostics. Engines log nothing by
// default.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// New returns an engine configured by opts.
func New(opts ...Option) *Engine {
	e := &Engine{
		maxSpan: DefaultMaxSpan,
		logger:  slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rules == nil {
		e.rules = rules.NewRegistry()
	}
	e.chain = tagger.NewChain(e.rules, tagger.Options{Punctuation: e.punctuation})
	e.plain = e.chain
	if e.punctuation && e.disambiguator != nil {
		e.plain = tagger.NewChain(e.rules, tagger.Options{})
	}
	return e
}

var defaultEngine = New()

// Normalize converts s as a single expression with a default engine, which
// has no custom rules and no punctuation tagger.
func Normalize(s string) string {
	return defaultEngine.Normalize(s)
}

// Sentence converts every recognizable span in s with a default engine.
func Sentence(s string) string {
	return defaultEngine.Sentence(s)
}

// Version returns the engine version.
func Version() string {
	return version
}

// MaxSpan returns the default sentence-mode span limit.
func (e *Engine) MaxSpan() int {
	return e.maxSpan
}

// Rules returns the engine's rule registry.
func (e *Engine) Rules() *rules.Registry {
	return e.rules
}

// AddRule registers a custom rule, replacing any rule with the same spoken
// form. It reports false when spoken has no tokens.
func (e *Engine) AddRule(spoken, written string) bool {
	return e.rules.Add(spoken, written)
}

// RemoveRule deletes the rule for spoken and reports whether one existed.
func (e *Engine) RemoveRule(spoken string) bool {
	return e.rules.Remove(spoken)
}

// ClearRules removes every custom rule.
func (e *Engine) ClearRules() {
	e.rules.Clear()
}

// RuleCount returns the number of custom rules.
func (e *Engine) RuleCount() uint32 {
	return uint32(e.rules.Len())
}

// Normalize converts s as a single expression. It returns s unchanged when s
// is not entirely one recognizable expression. Surrounding whitespace is
// ignored for matching and dropped from a converted result.
func (e *Engine) Normalize(s string) string {
	text, ok := e.prepare(s)
	if !ok {
		return s
	}
	words := tagger.Words(tokenizer.WordTokens(text))
	sp, ok := e.chain.Exact(words)
	if !ok {
		return s
	}
	return verbalize.Span(sp, words)
}

// Sentence converts every recognizable span in s using the default span
// limit.
func (e *Engine) Sentence(s string) string {
	out, _ := e.scan(s, e.maxSpan)
	return out
}

// SentenceMaxSpan is Sentence with a span limit of n words. Zero is treated
// as one.
func (e *Engine) SentenceMaxSpan(s string, n uint32) string {
	out, _ := e.scan(s, spanLimit(n))
	return out
}

// Extract returns the spans Sentence would replace, in input order, with a
// span limit of n words. Zero selects the engine default.
func (e *Engine) Extract(s string, n uint32) []Match {
	limit := e.maxSpan
	if n > 0 {
		limit = spanLimit(n)
	}
	_, matches := e.scan(s, limit)
	return matches
}

// prepare reports whether s can be scanned and returns the text to scan.
func (e *Engine) prepare(s string) (string, bool) {
	if s == "" || len(s) > maxInputBytes {
		return "", false
	}
	if !utf8.ValidString(s) {
		e.logger.Debug("normalize: passing through input", "error", tokenizer.ErrInvalidEncoding, "bytes", len(s))
		return "", false
	}
	return s, true
}

// scan is the sentence scanner. Unmatched words and the whitespace between
// them are copied verbatim. A replacement is separated from its neighbours by
// one space where the input had any whitespace and by nothing where it had
// none, so "twenty one." becomes "21.". Leading and trailing whitespace is
// kept. A replacement with an empty written form removes the span.
func (e *Engine) scan(s string, limit int) (string, []Match) {
	text, ok := e.prepare(s)
	if !ok {
		return s, nil
	}
	words := tagger.Words(tokenizer.WordTokens(text))
	if len(words) == 0 {
		return s, nil
	}

	var (
		b        strings.Builder
		matches  []Match
		texts    []string // word texts for the disambiguator, built on demand
		pos      = words[0].Start
		emitted  bool // a piece was written after the leading whitespace
		collapse bool // the previous piece was a replacement
		owe      bool // a removed span had whitespace before it
	)
	b.Grow(len(text))
	b.WriteString(text[:pos])

	for i := 0; i < len(words); {
		sp, found := e.chain.Best(words, i, limit)
		if found && sp.Category == tagger.CategoryPunctuation && e.disambiguator != nil {
			if texts == nil {
				texts = wordTexts(words)
			}
			if !e.disambiguator.Punctuation(texts, sp.Start, sp.End) {
				sp, found = e.plain.Best(words, i, limit)
			}
		}

		var (
			start, end int
			piece      string
		)
		if found {
			start, end = words[sp.Start].Start, words[sp.End-1].End
			piece = verbalize.Span(sp, words)
			if piece != text[start:end] {
				matches = append(matches, Match{
					Text:     text[start:end],
					Start:    start,
					End:      end,
					Category: sp.Category,
					Written:  piece,
				})
			}
			i = sp.End
		} else {
			start, end, piece = words[i].Start, words[i].End, words[i].Text
			i++
		}

		gap := text[pos:start]
		if found || collapse || owe {
			if gap != "" || owe {
				gap = " "
			}
		}
		pos = end

		if piece == "" {
			owe = emitted && gap != ""
			collapse = true
			continue
		}
		if emitted {
			b.WriteString(gap)
		}
		b.WriteString(piece)
		emitted, collapse, owe = true, found, false
	}
	b.WriteString(text[pos:])

	if len(matches) == 0 {
		return s, nil
	}
	return b.String(), matches
}

func spanLimit(n uint32) int {
	if n == 0 {
		return 1
	}
	if n > maxInputBytes {
		return maxInputBytes
	}
	return int(n)
}

func wordTexts(words []tagger.Word) []string {
	out := make([]string, len(words))
	for i, w := range words {
		out[i] = w.Text
	}
	return out
}
