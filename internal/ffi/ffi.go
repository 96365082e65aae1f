// Package ffi implements the C ABI of libitn in plain Go.
//
// Every entry point takes and returns *string so that a nil pointer stands for
// a C NULL. cmd/libitn only converts between C strings and these calls. The
// library serves one engine per process; Default builds it on first use from
// the environment (see internal/config).
package ffi

import (
	"log/slog"
	"os"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/az-ai-labs/en-itn/internal/config"
	"github.com/az-ai-labs/en-itn/internal/logging"
	"github.com/az-ai-labs/en-itn/normalize"
	"github.com/az-ai-labs/en-itn/rules"
)

// Library wraps the engine behind the C entry points.
type Library struct {
	engine *normalize.Engine
}

// New returns a library serving e.
func New(e *normalize.Engine) *Library {
	return &Library{engine: e}
}

// Default returns the process-wide library. Configuration errors are logged
// to stderr and the library falls back to a default engine.
var Default = sync.OnceValue(func() *Library {
	return New(engineFromEnv())
})

func engineFromEnv() *normalize.Engine {
	cfg, err := config.Load()
	if err != nil {
		slog.New(slog.NewTextHandler(os.Stderr, nil)).Warn("libitn: using defaults", "err", err)
		return normalize.New()
	}

	logger := slog.New(slog.DiscardHandler)
	if level, err := logging.ParseLevel(cfg.LogLevel); err == nil {
		if format, err := logging.ParseFormat(cfg.LogFormat); err == nil {
			logger = logging.New(os.Stderr, level, format)
		}
	}

	reg := rules.NewRegistry()
	if cfg.RulesFile != "" {
		if _, err := reg.LoadFile(cfg.RulesFile); err != nil {
			logger.Warn("libitn: rules not loaded", "file", cfg.RulesFile, "err", err)
		}
	}
	return normalize.New(
		normalize.WithRules(reg),
		normalize.WithMaxSpan(cfg.MaxSpan),
		normalize.WithPunctuation(cfg.Punctuation),
		normalize.WithLogger(logger),
	)
}

// Normalize converts a single expression.
func (l *Library) Normalize(in *string) *string {
	return l.apply(in, l.engine.Normalize)
}

// Sentence converts running text with the engine's span limit.
func (l *Library) Sentence(in *string) *string {
	return l.apply(in, l.engine.Sentence)
}

// SentenceMaxSpan converts running text with a span limit of n words.
func (l *Library) SentenceMaxSpan(in *string, n uint32) *string {
	return l.apply(in, func(s string) string { return l.engine.SentenceMaxSpan(s, n) })
}

// AddRule registers a rule. NULL arguments are ignored.
func (l *Library) AddRule(spoken, written *string) {
	if spoken == nil || written == nil {
		return
	}
	l.engine.AddRule(*spoken, *written)
}

// RemoveRule deletes a rule and returns 1 if it existed, 0 otherwise.
func (l *Library) RemoveRule(spoken *string) int32 {
	if spoken == nil || !l.engine.RemoveRule(*spoken) {
		return 0
	}
	return 1
}

// ClearRules removes every rule.
func (l *Library) ClearRules() {
	l.engine.ClearRules()
}

// RuleCount returns the number of rules.
func (l *Library) RuleCount() uint32 {
	return l.engine.RuleCount()
}

// Version returns the engine version.
func Version() string {
	return normalize.Version()
}

// apply runs fn on *in. NULL and invalid UTF-8 yield NULL, as does a result
// that cannot be represented as a C string.
func (l *Library) apply(in *string, fn func(string) string) *string {
	if in == nil || !utf8.ValidString(*in) {
		return nil
	}
	out := fn(*in)
	if strings.IndexByte(out, 0) >= 0 {
		return nil
	}
	return &out
}
