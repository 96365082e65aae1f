// Package rules holds caller-defined spoken-to-written replacements.
//
// A rule maps a spoken phrase ("gee pee tee") to an arbitrary written form
// ("GPT"). Rules are matched case-insensitively against whole token runs and
// outrank every built-in category. Keys are built by tokenizing the spoken
// form and case-folding each token, so "Gee  PEE tee" and "gee pee tee" name
// the same rule.
//
// A Registry is safe for concurrent use: lookups take a read lock, mutations
// a write lock. Adding a rule whose key already exists replaces it.
package rules

import (
	"errors"
	"slices"
	"strings"
	"sync"

	"github.com/az-ai-labs/en-itn/internal/textcase"
	"github.com/az-ai-labs/en-itn/tokenizer"
)

// ErrEmptySpoken is returned when a rule file holds a rule whose spoken form
// has no tokens.
var ErrEmptySpoken = errors.New("rules: empty spoken form")

// Rule is a single spoken-to-written replacement.
type Rule struct {
	Spoken  string `toml:"spoken" json:"spoken"`
	Written string `toml:"written" json:"written"`
}

// Registry is a concurrency-safe set of rules keyed by normalized spoken form.
type Registry struct {
	mu    sync.RWMutex
	rules map[string]Rule
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{rules: make(map[string]Rule)}
}

// Key returns the lookup key for a spoken phrase: its non-space tokens,
// NFC-composed, case-folded and joined by single spaces.
func Key(spoken string) string {
	words := tokenizer.Words(textcase.NFC(spoken))
	for i, w := range words {
		words[i] = textcase.Fold(w)
	}
	return strings.Join(words, " ")
}

// Add registers or replaces the rule for spoken. A spoken form without tokens
// is ignored and Add reports false.
func (r *Registry) Add(spoken, written string) bool {
	key := Key(spoken)
	if key == "" {
		return false
	}
	r.mu.Lock()
	r.rules[key] = Rule{Spoken: spoken, Written: written}
	r.mu.Unlock()
	return true
}

// Remove deletes the rule for spoken and reports whether one existed.
func (r *Registry) Remove(spoken string) bool {
	key := Key(spoken)
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rules[key]; !ok {
		return false
	}
	delete(r.rules, key)
	return true
}

// Clear removes every rule.
func (r *Registry) Clear() {
	r.mu.Lock()
	clear(r.rules)
	r.mu.Unlock()
}

// Len returns the number of rules.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.rules)
}

// Lookup returns the written form for an already normalized key.
func (r *Registry) Lookup(key string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rule, ok := r.rules[key]
	return rule.Written, ok
}

// All returns a snapshot of the rules sorted by key.
func (r *Registry) All() []Rule {
	r.mu.RLock()
	keys := make([]string, 0, len(r.rules))
	for k := range r.rules {
		keys = append(keys, k)
	}
	out := make([]Rule, len(keys))
	slices.Sort(keys)
	for i, k := range keys {
		out[i] = r.rules[k]
	}
	r.mu.RUnlock()
	return out
}
