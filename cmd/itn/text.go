package main

import (
	"encoding/json"
	"fmt"

	"github.com/az-ai-labs/en-itn/normalize"
	"github.com/az-ai-labs/en-itn/numtext"
)

// NormalizeCmd converts whole inputs.
type NormalizeCmd struct {
	Text []string `arg:"" optional:"" help:"Text to convert; read from stdin when omitted"`
}

func (c *NormalizeCmd) Run(a *app) error {
	e, err := a.engine()
	if err != nil {
		return err
	}
	return a.inputs(c.Text, func(s string) error {
		_, err := fmt.Fprintln(a.stdout, e.Normalize(s))
		return err
	})
}

// SentenceCmd converts running text.
type SentenceCmd struct {
	Text []string `arg:"" optional:"" help:"Text to convert; read from stdin when omitted"`
}

func (c *SentenceCmd) Run(a *app) error {
	e, err := a.engine()
	if err != nil {
		return err
	}
	return a.inputs(c.Text, func(s string) error {
		_, err := fmt.Fprintln(a.stdout, e.Sentence(s))
		return err
	})
}

// ExtractCmd prints one JSON object per input.
type ExtractCmd struct {
	Text []string `arg:"" optional:"" help:"Text to scan; read from stdin when omitted"`
}

type extractLine struct {
	Text    string            `json:"text"`
	Written string            `json:"written"`
	Matches []normalize.Match `json:"matches"`
}

func (c *ExtractCmd) Run(a *app) error {
	e, err := a.engine()
	if err != nil {
		return err
	}
	enc := json.NewEncoder(a.stdout)
	enc.SetEscapeHTML(false)
	return a.inputs(c.Text, func(s string) error {
		matches := e.Extract(s, 0)
		if matches == nil {
			matches = []normalize.Match{}
		}
		return enc.Encode(extractLine{Text: s, Written: e.Sentence(s), Matches: matches})
	})
}

// SpellCmd prints integers in spoken form, the input side of the engine.
// It is handy for producing test sentences.
type SpellCmd struct {
	Numbers []int64 `arg:"" help:"Integers to spell"`
	Ordinal bool    `help:"Spell ordinals (\"twenty first\")"`
}

func (c *SpellCmd) Run(a *app) error {
	for _, n := range c.Numbers {
		spoken := numtext.Convert(n)
		if c.Ordinal {
			spoken = numtext.ConvertOrdinal(n)
		}
		if spoken == "" {
			return fmt.Errorf("spell: %d is out of range", n)
		}
		if _, err := fmt.Fprintln(a.stdout, spoken); err != nil {
			return err
		}
	}
	return nil
}
