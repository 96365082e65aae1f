package tokenizer

import (
	"slices"
	"testing"

	"github.com/az-ai-labs/en-itn/internal/golden"
)

// tokenCase pins the non-space tokens of one input. Tokens is only checked
// when present, for cases where offsets and types matter.
type tokenCase struct {
	Name   string   `json:"name"`
	Input  string   `json:"input"`
	Words  []string `json:"words"`
	Tokens []Token  `json:"word_tokens,omitempty"`
}

const tokenGolden = "../data/golden/tokenizer.json"

func TestGolden(t *testing.T) {
	cases := golden.Load[tokenCase](t, tokenGolden)

	if golden.Updating() {
		for i, c := range cases {
			cases[i].Words = Words(c.Input)
			if c.Tokens != nil {
				cases[i].Tokens = WordTokens(c.Input)
			}
		}
		golden.Save(t, tokenGolden, cases)
		return
	}

	for _, c := range cases {
		t.Run(c.Name, func(t *testing.T) {
			t.Parallel()

			tokens := WordTokens(c.Input)
			verifyInvariants(t, c.Input, tokens)

			if got := Words(c.Input); !slices.Equal(got, c.Words) && len(got)+len(c.Words) > 0 {
				t.Errorf("Words(%q)\n  got:  %q\n  want: %q", c.Input, got, c.Words)
			}
			if c.Tokens == nil {
				return
			}
			if !slices.Equal(tokens, c.Tokens) {
				t.Errorf("WordTokens(%q) mismatch", c.Input)
				for _, tok := range c.Tokens {
					t.Logf("  want %s", tok)
				}
				for _, tok := range tokens {
					t.Logf("  got  %s", tok)
				}
			}
		})
	}
}
