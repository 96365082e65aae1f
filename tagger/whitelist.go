package tagger

import (
	"strings"

	"github.com/az-ai-labs/en-itn/data"
)

// Whitelist is a fixed phrase. A verbatim phrase is reproduced as spoken,
// which shields numerals used as ordinary words ("no one") from the
// number taggers.
type Whitelist struct {
	Written  string
	Verbatim bool
}

// Category implements Value.
func (Whitelist) Category() Category { return CategoryWhitelist }

// whitelist maps a spoken phrase (case-folded, single spaces) to its entry.
var whitelist, maxWhitelistWords = parseWhitelist(data.Whitelist)

// parseWhitelist reads the embedded table and returns it with the word count
// of its longest phrase.
func parseWhitelist(table string) (map[string]Whitelist, int) {
	m := make(map[string]Whitelist)
	longest := 0
	for line := range strings.Lines(table) {
		line = strings.TrimRight(line, "\r\n")
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		spoken, written, _ := strings.Cut(line, "\t")
		fields := strings.Fields(strings.ToLower(spoken))
		if len(fields) == 0 {
			continue
		}
		m[strings.Join(fields, " ")] = Whitelist{Written: written, Verbatim: written == ""}
		longest = max(longest, len(fields))
	}
	return m, longest
}

type whitelistTagger struct{}

func (whitelistTagger) Category() Category { return CategoryWhitelist }

func (whitelistTagger) Parse(words []Word) (Value, bool) {
	if len(words) > maxWhitelistWords {
		return nil, false
	}
	w, ok := whitelist[joinLower(words)]
	if !ok {
		return nil, false
	}
	return w, true
}
