package tagger

// Punctuation is a spoken punctuation mark.
type Punctuation struct {
	Symbol string
}

// Category implements Value.
func (Punctuation) Category() Category { return CategoryPunctuation }

// punctuationWords maps spoken punctuation to its written symbol.
var punctuationWords = map[string]string{
	"exclamation point": "!",
	"exclamation mark":  "!",
	"question mark":     "?",
	"open parenthesis":  "(",
	"close parenthesis": ")",
	"left parenthesis":  "(",
	"right parenthesis": ")",
	"open bracket":      "[",
	"close bracket":     "]",
	"left bracket":      "[",
	"right bracket":     "]",
	"open brace":        "{",
	"close brace":       "}",
	"left brace":        "{",
	"right brace":       "}",
	"double quote":      `"`,
	"single quote":      "'",
	"forward slash":     "/",
	"back slash":        `\`,
	"at sign":           "@",
	"period":            ".",
	"dot":               ".",
	"comma":             ",",
	"colon":             ":",
	"semicolon":         ";",
	"hyphen":            "-",
	"dash":              "-",
	"ellipsis":          "...",
	"ampersand":         "&",
	"asterisk":          "*",
	"hash":              "#",
	"percent":           "%",
	"plus":              "+",
	"equals":            "=",
	"tilde":             "~",
	"underscore":        "_",
	"pipe":              "|",
	"slash":             "/",
}

// maxPunctuationWords is the longest spoken punctuation phrase.
const maxPunctuationWords = 2

// punctuationTagger reads spoken punctuation. It is off by default: words
// such as "period" and "dash" are far more often meant literally.
type punctuationTagger struct{}

func (punctuationTagger) Category() Category { return CategoryPunctuation }

func (punctuationTagger) Parse(words []Word) (Value, bool) {
	if len(words) > maxPunctuationWords {
		return nil, false
	}
	sym, ok := punctuationWords[joinLower(words)]
	if !ok {
		return nil, false
	}
	return Punctuation{Symbol: sym}, true
}
