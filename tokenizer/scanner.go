package tokenizer

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// scan splits s into tokens with a rune-by-rune state machine.
// The caller guarantees s is non-empty.
//
// Rule priority (highest first):
//   - URL (http:// or https://)
//   - Email (backtrack from @)
//   - Whitespace runs
//   - Numbers (comma thousands groups, decimal point)
//   - Words (letters, joined across single hyphens and apostrophes)
//   - Punctuation (runs of '-' merged)
//   - Symbol fallback
func scan(s string) []Token {
	tokens := make([]Token, 0, len(s)/4+1)

	i := 0
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])

		if r == 'h' || r == 'H' {
			if end, ok := scanURL(s, i); ok {
				tokens = append(tokens, Token{Text: s[i:end], Start: i, End: end, Type: URL})
				i = end
				continue
			}
		}

		if r == '@' {
			if start, end, ok := scanEmail(s, i); ok {
				tokens = dropFrom(tokens, start)
				tokens = append(tokens, Token{Text: s[start:end], Start: start, End: end, Type: Email})
				i = end
				continue
			}
		}

		switch {
		case r == utf8.RuneError && size == 1:
			tokens = append(tokens, Token{Text: s[i : i+1], Start: i, End: i + 1, Type: Symbol})
			i++
		case unicode.IsSpace(r):
			end := i + size
			for end < len(s) {
				nr, ns := utf8.DecodeRuneInString(s[end:])
				if !unicode.IsSpace(nr) {
					break
				}
				end += ns
			}
			tokens = append(tokens, Token{Text: s[i:end], Start: i, End: end, Type: Space})
			i = end
		case r < utf8.RuneSelf && isDigitByte(byte(r)):
			end := scanNumber(s, i)
			tokens = append(tokens, Token{Text: s[i:end], Start: i, End: end, Type: Number})
			i = end
		case unicode.IsLetter(r):
			end := scanWord(s, i)
			tokens = append(tokens, Token{Text: s[i:end], Start: i, End: end, Type: Word})
			i = end
		case unicode.IsPunct(r):
			end := i + size
			if r == '-' {
				for end < len(s) && s[end] == '-' {
					end++
				}
			}
			tokens = append(tokens, Token{Text: s[i:end], Start: i, End: end, Type: Punctuation})
			i = end
		default:
			tokens = append(tokens, Token{Text: s[i : i+size], Start: i, End: i + size, Type: Symbol})
			i += size
		}
	}

	return tokens
}

// scanURL reports the end of an http:// or https:// URL starting at pos.
// The URL runs to the next whitespace; one trailing . , ! ? is left out.
func scanURL(s string, pos int) (int, bool) {
	rest := s[pos:]
	var prefix int
	switch {
	case len(rest) > 8 && strings.EqualFold(rest[:8], "https://"):
		prefix = 8
	case len(rest) > 7 && strings.EqualFold(rest[:7], "http://"):
		prefix = 7
	default:
		return 0, false
	}

	end := len(s)
	for j := pos + prefix; j < len(s); {
		r, size := utf8.DecodeRuneInString(s[j:])
		if unicode.IsSpace(r) {
			end = j
			break
		}
		j += size
	}

	if end > pos+prefix {
		switch s[end-1] {
		case '.', ',', '!', '?':
			end--
		}
	}
	if end <= pos+prefix {
		return 0, false
	}
	return end, true
}

// scanEmail finds an address around the '@' at atPos. The local part is found
// by walking backwards, the domain by walking forwards. The domain must hold a
// dot and end in an alphabetic label of two or more letters.
func scanEmail(s string, atPos int) (start, end int, ok bool) {
	start = atPos
	for start > 0 && isEmailLocalChar(s[start-1]) {
		start--
	}
	for start < atPos && s[start] == '.' {
		start++
	}
	if start == atPos {
		return 0, 0, false
	}

	end = atPos + 1
	for end < len(s) && isEmailDomainChar(s[end]) {
		end++
	}
	for end > atPos+1 && s[end-1] == '.' {
		end--
	}

	if !ValidDomain(s[atPos+1 : end]) {
		return 0, 0, false
	}
	return start, end, true
}

// ValidDomain reports whether d looks like a host name: dot-separated labels
// of letters, digits and inner hyphens, with an alphabetic top-level label of
// at least two letters.
func ValidDomain(d string) bool {
	labels := strings.Split(d, ".")
	if len(labels) < 2 {
		return false
	}
	for _, l := range labels {
		if l == "" || l[0] == '-' || l[len(l)-1] == '-' {
			return false
		}
		for i := 0; i < len(l); i++ {
			if !isEmailDomainChar(l[i]) || l[i] == '.' {
				return false
			}
		}
	}
	tld := labels[len(labels)-1]
	return len(tld) >= 2 && isAllAlpha(tld)
}

// scanNumber returns the end of a number starting at pos.
// Accepts \d+, \d{1,3}(,\d{3})+ and an optional .\d+ fraction.
func scanNumber(s string, pos int) int {
	i := pos
	for i < len(s) && isDigitByte(s[i]) {
		i++
	}

	if i-pos <= 3 {
		for i+3 < len(s) && s[i] == ',' &&
			isDigitByte(s[i+1]) && isDigitByte(s[i+2]) && isDigitByte(s[i+3]) &&
			(i+4 == len(s) || !isDigitByte(s[i+4])) {
			i += 4
		}
	}

	if i+1 < len(s) && s[i] == '.' && isDigitByte(s[i+1]) {
		i++
		for i < len(s) && isDigitByte(s[i]) {
			i++
		}
	}
	return i
}

// scanWord returns the end of a word starting at pos. A word starts with a
// letter, may contain digits ("x86") and combining marks, and is joined across a single hyphen
// between alphanumerics ("twenty-one") and across an apostrophe between
// letters ("o'clock", "don't").
func scanWord(s string, pos int) int {
	i := alnumRun(s, pos)

	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])
		next := i + size
		if next >= len(s) {
			break
		}
		nr, _ := utf8.DecodeRuneInString(s[next:])

		if r == '-' {
			if !unicode.IsLetter(nr) && !unicode.IsDigit(nr) {
				break
			}
			i = alnumRun(s, next)
			continue
		}

		if isApostrophe(r) {
			pr, _ := utf8.DecodeLastRuneInString(s[pos:i])
			if (!unicode.IsLetter(pr) && !unicode.Is(unicode.M, pr)) || !unicode.IsLetter(nr) {
				break
			}
			i = next
			for i < len(s) {
				lr, ls := utf8.DecodeRuneInString(s[i:])
				if !unicode.IsLetter(lr) && !unicode.Is(unicode.M, lr) {
					break
				}
				i += ls
			}
			continue
		}
		break
	}
	return i
}

// dropFrom removes or shortens trailing tokens that reach past start. Used
// when an email's local part has already been emitted as words.
func dropFrom(tokens []Token, start int) []Token {
	for len(tokens) > 0 {
		last := tokens[len(tokens)-1]
		switch {
		case last.Start >= start:
			tokens = tokens[:len(tokens)-1]
		case last.End > start:
			last.Text = last.Text[:start-last.Start]
			last.End = start
			tokens[len(tokens)-1] = last
			return tokens
		default:
			return tokens
		}
	}
	return tokens
}

// alnumRun returns the end of the letters, digits and combining marks at
// pos. Marks stay with their base letter so decomposed text ("cafe\u0301")
// forms one word.
func alnumRun(s string, pos int) int {
	for pos < len(s) {
		r, size := utf8.DecodeRuneInString(s[pos:])
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && !unicode.Is(unicode.M, r) {
			break
		}
		pos += size
	}
	return pos
}

func isApostrophe(r rune) bool {
	return r == '\'' || r == '’' || r == 'ʼ'
}

func isEmailLocalChar(c byte) bool {
	return isAlnumByte(c) || c == '.' || c == '_' || c == '%' || c == '+' || c == '-'
}

func isEmailDomainChar(c byte) bool {
	return isAlnumByte(c) || c == '.' || c == '-'
}

func isAlnumByte(c byte) bool {
	return isDigitByte(c) || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// isAllAlpha reports whether every byte of s is an ASCII letter.
func isAllAlpha(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !((c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')) {
			return false
		}
	}
	return true
}

func isDigitByte(b byte) bool {
	return b >= '0' && b <= '9'
}
