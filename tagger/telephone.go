package tagger

import (
	"strconv"
	"strings"

	"github.com/az-ai-labs/en-itn/numtext"
)

// TelephoneKind distinguishes the forms of a Telephone value.
type TelephoneKind int

const (
	KindPhone TelephoneKind = iota // 555-123-4567, +44 20-7946-0958
	KindIP                         // 192.168.0.1
	KindSSN                        // SSN 123-45-6789
)

// Telephone is a spoken digit string with its grouping. For KindPhone,
// Groups holds explicitly spoken dash groups, or a single group of all
// digits to be laid out by length. For KindSSN, Label is "ssn" as spoken,
// followed by " is" when that was spoken too.
type Telephone struct {
	Kind        TelephoneKind
	CountryCode string
	Groups      []string
	Label       string
}

// Category implements Value.
func (Telephone) Category() Category { return CategoryTelephone }

// Digits returns all digits of the number without separators.
func (t Telephone) Digits() string {
	return strings.Join(t.Groups, "")
}

const (
	minPhoneDigits    = 3
	minCompoundDigits = 7 // compound numbers ("twenty three") only in full numbers
	ssnDigits         = 9
)

type telephoneTagger struct{}

func (telephoneTagger) Category() Category { return CategoryTelephone }

// Parse accepts:
//
//	ssn [is] <nine digits>                    SSN is 123-45-6789
//	<octet> dot <octet> dot <octet> dot <octet>  IPv4
//	[plus <country code>] <digits> [dash <digits>]...
//
// Digits are digit words ("oh" and "zero" are 0), "double"/"triple" repeats,
// and, in numbers of seven digits or more, teens and tens ("twenty three").
// Scale words never appear in a phone number.
func (telephoneTagger) Parse(words []Word) (Value, bool) {
	lw := lowers(words)

	if lw[0] == "ssn" {
		return parseSSN(words, lw)
	}

	if parts := splitOn(lw, "dot"); len(parts) == 4 {
		return parseIPv4(parts)
	}

	var t Telephone
	rest := lw
	if rest[0] == "plus" {
		code, n := countryCode(rest[1:])
		if n == 0 {
			return nil, false
		}
		t.CountryCode = code
		rest = rest[1+n:]
	}

	total, plain := 0, true
	for _, part := range splitOn(rest, "dash") {
		d, p, ok := digitString(part)
		if !ok {
			return nil, false
		}
		t.Groups = append(t.Groups, d)
		total += len(d)
		plain = plain && p
	}

	switch {
	case total < minPhoneDigits:
		return nil, false
	case t.CountryCode != "" && total < minCompoundDigits:
		return nil, false
	case !plain && total < minCompoundDigits:
		return nil, false
	case total == minPhoneDigits && len(t.Groups) == 1 && !strictDigits(rest):
		return nil, false
	}
	return t, true
}

// parseSSN reads the nine digits after "ssn" and an optional "is".
func parseSSN(words []Word, lw []string) (Value, bool) {
	label := words[0].Text
	rest := lw[1:]
	if len(rest) > 0 && rest[0] == "is" {
		label += " " + words[1].Text
		rest = rest[1:]
	}
	if len(rest) == 0 {
		return nil, false
	}
	d, _, ok := digitString(rest)
	if !ok || len(d) != ssnDigits {
		return nil, false
	}
	return Telephone{Kind: KindSSN, Groups: []string{d[:3], d[3:5], d[5:]}, Label: label}, true
}

// parseIPv4 reads four octets in 0..255 without leading zeros.
func parseIPv4(parts [][]string) (Value, bool) {
	t := Telephone{Kind: KindIP, Groups: make([]string, 0, 4)}
	for _, p := range parts {
		d, _, ok := digitString(p)
		if !ok || len(d) > 3 || (len(d) > 1 && d[0] == '0') {
			return nil, false
		}
		if n, _ := strconv.Atoi(d); n > 255 {
			return nil, false
		}
		t.Groups = append(t.Groups, d)
	}
	return t, true
}

// countryCode reads a one to three digit country code after "plus" and
// returns it with the number of words used: a tens compound ("forty four"),
// a lone tens word ("forty") or up to two digit words ("nine one").
func countryCode(lw []string) (string, int) {
	if len(lw) == 0 {
		return "", 0
	}
	if t, ok := numtext.Small(lw[0]); ok && t >= 20 && t%10 == 0 {
		if len(lw) > 1 {
			if u, ok := numtext.Small(lw[1]); ok && u < 10 {
				return strconv.FormatInt(t+u, 10), 2
			}
		}
		return strconv.FormatInt(t, 10), 1
	}
	var b strings.Builder
	n := 0
	for n < len(lw) && n < 2 {
		d, ok := numtext.Digit(lw[n])
		if !ok {
			break
		}
		b.WriteByte(d)
		n++
	}
	return b.String(), n
}

// digitString reads spoken digits. plain is false when a teen or tens word
// was read.
func digitString(lw []string) (digits string, plain, ok bool) {
	if len(lw) == 0 {
		return "", false, false
	}
	plain = true
	b := make([]byte, 0, len(lw)+4)
	for i := 0; i < len(lw); i++ {
		w := lw[i]
		if (w == "double" || w == "triple") && i+1 < len(lw) {
			d, ok := numtext.Digit(lw[i+1])
			if !ok {
				return "", false, false
			}
			b = append(b, d, d)
			if w == "triple" {
				b = append(b, d)
			}
			i++
			continue
		}
		if d, ok := numtext.Digit(w); ok {
			b = append(b, d)
			continue
		}
		v, ok := numtext.Small(w)
		if !ok || v < 10 {
			return "", false, false
		}
		plain = false
		if v >= 20 && i+1 < len(lw) {
			if u, ok := numtext.Small(lw[i+1]); ok && u < 10 {
				v += u
				i++
			}
		}
		b = strconv.AppendInt(b, v, 10)
	}
	return string(b), plain, true
}

// strictDigits reports whether lw holds only the digit words one..nine and
// zero. Three-digit strings with "oh" read better as times ("two oh five").
func strictDigits(lw []string) bool {
	for _, w := range lw {
		if w == "o" || w == "oh" {
			return false
		}
		if _, ok := numtext.Digit(w); !ok {
			return false
		}
	}
	return true
}

// splitOn splits lw at every sep word. A leading, trailing or doubled
// separator yields an empty part.
func splitOn(lw []string, sep string) [][]string {
	var parts [][]string
	start := 0
	for i, w := range lw {
		if w == sep {
			parts = append(parts, lw[start:i])
			start = i + 1
		}
	}
	return append(parts, lw[start:])
}
