package tagger

import (
	"strings"

	"github.com/az-ai-labs/en-itn/numtext"
	"github.com/az-ai-labs/en-itn/tokenizer"
)

// ElectronicKind distinguishes the forms of an Electronic value.
type ElectronicKind int

const (
	KindEmail  ElectronicKind = iota // local@domain
	KindURL                          // scheme://host/path or www.host
	KindDomain                       // host with a known top-level domain
)

// Electronic is an email address, URL or bare domain. Scheme is "http://",
// "https://" or empty; Host may carry a path for URLs.
type Electronic struct {
	Kind   ElectronicKind
	Scheme string
	Local  string
	Host   string
}

// Category implements Value.
func (Electronic) Category() Category { return CategoryElectronic }

// addressConnectors maps spoken separators to the characters they stand for
// inside an address.
var addressConnectors = map[string]byte{
	"dot":        '.',
	"underscore": '_',
	"dash":       '-',
	"hyphen":     '-',
	"slash":      '/',
	"colon":      ':',
}

// knownTLDs are the top-level domains accepted for bare domains. Emails and
// URLs are recognized by their other markers and accept any alphabetic TLD.
var knownTLDs = map[string]bool{
	"com": true, "org": true, "net": true, "edu": true, "gov": true,
	"io": true, "ai": true, "co": true, "dev": true, "app": true,
	"info": true, "biz": true, "us": true, "uk": true, "ca": true,
	"de": true, "fr": true, "in": true, "jp": true, "au": true,
}

// spokenSchemes lists URL scheme prefixes, longest first.
var spokenSchemes = []struct {
	words   []string
	written string
}{
	{[]string{"h", "t", "t", "p", "s", "colon", "slash", "slash"}, "https://"},
	{[]string{"h", "t", "t", "p", "colon", "slash", "slash"}, "http://"},
	{[]string{"https", "colon", "slash", "slash"}, "https://"},
	{[]string{"http", "colon", "slash", "slash"}, "http://"},
}

type electronicTagger struct{}

func (electronicTagger) Category() Category { return CategoryElectronic }

// Parse accepts "<local> at <domain>", "<scheme> <host>[/<path>]",
// "w w w dot <host>" and "<host>" with a known top-level domain. Letters,
// digit words and connector words (dot, underscore, dash, slash, colon)
// build the address.
func (electronicTagger) Parse(words []Word) (Value, bool) {
	lw := lowers(words)
	if len(lw) < 3 {
		return nil, false
	}

	for i, w := range lw {
		if w != "at" {
			continue
		}
		if i == 0 || i == len(lw)-1 {
			return nil, false
		}
		local, ok := addressText(words[:i], true, false)
		if !ok {
			return nil, false
		}
		host, ok := addressText(words[i+1:], false, false)
		if !ok || !tokenizer.ValidDomain(host) {
			return nil, false
		}
		return Electronic{Kind: KindEmail, Local: local, Host: host}, true
	}

	for _, s := range spokenSchemes {
		if len(lw) <= len(s.words) || !hasPrefix(lw, s.words...) {
			continue
		}
		host, ok := urlHost(words[len(s.words):])
		if !ok {
			return nil, false
		}
		return Electronic{Kind: KindURL, Scheme: s.written, Host: host}, true
	}

	if hasPrefix(lw, "w", "w", "w", "dot") && len(lw) > 4 {
		host, ok := urlHost(words[4:])
		if !ok {
			return nil, false
		}
		return Electronic{Kind: KindURL, Host: "www." + host}, true
	}

	host, ok := addressText(words, false, false)
	if !ok || !tokenizer.ValidDomain(host) {
		return nil, false
	}
	if !knownTLDs[host[strings.LastIndexByte(host, '.')+1:]] {
		return nil, false
	}
	return Electronic{Kind: KindDomain, Host: host}, true
}

// urlHost reads a host name with an optional port and path.
func urlHost(words []Word) (string, bool) {
	text, ok := addressText(words, false, true)
	if !ok {
		return "", false
	}
	host, _, _ := strings.Cut(text, "/")
	host, _, _ = strings.Cut(host, ":")
	if !tokenizer.ValidDomain(host) {
		return "", false
	}
	return text, true
}

// addressText builds the written form of a spoken address part. Single
// letters keep their case when keepCase is set; longer words are lowercased.
// Two longer words in a row are rejected: addresses are spelled or joined
// by connectors, ordinary prose is not. Slash and colon are accepted only
// when path is set.
func addressText(words []Word, keepCase, path bool) (string, bool) {
	var b strings.Builder
	prevWord := false
	for i, w := range words {
		if c, ok := addressConnectors[w.Lower]; ok {
			if (c == '/' || c == ':') && !path {
				return "", false
			}
			if i == 0 || (i == len(words)-1 && c != '/') {
				return "", false
			}
			b.WriteByte(c)
			prevWord = false
			continue
		}
		if w.Lower != "o" {
			if d, ok := numtext.Digit(w.Lower); ok {
				b.WriteByte(d)
				prevWord = false
				continue
			}
		}
		if !isASCIIAlnum(w.Lower) {
			return "", false
		}
		if len(w.Lower) == 1 {
			if keepCase {
				b.WriteString(w.Text)
			} else {
				b.WriteString(w.Lower)
			}
			prevWord = false
			continue
		}
		if prevWord {
			return "", false
		}
		b.WriteString(w.Lower)
		prevWord = true
	}
	return b.String(), b.Len() > 0
}

func isASCIIAlnum(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < 'a' || c > 'z') && (c < '0' || c > '9') {
			return false
		}
	}
	return true
}
