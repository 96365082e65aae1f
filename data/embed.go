// Package data embeds the lookup tables shipped with the engine.
package data

import _ "embed"

// Whitelist holds tab-separated "spoken<TAB>written" lines. An empty written
// column marks a phrase that is kept verbatim. Lines starting with # are
// comments.
//
//go:embed whitelist.tsv
var Whitelist string
