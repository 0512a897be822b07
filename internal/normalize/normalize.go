// Package normalize provides canonical name normalization shared by the
// extractor, filter, and gazetteer.
package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var accentStripper = transform.Chain(
	norm.NFD,
	runes.Remove(runes.In(unicode.Mn)),
	norm.NFC,
)

// Name converts a raw brand name into its canonical lookup form: accents
// folded, lowercased, trimmed, inner whitespace collapsed to single spaces.
// Gazetteer keys, blacklist lookups, and candidate merging all use this form.
func Name(raw string) string {
	s := raw
	if folded, _, err := transform.String(accentStripper, raw); err == nil {
		s = folded
	}
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.Join(strings.Fields(s), " ")
}

// Words splits a normalized name into its whitespace-separated words.
func Words(normalized string) []string {
	return strings.Fields(normalized)
}

// ContainsAllWords reports whether every word of sub appears among the words
// of full, order-independent. Both arguments must already be normalized.
func ContainsAllWords(full, sub string) bool {
	subWords := Words(sub)
	if len(subWords) == 0 {
		return false
	}
	fullWords := Words(full)
	set := make(map[string]struct{}, len(fullWords))
	for _, w := range fullWords {
		set[w] = struct{}{}
	}
	for _, w := range subWords {
		if _, ok := set[w]; !ok {
			return false
		}
	}
	return true
}
