// Package filter rejects generic English words, business jargon, and spam
// phrases from being treated as brand names. The filter is immutable after
// construction and safe for concurrent use.
package filter

import (
	"strings"
	"unicode"

	ahocorasick "github.com/cloudflare/ahocorasick"

	"github.com/llumos/brand-detector/internal/normalize"
)

// Term length bounds. Anything outside is rejected regardless of the lists.
const (
	minTermLength = 2
	maxTermLength = 30
)

// RejectReason explains why a term failed validation.
type RejectReason string

const (
	RejectNone        RejectReason = ""
	RejectTooShort    RejectReason = "too_short"
	RejectTooLong     RejectReason = "too_long"
	RejectNumeric     RejectReason = "numeric"
	RejectFormatting  RejectReason = "formatting_artifact"
	RejectStopword    RejectReason = "stopword"
	RejectGenericTerm RejectReason = "generic_business_term"
	RejectSpamPhrase  RejectReason = "spam_phrase"
)

// Filter holds the blacklist sets. Construct once at process start and pass
// by reference; never mutate after construction.
type Filter struct {
	stopwords   map[string]struct{}
	genericTerm map[string]struct{}
	spamMatcher *ahocorasick.Matcher
	spamPhrases []string
}

// New builds a Filter from the default curated word lists.
func New() *Filter {
	return NewWithLists(defaultStopwords, genericBusinessTerms, spamPhrases)
}

// NewWithLists builds a Filter from caller-supplied lists. List entries are
// normalized before insertion, so callers may pass mixed-case terms.
func NewWithLists(stopwords, generic, spam []string) *Filter {
	f := &Filter{
		stopwords:   make(map[string]struct{}, len(stopwords)),
		genericTerm: make(map[string]struct{}, len(generic)),
	}
	for _, w := range stopwords {
		if n := normalize.Name(w); n != "" {
			f.stopwords[n] = struct{}{}
		}
	}
	for _, w := range generic {
		if n := normalize.Name(w); n != "" {
			f.genericTerm[n] = struct{}{}
		}
	}

	f.spamPhrases = make([]string, 0, len(spam))
	for _, p := range spam {
		if n := normalize.Name(p); n != "" {
			f.spamPhrases = append(f.spamPhrases, n)
		}
	}
	if len(f.spamPhrases) > 0 {
		f.spamMatcher = ahocorasick.NewStringMatcher(f.spamPhrases)
	}

	return f
}

// IsBlacklisted reports whether the term is in the primary stopword set.
// The input is normalized before lookup.
func (f *Filter) IsBlacklisted(term string) bool {
	_, ok := f.stopwords[normalize.Name(term)]
	return ok
}

// IsGenericBusinessTerm reports whether the term is high-frequency SaaS or
// marketing vocabulary. Applied even to terms that pass the primary
// blacklist.
func (f *Filter) IsGenericBusinessTerm(term string) bool {
	_, ok := f.genericTerm[normalize.Name(term)]
	return ok
}

// ContainsSpamPhrase reports whether any spam phrase occurs within the
// normalized term.
func (f *Filter) ContainsSpamPhrase(term string) bool {
	if f.spamMatcher == nil {
		return false
	}
	return len(f.spamMatcher.Match([]byte(normalize.Name(term)))) > 0
}

// ValidateTerm runs every check in rejection-precedence order and returns
// the first failure, or RejectNone when the term is a plausible brand name.
func (f *Filter) ValidateTerm(term string) RejectReason {
	n := normalize.Name(term)

	if len(n) < minTermLength {
		return RejectTooShort
	}
	if len(n) > maxTermLength {
		return RejectTooLong
	}
	if isNumeric(n) {
		return RejectNumeric
	}
	if hasFormattingArtifacts(term) {
		return RejectFormatting
	}
	if _, ok := f.stopwords[n]; ok {
		return RejectStopword
	}
	if _, ok := f.genericTerm[n]; ok {
		return RejectGenericTerm
	}
	if f.ContainsSpamPhrase(n) {
		return RejectSpamPhrase
	}
	return RejectNone
}

// commonWords is the union of the default stopword and generic-term lists.
// Extraction uses it to strip sentence-leading words from capitalized runs
// before the per-term checks run.
var commonWords = buildCommonWords()

func buildCommonWords() map[string]struct{} {
	words := make(map[string]struct{}, len(defaultStopwords)+len(genericBusinessTerms))
	for _, w := range defaultStopwords {
		if n := normalize.Name(w); n != "" {
			words[n] = struct{}{}
		}
	}
	for _, w := range genericBusinessTerms {
		if n := normalize.Name(w); n != "" {
			words[n] = struct{}{}
		}
	}
	return words
}

// IsCommonWord reports whether a single word appears in the default stopword
// or generic business term lists.
func IsCommonWord(word string) bool {
	_, ok := commonWords[normalize.Name(word)]
	return ok
}

// isNumeric reports whether the term consists solely of digits, separators,
// and whitespace.
func isNumeric(s string) bool {
	hasDigit := false
	for _, r := range s {
		switch {
		case unicode.IsDigit(r):
			hasDigit = true
		case r == '.' || r == ',' || r == '-' || r == ' ' || r == '%':
		default:
			return false
		}
	}
	return hasDigit
}

// hasFormattingArtifacts reports whether the raw term carries bracket or
// quote characters. Those are markdown/JSON fragments, not names.
func hasFormattingArtifacts(raw string) bool {
	return strings.ContainsAny(raw, "[]{}()<>\"'`*_|\\")
}
