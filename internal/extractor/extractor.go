// Package extractor scans free text for brand-name candidates using three
// independent pattern passes: capitalized word runs, PascalCase tokens, and
// domain-like strings.
package extractor

import (
	"regexp"
	"sort"
	"strings"

	"github.com/llumos/brand-detector/internal/domain"
	"github.com/llumos/brand-detector/internal/filter"
	"github.com/llumos/brand-detector/internal/normalize"
)

var (
	// One to four consecutive capitalized words, e.g. "Google Analytics".
	// Dots are excluded so runs never cross a sentence boundary; dotted
	// names are picked up by the domain pass instead.
	capitalizedRunPattern = regexp.MustCompile(
		`\b[A-Z][A-Za-z0-9&'-]*(?:[ \t][A-Z][A-Za-z0-9&'-]*){0,3}`)

	// Single tokens with internal capitalization, e.g. "ActiveCampaign".
	pascalCasePattern = regexp.MustCompile(
		`\b[A-Z][a-z0-9]+(?:[A-Z][A-Za-z0-9]*)+\b`)

	// name.tld for common TLDs, e.g. "salesforce.com".
	domainPattern = regexp.MustCompile(
		`(?i)\b([a-z0-9][a-z0-9-]{1,62})\.(com|io|ai|app|dev|co|net|org)\b`)
)

// accumulator tracks one candidate across all passes during a single
// extraction call.
type accumulator struct {
	rawName      string
	mentionCount int
	firstOffset  int
}

// ExtractCandidates runs all three pattern passes over the text and merges
// matches by normalized name, accumulating mention counts and keeping the
// earliest offset seen across passes. All passes always run; deduplication
// happens only at merge time.
func ExtractCandidates(text string) []domain.Candidate {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	acc := make(map[string]*accumulator)

	for _, m := range capitalizedRunPattern.FindAllStringIndex(text, -1) {
		raw, offset := stripLeadingCommonWords(text[m[0]:m[1]], m[0])
		record(acc, trimArtifacts(raw), offset)
	}

	for _, m := range pascalCasePattern.FindAllStringIndex(text, -1) {
		record(acc, text[m[0]:m[1]], m[0])
	}

	for _, m := range domainPattern.FindAllStringSubmatchIndex(text, -1) {
		// Group 1 is the name part; convert to a capitalized brand guess.
		name := text[m[2]:m[3]]
		record(acc, brandGuessFromDomain(name), m[0])
	}

	textLen := len(text)
	candidates := make([]domain.Candidate, 0, len(acc))
	for normalized, a := range acc {
		ratio := domain.PositionNotFound
		if a.firstOffset >= 0 && textLen > 0 {
			ratio = float64(a.firstOffset) / float64(textLen)
			if ratio > 1 {
				ratio = 1
			}
		}
		candidates = append(candidates, domain.Candidate{
			RawName:            a.rawName,
			NormalizedName:     normalized,
			MentionCount:       a.mentionCount,
			FirstPositionRatio: ratio,
		})
	}

	// Earliest-first for deterministic downstream processing.
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].FirstPositionRatio != candidates[j].FirstPositionRatio {
			return candidates[i].FirstPositionRatio < candidates[j].FirstPositionRatio
		}
		return candidates[i].NormalizedName < candidates[j].NormalizedName
	})

	return candidates
}

func record(acc map[string]*accumulator, raw string, offset int) {
	normalized := normalize.Name(raw)
	if normalized == "" {
		return
	}

	a, ok := acc[normalized]
	if !ok {
		acc[normalized] = &accumulator{
			rawName:      raw,
			mentionCount: 1,
			firstOffset:  offset,
		}
		return
	}

	a.mentionCount++
	if offset < a.firstOffset {
		a.firstOffset = offset
	}
}

// stripLeadingCommonWords drops sentence-leading words like "Compare" or
// "Try" from a multi-word run so the brand that follows them is recorded on
// its own: "Compare Salesforce" becomes "Salesforce" at Salesforce's offset.
// A single-word run is kept as is; the validity checks reject it downstream
// if it is itself a common word.
func stripLeadingCommonWords(run string, offset int) (string, int) {
	for {
		i := strings.IndexAny(run, " \t")
		if i < 0 {
			return run, offset
		}
		if !filter.IsCommonWord(run[:i]) {
			return run, offset
		}
		run = run[i+1:]
		offset += i + 1
	}
}

// trimArtifacts strips trailing punctuation swallowed by the run pattern,
// such as the dash in "HubSpot-".
func trimArtifacts(raw string) string {
	return strings.TrimRight(raw, "&'-")
}

// brandGuessFromDomain converts a domain name part into a capitalized brand
// guess: "salesforce" -> "Salesforce".
func brandGuessFromDomain(name string) string {
	name = strings.ToLower(name)
	if name == "" {
		return name
	}
	return strings.ToUpper(name[:1]) + name[1:]
}
