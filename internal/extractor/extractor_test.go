//nolint:testpackage // Testing internal extractor requires same package access
package extractor

import (
	"strings"
	"testing"

	"github.com/llumos/brand-detector/internal/domain"
)

func findCandidate(candidates []domain.Candidate, normalized string) (domain.Candidate, bool) {
	for _, c := range candidates {
		if c.NormalizedName == normalized {
			return c, true
		}
	}
	return domain.Candidate{}, false
}

func TestExtractCandidates_EmptyText(t *testing.T) {
	if got := ExtractCandidates(""); got != nil {
		t.Errorf("expected nil for empty text, got %v", got)
	}
	if got := ExtractCandidates("   \n\t  "); got != nil {
		t.Errorf("expected nil for blank text, got %v", got)
	}
}

func TestExtractCandidates_CapitalizedRun(t *testing.T) {
	candidates := ExtractCandidates("We recommend Google Analytics for tracking.")

	c, ok := findCandidate(candidates, "google analytics")
	if !ok {
		t.Fatalf("missing candidate, got %v", candidates)
	}
	if c.RawName != "Google Analytics" {
		t.Errorf("raw name: got %q", c.RawName)
	}
}

func TestExtractCandidates_PascalCaseCountedByBothPasses(t *testing.T) {
	// Internal-capital tokens match both the capitalized-run pass and the
	// PascalCase pass; the merge accumulates both.
	candidates := ExtractCandidates("my team uses HubSpot daily.")

	c, ok := findCandidate(candidates, "hubspot")
	if !ok {
		t.Fatal("missing hubspot candidate")
	}
	if c.MentionCount != 2 {
		t.Errorf("mention count: got %d, want 2", c.MentionCount)
	}
}

func TestExtractCandidates_DomainGuess(t *testing.T) {
	candidates := ExtractCandidates("see salesforce.com for details")

	c, ok := findCandidate(candidates, "salesforce")
	if !ok {
		t.Fatal("missing salesforce candidate")
	}
	if c.RawName != "Salesforce" {
		t.Errorf("raw name: got %q, want capitalized brand guess", c.RawName)
	}
}

func TestExtractCandidates_DomainMergesWithCapitalizedMention(t *testing.T) {
	text := "Salesforce is popular. Visit salesforce.com to compare."
	candidates := ExtractCandidates(text)

	c, ok := findCandidate(candidates, "salesforce")
	if !ok {
		t.Fatal("missing salesforce candidate")
	}
	if c.MentionCount != 2 {
		t.Errorf("mention count: got %d, want 2", c.MentionCount)
	}
	if c.FirstPositionRatio != 0 {
		t.Errorf("first position ratio: got %v, want 0 (text starts with the mention)", c.FirstPositionRatio)
	}
}

func TestExtractCandidates_RunStopsAtSentenceBoundary(t *testing.T) {
	candidates := ExtractCandidates("They chose Salesforce. HubSpot came second.")

	if _, ok := findCandidate(candidates, "salesforce"); !ok {
		t.Error("missing salesforce")
	}
	if _, ok := findCandidate(candidates, "hubspot"); !ok {
		t.Error("missing hubspot")
	}
	if _, ok := findCandidate(candidates, "salesforce hubspot"); ok {
		t.Error("run must not cross the sentence boundary")
	}
}

func TestExtractCandidates_LeadingCommonWordStripped(t *testing.T) {
	// A sentence-start verb must not glue itself onto the brand that follows.
	text := "Compare Salesforce with spreadsheets today."
	candidates := ExtractCandidates(text)

	c, ok := findCandidate(candidates, "salesforce")
	if !ok {
		t.Fatalf("missing standalone salesforce candidate, got %v", candidates)
	}
	wantOffset := strings.Index(text, "Salesforce")
	if want := float64(wantOffset) / float64(len(text)); c.FirstPositionRatio != want {
		t.Errorf("first position ratio: got %v, want %v", c.FirstPositionRatio, want)
	}
	if _, ok := findCandidate(candidates, "compare salesforce"); ok {
		t.Error("compound with leading common word must not survive")
	}
}

func TestExtractCandidates_StrippedRunStillMergesWithPascalCase(t *testing.T) {
	candidates := ExtractCandidates("Try HubSpot today.")

	c, ok := findCandidate(candidates, "hubspot")
	if !ok {
		t.Fatal("missing hubspot candidate")
	}
	if c.MentionCount != 2 {
		t.Errorf("mention count: got %d, want 2 (run pass plus PascalCase pass)", c.MentionCount)
	}
	if _, ok := findCandidate(candidates, "try hubspot"); ok {
		t.Error("compound with leading common word must not survive")
	}
}

func TestExtractCandidates_BrandLedRunIsKeptWhole(t *testing.T) {
	candidates := ExtractCandidates("We recommend Zoho CRM for small teams.")

	if _, ok := findCandidate(candidates, "zoho crm"); !ok {
		t.Errorf("brand-led run must not be split, got %v", candidates)
	}
}

func TestExtractCandidates_FirstPositionRatio(t *testing.T) {
	text := "Intro text first, then Marketo appears here."
	candidates := ExtractCandidates(text)

	c, ok := findCandidate(candidates, "marketo")
	if !ok {
		t.Fatal("missing marketo candidate")
	}
	wantOffset := strings.Index(text, "Marketo")
	want := float64(wantOffset) / float64(len(text))
	if c.FirstPositionRatio != want {
		t.Errorf("first position ratio: got %v, want %v", c.FirstPositionRatio, want)
	}
	if c.FirstPositionRatio <= 0 || c.FirstPositionRatio >= 1 {
		t.Errorf("ratio out of expected range: %v", c.FirstPositionRatio)
	}
}

func TestExtractCandidates_RepeatedMentionsAccumulate(t *testing.T) {
	text := "Zendesk is fine. Zendesk is fast. Many prefer Zendesk."
	candidates := ExtractCandidates(text)

	c, ok := findCandidate(candidates, "zendesk")
	if !ok {
		t.Fatal("missing zendesk candidate")
	}
	if c.MentionCount != 3 {
		t.Errorf("mention count: got %d, want 3", c.MentionCount)
	}
	if c.FirstPositionRatio != 0 {
		t.Errorf("earliest offset must win: got %v", c.FirstPositionRatio)
	}
}

func TestExtractCandidates_Deterministic(t *testing.T) {
	text := "Compare HubSpot, Salesforce, Zoho CRM and marketo.com today."

	first := ExtractCandidates(text)
	for i := 0; i < 10; i++ {
		again := ExtractCandidates(text)
		if len(again) != len(first) {
			t.Fatalf("run %d: length changed: %d vs %d", i, len(again), len(first))
		}
		for j := range first {
			if again[j] != first[j] {
				t.Fatalf("run %d: candidate %d differs: %+v vs %+v", i, j, again[j], first[j])
			}
		}
	}
}

func TestExtractCandidates_MultiWordRunCappedAtFourWords(t *testing.T) {
	candidates := ExtractCandidates("Alpha Beta Gamma Delta Epsilon launched today.")

	if _, ok := findCandidate(candidates, "alpha beta gamma delta"); !ok {
		t.Error("expected four-word run")
	}
	if _, ok := findCandidate(candidates, "alpha beta gamma delta epsilon"); ok {
		t.Error("runs must be capped at four words")
	}
}
