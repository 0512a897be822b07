//nolint:testpackage // Testing internal filter requires same package access
package filter

import "testing"

func TestValidateTerm(t *testing.T) {
	f := New()

	tests := []struct {
		name string
		term string
		want RejectReason
	}{
		{"plausible brand passes", "HubSpot", RejectNone},
		{"multi-word brand passes", "Zoho CRM", RejectNone},
		{"too short", "A", RejectTooShort},
		{"too long", "This Is A Very Long Candidate Name Indeed", RejectTooLong},
		{"pure number", "2024", RejectNumeric},
		{"decimal number", "3.5", RejectNumeric},
		{"percentage", "99 %", RejectNumeric},
		{"markdown fragment", "[link]", RejectFormatting},
		{"json fragment", `{"key"`, RejectFormatting},
		{"stopword", "However", RejectStopword},
		{"generic business term", "Marketing", RejectGenericTerm},
		{"generic term case-insensitive", "PLATFORM", RejectGenericTerm},
		{"spam phrase", "Click Here Now", RejectSpamPhrase},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := f.ValidateTerm(tt.term); got != tt.want {
				t.Errorf("ValidateTerm(%q) = %q, want %q", tt.term, got, tt.want)
			}
		})
	}
}

func TestValidateTerm_PrecedenceLengthBeforeLists(t *testing.T) {
	// A one-letter stopword must report too_short, not stopword.
	f := NewWithLists([]string{"a"}, nil, nil)
	if got := f.ValidateTerm("a"); got != RejectTooShort {
		t.Errorf("got %q, want %q", got, RejectTooShort)
	}
}

func TestIsBlacklisted_NormalizesInput(t *testing.T) {
	f := New()

	if !f.IsBlacklisted("  THE  ") {
		t.Error("expected normalized stopword lookup to match")
	}
	if f.IsBlacklisted("HubSpot") {
		t.Error("brand name should not be blacklisted")
	}
}

func TestIsGenericBusinessTerm(t *testing.T) {
	f := New()

	generic := []string{"marketing", "Analytics", "CRM", "automation"}
	for _, term := range generic {
		if !f.IsGenericBusinessTerm(term) {
			t.Errorf("expected %q to be a generic business term", term)
		}
	}
	if f.IsGenericBusinessTerm("Salesforce") {
		t.Error("Salesforce should not be a generic business term")
	}
}

func TestContainsSpamPhrase(t *testing.T) {
	f := New()

	if !f.ContainsSpamPhrase("amazing deal click here today") {
		t.Error("expected embedded spam phrase to match")
	}
	if f.ContainsSpamPhrase("Zoho CRM Plus") {
		t.Error("brand phrase should not match spam list")
	}
}

func TestNewWithLists_CustomLists(t *testing.T) {
	f := NewWithLists([]string{"Foo"}, []string{"Bar"}, []string{"Free Money"})

	if got := f.ValidateTerm("foo"); got != RejectStopword {
		t.Errorf("custom stopword: got %q", got)
	}
	if got := f.ValidateTerm("bar"); got != RejectGenericTerm {
		t.Errorf("custom generic term: got %q", got)
	}
	if got := f.ValidateTerm("get free money fast"); got != RejectSpamPhrase {
		t.Errorf("custom spam phrase: got %q", got)
	}
}

func TestIsCommonWord(t *testing.T) {
	tests := []struct {
		word string
		want bool
	}{
		{"Compare", true},
		{"try", true},
		{"Marketing", true},
		{"Salesforce", false},
		{"Acme", false},
	}
	for _, tt := range tests {
		if got := IsCommonWord(tt.word); got != tt.want {
			t.Errorf("IsCommonWord(%q): got %v, want %v", tt.word, got, tt.want)
		}
	}
}
