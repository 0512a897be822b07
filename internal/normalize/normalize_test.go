//nolint:testpackage // Testing internal normalization requires same package access
package normalize

import "testing"

func TestName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"lowercase passthrough", "hubspot", "hubspot"},
		{"mixed case", "HubSpot", "hubspot"},
		{"surrounding whitespace", "  Salesforce  ", "salesforce"},
		{"inner whitespace collapsed", "Zoho   CRM", "zoho crm"},
		{"tabs and newlines", "Zoho\tCRM\nPlus", "zoho crm plus"},
		{"accents folded", "Café Société", "cafe societe"},
		{"empty", "", ""},
		{"whitespace only", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Name(tt.in); got != tt.want {
				t.Errorf("Name(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestContainsAllWords(t *testing.T) {
	tests := []struct {
		name string
		full string
		sub  string
		want bool
	}{
		{"exact match", "acme", "acme", true},
		{"sub contained in longer", "acme crm platform", "acme", true},
		{"order independent", "platform acme", "acme platform", true},
		{"missing word", "acme platform", "acme crm", false},
		{"single word not contained", "marketing", "acme marketing", false},
		{"empty sub never matches", "acme", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ContainsAllWords(tt.full, tt.sub); got != tt.want {
				t.Errorf("ContainsAllWords(%q, %q) = %v, want %v", tt.full, tt.sub, got, tt.want)
			}
		})
	}
}
