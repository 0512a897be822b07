package data_test

import (
	"testing"

	"github.com/llumos/brand-detector/internal/data"
)

func TestLookupGlobalCompany(t *testing.T) {
	tests := []struct {
		name          string
		input         string
		wantCanonical string
		wantFound     bool
	}{
		{"direct hit", "salesforce", "Salesforce", true},
		{"domain variant", "salesforce.com", "Salesforce", true},
		{"variant maps to canonical", "infusionsoft", "Keap", true},
		{"rebrand maps forward", "sendinblue", "Brevo", true},
		{"unknown name", "acme widgets", "", false},
		{"unnormalized casing misses", "Salesforce", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info, ok := data.LookupGlobalCompany(tt.input)
			if ok != tt.wantFound {
				t.Fatalf("found: got %v, want %v", ok, tt.wantFound)
			}
			if ok && info.Canonical != tt.wantCanonical {
				t.Errorf("canonical: got %q, want %q", info.Canonical, tt.wantCanonical)
			}
		})
	}
}

func TestGlobalCompanyCount(t *testing.T) {
	if data.GlobalCompanyCount() < 100 {
		t.Errorf("global list unexpectedly small: %d entries", data.GlobalCompanyCount())
	}
}
