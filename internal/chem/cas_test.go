package chem

import "testing"

func TestValidCAS(t *testing.T) {
	tests := []struct {
		cas  string
		want bool
	}{
		{"7732-18-5", true},
		{"64-17-5", true},
		{"7664-93-9", true},
		{"", false},
		{"7732185", false},
		{"7732-18", false},
		{"7732-18-55", false},
		{"abcd-18-5", false},
		{"7732-18-x", false},
		{" 7732-18-5", false},
	}

	for _, tt := range tests {
		if got := ValidCAS(tt.cas); got != tt.want {
			t.Errorf("ValidCAS(%q) = %v, want %v", tt.cas, got, tt.want)
		}
	}
}

func TestCASChecksumOK(t *testing.T) {
	tests := []struct {
		cas  string
		want bool
	}{
		{"7732-18-5", true},  // water
		{"64-17-5", true},    // ethanol
		{"7664-93-9", true},  // sulfuric acid
		{"1310-73-2", true},  // sodium hydroxide
		{"7732-18-4", false}, // wrong check digit
		{"64-17-0", false},
		{"not-a-cas", false},
	}

	for _, tt := range tests {
		if got := CASChecksumOK(tt.cas); got != tt.want {
			t.Errorf("CASChecksumOK(%q) = %v, want %v", tt.cas, got, tt.want)
		}
	}
}
