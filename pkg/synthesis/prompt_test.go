package synthesis

import (
	"strings"
	"testing"
)

func TestBuildPromptEmbedsCASNumber(t *testing.T) {
	prompt := BuildPrompt("64-17-5")

	if !strings.Contains(prompt, "CAS number 64-17-5") {
		t.Errorf("prompt does not embed the CAS number")
	}
	for _, marker := range []string{"**Article 1:", "**Article 2:", "**Article 3:"} {
		if !strings.Contains(prompt, marker) {
			t.Errorf("prompt missing layout marker %q", marker)
		}
	}
	for _, label := range []string{
		"- Journal:", "- DOI:", "- URL:",
		"- Starting Materials:", "- Solvents:", "- Reaction Conditions:",
		"- Experimental Method:", "- Yield:",
	} {
		if !strings.Contains(prompt, label) {
			t.Errorf("prompt missing field label %q", label)
		}
	}
	for _, constraint := range []string{
		"EXCLUDE ALL DERIVATIVES",
		"SINGLE-STEP SYNTHESIS ONLY",
		"peer-reviewed journals",
		"different research group/institution",
	} {
		if !strings.Contains(prompt, constraint) {
			t.Errorf("prompt missing constraint %q", constraint)
		}
	}
}

func TestIsValidCASNumber(t *testing.T) {
	tests := []struct {
		cas  string
		want bool
	}{
		{"64-17-5", true},
		{"7732-18-5", true},
		{"1234567-89-0", true},
		{"", false},
		{"64-17", false},
		{"64175", false},
		{"1-17-5", false},        // first block too short
		{"12345678-17-5", false}, // first block too long
		{"64-175-5", false},
		{"64-17-55", false},
		{"64-17-5 ", false},
		{"abc-de-f", false},
	}

	for _, tt := range tests {
		if got := IsValidCASNumber(tt.cas); got != tt.want {
			t.Errorf("IsValidCASNumber(%q) = %v, want %v", tt.cas, got, tt.want)
		}
	}
}
