package main

import (
	"testing"

	"github.com/muesli/termenv"
)

func TestMarkerLine(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want string
	}{
		{"single diff", "Cat", "Hat", "^"},
		{"spread diffs", "GAGCCT", "CATCGT", "^ ^ ^"},
		{"identical", "same", "same", ""},
		{"all differ", "abc", "xyz", "^^^"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := markerLine([]rune(tt.a), []rune(tt.b))
			if got != tt.want {
				t.Errorf("markerLine(%q, %q) = %q, want %q", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestHighlightDiff_PlainProfile(t *testing.T) {
	// The Ascii profile emits no escape sequences, so the rendered
	// line is the raw second input.
	got := highlightDiff([]rune("Cat"), []rune("Hat"), termenv.Ascii)
	if got != "Hat" {
		t.Errorf("highlightDiff = %q, want %q", got, "Hat")
	}
}

func TestRunDist_LengthMismatch(t *testing.T) {
	if err := runDist("abc", "ab", false, true); err == nil {
		t.Error("expected error for unequal-length inputs")
	}
	if err := runDist("01", "0101", true, true); err == nil {
		t.Error("expected error for unequal-length hex inputs")
	}
}

func TestRunDist_InvalidHex(t *testing.T) {
	if err := runDist("zz", "01", true, true); err == nil {
		t.Error("expected error for invalid hex input")
	}
}
