package main

import (
	"testing"

	"chandas/internal/meter"

	"github.com/google/go-cmp/cmp"
)

func TestSplitVerses(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want []string
	}{
		{"empty", "", nil},
		{"blank only", "\n  \n\t\n", nil},
		{"single verse", "क\nका", []string{"क\nका"}},
		{"two verses", "क\n\nका\nकं", []string{"क", "का\nकं"}},
		{"run of blanks", "क\n\n\n\nका", []string{"क", "का"}},
		{"trailing blank", "क\n\n", []string{"क"}},
	}
	for _, tc := range cases {
		if diff := cmp.Diff(tc.want, splitVerses(tc.in)); diff != "" {
			t.Errorf("%s: splitVerses mismatch (-want +got):\n%s", tc.name, diff)
		}
	}
}

func TestAnalyzeText(t *testing.T) {
	reg := meter.Builtin()

	reports := analyzeText(reg, "क का का का क का का का\nक का का का क का का का")
	if len(reports) != 1 {
		t.Fatalf("got %d reports, want 1", len(reports))
	}
	wantPattern := "L G G G L G G G | L G G G L G G G"
	if reports[0].Pattern != wantPattern {
		t.Errorf("Pattern = %q, want %q", reports[0].Pattern, wantPattern)
	}
	if reports[0].Meter != "Anuṣṭubh (Śloka)" {
		t.Errorf("Meter = %q", reports[0].Meter)
	}
}

func TestAnalyzeTextMultipleVerses(t *testing.T) {
	reports := analyzeText(meter.Builtin(), "क का क का क\n\nabc")
	if len(reports) != 2 {
		t.Fatalf("got %d reports, want 2", len(reports))
	}
	if reports[0].Meter != "Unknown 5-syllable meter." {
		t.Errorf("verse 0 meter = %q", reports[0].Meter)
	}
	// Non-Devanagari input scans to nothing.
	if reports[1].Pattern != "" {
		t.Errorf("verse 1 pattern = %q, want empty", reports[1].Pattern)
	}
	if reports[1].Meter != "No recognizable meter structure." {
		t.Errorf("verse 1 meter = %q", reports[1].Meter)
	}
}
