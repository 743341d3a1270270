package prosody

import "testing"

func TestWeightString(t *testing.T) {
	if Laghu.String() != "L" || Guru.String() != "G" {
		t.Errorf("weight tokens = %q/%q, want L/G", Laghu, Guru)
	}
}

func TestLinePatternString(t *testing.T) {
	cases := []struct {
		in   LinePattern
		want string
	}{
		{nil, ""},
		{LinePattern{Laghu}, "L"},
		{LinePattern{Laghu, Guru, Guru, Laghu}, "L G G L"},
	}
	for _, tc := range cases {
		if got := tc.in.String(); got != tc.want {
			t.Errorf("LinePattern(%v).String() = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestVersePatternString(t *testing.T) {
	v := VersePattern{
		{Laghu, Guru},
		{Guru},
	}
	// The " | " separator is a fixed contract; consumers split on it.
	if got := v.String(); got != "L G | G" {
		t.Errorf("VersePattern.String() = %q, want %q", got, "L G | G")
	}
}

func TestScanVerse(t *testing.T) {
	text := "  का क  \n\n\nकं\n   \n"
	got := ScanVerse(text)
	if len(got) != 2 {
		t.Fatalf("ScanVerse produced %d lines, want 2", len(got))
	}
	if !got[0].Equal(LinePattern{Guru, Laghu}) {
		t.Errorf("line 0 = %v, want [G L]", got[0])
	}
	if !got[1].Equal(LinePattern{Guru}) {
		t.Errorf("line 1 = %v, want [G]", got[1])
	}
}

func TestScanVerseEmpty(t *testing.T) {
	if got := ScanVerse("\n  \n"); len(got) != 0 {
		t.Errorf("ScanVerse on blank input = %v, want empty", got)
	}
}

func TestLinePatternEqual(t *testing.T) {
	a := LinePattern{Laghu, Guru}
	if !a.Equal(LinePattern{Laghu, Guru}) {
		t.Error("equal patterns reported unequal")
	}
	if a.Equal(LinePattern{Laghu}) || a.Equal(LinePattern{Guru, Guru}) {
		t.Error("unequal patterns reported equal")
	}
}
