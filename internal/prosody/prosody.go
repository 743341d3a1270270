// Package prosody scans Devanagari text into sequences of classical Sanskrit
// syllable weights. Each line (pada) becomes a LinePattern of Laghu/Guru
// units; a verse becomes a VersePattern, one LinePattern per non-empty line.
// Scanning is a single left-to-right pass with at most two runes of
// lookahead and no backtracking.
package prosody

import "strings"

// Weight is the metrical weight of one syllable.
type Weight int

const (
	Laghu Weight = iota // light
	Guru                // heavy
)

// String renders the weight as the single-letter token used everywhere
// downstream: "L" for Laghu, "G" for Guru.
func (w Weight) String() string {
	if w == Guru {
		return "G"
	}
	return "L"
}

// LinePattern is the ordered weight sequence of one pada, in scan order.
type LinePattern []Weight

// String renders the pattern as space-separated L/G tokens, e.g. "L G G L".
// Downstream consumers re-parse this by splitting on single spaces, so the
// format is a fixed contract.
func (p LinePattern) String() string {
	tokens := make([]string, len(p))
	for i, w := range p {
		tokens[i] = w.String()
	}
	return strings.Join(tokens, " ")
}

// Equal reports whether two patterns have identical weights in order.
func (p LinePattern) Equal(q LinePattern) bool {
	if len(p) != len(q) {
		return false
	}
	for i := range p {
		if p[i] != q[i] {
			return false
		}
	}
	return true
}

// VersePattern is the ordered list of line patterns for one verse.
type VersePattern []LinePattern

// String joins the per-line patterns with " | ". This exact separator is
// part of the interface contract toward the presentation layer.
func (v VersePattern) String() string {
	lines := make([]string, len(v))
	for i, p := range v {
		lines[i] = p.String()
	}
	return strings.Join(lines, " | ")
}

// ScanVerse splits text on newlines, trims each line, discards empty lines,
// and scans the rest. Line order is preserved.
func ScanVerse(text string) VersePattern {
	var verse VersePattern
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		verse = append(verse, Scan(line))
	}
	return verse
}
