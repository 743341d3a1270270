// Package meter matches verse weight patterns against a catalogue of named
// classical Sanskrit meters. The builtin catalogue is fixed at compile time
// and indexed by syllable count; user-supplied catalogues can be merged in
// from YAML files. Classification never fails: every verse maps to one of
// the MatchResult variants.
package meter

import (
	"fmt"
	"strings"

	"chandas/internal/prosody"
)

// Template is one named meter: a syllable count per pada and the canonical
// weight patterns it accepts. Several patterns accommodate permitted
// variants, such as the alternative openings of the shloka.
type Template struct {
	Name          string
	SyllableCount int
	Patterns      []prosody.LinePattern
}

// Kind discriminates the MatchResult variants.
type Kind int

const (
	Empty          Kind = iota // no lines, or first line scanned to nothing
	Identified                 // exact match against a template
	Irregular                  // lines disagree on syllable count
	UnknownLength              // no template with this syllable count
	UnknownPattern             // count known, but no pattern matched
)

// prefixLimit bounds the excerpt reported with UnknownPattern.
const prefixLimit = 15

// MatchResult is the structured outcome of classification. Message renders
// the presentation strings; callers that want to key off the outcome should
// use Kind and the fields instead.
type MatchResult struct {
	Kind          Kind
	Name          string // set for Identified
	SyllableCount int    // first-line count, set for all but Empty
	Prefix        string // bounded observed excerpt, set for UnknownPattern
}

// Message renders the result as the fixed strings the presentation layer
// keys off. The wording is a versioned contract; do not reword casually.
func (r MatchResult) Message() string {
	switch r.Kind {
	case Identified:
		return r.Name
	case Irregular:
		return fmt.Sprintf("Irregular (%d syllables in first line, varying others)", r.SyllableCount)
	case UnknownLength:
		return fmt.Sprintf("Unknown %d-syllable meter.", r.SyllableCount)
	case UnknownPattern:
		return fmt.Sprintf("Candidate %d-syllable meter (No exact match found: %s...).", r.SyllableCount, r.Prefix)
	default:
		return "No recognizable meter structure."
	}
}

// Registry is an immutable meter catalogue. Declaration order is preserved
// and decides ties: the earlier template wins. Registries are safe for
// concurrent use.
type Registry struct {
	order   []Template
	byCount map[int][]Template
}

// NewRegistry builds a registry from templates in declaration order.
func NewRegistry(templates ...Template) *Registry {
	r := &Registry{
		order:   make([]Template, 0, len(templates)),
		byCount: make(map[int][]Template),
	}
	for _, t := range templates {
		r.order = append(r.order, t)
		r.byCount[t.SyllableCount] = append(r.byCount[t.SyllableCount], t)
	}
	return r
}

// Extend returns a new registry with ts appended after r's templates, so
// existing entries keep tie-break priority. r is unchanged.
func (r *Registry) Extend(ts ...Template) *Registry {
	merged := make([]Template, 0, len(r.order)+len(ts))
	merged = append(merged, r.order...)
	merged = append(merged, ts...)
	return NewRegistry(merged...)
}

// Templates returns the catalogue in declaration order. The slice is a copy.
func (r *Registry) Templates() []Template {
	out := make([]Template, len(r.order))
	copy(out, r.order)
	return out
}

// Len returns the number of registered templates.
func (r *Registry) Len() int { return len(r.order) }

// Classify matches a verse against the catalogue.
//
// The first line's syllable count narrows the candidates; every other line
// must have the same count, since all catalogued meters are count-uniform
// per pada. Among candidates, the first exact pattern match in declaration
// order wins.
func (r *Registry) Classify(verse prosody.VersePattern) MatchResult {
	if len(verse) == 0 || len(verse[0]) == 0 {
		return MatchResult{Kind: Empty}
	}

	first := verse[0]
	count := len(first)

	for _, line := range verse[1:] {
		if len(line) != count {
			return MatchResult{Kind: Irregular, SyllableCount: count}
		}
	}

	candidates, ok := r.byCount[count]
	if !ok {
		return MatchResult{Kind: UnknownLength, SyllableCount: count}
	}

	for _, t := range candidates {
		for _, p := range t.Patterns {
			if first.Equal(p) {
				return MatchResult{Kind: Identified, Name: t.Name, SyllableCount: count}
			}
		}
	}

	return MatchResult{
		Kind:          UnknownPattern,
		SyllableCount: count,
		Prefix:        prefix(first, prefixLimit),
	}
}

// prefix renders at most limit weights as space-separated tokens.
func prefix(p prosody.LinePattern, limit int) string {
	if len(p) > limit {
		p = p[:limit]
	}
	return p.String()
}

// mustPattern parses a compile-time "L G ..." literal. It panics on a bad
// literal, which can only happen from a typo in the builtin table.
func mustPattern(tokens string) prosody.LinePattern {
	p, err := ParsePattern(tokens)
	if err != nil {
		panic(fmt.Sprintf("meter: bad builtin pattern %q: %v", tokens, err))
	}
	return p
}

// ParsePattern converts a space-separated "L G ..." token string into a
// LinePattern. Only the tokens L and G are accepted.
func ParsePattern(tokens string) (prosody.LinePattern, error) {
	fields := strings.Fields(tokens)
	p := make(prosody.LinePattern, 0, len(fields))
	for _, f := range fields {
		switch f {
		case "L":
			p = append(p, prosody.Laghu)
		case "G":
			p = append(p, prosody.Guru)
		default:
			return nil, fmt.Errorf("invalid weight token %q", f)
		}
	}
	return p, nil
}
