package prosody

import (
	"strings"

	"chandas/internal/devanagari"
)

// Scan converts one line of Devanagari text into its weight sequence.
//
// The pass works syllable by syllable:
//
//  1. A consonant optionally followed by a vowel sign, or a bare independent
//     vowel, forms the syllable core. A consonant with no vowel sign carries
//     the inherent short "a". Any other rune is skipped.
//  2. The core's vowel length sets the initial weight (long = Guru).
//  3. A trailing anusvara/visarga forces Guru and is consumed.
//  4. At end of line the weight is final; no lookahead past the input.
//  5. Otherwise a following conjunct upgrades Laghu to Guru: either two
//     consonant letters in a row, or a halant followed by a consonant.
//
// Rule 5 is deliberately permissive: any two adjacent consonant letters count
// as "heavy by position", even where the orthography would not conjunct them.
// A weight already Guru is never downgraded.
func Scan(line string) LinePattern {
	runes := []rune(preprocess(line))
	var pattern LinePattern

	i := 0
	for i < len(runes) {
		cur := devanagari.Classify(runes[i])

		var weight Weight
		switch cur.Class {
		case devanagari.ClassConsonant:
			i++
			if i < len(runes) {
				if next := devanagari.Classify(runes[i]); next.Class == devanagari.ClassDependentVowel {
					weight = weightOf(next.Length)
					i++
					break
				}
			}
			// Inherent short vowel.
			weight = Laghu

		case devanagari.ClassIndependentVowel:
			weight = weightOf(cur.Length)
			i++

		default:
			// Orphan halant, stray modifier, or non-script rune: no syllable.
			i++
			continue
		}

		// Trailing nasalization makes the syllable heavy.
		if i < len(runes) && devanagari.Classify(runes[i]).Class == devanagari.ClassAnusvaraVisarga {
			weight = Guru
			i++
		}

		// Conjunct lookahead needs two more runes; never read past the end.
		if weight == Laghu && i+1 < len(runes) {
			a := devanagari.Classify(runes[i])
			b := devanagari.Classify(runes[i+1])
			direct := a.Class == devanagari.ClassConsonant && b.Class == devanagari.ClassConsonant
			explicit := a.Class == devanagari.ClassHalant && b.Class == devanagari.ClassConsonant
			if direct || explicit {
				weight = Guru
			}
		}

		pattern = append(pattern, weight)
	}

	return pattern
}

func weightOf(l devanagari.Length) Weight {
	if l == devanagari.Long {
		return Guru
	}
	return Laghu
}

// preprocess drops whitespace and the danda punctuation marks before
// scanning. Other non-Devanagari runes are left in place and skipped by the
// scan loop itself.
func preprocess(line string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\r', '\n', '।', '॥':
			return -1
		}
		return r
	}, line)
}
