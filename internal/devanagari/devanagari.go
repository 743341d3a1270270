// Package devanagari classifies Unicode scalar values from the Devanagari
// block (U+0900-U+097F) into the character categories that drive prosodic
// scansion: vowels (with length), consonants, the halant, and the
// anusvara/visarga syllable modifiers. Classification is a pure function of
// the scalar value; anything outside the recognized partitions is ClassOther.
package devanagari

// Class is the prosodic category of a single scalar value.
type Class int

const (
	ClassOther            Class = iota // not part of the scansion alphabet
	ClassIndependentVowel              // full vowel letter (U+0905-U+0914)
	ClassDependentVowel                // matra / vowel sign (U+093E-U+094C)
	ClassConsonant                     // consonant letter, incl. nukta extensions
	ClassHalant                        // virama (U+094D), suppresses inherent vowel
	ClassAnusvaraVisarga               // syllable modifiers U+0902 / U+0903
)

// String returns a short tag for debugging output.
func (c Class) String() string {
	switch c {
	case ClassIndependentVowel:
		return "vowel"
	case ClassDependentVowel:
		return "matra"
	case ClassConsonant:
		return "consonant"
	case ClassHalant:
		return "halant"
	case ClassAnusvaraVisarga:
		return "modifier"
	default:
		return "other"
	}
}

// Length is the metrical length of a vowel. Non-vowel classes carry NoLength.
type Length int

const (
	NoLength Length = iota
	Short
	Long
)

// Char couples a scalar value with its classification.
type Char struct {
	Rune   rune
	Class  Class
	Length Length
}

// Scansion-relevant codepoints. Short and long vowels interleave inside the
// vowel ranges, so short membership is a value check, not a range check.
const (
	runeAnusvara = 0x0902
	runeVisarga  = 0x0903

	independentVowelLo = 0x0905 // A
	independentVowelHi = 0x0914 // AU

	consonantLo = 0x0915 // KA
	consonantHi = 0x0939 // HA

	dependentVowelLo = 0x093E // AA sign
	dependentVowelHi = 0x094C // AU sign

	runeHalant = 0x094D

	// Nukta-form consonants and additions for borrowed sounds.
	consonantExtALo = 0x0958
	consonantExtAHi = 0x0961
	consonantExtBLo = 0x0978
	consonantExtBHi = 0x097F

	runeVocalicLSign = 0x0962 // dependent form of vocalic L, outside the matra range
)

// shortVowels is the closed set of metrically short vowels: the independent
// letters a, i, u, vocalic r, vocalic l and the dependent signs for i, u,
// vocalic r, vocalic l. Every other vowel is long.
var shortVowels = map[rune]bool{
	0x0905: true, // A
	0x0907: true, // I
	0x0909: true, // U
	0x090B: true, // VOCALIC R
	0x090C: true, // VOCALIC L
	0x093F: true, // I sign
	0x0941: true, // U sign
	0x0943: true, // VOCALIC R sign
	0x0962: true, // VOCALIC L sign
}

// Classify maps a scalar value to its prosodic category. It is total: every
// rune yields a Char, with unrecognized values tagged ClassOther.
func Classify(r rune) Char {
	switch {
	case r >= independentVowelLo && r <= independentVowelHi:
		return Char{Rune: r, Class: ClassIndependentVowel, Length: vowelLength(r)}
	case r >= dependentVowelLo && r <= dependentVowelHi, r == runeVocalicLSign:
		return Char{Rune: r, Class: ClassDependentVowel, Length: vowelLength(r)}
	case r >= consonantLo && r <= consonantHi,
		r >= consonantExtALo && r <= consonantExtAHi,
		r >= consonantExtBLo && r <= consonantExtBHi:
		return Char{Rune: r, Class: ClassConsonant}
	case r == runeHalant:
		return Char{Rune: r, Class: ClassHalant}
	case r == runeAnusvara, r == runeVisarga:
		return Char{Rune: r, Class: ClassAnusvaraVisarga}
	default:
		return Char{Rune: r, Class: ClassOther}
	}
}

func vowelLength(r rune) Length {
	if shortVowels[r] {
		return Short
	}
	return Long
}

// IsConsonant reports whether r is a consonant letter.
func IsConsonant(r rune) bool { return Classify(r).Class == ClassConsonant }

// IsIndependentVowel reports whether r is a full vowel letter.
func IsIndependentVowel(r rune) bool { return Classify(r).Class == ClassIndependentVowel }

// IsDependentVowel reports whether r is a vowel sign (matra).
func IsDependentVowel(r rune) bool { return Classify(r).Class == ClassDependentVowel }

// IsHalant reports whether r is the virama.
func IsHalant(r rune) bool { return r == runeHalant }

// IsAnusvaraVisarga reports whether r is the anusvara or visarga modifier.
func IsAnusvaraVisarga(r rune) bool { return r == runeAnusvara || r == runeVisarga }

// IsShortVowel reports whether r is one of the metrically short vowels.
func IsShortVowel(r rune) bool { return shortVowels[r] }
