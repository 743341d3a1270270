package devanagari

import "testing"

func TestClassifyPartitions(t *testing.T) {
	cases := []struct {
		name string
		r    rune
		want Class
	}{
		{"independent vowel a", 0x0905, ClassIndependentVowel},
		{"independent vowel au", 0x0914, ClassIndependentVowel},
		{"matra aa", 0x093E, ClassDependentVowel},
		{"matra au", 0x094C, ClassDependentVowel},
		{"vocalic l sign", 0x0962, ClassDependentVowel},
		{"consonant ka", 0x0915, ClassConsonant},
		{"consonant ha", 0x0939, ClassConsonant},
		{"nukta consonant qa", 0x0958, ClassConsonant},
		{"extension consonant", 0x097F, ClassConsonant},
		{"halant", 0x094D, ClassHalant},
		{"anusvara", 0x0902, ClassAnusvaraVisarga},
		{"visarga", 0x0903, ClassAnusvaraVisarga},
		{"candrabindu is other", 0x0901, ClassOther},
		{"devanagari digit is other", 0x0966, ClassOther},
		{"danda is other", 0x0964, ClassOther},
		{"latin letter is other", 'a', ClassOther},
		{"space is other", ' ', ClassOther},
	}

	for _, tc := range cases {
		got := Classify(tc.r)
		if got.Class != tc.want {
			t.Errorf("%s: Classify(U+%04X).Class = %v, want %v", tc.name, tc.r, got.Class, tc.want)
		}
		if got.Rune != tc.r {
			t.Errorf("%s: Classify(U+%04X).Rune = U+%04X", tc.name, tc.r, got.Rune)
		}
	}
}

func TestVowelLength(t *testing.T) {
	shorts := []rune{0x0905, 0x0907, 0x0909, 0x090B, 0x090C, 0x093F, 0x0941, 0x0943, 0x0962}
	for _, r := range shorts {
		if got := Classify(r).Length; got != Short {
			t.Errorf("Classify(U+%04X).Length = %v, want Short", r, got)
		}
		if !IsShortVowel(r) {
			t.Errorf("IsShortVowel(U+%04X) = false, want true", r)
		}
	}

	longs := []rune{
		0x0906, // AA
		0x0908, // II
		0x090A, // UU
		0x090F, // E
		0x0910, // AI
		0x0913, // O
		0x0914, // AU
		0x093E, // AA sign
		0x0940, // II sign
		0x0942, // UU sign
		0x0947, // E sign
		0x0948, // AI sign
		0x094B, // O sign
		0x094C, // AU sign
	}
	for _, r := range longs {
		if got := Classify(r).Length; got != Long {
			t.Errorf("Classify(U+%04X).Length = %v, want Long", r, got)
		}
		if IsShortVowel(r) {
			t.Errorf("IsShortVowel(U+%04X) = true, want false", r)
		}
	}
}

func TestNonVowelsCarryNoLength(t *testing.T) {
	for _, r := range []rune{0x0915, 0x094D, 0x0902, 'x'} {
		if got := Classify(r).Length; got != NoLength {
			t.Errorf("Classify(U+%04X).Length = %v, want NoLength", r, got)
		}
	}
}

func TestPredicates(t *testing.T) {
	if !IsConsonant(0x0915) || IsConsonant(0x0905) {
		t.Error("IsConsonant misclassifies")
	}
	if !IsIndependentVowel(0x0905) || IsIndependentVowel(0x093E) {
		t.Error("IsIndependentVowel misclassifies")
	}
	if !IsDependentVowel(0x093E) || IsDependentVowel(0x0915) {
		t.Error("IsDependentVowel misclassifies")
	}
	if !IsHalant(0x094D) || IsHalant(0x093E) {
		t.Error("IsHalant misclassifies")
	}
	if !IsAnusvaraVisarga(0x0902) || !IsAnusvaraVisarga(0x0903) || IsAnusvaraVisarga(0x0901) {
		t.Error("IsAnusvaraVisarga misclassifies")
	}
}

// Classification must depend on the scalar value alone.
func TestClassifyIsPure(t *testing.T) {
	for r := rune(0x0900); r <= 0x097F; r++ {
		a, b := Classify(r), Classify(r)
		if a != b {
			t.Fatalf("Classify(U+%04X) not deterministic: %+v vs %+v", r, a, b)
		}
	}
}
