package meter

import "chandas/internal/prosody"

// The builtin catalogue covers the common varnavrtta meters, expressed as
// gana sequences expanded to explicit weight tokens (ya=LGG ma=GGG ta=GGL
// ra=GLG ja=LGL bha=GLL na=LLL sa=LLG). Anushtubh is count-regulated rather
// than fully fixed, so it carries the two accepted pathya openings.
// Declaration order here is the tie-break order.
var builtin = NewRegistry(
	Template{
		Name:          "Anuṣṭubh (Śloka)",
		SyllableCount: 8,
		Patterns: []prosody.LinePattern{
			mustPattern("L G G G L G G G"),
			mustPattern("G G G G L G G L"),
		},
	},
	Template{
		Name:          "Indravajrā",
		SyllableCount: 11,
		Patterns:      []prosody.LinePattern{mustPattern("G G L G G L L G L G G")},
	},
	Template{
		Name:          "Upendravajrā",
		SyllableCount: 11,
		Patterns:      []prosody.LinePattern{mustPattern("L G L G G L L G L G G")},
	},
	Template{
		Name:          "Vaṁśastha",
		SyllableCount: 12,
		Patterns:      []prosody.LinePattern{mustPattern("L G L G G L L G L G L G")},
	},
	Template{
		Name:          "Drutavilambita",
		SyllableCount: 12,
		Patterns:      []prosody.LinePattern{mustPattern("L L L G L L G L L G L G")},
	},
	Template{
		Name:          "Bhujaṅgaprayāta",
		SyllableCount: 12,
		Patterns:      []prosody.LinePattern{mustPattern("L G G L G G L G G L G G")},
	},
	Template{
		Name:          "Totaka",
		SyllableCount: 12,
		Patterns:      []prosody.LinePattern{mustPattern("L L G L L G L L G L L G")},
	},
	Template{
		Name:          "Vasantatilakā",
		SyllableCount: 14,
		Patterns:      []prosody.LinePattern{mustPattern("G G L G L L L G L L G L G G")},
	},
	Template{
		Name:          "Mālinī",
		SyllableCount: 15,
		Patterns:      []prosody.LinePattern{mustPattern("L L L L L L G G G L G G L G G")},
	},
	Template{
		Name:          "Śikhariṇī",
		SyllableCount: 17,
		Patterns:      []prosody.LinePattern{mustPattern("L G G G G G L L L L L G G L L L G")},
	},
	Template{
		Name:          "Mandākrāntā",
		SyllableCount: 17,
		Patterns:      []prosody.LinePattern{mustPattern("G G G G L L L L L G G L G G L G G")},
	},
	Template{
		Name:          "Śārdūlavikrīḍita",
		SyllableCount: 19,
		Patterns:      []prosody.LinePattern{mustPattern("G G G L L G L G L L L G G G L G G L G")},
	},
	Template{
		Name:          "Sragdharā",
		SyllableCount: 21,
		Patterns:      []prosody.LinePattern{mustPattern("G G G G L G G L L L L L L G G L G G L G G")},
	},
)

// Builtin returns the compile-time meter catalogue.
func Builtin() *Registry { return builtin }
