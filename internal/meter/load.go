package meter

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// templateFile is the on-disk shape of a user meter catalogue:
//
//	meters:
//	  - name: Rathoddhatā
//	    syllables: 11
//	    patterns:
//	      - "G L G L L L G L G L G"
type templateFile struct {
	Meters []templateEntry `yaml:"meters"`
}

type templateEntry struct {
	Name      string   `yaml:"name"`
	Syllables int      `yaml:"syllables"`
	Patterns  []string `yaml:"patterns"`
}

// LoadTemplates reads and validates a YAML meter catalogue. Every pattern
// must consist of L/G tokens and match the declared syllable count. The
// returned templates are meant for Registry.Extend, so builtins keep
// priority over user additions.
func LoadTemplates(path string) ([]Template, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read meter file: %w", err)
	}

	var file templateFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse meter file %s: %w", path, err)
	}

	templates := make([]Template, 0, len(file.Meters))
	for i, entry := range file.Meters {
		t, err := entry.toTemplate()
		if err != nil {
			return nil, fmt.Errorf("meter file %s, entry %d: %w", path, i, err)
		}
		templates = append(templates, t)
	}
	return templates, nil
}

func (e templateEntry) toTemplate() (Template, error) {
	if e.Name == "" {
		return Template{}, fmt.Errorf("meter name is required")
	}
	if e.Syllables <= 0 {
		return Template{}, fmt.Errorf("meter %q: syllable count must be positive, got %d", e.Name, e.Syllables)
	}
	if len(e.Patterns) == 0 {
		return Template{}, fmt.Errorf("meter %q: at least one pattern is required", e.Name)
	}

	t := Template{Name: e.Name, SyllableCount: e.Syllables}
	for _, raw := range e.Patterns {
		p, err := ParsePattern(raw)
		if err != nil {
			return Template{}, fmt.Errorf("meter %q: %w", e.Name, err)
		}
		if len(p) != e.Syllables {
			return Template{}, fmt.Errorf("meter %q: pattern %q has %d weights, declared %d syllables",
				e.Name, raw, len(p), e.Syllables)
		}
		t.Patterns = append(t.Patterns, p)
	}
	return t, nil
}
