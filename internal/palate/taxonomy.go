// Package palate classifies free-text taste preferences into the filter
// profiles the recommendation engine runs against the catalog.
package palate

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed taxonomy.yaml
var taxonomyRawData []byte

// Kind identifies a taste category.
type Kind string

const (
	KindFloral        Kind = "floral"
	KindFruity        Kind = "fruity"
	KindGeneralAcidic Kind = "general_acidic"
	KindNutty         Kind = "nutty"
)

// Subtype is one taste category within a trigger group.
type Subtype struct {
	Kind     Kind     `yaml:"kind"`
	Triggers []string `yaml:"triggers"`
	Include  []string `yaml:"include"`
	Label    string   `yaml:"label"`
}

// Group is a top-level trigger group. Its acid bound, exclusion terms and
// priority countries are shared by all of its subtypes.
type Group struct {
	Name              string    `yaml:"name"`
	Triggers          []string  `yaml:"triggers"`
	MinAcid           *float64  `yaml:"min_acid"`
	MaxAcid           *float64  `yaml:"max_acid"`
	Exclude           []string  `yaml:"exclude"`
	PriorityCountries []string  `yaml:"priority_countries"`
	Subtypes          []Subtype `yaml:"subtypes"`
}

// MetaQuestion configures the criteria-question fail-safe.
type MetaQuestion struct {
	Triggers []string `yaml:"triggers"`
	MaxRunes int      `yaml:"max_runes"`
}

// Taxonomy is the full classification table. Order is significant: groups
// are tried first to last, subtypes within a group likewise, and the last
// subtype of each group is the fallback when no subtype trigger matches.
type Taxonomy struct {
	MetaQuestion MetaQuestion `yaml:"meta_question"`
	Groups       []Group      `yaml:"groups"`
}

var (
	defaultOnce sync.Once
	defaultTax  *Taxonomy
)

// Default returns the embedded taxonomy, parsing it on first use. The
// document ships inside the binary, so a parse failure is a build
// defect and panics.
func Default() *Taxonomy {
	defaultOnce.Do(func() {
		tax, err := Parse(taxonomyRawData)
		if err != nil {
			panic(err)
		}
		defaultTax = tax
	})
	return defaultTax
}

// Parse decodes and validates a taxonomy document.
func Parse(data []byte) (*Taxonomy, error) {
	var tax Taxonomy
	if err := yaml.Unmarshal(data, &tax); err != nil {
		return nil, fmt.Errorf("palate: parse taxonomy: %w", err)
	}
	if err := tax.validate(); err != nil {
		return nil, fmt.Errorf("palate: invalid taxonomy: %w", err)
	}
	return &tax, nil
}

func (t *Taxonomy) validate() error {
	if len(t.MetaQuestion.Triggers) == 0 {
		return fmt.Errorf("meta_question has no triggers")
	}
	if t.MetaQuestion.MaxRunes <= 0 {
		return fmt.Errorf("meta_question.max_runes must be positive")
	}
	if len(t.Groups) == 0 {
		return fmt.Errorf("no groups defined")
	}
	for _, g := range t.Groups {
		if g.Name == "" {
			return fmt.Errorf("group with empty name")
		}
		if len(g.Triggers) == 0 {
			return fmt.Errorf("group %q has no triggers", g.Name)
		}
		if g.MinAcid == nil && g.MaxAcid == nil {
			return fmt.Errorf("group %q has no acid bound", g.Name)
		}
		if len(g.Subtypes) == 0 {
			return fmt.Errorf("group %q has no subtypes", g.Name)
		}
		for i, s := range g.Subtypes {
			if s.Kind == "" {
				return fmt.Errorf("group %q: subtype %d has no kind", g.Name, i)
			}
			if s.Label == "" {
				return fmt.Errorf("group %q: subtype %q has no label", g.Name, s.Kind)
			}
			if len(s.Triggers) == 0 && i != len(g.Subtypes)-1 {
				return fmt.Errorf("group %q: only the last subtype may omit triggers", g.Name)
			}
		}
		if last := g.Subtypes[len(g.Subtypes)-1]; len(last.Triggers) != 0 {
			return fmt.Errorf("group %q: last subtype %q must be the trigger-less fallback", g.Name, last.Kind)
		}
	}
	return nil
}
