package palate

import (
	"strings"
	"unicode/utf8"
)

// Profile carries the filter and ranking parameters derived from a
// classified preference. It is created per request and never persisted.
type Profile struct {
	Kind              Kind
	MinAcid           *float64
	MaxAcid           *float64
	IncludeTerms      []string
	ExcludeTerms      []string
	PriorityCountries []string
	FlavorDescription string
}

// AcidMatch reports whether an acid score satisfies the profile's bound.
func (p Profile) AcidMatch(acid float64) bool {
	if p.MinAcid != nil && acid < *p.MinAcid {
		return false
	}
	if p.MaxAcid != nil && acid > *p.MaxAcid {
		return false
	}
	return true
}

// Classifier maps free-text preferences onto taste profiles using an
// immutable taxonomy table.
type Classifier struct {
	tax *Taxonomy
}

// NewClassifier creates a classifier over the given taxonomy.
func NewClassifier(tax *Taxonomy) *Classifier {
	return &Classifier{tax: tax}
}

// Classify returns the profile for a preference string. The boolean is
// false when the text matches no trigger group; callers surface guidance
// text for that case instead of an empty result. Classification is a pure
// function of the lowercased input.
func (c *Classifier) Classify(preference string) (Profile, bool) {
	lower := strings.ToLower(preference)
	for _, g := range c.tax.Groups {
		if !containsAny(lower, g.Triggers) {
			continue
		}
		sub := g.Subtypes[len(g.Subtypes)-1]
		for _, s := range g.Subtypes {
			if len(s.Triggers) > 0 && containsAny(lower, s.Triggers) {
				sub = s
				break
			}
		}
		return Profile{
			Kind:              sub.Kind,
			MinAcid:           g.MinAcid,
			MaxAcid:           g.MaxAcid,
			IncludeTerms:      sub.Include,
			ExcludeTerms:      g.Exclude,
			PriorityCountries: g.PriorityCountries,
			FlavorDescription: sub.Label,
		}, true
	}
	return Profile{}, false
}

// IsMetaQuestion reports whether the raw input is a short question about
// the recommendation criteria themselves. The rune-length cutoff keeps
// longer compound requests that merely mention a trigger word from being
// hijacked.
func (c *Classifier) IsMetaQuestion(preference string) bool {
	if utf8.RuneCountInString(preference) >= c.tax.MetaQuestion.MaxRunes {
		return false
	}
	return containsAny(preference, c.tax.MetaQuestion.Triggers)
}

func containsAny(s string, terms []string) bool {
	for _, t := range terms {
		if strings.Contains(s, t) {
			return true
		}
	}
	return false
}
