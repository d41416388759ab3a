package advisor

import (
	"strings"

	"github.com/beanlog/cuppa/internal/palate"
	"github.com/beanlog/cuppa/pkg/models"
)

// narrowThreshold is the include-match count above which the pipeline
// narrows to matching records only. At or below it the broader set is
// kept: partial matches beat an empty result for a small pool.
const narrowThreshold = 5

// filterRecords applies the profile's acid bound, exclusion terms and
// inclusion terms, in that order. The order is load-bearing: the
// narrowThreshold is evaluated against the already acid- and
// exclusion-filtered set.
func filterRecords(records []models.Record, p palate.Profile) []models.Record {
	kept := make([]models.Record, 0, len(records))
	for i := range records {
		if !p.AcidMatch(records[i].Acid) {
			continue
		}
		if containsAnyTerm(records[i].Description, p.ExcludeTerms) {
			continue
		}
		kept = append(kept, records[i])
	}

	if len(p.IncludeTerms) == 0 {
		return kept
	}
	matching := make([]models.Record, 0, len(kept))
	for i := range kept {
		if containsAnyTerm(kept[i].Description, p.IncludeTerms) {
			matching = append(matching, kept[i])
		}
	}
	if len(matching) > narrowThreshold {
		return matching
	}
	return kept
}

// containsAnyTerm reports whether the lowercased text contains any term.
// Terms are stored lowercase in the taxonomy.
func containsAnyTerm(text string, terms []string) bool {
	lower := strings.ToLower(text)
	for _, term := range terms {
		if strings.Contains(lower, term) {
			return true
		}
	}
	return false
}
