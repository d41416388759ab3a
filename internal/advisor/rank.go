package advisor

import (
	"sort"

	"github.com/beanlog/cuppa/internal/palate"
	"github.com/beanlog/cuppa/pkg/models"
)

// maxCountries is where rating-based fill stops. Priority countries are
// never truncated to it: a profile with five priorities present yields
// five groups.
const maxCountries = 3

// topPerCountry caps how many coffees represent one country.
const topPerCountry = 2

// selectCountries orders the result countries: profile priorities
// present in the filtered set first, in priority order, then
// highest-mean-rating fill up to maxCountries. The sentinel non-country
// never fills a slot, and mean-rating ties keep the countries' first
// encounter order in the filtered set.
func selectCountries(records []models.Record, p palate.Profile) []string {
	present := make(map[string]bool, len(records))
	encounter := make([]string, 0, 8)
	sums := make(map[string]float64)
	counts := make(map[string]int)
	for i := range records {
		c := records[i].Country
		if !present[c] {
			present[c] = true
			encounter = append(encounter, c)
		}
		sums[c] += records[i].Rating
		counts[c]++
	}

	selected := make([]string, 0, maxCountries)
	chosen := make(map[string]bool, maxCountries)
	for _, c := range p.PriorityCountries {
		if present[c] && !chosen[c] {
			selected = append(selected, c)
			chosen[c] = true
		}
	}
	if len(selected) >= maxCountries {
		return selected
	}

	fill := make([]string, 0, len(encounter))
	for _, c := range encounter {
		if !chosen[c] && c != models.CountryOther {
			fill = append(fill, c)
		}
	}
	sort.SliceStable(fill, func(a, b int) bool {
		return sums[fill[a]]/float64(counts[fill[a]]) > sums[fill[b]]/float64(counts[fill[b]])
	})
	for _, c := range fill {
		selected = append(selected, c)
		if len(selected) >= maxCountries {
			break
		}
	}
	return selected
}

// topCoffees returns the country's best records by descending rating,
// ties kept in catalog order.
func topCoffees(records []models.Record, country string) []models.Coffee {
	mine := make([]models.Record, 0, topPerCountry)
	for i := range records {
		if records[i].Country == country {
			mine = append(mine, records[i])
		}
	}
	sort.SliceStable(mine, func(a, b int) bool {
		return mine[a].Rating > mine[b].Rating
	})
	if len(mine) > topPerCountry {
		mine = mine[:topPerCountry]
	}

	out := make([]models.Coffee, 0, len(mine))
	for i := range mine {
		out = append(out, models.Coffee{
			Name:        mine[i].Name,
			Rating:      mine[i].Rating,
			Description: mine[i].Description,
			Aroma:       mine[i].Aroma,
			Acid:        mine[i].Acid,
			Body:        mine[i].Body,
			Flavor:      mine[i].Flavor,
			Aftertaste:  mine[i].Aftertaste,
		})
	}
	return out
}
