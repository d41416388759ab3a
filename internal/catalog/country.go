package catalog

import (
	"strings"

	"github.com/beanlog/cuppa/pkg/models"
)

// MajorCountries is the ordered list of canonical producer countries.
// Order is the resolution tie-break: the first name contained in an
// origin text wins, so an origin mentioning both Indonesia and Sumatra
// resolves to Indonesia.
var MajorCountries = []string{
	"Ethiopia", "Kenya", "Colombia", "Brazil", "Panama", "Guatemala",
	"Costa Rica", "Indonesia", "Honduras", "El Salvador", "Peru", "Rwanda",
	"Mexico", "Uganda", "Tanzania", "Nicaragua", "Yemen", "Sumatra", "India", "Vietnam",
}

// ResolveCountry maps a free-text origin description onto a canonical
// country via case-insensitive substring containment in list order.
// Origins matching no canonical name resolve to models.CountryOther.
func ResolveCountry(originText string) string {
	lower := strings.ToLower(originText)
	for _, country := range MajorCountries {
		if strings.Contains(lower, strings.ToLower(country)) {
			return country
		}
	}
	return models.CountryOther
}
