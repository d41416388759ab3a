package models

// CountryFlag maps an origin country to its flag emoji for chat-facing
// output. Only the countries the original review corpus actually surfaces
// are mapped; everything else renders the neutral flag.
var CountryFlag = map[string]string{
	"Ethiopia":  "🇪🇹",
	"Kenya":     "🇰🇪",
	"Colombia":  "🇨🇴",
	"Brazil":    "🇧🇷",
	"Panama":    "🇵🇦",
	"Guatemala": "🇬🇹",
	"Indonesia": "🇮🇩",
}

// Flag returns the flag emoji for a country.
// Returns the white flag for unmapped countries (including "Other").
func Flag(country string) string {
	if f, ok := CountryFlag[country]; ok {
		return f
	}
	return "🏳️"
}
