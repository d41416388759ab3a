// Package render turns recommendation outcomes into the user-facing
// markdown coffee guide.
package render

import (
	"strconv"
	"strings"

	"github.com/beanlog/cuppa/pkg/models"
)

// countryNames maps origin countries onto their Korean display names.
// Countries missing from the table render under their English name.
var countryNames = map[string]string{
	"Ethiopia":    "에티오피아",
	"Kenya":       "케냐",
	"Colombia":    "콜롬비아",
	"Brazil":      "브라질",
	"Panama":      "파나마",
	"Guatemala":   "과테말라",
	"Indonesia":   "인도네시아",
	"Costa Rica":  "코스타리카",
	"Honduras":    "온두라스",
	"El Salvador": "엘살바도르",
	"Peru":        "페루",
	"Rwanda":      "르완다",
}

// Outcome renders any outcome as display text: info and error outcomes
// pass their content through, recommendations render as the full guide.
func Outcome(preference string, out *models.Outcome) string {
	if out.Type == models.OutcomeRecommendation {
		return Recommendation(preference, out.Recommendation)
	}
	return out.Content
}

// Recommendation renders the markdown guide for one recommendation.
func Recommendation(preference string, rec *models.Recommendation) string {
	lines := make([]string, 0, 4+12*len(rec.Countries))
	lines = append(lines,
		"### ☕ "+preference+" 취향 맞춤 커피 가이드",
		"_"+rec.FlavorDescription+" 위주로 엄선했습니다._\n",
	)

	for _, group := range rec.Countries {
		lines = append(lines,
			"#### "+models.Flag(group.Country)+" "+countryName(group.Country)+" ("+group.Country+")",
		)
		for _, coffee := range group.Coffees {
			lines = append(lines,
				"- **"+coffee.Name+"** (총점: "+formatScore(coffee.Rating)+"점)",
				"  └ 📝 특징: "+highlights(coffee.Description),
				"  └ 📊 맛 지표:",
				"    • 아로마 (Aroma): "+StarRating(coffee.Aroma),
				"    • 산미 (Acid): "+StarRating(coffee.Acid),
				"    • 바디 (Body): "+StarRating(coffee.Body),
				"    • 향미 (Flavor): "+StarRating(coffee.Flavor),
				"    • 후미 (Aftertaste): "+StarRating(coffee.Aftertaste),
				"",
			)
		}
	}
	return strings.Join(lines, "\n")
}

// StarRating renders a 10-point score as star glyphs with the halved
// score, e.g. "★★★★☆ (4.3점)". A zero score carries no information.
func StarRating(score float64) string {
	if score == 0 {
		return "정보 없음"
	}
	normalized := score / 2
	full := int(normalized)

	stars := strings.Repeat("★", full)
	if normalized-float64(full) >= 0.25 {
		stars += "☆"
	}
	return stars + " (" + formatScore(normalized) + "점)"
}

func countryName(country string) string {
	if kor, ok := countryNames[country]; ok {
		return kor
	}
	return country
}

// highlights extracts up to two tasting sentences from a description.
// Reviews that open with the espresso preamble swap in the third
// sentence, where the actual notes start.
func highlights(desc string) string {
	parts := strings.Split(desc, ".")
	if len(parts) > 3 {
		parts = parts[:3]
	}
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	if parts[0] == "Evaluated as espresso" && len(parts) >= 3 {
		parts[0] = parts[2]
	}

	picked := make([]string, 0, 2)
	for _, p := range parts[:min(2, len(parts))] {
		if p != "" {
			picked = append(picked, p)
		}
	}
	return strings.Join(picked, ", ")
}

// formatScore formats scores the way the guide displays them, keeping a
// trailing .0 on whole numbers: 4 renders as "4.0".
func formatScore(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
