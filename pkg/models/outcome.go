package models

// OutcomeType tags the three possible results of a recommendation request.
type OutcomeType string

const (
	OutcomeInfo           OutcomeType = "info"
	OutcomeError          OutcomeType = "error"
	OutcomeRecommendation OutcomeType = "recommendation"
)

// Error codes carried by error outcomes.
const (
	CodeUnclassified       = "unclassified"
	CodeNoMatch            = "no_match"
	CodeTimeout            = "timeout"
	CodeCatalogUnavailable = "catalog_unavailable"
)

// Outcome is the tagged result handed to transports. Exactly one of
// Content (info/error) or Recommendation (recommendation) is populated.
type Outcome struct {
	Type           OutcomeType     `json:"type"`
	Code           string          `json:"code,omitempty"`
	Content        string          `json:"content,omitempty"`
	Recommendation *Recommendation `json:"recommendation,omitempty"`
}

// Recommendation is the structured payload of a successful request.
type Recommendation struct {
	FlavorDescription string         `json:"flavor_description"`
	Countries         []CountryGroup `json:"countries"`
}

// CountryGroup holds the top coffees selected for one origin country.
type CountryGroup struct {
	Country string   `json:"country"`
	Coffees []Coffee `json:"coffees"`
}

// Coffee is one recommended coffee with the attributes the presentation
// layer needs for rendering.
type Coffee struct {
	Name        string  `json:"name"`
	Rating      float64 `json:"rating"`
	Description string  `json:"description"`
	Aroma       float64 `json:"aroma"`
	Acid        float64 `json:"acid"`
	Body        float64 `json:"body"`
	Flavor      float64 `json:"flavor"`
	Aftertaste  float64 `json:"aftertaste"`
}
