package models

// CountryOther is the sentinel country assigned to records whose origin
// text matches no canonical producer country.
const CountryOther = "Other"

// Record represents one reviewed coffee in the catalog.
type Record struct {
	Name        string  `json:"name"`
	OriginText  string  `json:"origin_text"`
	Country     string  `json:"country"`
	Description string  `json:"description"`
	Acid        float64 `json:"acid"`
	Body        float64 `json:"body"`
	Flavor      float64 `json:"flavor"`
	Aftertaste  float64 `json:"aftertaste"`
	Aroma       float64 `json:"aroma"`
	Rating      float64 `json:"rating"`
}
