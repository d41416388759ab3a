package testutil

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/beanlog/cuppa/pkg/models"
)

// NewRecord returns a Record with sensible defaults, suitable for test
// fixtures. Override individual fields via options as needed.
func NewRecord(opts ...func(*models.Record)) models.Record {
	r := models.Record{
		Name:        "Test Roast",
		OriginText:  "Brazil Cerrado",
		Country:     "Brazil",
		Description: "Chocolate and nut. Sweet caramel finish. Heavy body.",
		Acid:        5.5,
		Body:        8.5,
		Flavor:      8.0,
		Aftertaste:  8.0,
		Aroma:       8.0,
		Rating:      88,
	}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// WithName sets the record name.
func WithName(name string) func(*models.Record) {
	return func(r *models.Record) { r.Name = name }
}

// WithCountry sets both the resolved country and the origin text, so
// the record survives a CSV round trip with the same country.
func WithCountry(country string) func(*models.Record) {
	return func(r *models.Record) {
		r.Country = country
		r.OriginText = country
	}
}

// WithDescription sets the tasting notes.
func WithDescription(desc string) func(*models.Record) {
	return func(r *models.Record) { r.Description = desc }
}

// WithAcid sets the acid score.
func WithAcid(acid float64) func(*models.Record) {
	return func(r *models.Record) { r.Acid = acid }
}

// WithRating sets the overall rating.
func WithRating(rating float64) func(*models.Record) {
	return func(r *models.Record) { r.Rating = rating }
}

// WithScores sets the five metric scores at once, in display order.
func WithScores(aroma, acid, body, flavor, aftertaste float64) func(*models.Record) {
	return func(r *models.Record) {
		r.Aroma = aroma
		r.Acid = acid
		r.Body = body
		r.Flavor = flavor
		r.Aftertaste = aftertaste
	}
}

// WriteCatalogCSV writes records as a catalog CSV file under a test
// temp directory and returns its path.
func WriteCatalogCSV(t *testing.T, records []models.Record) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "coffee.csv")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("testutil.WriteCatalogCSV: create: %v", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	rows := [][]string{{"name", "origin", "desc_1", "acid", "body", "flavor", "aftertaste", "aroma", "rating"}}
	for _, r := range records {
		rows = append(rows, []string{
			r.Name,
			r.OriginText,
			r.Description,
			formatScore(r.Acid),
			formatScore(r.Body),
			formatScore(r.Flavor),
			formatScore(r.Aftertaste),
			formatScore(r.Aroma),
			formatScore(r.Rating),
		})
	}
	if err := w.WriteAll(rows); err != nil {
		t.Fatalf("testutil.WriteCatalogCSV: write: %v", err)
	}
	return path
}

func formatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
