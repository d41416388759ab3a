package advisor

import (
	"testing"

	"github.com/beanlog/cuppa/internal/palate"
	"github.com/beanlog/cuppa/internal/testutil"
	"github.com/beanlog/cuppa/pkg/models"
)

func TestSelectCountriesPriorityFirst(t *testing.T) {
	// Priorities present in the set come first in priority order; the
	// remaining slot goes to the best mean rating among the rest.
	p := palate.Profile{PriorityCountries: []string{"Ethiopia", "Panama", "Kenya"}}
	records := []models.Record{
		testutil.NewRecord(testutil.WithCountry("Kenya"), testutil.WithRating(81)),
		testutil.NewRecord(testutil.WithCountry("Ethiopia"), testutil.WithRating(80)),
		testutil.NewRecord(testutil.WithCountry("Colombia"), testutil.WithRating(95)),
		testutil.NewRecord(testutil.WithCountry("Peru"), testutil.WithRating(93)),
	}

	got := selectCountries(records, p)
	want := []string{"Ethiopia", "Kenya", "Colombia"}
	if len(got) != len(want) {
		t.Fatalf("selected %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("selected[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestSelectCountriesPriorityNotTruncated(t *testing.T) {
	p := palate.Profile{PriorityCountries: []string{"Brazil", "Colombia", "Guatemala", "Indonesia", "India"}}
	records := []models.Record{
		testutil.NewRecord(testutil.WithCountry("India")),
		testutil.NewRecord(testutil.WithCountry("Brazil")),
		testutil.NewRecord(testutil.WithCountry("Indonesia")),
		testutil.NewRecord(testutil.WithCountry("Guatemala")),
		testutil.NewRecord(testutil.WithCountry("Colombia")),
	}

	got := selectCountries(records, p)
	want := []string{"Brazil", "Colombia", "Guatemala", "Indonesia", "India"}
	if len(got) != len(want) {
		t.Fatalf("selected %d countries %v, want all %d priorities", len(got), got, len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("selected[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestSelectCountriesFillSkipsOther(t *testing.T) {
	p := palate.Profile{PriorityCountries: []string{"Ethiopia"}}
	records := []models.Record{
		testutil.NewRecord(testutil.WithCountry("Ethiopia"), testutil.WithRating(85)),
		testutil.NewRecord(testutil.WithCountry(models.CountryOther), testutil.WithRating(99)),
		testutil.NewRecord(testutil.WithCountry("Rwanda"), testutil.WithRating(80)),
	}

	got := selectCountries(records, p)
	want := []string{"Ethiopia", "Rwanda"}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("selected %v, want %v (slots stay open rather than going to %q)",
			got, want, models.CountryOther)
	}
}

func TestSelectCountriesMeanRatingFill(t *testing.T) {
	// Colombia mean (90+70)/2 = 80 loses to Honduras 85.
	records := []models.Record{
		testutil.NewRecord(testutil.WithCountry("Colombia"), testutil.WithRating(90)),
		testutil.NewRecord(testutil.WithCountry("Colombia"), testutil.WithRating(70)),
		testutil.NewRecord(testutil.WithCountry("Honduras"), testutil.WithRating(85)),
	}

	got := selectCountries(records, palate.Profile{})
	want := []string{"Honduras", "Colombia"}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("selected %v, want %v", got, want)
	}
}

func TestSelectCountriesTieKeepsEncounterOrder(t *testing.T) {
	records := []models.Record{
		testutil.NewRecord(testutil.WithCountry("Kenya"), testutil.WithRating(90)),
		testutil.NewRecord(testutil.WithCountry("Rwanda"), testutil.WithRating(90)),
		testutil.NewRecord(testutil.WithCountry("Peru"), testutil.WithRating(90)),
		testutil.NewRecord(testutil.WithCountry("Mexico"), testutil.WithRating(89)),
	}

	got := selectCountries(records, palate.Profile{})
	want := []string{"Kenya", "Rwanda", "Peru"}
	if len(got) != len(want) {
		t.Fatalf("selected %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("selected[%d] = %q, want %q (encounter order on equal means)", i, got[i], want[i])
		}
	}
}

func TestTopCoffeesTopTwoByRating(t *testing.T) {
	records := []models.Record{
		testutil.NewRecord(testutil.WithCountry("Kenya"), testutil.WithName("a"), testutil.WithRating(88)),
		testutil.NewRecord(testutil.WithCountry("Kenya"), testutil.WithName("b"), testutil.WithRating(92)),
		testutil.NewRecord(testutil.WithCountry("Kenya"), testutil.WithName("c"), testutil.WithRating(90)),
		testutil.NewRecord(testutil.WithCountry("Kenya"), testutil.WithName("d"), testutil.WithRating(92)),
		testutil.NewRecord(testutil.WithCountry("Kenya"), testutil.WithName("e"), testutil.WithRating(85)),
	}

	got := topCoffees(records, "Kenya")
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	// b and d tie at 92; catalog order puts b first.
	if got[0].Name != "b" || got[1].Name != "d" {
		t.Errorf("top coffees = [%s %s], want [b d]", got[0].Name, got[1].Name)
	}
}

func TestTopCoffeesCarriesAttributes(t *testing.T) {
	records := []models.Record{
		testutil.NewRecord(
			testutil.WithCountry("Panama"),
			testutil.WithName("Esmeralda Geisha"),
			testutil.WithDescription("Jasmine. Bergamot. Silky."),
			testutil.WithRating(97),
			testutil.WithScores(9.8, 9.4, 8.2, 9.6, 9.0),
		),
	}

	got := topCoffees(records, "Panama")
	if len(got) != 1 {
		t.Fatalf("len = %d, want 1", len(got))
	}
	want := models.Coffee{
		Name:        "Esmeralda Geisha",
		Rating:      97,
		Description: "Jasmine. Bergamot. Silky.",
		Aroma:       9.8,
		Acid:        9.4,
		Body:        8.2,
		Flavor:      9.6,
		Aftertaste:  9.0,
	}
	if got[0] != want {
		t.Errorf("coffee = %+v, want %+v", got[0], want)
	}
}

func TestTopCoffeesIgnoresOtherCountries(t *testing.T) {
	records := []models.Record{
		testutil.NewRecord(testutil.WithCountry("Kenya"), testutil.WithName("keep")),
		testutil.NewRecord(testutil.WithCountry("Brazil"), testutil.WithName("skip")),
	}

	got := topCoffees(records, "Kenya")
	if len(got) != 1 || got[0].Name != "keep" {
		t.Errorf("got %v, want only the Kenya record", got)
	}
}
