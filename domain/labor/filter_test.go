package labor

import (
	"testing"
	"time"
)

// monthly builds an observation on the first of month m of year y
func monthly(id SeriesID, y int, m time.Month, value float64) Observation {
	return Observation{
		SeriesID: id,
		Date:     time.Date(y, m, 1, 0, 0, 0, 0, time.UTC),
		Year:     y,
		Value:    value,
	}
}

func fixtureDataset() *Dataset {
	return NewDataset([]Observation{
		monthly(SeriesUnemploymentRate, 2019, time.January, 3.6),
		monthly(SeriesUnemploymentRate, 2020, time.January, 8.06),
		monthly(SeriesUnemploymentRate, 2021, time.January, 5.4),
		monthly(SeriesCivilianEmployment, 2019, time.January, 156000),
		monthly(SeriesCivilianEmployment, 2020, time.January, 147000),
		monthly(SeriesAvgWeeklyHours, 2020, time.January, 34.5),
		monthly("XXX00000001", 2020, time.January, 1.0),
	}, "fixture")
}

func TestNewDataset_AnnotatesAndBoundsYears(t *testing.T) {
	ds := fixtureDataset()

	if ds.MinYear != 2019 || ds.MaxYear != 2021 {
		t.Errorf("Expected observed year bounds [2019, 2021], got [%d, %d]", ds.MinYear, ds.MaxYear)
	}

	for _, obs := range ds.Observations {
		if obs.SeriesName == "" {
			t.Errorf("Observation %s/%d missing series name annotation", obs.SeriesID, obs.Year)
		}
	}

	// Unmapped id carries the sentinel
	unknown := ds.ObservationsFor("XXX00000001")
	if len(unknown) != 1 {
		t.Fatalf("Expected 1 observation for unmapped id, got %d", len(unknown))
	}
	if unknown[0].SeriesName != UnknownSeriesName {
		t.Errorf("Expected sentinel annotation, got %q", unknown[0].SeriesName)
	}
}

func TestNewDataset_BackfillsMissingYear(t *testing.T) {
	ds := NewDataset([]Observation{
		{SeriesID: SeriesUnemploymentRate, Date: time.Date(2022, time.March, 1, 0, 0, 0, 0, time.UTC), Value: 3.8},
	}, "fixture")

	if ds.Observations[0].Year != 2022 {
		t.Errorf("Expected year backfilled from date to 2022, got %d", ds.Observations[0].Year)
	}
}

func TestNewDataset_StoredYearIsAuthoritative(t *testing.T) {
	// A year column that disagrees with the date is kept as-is
	ds := NewDataset([]Observation{
		{SeriesID: SeriesUnemploymentRate, Date: time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC), Year: 2019, Value: 3.6},
	}, "fixture")

	if ds.Observations[0].Year != 2019 {
		t.Errorf("Expected stored year 2019 to win over date year, got %d", ds.Observations[0].Year)
	}
}

func TestFilter_UnemploymentRateScenario(t *testing.T) {
	// Selecting "Unemployment Rate" over 2019-2020 returns exactly the
	// 3.6 and 8.06 readings
	ds := fixtureDataset()
	view := Filter(ds, FilterSelection{
		SeriesNames: []string{"Unemployment Rate"},
		Years:       YearRange{From: 2019, To: 2020},
	})

	if view.Len() != 2 {
		t.Fatalf("Expected exactly 2 rows, got %d", view.Len())
	}
	if view.Observations[0].Value != 3.6 || view.Observations[1].Value != 8.06 {
		t.Errorf("Expected values [3.6, 8.06], got [%v, %v]",
			view.Observations[0].Value, view.Observations[1].Value)
	}
}

func TestFilter_Exactness(t *testing.T) {
	ds := fixtureDataset()
	sel := FilterSelection{
		SeriesNames: []string{"Unemployment Rate", "Civilian Employment"},
		Years:       YearRange{From: 2019, To: 2020},
	}
	view := Filter(ds, sel)

	// Every returned row satisfies the predicate
	ids := SeriesIDsFor(sel.SeriesNames)
	for _, obs := range view.Observations {
		if !ids[obs.SeriesID] {
			t.Errorf("Row with series %s should not have passed the filter", obs.SeriesID)
		}
		if !sel.Years.Contains(obs.Year) {
			t.Errorf("Row with year %d is outside [%d, %d]", obs.Year, sel.Years.From, sel.Years.To)
		}
	}

	// And the result is maximal: counting matches directly agrees
	want := 0
	for _, obs := range ds.Observations {
		if ids[obs.SeriesID] && sel.Years.Contains(obs.Year) {
			want++
		}
	}
	if view.Len() != want {
		t.Errorf("Expected %d matching rows, got %d", want, view.Len())
	}
}

func TestFilter_Idempotence(t *testing.T) {
	ds := fixtureDataset()
	sel := FilterSelection{
		SeriesNames: []string{"Unemployment Rate", "Average Weekly Hours of All Employees"},
		Years:       YearRange{From: 2019, To: 2021},
	}

	once := Filter(ds, sel)
	twice := FilterView(once, sel)

	if once.Len() != twice.Len() {
		t.Fatalf("Filter not idempotent: %d rows then %d rows", once.Len(), twice.Len())
	}
	for i := range once.Observations {
		if once.Observations[i] != twice.Observations[i] {
			t.Errorf("Row %d changed across second filter pass", i)
		}
	}
}

func TestFilter_EmptySelection(t *testing.T) {
	// Zero selected names is an empty result, not an error
	ds := fixtureDataset()
	view := Filter(ds, FilterSelection{Years: YearRange{From: 2019, To: 2021}})

	if !view.Empty() {
		t.Errorf("Expected empty view for empty selection, got %d rows", view.Len())
	}
}

func TestFilter_OutOfDomainYearRange(t *testing.T) {
	ds := fixtureDataset()

	// Entirely outside the observed span: empty, no error
	view := Filter(ds, FilterSelection{
		SeriesNames: []string{"Unemployment Rate"},
		Years:       YearRange{From: 1990, To: 1995},
	})
	if !view.Empty() {
		t.Errorf("Expected empty view for out-of-domain range, got %d rows", view.Len())
	}

	// Degenerate range (From > To) contains nothing
	view = Filter(ds, FilterSelection{
		SeriesNames: []string{"Unemployment Rate"},
		Years:       YearRange{From: 2021, To: 2019},
	})
	if !view.Empty() {
		t.Errorf("Expected empty view for degenerate range, got %d rows", view.Len())
	}
}

func TestFilter_InclusiveBounds(t *testing.T) {
	ds := fixtureDataset()
	view := Filter(ds, FilterSelection{
		SeriesNames: []string{"Unemployment Rate"},
		Years:       YearRange{From: 2020, To: 2020},
	})

	if view.Len() != 1 {
		t.Fatalf("Expected single-year range to keep its boundary rows, got %d rows", view.Len())
	}
	if view.Observations[0].Year != 2020 {
		t.Errorf("Expected the 2020 row, got year %d", view.Observations[0].Year)
	}
}

func TestFilter_UnknownSeriesSelectable(t *testing.T) {
	// The sentinel name is a real choice: it keeps unmapped rows
	ds := fixtureDataset()
	view := Filter(ds, FilterSelection{
		SeriesNames: []string{UnknownSeriesName},
		Years:       YearRange{From: 2019, To: 2021},
	})

	if view.Len() != 1 {
		t.Fatalf("Expected 1 unmapped row, got %d", view.Len())
	}
	if view.Observations[0].SeriesID != "XXX00000001" {
		t.Errorf("Expected the unmapped row, got %s", view.Observations[0].SeriesID)
	}
}

func TestDataset_DefaultSelection(t *testing.T) {
	ds := fixtureDataset()

	// Defaults include only the known names with rows present
	names := ds.DefaultSeriesNames()
	want := []string{"Civilian Employment", "Unemployment Rate", "Average Weekly Hours of All Employees"}
	if len(names) != len(want) {
		t.Fatalf("Expected %d default names, got %d: %v", len(want), len(names), names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("Default name %d: expected %q, got %q", i, want[i], names[i])
		}
	}

	// Available names additionally carry the sentinel, last
	available := ds.AvailableSeriesNames()
	if len(available) != len(want)+1 {
		t.Fatalf("Expected %d available names, got %d: %v", len(want)+1, len(available), available)
	}
	if available[len(available)-1] != UnknownSeriesName {
		t.Errorf("Expected sentinel last in available names, got %q", available[len(available)-1])
	}
}

func TestDataset_DefaultYearRange(t *testing.T) {
	ds := fixtureDataset()

	// Floor inside span raises the lower bound
	r := ds.DefaultYearRange(2020)
	if r.From != 2020 || r.To != 2021 {
		t.Errorf("Expected [2020, 2021], got [%d, %d]", r.From, r.To)
	}

	// Floor below span leaves observed bounds alone
	r = ds.DefaultYearRange(2000)
	if r.From != 2019 || r.To != 2021 {
		t.Errorf("Expected [2019, 2021], got [%d, %d]", r.From, r.To)
	}

	// Floor above span is ignored rather than producing an empty range
	r = ds.DefaultYearRange(2030)
	if r.From != 2019 || r.To != 2021 {
		t.Errorf("Expected [2019, 2021], got [%d, %d]", r.From, r.To)
	}
}

func TestDataset_ClampYearRange(t *testing.T) {
	ds := fixtureDataset()

	r := ds.ClampYearRange(YearRange{From: 1990, To: 2050})
	if r.From != 2019 || r.To != 2021 {
		t.Errorf("Expected clamp to [2019, 2021], got [%d, %d]", r.From, r.To)
	}

	// Zero To means "no upper bound given" and clamps to the max year
	r = ds.ClampYearRange(YearRange{From: 2020})
	if r.From != 2020 || r.To != 2021 {
		t.Errorf("Expected [2020, 2021], got [%d, %d]", r.From, r.To)
	}
}
