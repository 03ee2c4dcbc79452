package analysis

import (
	"testing"
	"time"

	"laborlens/domain/labor"
)

func TestSeriesLines_GroupsAndOrders(t *testing.T) {
	ds := testDataset(
		obs(labor.SeriesUnemploymentRate, 2020, time.February, 3.5),
		obs(labor.SeriesUnemploymentRate, 2020, time.January, 3.6),
		obs(labor.SeriesCivilianEmployment, 2020, time.January, 152000),
		obs("XXX00000001", 2020, time.January, 1.0),
	)
	view := viewOf(ds, ds.AvailableSeriesNames(), 2020, 2020)

	lines := SeriesLines(view)
	if len(lines) != 3 {
		t.Fatalf("Expected 3 lines, got %d", len(lines))
	}

	// Catalog order puts employment before the rate; the sentinel group is last
	if lines[0].Name != "Civilian Employment" {
		t.Errorf("Expected Civilian Employment first, got %q", lines[0].Name)
	}
	if lines[1].Name != "Unemployment Rate" {
		t.Errorf("Expected Unemployment Rate second, got %q", lines[1].Name)
	}
	if lines[2].Name != labor.UnknownSeriesName {
		t.Errorf("Expected sentinel group last, got %q", lines[2].Name)
	}

	rate := lines[1]
	if len(rate.Points) != 2 {
		t.Fatalf("Expected 2 rate points, got %d", len(rate.Points))
	}
	if !rate.Points[0].Date.Before(rate.Points[1].Date) {
		t.Errorf("Expected date-ascending points, got %v then %v", rate.Points[0].Date, rate.Points[1].Date)
	}
	if !closeTo(rate.Points[0].Value, 3.6) {
		t.Errorf("Expected January value 3.6, got %v", rate.Points[0].Value)
	}
}

func TestSeriesLines_EmptyView(t *testing.T) {
	view := viewOf(testDataset(), []string{"Unemployment Rate"}, 2019, 2021)

	lines := SeriesLines(view)
	if len(lines) != 0 {
		t.Errorf("Expected no lines for empty view, got %d", len(lines))
	}
}
