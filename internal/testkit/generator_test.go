package testkit

import (
	"context"
	"math"
	"testing"
	"time"

	"laborlens/domain/labor"
)

func TestLaborDataGenerator_Basic(t *testing.T) {
	config := GeneratorConfig{StartYear: 2019, EndYear: 2021, Seed: 42}

	generator := NewLaborDataGenerator(config)
	observations := generator.Generate()

	// 36 months, six series each
	if len(observations) != 36*6 {
		t.Fatalf("Expected %d observations, got %d", 36*6, len(observations))
	}

	for i, obs := range observations {
		if obs.SeriesID == "" {
			t.Errorf("Observation %d has empty series id", i)
		}
		if obs.Year != obs.Date.Year() {
			t.Errorf("Observation %d year %d disagrees with date %v", i, obs.Year, obs.Date)
		}
		if math.IsNaN(obs.Value) || math.IsInf(obs.Value, 0) {
			t.Errorf("Observation %d has non-finite value %v", i, obs.Value)
		}
	}
}

func TestLaborDataGenerator_AllSeriesPresent(t *testing.T) {
	generator := NewLaborDataGenerator(GeneratorConfig{StartYear: 2018, EndYear: 2018, Seed: 42})
	observations := generator.Generate()

	expected := map[labor.SeriesID]bool{
		labor.SeriesCivilianEmployment:   false,
		labor.SeriesCivilianUnemployment: false,
		labor.SeriesUnemploymentRate:     false,
		labor.SeriesTotalNonfarm:         false,
		labor.SeriesAvgWeeklyHours:       false,
		labor.SeriesAvgHourlyEarnings:    false,
	}
	for _, obs := range observations {
		if _, ok := expected[obs.SeriesID]; ok {
			expected[obs.SeriesID] = true
		} else {
			t.Errorf("Unexpected series id %q", obs.SeriesID)
		}
	}
	for id, found := range expected {
		if !found {
			t.Errorf("Series %s was not generated", id)
		}
	}
}

func TestLaborDataGenerator_Deterministic(t *testing.T) {
	config := GeneratorConfig{StartYear: 2019, EndYear: 2022, Seed: 12345}

	first := NewLaborDataGenerator(config).Generate()
	second := NewLaborDataGenerator(config).Generate()

	if len(first) != len(second) {
		t.Fatalf("Observation counts differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("Observations differ at index %d: %+v vs %+v", i, first[i], second[i])
			break
		}
	}
}

func TestLaborDataGenerator_PlausibleMagnitudes(t *testing.T) {
	generator := NewLaborDataGenerator(DefaultGeneratorConfig())

	for _, obs := range generator.Generate() {
		switch obs.SeriesID {
		case labor.SeriesUnemploymentRate:
			if obs.Value <= 0 || obs.Value >= 100 {
				t.Errorf("Implausible unemployment rate %v at %v", obs.Value, obs.Date)
			}
		case labor.SeriesAvgWeeklyHours:
			if obs.Value < 30 || obs.Value > 40 {
				t.Errorf("Implausible weekly hours %v at %v", obs.Value, obs.Date)
			}
		case labor.SeriesAvgHourlyEarnings:
			if obs.Value < 20 || obs.Value > 45 {
				t.Errorf("Implausible hourly earnings %v at %v", obs.Value, obs.Date)
			}
		case labor.SeriesCivilianEmployment, labor.SeriesTotalNonfarm:
			if obs.Value < 100000 {
				t.Errorf("Implausible employment level %v at %v", obs.Value, obs.Date)
			}
		}
	}
}

// Test that the spring 2020 shock is visible in the generated rate
func TestLaborDataGenerator_ShockRaisesRate(t *testing.T) {
	generator := NewLaborDataGenerator(GeneratorConfig{StartYear: 2020, EndYear: 2020, Seed: 42})

	rates := make(map[time.Month]float64)
	for _, obs := range generator.Generate() {
		if obs.SeriesID == labor.SeriesUnemploymentRate {
			rates[obs.Date.Month()] = obs.Value
		}
	}

	if rates[time.April] < 10 {
		t.Errorf("Expected a double-digit April 2020 rate, got %v", rates[time.April])
	}
	if rates[time.April] <= rates[time.January]*2 {
		t.Errorf("Expected April rate well above January (%v vs %v)", rates[time.April], rates[time.January])
	}
	if rates[time.December] >= rates[time.April] {
		t.Errorf("Expected recovery by December (%v vs April %v)", rates[time.December], rates[time.April])
	}
}

func TestSyntheticSource_Load(t *testing.T) {
	source := NewSyntheticSource(GeneratorConfig{StartYear: 2019, EndYear: 2020, Seed: 42})

	if source.Describe() != "demo:synthetic" {
		t.Errorf("Unexpected description %q", source.Describe())
	}

	observations, err := source.Load(context.Background())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	ds := labor.NewDataset(observations, source.Describe())
	names := ds.AvailableSeriesNames()
	if len(names) != 6 {
		t.Fatalf("Expected all six known series, got %v", names)
	}
	for _, name := range names {
		if name == labor.UnknownSeriesName {
			t.Errorf("Synthetic data should not produce the unknown sentinel")
		}
	}
	if ds.MinYear != 2019 || ds.MaxYear != 2020 {
		t.Errorf("Expected span [2019, 2020], got [%d, %d]", ds.MinYear, ds.MaxYear)
	}
}
