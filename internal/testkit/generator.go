package testkit

import (
	"math"
	"math/rand"
	"time"

	"laborlens/domain/labor"
)

// GeneratorConfig configures the synthetic labor data generator
type GeneratorConfig struct {
	StartYear int   `json:"start_year"`
	EndYear   int   `json:"end_year"`
	Seed      int64 `json:"seed"`
}

// DefaultGeneratorConfig returns the window the demo dashboard runs with
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		StartYear: 2015,
		EndYear:   2024,
		Seed:      42,
	}
}

// LaborDataGenerator produces monthly observations shaped like the six
// published series: slow employment growth, a deep shock in spring
// 2020, then a multi-year recovery.
type LaborDataGenerator struct {
	config GeneratorConfig
	rng    *rand.Rand
}

// NewLaborDataGenerator creates a new labor data generator
func NewLaborDataGenerator(config GeneratorConfig) *LaborDataGenerator {
	return &LaborDataGenerator{
		config: config,
		rng:    rand.New(rand.NewSource(config.Seed)),
	}
}

// Generate emits one observation per series per month, in month order
func (g *LaborDataGenerator) Generate() []labor.Observation {
	var observations []labor.Observation

	monthIndex := 0
	for year := g.config.StartYear; year <= g.config.EndYear; year++ {
		for month := time.January; month <= time.December; month++ {
			date := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
			observations = append(observations, g.monthObservations(date, monthIndex)...)
			monthIndex++
		}
	}

	return observations
}

// monthObservations builds the six series values for one month.
// Employment levels are in thousands; the unemployment rate is derived
// from the generated levels so the proportion view stays consistent.
func (g *LaborDataGenerator) monthObservations(date time.Time, monthIndex int) []labor.Observation {
	s := shock(date)
	trend := float64(monthIndex)

	employment := (148000 + 35*trend) * (1 - 0.145*s)
	employment += g.rng.NormFloat64() * 60

	unemployment := 8200 - 45*trend
	if unemployment < 5600 {
		unemployment = 5600
	}
	unemployment += 17500 * s
	unemployment += g.rng.NormFloat64() * 40

	rate := unemployment / (employment + unemployment) * 100

	nonfarm := (141000 + 32*trend) * (1 - 0.14*s)
	nonfarm += g.rng.NormFloat64() * 55

	// Average hours dip seasonally and bump during the shock as
	// lower-hour jobs drop out of the sample first
	hours := 34.4 + 0.25*math.Sin(2*math.Pi*float64(date.Month()-1)/12) + 0.5*s
	hours += g.rng.NormFloat64() * 0.08

	earnings := 24.6 + 0.048*trend + 1.6*s
	earnings += g.rng.NormFloat64() * 0.05

	year := date.Year()
	return []labor.Observation{
		{SeriesID: labor.SeriesCivilianEmployment, Date: date, Year: year, Value: round(employment, 0)},
		{SeriesID: labor.SeriesCivilianUnemployment, Date: date, Year: year, Value: round(unemployment, 0)},
		{SeriesID: labor.SeriesUnemploymentRate, Date: date, Year: year, Value: round(rate, 1)},
		{SeriesID: labor.SeriesTotalNonfarm, Date: date, Year: year, Value: round(nonfarm, 0)},
		{SeriesID: labor.SeriesAvgWeeklyHours, Date: date, Year: year, Value: round(hours, 1)},
		{SeriesID: labor.SeriesAvgHourlyEarnings, Date: date, Year: year, Value: round(earnings, 2)},
	}
}

// shock is the pandemic disruption factor: zero before March 2020,
// full in April 2020, then a slow exponential recovery
func shock(date time.Time) float64 {
	onset := time.Date(2020, time.March, 1, 0, 0, 0, 0, time.UTC)
	peak := time.Date(2020, time.April, 1, 0, 0, 0, 0, time.UTC)

	switch {
	case date.Before(onset):
		return 0
	case date.Before(peak):
		return 0.35
	default:
		months := (date.Year()-peak.Year())*12 + int(date.Month()-peak.Month())
		return math.Exp(-float64(months) / 9.0)
	}
}

func round(x float64, decimals int) float64 {
	p := math.Pow10(decimals)
	return math.Round(x*p) / p
}
