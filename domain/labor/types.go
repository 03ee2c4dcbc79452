package labor

import (
	"time"
)

// SeriesID identifies one BLS time series (e.g. LNS14000000)
type SeriesID string

// Observation is one row of the dataset: a single dated measurement
// of one series. SeriesName is synthesized from the catalog at load
// time and carried on the row so downstream grouping and export never
// need a second lookup.
type Observation struct {
	SeriesID   SeriesID  `json:"series_id"`
	Date       time.Time `json:"date"`
	Year       int       `json:"year"`
	Value      float64   `json:"value"`
	SeriesName string    `json:"series_name"`
}

// YearRange is an inclusive [From, To] span of calendar years
type YearRange struct {
	From int `json:"from"`
	To   int `json:"to"`
}

// Contains reports whether year falls inside the range, inclusive on
// both ends. A degenerate range (From > To) contains nothing.
func (r YearRange) Contains(year int) bool {
	return year >= r.From && year <= r.To
}

// FilterSelection is the ephemeral user input of one interaction:
// chosen display names plus a year range. Recreated per request,
// never persisted.
type FilterSelection struct {
	SeriesNames []string  `json:"series_names"`
	Years       YearRange `json:"years"`
}

// Dataset is the immutable in-memory dataset: all observations plus
// the observed year bounds. Built once at load, shared read-only.
type Dataset struct {
	Observations []Observation `json:"observations"`
	MinYear      int           `json:"min_year"`
	MaxYear      int           `json:"max_year"`
	Source       string        `json:"source"`
	LoadedAt     time.Time     `json:"loaded_at"`
}

// NewDataset annotates every observation with its catalog display
// name, backfills missing years from the date column, and records the
// observed year bounds. The stored year column is authoritative when
// present, even if it disagrees with the date's calendar year.
func NewDataset(observations []Observation, source string) *Dataset {
	ds := &Dataset{
		Observations: observations,
		Source:       source,
		LoadedAt:     time.Now(),
	}
	for i := range ds.Observations {
		obs := &ds.Observations[i]
		obs.SeriesName = DisplayName(obs.SeriesID)
		if obs.Year == 0 && !obs.Date.IsZero() {
			obs.Year = obs.Date.Year()
		}
		if ds.MinYear == 0 || obs.Year < ds.MinYear {
			ds.MinYear = obs.Year
		}
		if obs.Year > ds.MaxYear {
			ds.MaxYear = obs.Year
		}
	}
	return ds
}

// Len returns the number of observations
func (d *Dataset) Len() int {
	return len(d.Observations)
}

// ObservationsFor returns the observations of a single series in
// dataset order. Returns nil when the series has no rows.
func (d *Dataset) ObservationsFor(id SeriesID) []Observation {
	var out []Observation
	for _, obs := range d.Observations {
		if obs.SeriesID == id {
			out = append(out, obs)
		}
	}
	return out
}

// AvailableSeriesNames returns the display names present in the
// dataset: known catalog names first in catalog order, then the
// unknown-series sentinel if any unmapped rows exist.
func (d *Dataset) AvailableSeriesNames() []string {
	present := make(map[string]bool, len(d.Observations))
	for _, obs := range d.Observations {
		present[obs.SeriesName] = true
	}

	var names []string
	for _, entry := range KnownSeries() {
		if present[entry.DisplayName] {
			names = append(names, entry.DisplayName)
		}
	}
	if present[UnknownSeriesName] {
		names = append(names, UnknownSeriesName)
	}
	return names
}

// DefaultSeriesNames returns the default multi-select choice: every
// known catalog name that actually appears in the dataset.
func (d *Dataset) DefaultSeriesNames() []string {
	var names []string
	present := make(map[string]bool, len(d.Observations))
	for _, obs := range d.Observations {
		present[obs.SeriesName] = true
	}
	for _, entry := range KnownSeries() {
		if present[entry.DisplayName] {
			names = append(names, entry.DisplayName)
		}
	}
	return names
}

// DefaultYearRange returns the default slider span: the observed
// bounds, with the lower end raised to floor when floor falls inside
// the observed span.
func (d *Dataset) DefaultYearRange(floor int) YearRange {
	r := YearRange{From: d.MinYear, To: d.MaxYear}
	if floor > d.MinYear && floor <= d.MaxYear {
		r.From = floor
	}
	return r
}

// ClampYearRange clamps a requested range to the observed bounds.
// Used by the UI layer before filtering; the filter itself accepts
// any range.
func (d *Dataset) ClampYearRange(r YearRange) YearRange {
	if r.From < d.MinYear {
		r.From = d.MinYear
	}
	if r.To > d.MaxYear {
		r.To = d.MaxYear
	}
	if r.To == 0 {
		r.To = d.MaxYear
	}
	return r
}

// FilteredView is the subset of observations matching one selection.
// Derived and recomputed per interaction, never mutated in place.
type FilteredView struct {
	Observations []Observation   `json:"observations"`
	Selection    FilterSelection `json:"selection"`
}

// Len returns the number of filtered observations
func (v FilteredView) Len() int {
	return len(v.Observations)
}

// Empty reports whether the view holds no rows
func (v FilteredView) Empty() bool {
	return len(v.Observations) == 0
}
