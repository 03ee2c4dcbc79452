package analysis

import (
	"sort"

	"github.com/montanaflynn/stats"

	"laborlens/domain/labor"
)

// SeriesSummary holds the descriptive statistics of one display-name
// group. Std is the sample standard deviation (n-1 divisor) and is
// NaN for single-observation groups.
type SeriesSummary struct {
	SeriesName string  `json:"series_name"`
	Count      int     `json:"count"`
	Mean       float64 `json:"mean"`
	Std        float64 `json:"std"`
	Min        float64 `json:"min"`
	P25        float64 `json:"p25"`
	P50        float64 `json:"p50"`
	P75        float64 `json:"p75"`
	Max        float64 `json:"max"`
}

// SummaryStatistics computes per-series descriptive statistics over
// the value column of a filtered view, grouped by display name.
// Groups are returned in ascending name order. Zero-row groups do not
// appear; an empty view yields an empty table, never an error.
func SummaryStatistics(view labor.FilteredView) []SeriesSummary {
	groups := make(map[string][]float64)
	for _, obs := range view.Observations {
		groups[obs.SeriesName] = append(groups[obs.SeriesName], obs.Value)
	}

	names := make([]string, 0, len(groups))
	for name := range groups {
		names = append(names, name)
	}
	sort.Strings(names)

	table := make([]SeriesSummary, 0, len(names))
	for _, name := range names {
		table = append(table, summarize(name, groups[name]))
	}
	return table
}

// summarize computes one group's row. Values is never empty here.
func summarize(name string, values []float64) SeriesSummary {
	mean, _ := stats.Mean(values)
	std, _ := stats.StandardDeviationSample(values)
	min, _ := stats.Min(values)
	max, _ := stats.Max(values)
	p25, _ := stats.Percentile(values, 25)
	p50, _ := stats.Median(values)
	p75, _ := stats.Percentile(values, 75)

	return SeriesSummary{
		SeriesName: name,
		Count:      len(values),
		Mean:       mean,
		Std:        std,
		Min:        min,
		P25:        p25,
		P50:        p50,
		P75:        p75,
		Max:        max,
	}
}
