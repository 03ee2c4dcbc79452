package analysis

import (
	"laborlens/domain/labor"
)

// SumByCategory sums the value column of two series independently
// over an inclusive year range, reading the full dataset. An empty
// slice sums to 0, never NaN and never an error; the proportion view
// tolerates both totals being zero.
func SumByCategory(idA, idB labor.SeriesID, ds *labor.Dataset, years labor.YearRange) (totalA, totalB float64) {
	for _, obs := range ds.Observations {
		if !years.Contains(obs.Year) {
			continue
		}
		switch obs.SeriesID {
		case idA:
			totalA += obs.Value
		case idB:
			totalB += obs.Value
		}
	}
	return totalA, totalB
}
