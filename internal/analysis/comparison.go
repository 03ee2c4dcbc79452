package analysis

import (
	"math"
	"sort"
	"time"

	"gonum.org/v1/gonum/stat"

	"laborlens/domain/labor"
)

// dateKey keys the merge on the calendar day of an observation
const dateKeyLayout = "2006-01-02"

// ComparisonRow is one date of the wide hours-vs-earnings table
type ComparisonRow struct {
	Date              time.Time `json:"date"`
	AvgWeeklyHours    float64   `json:"avg_weekly_hours"`
	AvgHourlyEarnings float64   `json:"avg_hourly_earnings"`
}

// ComparisonTable is the inner join of two series on date, plus the
// linear association between the two columns across the joined rows.
// Correlation, Slope and Intercept are NaN below two rows.
type ComparisonTable struct {
	Rows        []ComparisonRow `json:"rows"`
	Correlation float64         `json:"-"`
	Slope       float64         `json:"-"`
	Intercept   float64         `json:"-"`
}

// PairwiseSeriesMerge builds the wide comparison table for two series
// over the full dataset: the first series fills avg_weekly_hours, the
// second avg_hourly_earnings. Strictly inner-join semantics: a date
// missing from either series is dropped silently, so the row count
// never exceeds the smaller slice. Rows come back in ascending date
// order.
func PairwiseSeriesMerge(hoursID, earningsID labor.SeriesID, ds *labor.Dataset) ComparisonTable {
	hours := ds.ObservationsFor(hoursID)
	earnings := ds.ObservationsFor(earningsID)

	earningsByDate := make(map[string]float64, len(earnings))
	for _, obs := range earnings {
		earningsByDate[obs.Date.Format(dateKeyLayout)] = obs.Value
	}

	var table ComparisonTable
	for _, obs := range hours {
		if earning, ok := earningsByDate[obs.Date.Format(dateKeyLayout)]; ok {
			table.Rows = append(table.Rows, ComparisonRow{
				Date:              obs.Date,
				AvgWeeklyHours:    obs.Value,
				AvgHourlyEarnings: earning,
			})
		}
	}
	sort.Slice(table.Rows, func(i, j int) bool {
		return table.Rows[i].Date.Before(table.Rows[j].Date)
	})

	table.Correlation, table.Slope, table.Intercept = association(table.Rows)
	return table
}

// association computes Pearson correlation and an ordinary
// least-squares fit of earnings on hours
func association(rows []ComparisonRow) (r, slope, intercept float64) {
	if len(rows) < 2 {
		return math.NaN(), math.NaN(), math.NaN()
	}

	xs := make([]float64, len(rows))
	ys := make([]float64, len(rows))
	for i, row := range rows {
		xs[i] = row.AvgWeeklyHours
		ys[i] = row.AvgHourlyEarnings
	}

	r = stat.Correlation(xs, ys, nil)
	intercept, slope = stat.LinearRegression(xs, ys, nil, false)
	return r, slope, intercept
}
