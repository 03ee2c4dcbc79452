package ui

import (
	"math"
	"net/http"
	"net/url"
	"strconv"

	"laborlens/domain/labor"
)

// parseSelection builds the filter selection for one request. A bare
// request (no form state) gets the dashboard defaults; a submitted
// form is taken literally, so unchecking every series yields an empty
// selection rather than falling back.
func (a *App) parseSelection(r *http.Request, ds *labor.Dataset) labor.FilterSelection {
	q := r.URL.Query()

	names := q["series"]
	if len(names) == 0 && !q.Has("filtered") {
		names = ds.DefaultSeriesNames()
	}

	years := labor.YearRange{
		From: intQuery(q, "from", 0),
		To:   intQuery(q, "to", 0),
	}
	if years.From == 0 && years.To == 0 {
		years = ds.DefaultYearRange(a.config.DefaultYearFloor)
	} else {
		years = ds.ClampYearRange(years)
	}

	return labor.FilterSelection{SeriesNames: names, Years: years}
}

// intQuery parses an integer query parameter, best-effort
func intQuery(q url.Values, key string, fallback int) int {
	if raw := q.Get(key); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			return v
		}
	}
	return fallback
}

// yearOptions lists every selectable year, oldest first
func yearOptions(ds *labor.Dataset) []int {
	if ds.MinYear == 0 || ds.MaxYear < ds.MinYear {
		return nil
	}
	years := make([]int, 0, ds.MaxYear-ds.MinYear+1)
	for y := ds.MinYear; y <= ds.MaxYear; y++ {
		years = append(years, y)
	}
	return years
}

// floatPtr converts a possibly-NaN statistic into a JSON-safe value:
// nil where the statistic is undefined
func floatPtr(v float64) *float64 {
	if math.IsNaN(v) {
		return nil
	}
	return &v
}

// selectionQuery rebuilds the query string of a selection, so the
// download link and fragment requests carry the current filter state
func selectionQuery(sel labor.FilterSelection) string {
	q := url.Values{}
	for _, name := range sel.SeriesNames {
		q.Add("series", name)
	}
	q.Set("from", strconv.Itoa(sel.Years.From))
	q.Set("to", strconv.Itoa(sel.Years.To))
	q.Set("filtered", "1")
	return q.Encode()
}
