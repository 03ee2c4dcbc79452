package analysis

import (
	"sort"
	"time"

	"laborlens/domain/labor"
)

// Point is one dated value of a chart line
type Point struct {
	Date  time.Time `json:"date"`
	Value float64   `json:"value"`
}

// SeriesLine is one plottable series of the filtered view
type SeriesLine struct {
	Name   string  `json:"name"`
	Points []Point `json:"points"`
}

// SeriesLines reshapes a filtered view into per-series chart lines.
// Lines follow catalog presentation order with the unknown-series
// sentinel last; points within a line are in ascending date order.
func SeriesLines(view labor.FilteredView) []SeriesLine {
	points := make(map[string][]Point)
	for _, obs := range view.Observations {
		points[obs.SeriesName] = append(points[obs.SeriesName], Point{Date: obs.Date, Value: obs.Value})
	}

	var order []string
	for _, name := range labor.KnownSeriesNames() {
		if _, ok := points[name]; ok {
			order = append(order, name)
		}
	}
	if _, ok := points[labor.UnknownSeriesName]; ok {
		order = append(order, labor.UnknownSeriesName)
	}

	lines := make([]SeriesLine, 0, len(order))
	for _, name := range order {
		pts := points[name]
		sort.Slice(pts, func(i, j int) bool { return pts[i].Date.Before(pts[j].Date) })
		lines = append(lines, SeriesLine{Name: name, Points: pts})
	}
	return lines
}
