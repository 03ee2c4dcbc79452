package ui

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"laborlens/domain/labor"
	"laborlens/internal/analysis"
	"laborlens/internal/export"
)

// handleDownload streams the currently filtered view as CSV
func (a *App) handleDownload(w http.ResponseWriter, r *http.Request) {
	ds, err := a.loader.Load(r.Context())
	if err != nil {
		log.Printf("Dataset load failed: %v", err)
		http.Error(w, "Dataset unavailable", http.StatusServiceUnavailable)
		return
	}

	sel := a.parseSelection(r, ds)
	view := labor.Filter(ds, sel)

	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", export.Filename))
	w.Header().Set("Content-Type", "text/csv")

	if err := export.Write(w, view); err != nil {
		log.Printf("CSV export failed: %v", err)
	}
}

// handleChartLines returns the filtered series as chart lines
func (a *App) handleChartLines(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	ds, err := a.loader.Load(r.Context())
	if err != nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		json.NewEncoder(w).Encode(map[string]interface{}{"error": "Dataset unavailable"})
		return
	}

	sel := a.parseSelection(r, ds)
	view := labor.Filter(ds, sel)
	lines := analysis.SeriesLines(view)

	json.NewEncoder(w).Encode(map[string]interface{}{
		"lines": lines,
		"count": view.Len(),
	})
}

// handleChartComparison returns the hours-vs-earnings table with its
// association statistics. Undefined statistics come back as null, not
// NaN, so the payload stays valid JSON.
func (a *App) handleChartComparison(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	ds, err := a.loader.Load(r.Context())
	if err != nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		json.NewEncoder(w).Encode(map[string]interface{}{"error": "Dataset unavailable"})
		return
	}

	table := analysis.PairwiseSeriesMerge(labor.SeriesAvgWeeklyHours, labor.SeriesAvgHourlyEarnings, ds)

	json.NewEncoder(w).Encode(map[string]interface{}{
		"rows":        table.Rows,
		"correlation": floatPtr(table.Correlation),
		"slope":       floatPtr(table.Slope),
		"intercept":   floatPtr(table.Intercept),
	})
}
