package ui

import (
	"log"
	"net/http"

	"laborlens/domain/labor"
	"laborlens/internal/analysis"
)

// previewLimit caps the filtered-rows table on the page; the full
// view is always available through the download endpoint
const previewLimit = 100

// handleDashboard renders the main dashboard page
func (a *App) handleDashboard(w http.ResponseWriter, r *http.Request) {
	ds, err := a.loader.Load(r.Context())
	if err != nil {
		log.Printf("Dataset load failed: %v", err)
		a.renderError(w, http.StatusServiceUnavailable,
			"The labor dataset could not be loaded. Check the configured data source and restart.")
		return
	}

	sel := a.parseSelection(r, ds)
	view := labor.Filter(ds, sel)

	data := a.dashboardData(ds, view)
	a.renderTemplate(w, "index.html", data)
}

// dashboardData assembles everything the full page needs: the filter
// state plus each panel's inputs. Fragment handlers reuse the panel
// pieces through the same map.
func (a *App) dashboardData(ds *labor.Dataset, view labor.FilteredView) map[string]interface{} {
	comparison := analysis.PairwiseSeriesMerge(labor.SeriesAvgWeeklyHours, labor.SeriesAvgHourlyEarnings, ds)
	employed, unemployed := analysis.SumByCategory(
		labor.SeriesCivilianEmployment, labor.SeriesCivilianUnemployment, ds, view.Selection.Years)

	preview := view.Observations
	truncated := false
	if len(preview) > previewLimit {
		preview = preview[:previewLimit]
		truncated = true
	}

	return map[string]interface{}{
		"Title":            "LaborLens",
		"Source":           ds.Source,
		"LoadedAt":         ds.LoadedAt.Format("2006-01-02 15:04:05"),
		"AvailableSeries":  ds.AvailableSeriesNames(),
		"SelectedSeries":   view.Selection.SeriesNames,
		"YearOptions":      yearOptions(ds),
		"FromYear":         view.Selection.Years.From,
		"ToYear":           view.Selection.Years.To,
		"RowCount":         view.Len(),
		"TotalRows":        ds.Len(),
		"Summary":          analysis.SummaryStatistics(view),
		"Comparison":       comparison,
		"ComparisonCount":  len(comparison.Rows),
		"Correlation":      formatValue(comparison.Correlation),
		"Slope":            formatValue(comparison.Slope),
		"Employed":         employed,
		"Unemployed":       unemployed,
		"ProportionTotal":  employed + unemployed,
		"Preview":          preview,
		"PreviewTruncated": truncated,
		"Query":            selectionQuery(view.Selection),
	}
}

// handleHealthz reports process liveness without touching the dataset
func (a *App) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}
