package ui

import (
	"log"
	"net/http"

	"laborlens/domain/labor"
)

// Fragment handlers re-render one panel from the submitted filter
// state. Every interaction recomputes its panel from the shared
// dataset; nothing is cached between requests.

func (a *App) handleFragmentSummary(w http.ResponseWriter, r *http.Request) {
	a.renderFragment(w, r, "panel_summary.html")
}

func (a *App) handleFragmentComparison(w http.ResponseWriter, r *http.Request) {
	a.renderFragment(w, r, "panel_comparison.html")
}

func (a *App) handleFragmentProportion(w http.ResponseWriter, r *http.Request) {
	a.renderFragment(w, r, "panel_proportion.html")
}

func (a *App) handleFragmentPreview(w http.ResponseWriter, r *http.Request) {
	a.renderFragment(w, r, "panel_preview.html")
}

func (a *App) renderFragment(w http.ResponseWriter, r *http.Request, templateName string) {
	ds, err := a.loader.Load(r.Context())
	if err != nil {
		log.Printf("Dataset load failed: %v", err)
		http.Error(w, "Dataset unavailable", http.StatusServiceUnavailable)
		return
	}

	sel := a.parseSelection(r, ds)
	view := labor.Filter(ds, sel)

	a.renderPartial(w, templateName, a.dashboardData(ds, view))
}
