package labor

// Filter returns the subset of observations whose series display name
// is in the selection and whose year falls inside the selected range,
// inclusive on both ends. Single pass, no mutation of the dataset.
//
// An empty name selection yields an empty view, not an error. Year
// bounds are taken as given: out-of-domain ranges yield empty or
// partial results. Idempotent: filtering a filtered view with the
// same selection returns the same rows.
func Filter(d *Dataset, sel FilterSelection) FilteredView {
	view := FilteredView{Selection: sel}
	if len(sel.SeriesNames) == 0 {
		return view
	}

	ids := SeriesIDsFor(sel.SeriesNames)

	// Selecting the sentinel keeps unmapped rows, which the inverse
	// catalog lookup cannot produce ids for.
	wantUnknown := false
	for _, name := range sel.SeriesNames {
		if name == UnknownSeriesName {
			wantUnknown = true
			break
		}
	}

	for _, obs := range d.Observations {
		if !sel.Years.Contains(obs.Year) {
			continue
		}
		if ids[obs.SeriesID] || (wantUnknown && obs.SeriesName == UnknownSeriesName) {
			view.Observations = append(view.Observations, obs)
		}
	}
	return view
}

// FilterView re-filters an existing view. Exists for the pipeline's
// recompute-per-interaction shape; equivalent to Filter on a dataset
// holding the view's rows.
func FilterView(v FilteredView, sel FilterSelection) FilteredView {
	d := Dataset{Observations: v.Observations}
	return Filter(&d, sel)
}
