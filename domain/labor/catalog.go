package labor

// UnknownSeriesName is the sentinel display name for ids missing from
// the catalog. Unmapped ids are annotated, never rejected.
const UnknownSeriesName = "Unknown Series"

// SeriesCatalogEntry maps one series id to its display name
type SeriesCatalogEntry struct {
	ID          SeriesID `json:"series_id"`
	DisplayName string   `json:"display_name"`
}

// Well-known BLS series ids
const (
	SeriesCivilianEmployment   SeriesID = "LNS12000000"
	SeriesCivilianUnemployment SeriesID = "LNS13000000"
	SeriesUnemploymentRate     SeriesID = "LNS14000000"
	SeriesTotalNonfarm         SeriesID = "CES0000000001"
	SeriesAvgWeeklyHours       SeriesID = "CES0500000002"
	SeriesAvgHourlyEarnings    SeriesID = "CES0500000003"
)

// seriesCatalog is the fixed id-to-name vocabulary, constructed once
// and never mutated.
var seriesCatalog = map[SeriesID]string{
	SeriesCivilianEmployment:   "Civilian Employment",
	SeriesCivilianUnemployment: "Civilian Unemployment",
	SeriesUnemploymentRate:     "Unemployment Rate",
	SeriesTotalNonfarm:         "Total Nonfarm Employment",
	SeriesAvgWeeklyHours:       "Average Weekly Hours of All Employees",
	SeriesAvgHourlyEarnings:    "Average Hourly Earnings of All Employees",
}

// catalogOrder fixes the presentation order of the vocabulary
var catalogOrder = []SeriesID{
	SeriesCivilianEmployment,
	SeriesCivilianUnemployment,
	SeriesUnemploymentRate,
	SeriesTotalNonfarm,
	SeriesAvgWeeklyHours,
	SeriesAvgHourlyEarnings,
}

// DisplayName resolves a series id to its display name. Total: ids
// outside the catalog resolve to UnknownSeriesName.
func DisplayName(id SeriesID) string {
	if name, ok := seriesCatalog[id]; ok {
		return name
	}
	return UnknownSeriesName
}

// SeriesIDsFor inverts the catalog for a set of display names. The
// mapping tolerates many ids sharing one name; every matching id is
// included. Names with no catalog entry contribute nothing.
func SeriesIDsFor(names []string) map[SeriesID]bool {
	wanted := make(map[string]bool, len(names))
	for _, name := range names {
		wanted[name] = true
	}

	ids := make(map[SeriesID]bool)
	for id, name := range seriesCatalog {
		if wanted[name] {
			ids[id] = true
		}
	}
	return ids
}

// KnownSeries returns the full vocabulary in presentation order
func KnownSeries() []SeriesCatalogEntry {
	entries := make([]SeriesCatalogEntry, 0, len(catalogOrder))
	for _, id := range catalogOrder {
		entries = append(entries, SeriesCatalogEntry{ID: id, DisplayName: seriesCatalog[id]})
	}
	return entries
}

// KnownSeriesNames returns the display names in presentation order
func KnownSeriesNames() []string {
	names := make([]string, 0, len(catalogOrder))
	for _, id := range catalogOrder {
		names = append(names, seriesCatalog[id])
	}
	return names
}
