package ports

import (
	"context"

	"laborlens/domain/labor"
)

// ObservationSourcePort supplies the raw observations of one dataset.
// Implementations read a delimited or Excel file, a Postgres table,
// or generate synthetic rows; the loader calls Load exactly once per
// process and memoizes the result.
type ObservationSourcePort interface {
	// Load reads every observation the source holds. A failure is a
	// DataUnavailable condition for the dashboard.
	Load(ctx context.Context) ([]labor.Observation, error)

	// Describe names the source for startup logging and the UI footer
	Describe() string
}
