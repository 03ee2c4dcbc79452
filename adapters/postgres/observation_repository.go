package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"laborlens/domain/labor"
	"laborlens/internal"
	"laborlens/ports"
)

// observationSource reads the observations table as a dataset source
type observationSource struct {
	db *sqlx.DB
}

// NewObservationSource creates a Postgres-backed observation source
func NewObservationSource(db *sqlx.DB) ports.ObservationSourcePort {
	return &observationSource{db: db}
}

// Describe names the source for startup logging
func (s *observationSource) Describe() string {
	return "postgres:observations"
}

// Load reads every stored observation in series, then date order
func (s *observationSource) Load(ctx context.Context) ([]labor.Observation, error) {
	query := `SELECT series_id, obs_date, year, value
		FROM observations
		ORDER BY series_id, obs_date`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query observations: %w", err)
	}
	defer rows.Close()

	var observations []labor.Observation
	for rows.Next() {
		var obs labor.Observation
		if err := rows.Scan(&obs.SeriesID, &obs.Date, &obs.Year, &obs.Value); err != nil {
			return nil, fmt.Errorf("failed to scan observation: %w", err)
		}
		observations = append(observations, obs)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read observations: %w", err)
	}

	internal.DefaultLogger.Info("[ObservationSource] Loaded %d observations from postgres", len(observations))
	return observations, nil
}
