package postgres

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"golang.org/x/sync/semaphore"

	"laborlens/domain/labor"
	"laborlens/internal"
)

// seedBatchSize is the number of rows written per transaction
const seedBatchSize = 500

const schemaSQL = `
	CREATE TABLE IF NOT EXISTS observations (
		id        UUID PRIMARY KEY,
		series_id TEXT NOT NULL,
		obs_date  DATE NOT NULL,
		year      INTEGER NOT NULL,
		value     DOUBLE PRECISION NOT NULL,
		UNIQUE (series_id, obs_date)
	)`

const upsertSQL = `
	INSERT INTO observations (id, series_id, obs_date, year, value)
	VALUES ($1, $2, $3, $4, $5)
	ON CONFLICT (series_id, obs_date)
	DO UPDATE SET year = EXCLUDED.year, value = EXCLUDED.value`

// ObservationStore writes observation rows for the seed tool
type ObservationStore struct {
	db *sqlx.DB
}

// NewObservationStore creates a store for seeding the observations table
func NewObservationStore(db *sqlx.DB) *ObservationStore {
	return &ObservationStore{db: db}
}

// EnsureSchema creates the observations table if it does not exist
func (s *ObservationStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("failed to create observations table: %w", err)
	}
	return nil
}

// Import upserts observations in concurrent batches. Re-seeding the
// same rows is idempotent: a (series_id, obs_date) collision updates
// the stored value instead of failing.
func (s *ObservationStore) Import(ctx context.Context, observations []labor.Observation, concurrency int64) (int, error) {
	if concurrency < 1 {
		concurrency = 1
	}

	sem := semaphore.NewWeighted(concurrency)
	var wg sync.WaitGroup
	var mu sync.Mutex
	var firstErr error

	for start := 0; start < len(observations); start += seedBatchSize {
		mu.Lock()
		failed := firstErr != nil
		mu.Unlock()
		if failed {
			break
		}

		end := start + seedBatchSize
		if end > len(observations) {
			end = len(observations)
		}
		batch := observations[start:end]

		if err := sem.Acquire(ctx, 1); err != nil {
			return 0, fmt.Errorf("failed to acquire semaphore: %w", err)
		}

		wg.Add(1)
		go func(batch []labor.Observation) {
			defer wg.Done()
			defer sem.Release(1)

			if err := s.importBatch(ctx, batch); err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mu.Unlock()
			}
		}(batch)
	}

	wg.Wait()
	if firstErr != nil {
		return 0, firstErr
	}

	internal.DefaultLogger.Info("[ObservationStore] Imported %d observations", len(observations))
	return len(observations), nil
}

// importBatch writes one batch inside a single transaction
func (s *ObservationStore) importBatch(ctx context.Context, batch []labor.Observation) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, obs := range batch {
		if _, err := tx.ExecContext(ctx, upsertSQL,
			uuid.New(), string(obs.SeriesID), obs.Date, obs.Year, obs.Value,
		); err != nil {
			return fmt.Errorf("failed to insert observation %s@%s: %w",
				obs.SeriesID, obs.Date.Format("2006-01-02"), err)
		}
	}

	return tx.Commit()
}
