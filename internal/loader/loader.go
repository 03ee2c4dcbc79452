package loader

import (
	"context"
	"sync"

	"laborlens/domain/labor"
	"laborlens/internal"
	"laborlens/internal/errors"
	"laborlens/ports"
)

// Loader performs the one-time dataset load. The first Load call
// reads through the source, annotates the catalog names and memoizes
// the result for the process lifetime; every later call returns the
// same dataset. A failed load is memoized the same way: the dashboard
// never retries, restart is the only recovery.
type Loader struct {
	source ports.ObservationSourcePort

	once sync.Once
	data *labor.Dataset
	err  error
}

// New creates a loader over the given observation source
func New(source ports.ObservationSourcePort) *Loader {
	return &Loader{source: source}
}

// Load returns the memoized dataset, reading the source on first use
func (l *Loader) Load(ctx context.Context) (*labor.Dataset, error) {
	l.once.Do(func() {
		internal.DefaultLogger.Info("[Loader] Loading dataset from %s", l.source.Describe())

		observations, err := l.source.Load(ctx)
		if err != nil {
			l.err = errors.DataUnavailable("dataset load failed", err)
			internal.DefaultLogger.Error("[Loader] %v", l.err)
			return
		}

		l.data = labor.NewDataset(observations, l.source.Describe())
		internal.DefaultLogger.Info("[Loader] Dataset ready: %d observations, years %d-%d",
			l.data.Len(), l.data.MinYear, l.data.MaxYear)
	})
	return l.data, l.err
}

// MustLoad is Load for startup paths where a load failure aborts the
// process anyway
func (l *Loader) MustLoad(ctx context.Context) *labor.Dataset {
	data, err := l.Load(ctx)
	if err != nil {
		panic(err)
	}
	return data
}
