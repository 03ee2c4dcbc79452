package testkit

import (
	"context"

	"laborlens/domain/labor"
	"laborlens/ports"
)

// SyntheticSource serves generated observations as a dataset source.
// DATA_SOURCE=demo uses it so the dashboard runs without a data file
// or database.
type SyntheticSource struct {
	generator *LaborDataGenerator
}

var _ ports.ObservationSourcePort = (*SyntheticSource)(nil)

// NewSyntheticSource creates a synthetic observation source
func NewSyntheticSource(config GeneratorConfig) *SyntheticSource {
	return &SyntheticSource{generator: NewLaborDataGenerator(config)}
}

// Describe names the source for startup logging
func (s *SyntheticSource) Describe() string {
	return "demo:synthetic"
}

// Load generates the full synthetic window
func (s *SyntheticSource) Load(ctx context.Context) ([]labor.Observation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.generator.Generate(), nil
}

// DemoDataset builds an annotated dataset from the default generator
// window, for tests that need realistic series without a fixture file
func DemoDataset() *labor.Dataset {
	gen := NewLaborDataGenerator(DefaultGeneratorConfig())
	return labor.NewDataset(gen.Generate(), "demo:synthetic")
}
