package db

import "github.com/tordrt/dbsynth/internal/importer"

const (
	// DefaultSampleSize is the number of rows sampled per table
	DefaultSampleSize = 10

	// DefaultSeed seeds the random row order of backends that support it
	DefaultSeed = 0.5
)

// SourceOptions configures every backend data source
type SourceOptions struct {
	// SchemaName restricts metadata queries to one schema. Ignored by SQLite.
	SchemaName string

	// SampleSize is the maximum number of rows sampled per table
	SampleSize uint64

	// Seed is passed to the backend's random generator, in [-1, 1].
	// Callers wanting the documented default use DefaultSeed.
	Seed float64
}

func (o SourceOptions) withDefaults(defaultSchema string) SourceOptions {
	if o.SchemaName == "" {
		o.SchemaName = defaultSchema
	}
	if o.SampleSize == 0 {
		o.SampleSize = DefaultSampleSize
	}
	return o
}

var (
	_ importer.Source = (*PostgresSource)(nil)
	_ importer.Source = (*MySQLSource)(nil)
	_ importer.Source = (*SQLiteSource)(nil)
	_ importer.Source = (*SQLServerSource)(nil)
)
