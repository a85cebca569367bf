// Package importer builds a namespace from a relational database.
//
// The import runs four phases in a fixed order, each over every table:
//
//  1. collections: one array-of-object template per table
//  2. primary keys: the key field becomes an identifier generator
//  3. foreign keys: referencing fields become same_as references
//  4. values: deterministic row samples are merged into the templates
//
// Each phase depends on the previous one having completed, so phases never
// overlap and data source calls are issued one at a time.
package importer

import (
	"context"
	"log/slog"

	"github.com/tordrt/dbsynth/internal/namespace"
)

// Importer runs the import pipeline against a Source
type Importer struct {
	source           Source
	logger           *slog.Logger
	strictReferences bool
}

// Option configures an Importer
type Option func(*Importer)

// WithLogger sets the logger used for progress messages
func WithLogger(logger *slog.Logger) Option {
	return func(im *Importer) {
		if logger != nil {
			im.logger = logger
		}
	}
}

// WithStrictReferences rejects self-referencing and cyclic foreign keys
// instead of leaving them to the synthesis engine
func WithStrictReferences(strict bool) Option {
	return func(im *Importer) {
		im.strictReferences = strict
	}
}

// New creates an importer over source
func New(source Source, opts ...Option) *Importer {
	im := &Importer{
		source: source,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(im)
	}
	return im
}

// Build runs all four phases and returns the finished namespace.
// On any error nothing is returned.
func (im *Importer) Build(ctx context.Context) (*namespace.Namespace, error) {
	tables, err := im.source.GetTableNames(ctx)
	if err != nil {
		return nil, &CapabilityError{Op: "get table names", Err: err}
	}

	ns := namespace.New()

	im.logger.Info("building namespace collections", "tables", len(tables))
	if err := im.populateCollections(ctx, ns, tables); err != nil {
		return nil, err
	}

	im.logger.Info("building namespace primary keys")
	if err := im.populatePrimaryKeys(ctx, ns, tables); err != nil {
		return nil, err
	}

	im.logger.Info("building namespace foreign keys")
	if err := im.populateForeignKeys(ctx, ns); err != nil {
		return nil, err
	}

	im.logger.Info("building namespace values")
	if err := im.populateValues(ctx, ns, tables); err != nil {
		return nil, err
	}

	return ns, nil
}
