package importer

import (
	"context"
	"fmt"

	"github.com/tordrt/dbsynth/internal/namespace"
)

func (im *Importer) populateValues(ctx context.Context, ns *namespace.Namespace, tables []string) error {
	if err := im.source.SetSeed(ctx); err != nil {
		return &CapabilityError{Op: "set sampling seed", Err: err}
	}

	for _, table := range tables {
		rows, err := im.source.GetDeterministicSamples(ctx, table)
		if err != nil {
			return &CapabilityError{Op: "sample rows", Table: table, Err: err}
		}

		skipped := 0
		strategy := namespace.OptionalMergeStrategy{
			OnSkip: func(field string, err error) {
				skipped++
				im.logger.Debug("skipped sampled value", "table", table, "field", field, "error", err)
			},
		}

		if err := ns.TryUpdate(strategy, table, rows); err != nil {
			return fmt.Errorf("failed to merge samples into %s: %w", table, err)
		}

		im.logger.Debug("merged samples", "table", table, "rows", len(rows), "skipped", skipped)
	}

	return nil
}
