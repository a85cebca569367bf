package dbsynth

import (
	"context"
	"fmt"

	"github.com/tordrt/dbsynth/internal/importer"
	"github.com/tordrt/dbsynth/internal/namespace"
	"github.com/tordrt/dbsynth/internal/schema"
)

// filteredSource restricts a Source to a subset of its tables
type filteredSource struct {
	importer.Source
	include []string
	exclude map[string]bool
}

func newFilteredSource(src importer.Source, include, exclude []string) *filteredSource {
	excludeSet := make(map[string]bool, len(exclude))
	for _, tableName := range exclude {
		excludeSet[tableName] = true
	}
	return &filteredSource{Source: src, include: include, exclude: excludeSet}
}

// GetTableNames returns the requested tables in request order, or every
// table, minus the exclusions. A requested table that does not exist is an error.
func (s *filteredSource) GetTableNames(ctx context.Context) ([]string, error) {
	all, err := s.Source.GetTableNames(ctx)
	if err != nil {
		return nil, err
	}

	tables := all
	if len(s.include) > 0 {
		exists := make(map[string]bool, len(all))
		for _, tableName := range all {
			exists[tableName] = true
		}
		for _, tableName := range s.include {
			if !exists[tableName] {
				return nil, fmt.Errorf("table %s: %w", tableName, namespace.ErrNotFound)
			}
		}
		tables = s.include
	}

	filtered := make([]string, 0, len(tables))
	for _, tableName := range tables {
		if !s.exclude[tableName] {
			filtered = append(filtered, tableName)
		}
	}
	return filtered, nil
}

// GetForeignKeys drops the edges with either end outside the selected tables
func (s *filteredSource) GetForeignKeys(ctx context.Context) ([]schema.ForeignKey, error) {
	fks, err := s.Source.GetForeignKeys(ctx)
	if err != nil {
		return nil, err
	}

	tables, err := s.GetTableNames(ctx)
	if err != nil {
		return nil, err
	}
	selected := make(map[string]bool, len(tables))
	for _, tableName := range tables {
		selected[tableName] = true
	}

	var kept []schema.ForeignKey
	for _, fk := range fks {
		if selected[fk.FromTable] && selected[fk.ToTable] {
			kept = append(kept, fk)
		}
	}
	return kept, nil
}
