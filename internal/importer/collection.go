package importer

import (
	"context"
	"fmt"

	"github.com/tordrt/dbsynth/internal/namespace"
	"github.com/tordrt/dbsynth/internal/schema"
)

func (im *Importer) populateCollections(ctx context.Context, ns *namespace.Namespace, tables []string) error {
	for _, table := range tables {
		im.logger.Debug("building collection", "table", table)

		columns, err := im.source.GetColumnInfos(ctx, table)
		if err != nil {
			return &CapabilityError{Op: "get column infos", Table: table, Err: err}
		}

		collection, err := im.buildCollection(table, columns)
		if err != nil {
			return err
		}

		if err := ns.PutCollection(table, collection); err != nil {
			return fmt.Errorf("failed to add collection %s: %w", table, err)
		}
	}

	return nil
}

// buildCollection turns the columns of one table into an array of one object
func (im *Importer) buildCollection(table string, columns []schema.ColumnInfo) (*namespace.ArrayContent, error) {
	object := namespace.NewObjectContent()

	for _, column := range columns {
		content, err := im.source.DecodeToContent(column.DataType, column.CharacterMaximumLength)
		if err != nil {
			return nil, &CapabilityError{Op: "decode column type " + column.DataType, Table: table, Column: column.Name, Err: err}
		}

		if err := object.Put(column.Name, namespace.NewFieldContent(content, column.Nullable)); err != nil {
			return nil, fmt.Errorf("table %s: %w", table, err)
		}
	}

	return namespace.NewCollection(object), nil
}
