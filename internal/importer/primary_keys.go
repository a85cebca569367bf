package importer

import (
	"context"
	"fmt"

	"github.com/tordrt/dbsynth/internal/namespace"
)

func (im *Importer) populatePrimaryKeys(ctx context.Context, ns *namespace.Namespace, tables []string) error {
	// Validate every table before touching any node.
	var keys []namespace.FieldRef
	for _, table := range tables {
		primaryKeys, err := im.source.GetPrimaryKeys(ctx, table)
		if err != nil {
			return &CapabilityError{Op: "get primary keys", Table: table, Err: err}
		}

		if len(primaryKeys) > 1 {
			return fmt.Errorf("%w: %d primary keys found at collection %s, composite primary keys are not supported",
				ErrUnsupportedSchema, len(primaryKeys), table)
		}
		if len(primaryKeys) == 0 {
			im.logger.Debug("no primary key", "table", table)
			continue
		}

		ref, err := namespace.NewFieldRef(table, primaryKeys[0].ColumnName)
		if err != nil {
			return fmt.Errorf("primary key of %s: %w", table, err)
		}
		if _, err := ns.GetFieldMut(ref); err != nil {
			return fmt.Errorf("primary key of %s: %w", table, err)
		}
		keys = append(keys, ref)
	}

	for _, ref := range keys {
		field, err := ns.GetFieldMut(ref)
		if err != nil {
			return err
		}
		field.Content = namespace.NewId()
		im.logger.Debug("annotated primary key", "field", ref.String())
	}

	return nil
}
