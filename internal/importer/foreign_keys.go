package importer

import (
	"context"
	"fmt"
	"strings"

	"github.com/tordrt/dbsynth/internal/namespace"
)

type link struct {
	from namespace.FieldRef
	to   namespace.FieldRef
}

func (im *Importer) populateForeignKeys(ctx context.Context, ns *namespace.Namespace) error {
	foreignKeys, err := im.source.GetForeignKeys(ctx)
	if err != nil {
		return &CapabilityError{Op: "get foreign keys", Err: err}
	}

	im.logger.Debug("foreign keys found", "count", len(foreignKeys))

	links := make([]link, 0, len(foreignKeys))
	for _, fk := range foreignKeys {
		from, err := namespace.NewFieldRef(fk.FromTable, fk.FromColumn)
		if err != nil {
			return fmt.Errorf("foreign key source: %w", err)
		}
		to, err := namespace.NewFieldRef(fk.ToTable, fk.ToColumn)
		if err != nil {
			return fmt.Errorf("foreign key target: %w", err)
		}

		if _, err := ns.GetFieldMut(from); err != nil {
			return fmt.Errorf("foreign key %s -> %s: %w", from, to, err)
		}
		if _, err := ns.GetFieldMut(to); err != nil {
			return fmt.Errorf("foreign key %s -> %s: %w", from, to, err)
		}
		links = append(links, link{from: from, to: to})
	}

	if err := im.checkReferenceGraph(links); err != nil {
		return err
	}

	for _, l := range links {
		field, err := ns.GetFieldMut(l.from)
		if err != nil {
			return err
		}
		field.Content = &namespace.SameAsContent{Ref: l.to}
		im.logger.Debug("linked foreign key", "from", l.from.String(), "to", l.to.String())
	}

	return nil
}

// checkReferenceGraph reports self references and cycles. They are resolved by
// the synthesis engine unless strict references are requested.
func (im *Importer) checkReferenceGraph(links []link) error {
	graph := newReferenceGraph()
	for _, l := range links {
		graph.addEdge(l.from.Collection(), l.to.Collection())
	}

	selfRefs := graph.selfReferences()
	cycle := graph.findCycle()

	if im.strictReferences {
		if len(selfRefs) > 0 {
			return fmt.Errorf("%w: self-referencing foreign keys on %s", ErrUnsupportedSchema, strings.Join(selfRefs, ", "))
		}
		if cycle != nil {
			return fmt.Errorf("%w: foreign key cycle %s", ErrUnsupportedSchema, strings.Join(cycle, " -> "))
		}
		return nil
	}

	for _, table := range selfRefs {
		im.logger.Warn("self-referencing foreign key left to the synthesis engine", "table", table)
	}
	if cycle != nil {
		im.logger.Warn("foreign key cycle left to the synthesis engine", "cycle", strings.Join(cycle, " -> "))
	}
	return nil
}
