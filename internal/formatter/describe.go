package formatter

import (
	"fmt"
	"strings"

	"github.com/tordrt/dbsynth/internal/namespace"
)

// describe renders a content node as a one-line summary
func describe(c namespace.Content) string {
	switch v := c.(type) {
	case *namespace.NumberContent:
		return describeNumber(v)
	case *namespace.OneOfContent:
		parts := make([]string, 0, len(v.Variants))
		for _, variant := range v.Variants {
			parts = append(parts, describe(variant))
		}
		return strings.Join(parts, " | ")
	case *namespace.SameAsContent:
		return "→ " + v.Ref.String()
	case *namespace.NullContent:
		return "null"
	case *namespace.BoolContent:
		return fmt.Sprintf("bool (%.2g)", v.Frequency)
	case *namespace.StringContent:
		return describeString(v)
	case *namespace.ObjectContent:
		return fmt.Sprintf("object (%d fields)", v.Len())
	case *namespace.ArrayContent:
		return "array of " + describe(v.Content)
	default:
		return namespace.TypeName(c)
	}
}

func describeNumber(n *namespace.NumberContent) string {
	switch {
	case n.IsId():
		return fmt.Sprintf("%s id", n.Kind)
	case n.FloatRange != nil:
		return fmt.Sprintf("%s [%g, %g]", n.Kind, n.FloatRange.Low, n.FloatRange.High)
	case n.Range != nil:
		return fmt.Sprintf("%s [%d, %d)", n.Kind, n.Range.Low, n.Range.High)
	default:
		return string(n.Kind)
	}
}

func describeString(s *namespace.StringContent) string {
	switch s.Kind {
	case namespace.StringDateTime:
		out := string(s.DateTime.Type)
		if s.DateTime.Begin != nil && s.DateTime.End != nil {
			layout := s.DateTime.Type.Layout()
			out += fmt.Sprintf(" [%s, %s]", s.DateTime.Begin.Format(layout), s.DateTime.End.Format(layout))
		}
		return out
	case namespace.StringUUID:
		return "uuid"
	case namespace.StringCategorical:
		return fmt.Sprintf("categorical (%s)", strings.Join(s.Categories, "|"))
	default:
		return "string " + s.Pattern
	}
}

// collectionFields returns the element object of a collection, or nil when
// the collection does not have the array-of-object shape
func collectionFields(c namespace.Content) *namespace.ObjectContent {
	array, ok := c.(*namespace.ArrayContent)
	if !ok {
		return nil
	}
	object, _ := array.Content.(*namespace.ObjectContent)
	return object
}

// references lists the collections a collection points at, in field order
func references(object *namespace.ObjectContent) []string {
	var targets []string
	seen := make(map[string]bool)
	for _, name := range object.FieldNames() {
		field, _ := object.Field(name)
		if ref, ok := field.Content.(*namespace.SameAsContent); ok && !seen[ref.Ref.Collection()] {
			seen[ref.Ref.Collection()] = true
			targets = append(targets, ref.Ref.Collection())
		}
	}
	return targets
}
