package formatter

import (
	"fmt"
	"io"
	"strings"

	"github.com/tordrt/dbsynth/internal/namespace"
)

// TextFormatter formats a namespace as a compact text summary
type TextFormatter struct {
	writer io.Writer
}

// NewTextFormatter creates a new text formatter
func NewTextFormatter(w io.Writer) *TextFormatter {
	return &TextFormatter{writer: w}
}

// Format writes one block per collection
func (f *TextFormatter) Format(ns *namespace.Namespace) error {
	for i, name := range ns.CollectionNames() {
		if i > 0 {
			_, _ = fmt.Fprintln(f.writer) // Blank line between collections
		}

		content, err := ns.GetCollection(name)
		if err != nil {
			return err
		}
		f.formatCollection(name, content)
	}
	return nil
}

func (f *TextFormatter) formatCollection(name string, content namespace.Content) {
	object := collectionFields(content)
	if object == nil {
		_, _ = fmt.Fprintf(f.writer, "COLLECTION %s: %s\n", name, describe(content))
		return
	}

	refs := ""
	if targets := references(object); len(targets) > 0 {
		refs = fmt.Sprintf(" (references: %s)", strings.Join(targets, ", "))
	}
	_, _ = fmt.Fprintf(f.writer, "COLLECTION %s%s\n", name, refs)

	for _, fieldName := range object.FieldNames() {
		field, _ := object.Field(fieldName)
		_, _ = fmt.Fprintf(f.writer, "  %s: %s\n", fieldName, describe(field.Content))
	}
}
