package formatter

import (
	"fmt"
	"io"
	"strings"

	"github.com/tordrt/dbsynth/internal/namespace"
)

// MarkdownFormatter formats a namespace as markdown tables
type MarkdownFormatter struct {
	writer io.Writer
}

// NewMarkdownFormatter creates a new markdown formatter
func NewMarkdownFormatter(w io.Writer) *MarkdownFormatter {
	return &MarkdownFormatter{writer: w}
}

// Format writes a section per collection
func (f *MarkdownFormatter) Format(ns *namespace.Namespace) error {
	_, _ = fmt.Fprintln(f.writer, "# Namespace")
	_, _ = fmt.Fprintln(f.writer)

	for _, name := range ns.CollectionNames() {
		content, err := ns.GetCollection(name)
		if err != nil {
			return err
		}
		f.formatCollection(name, content)
	}
	return nil
}

func (f *MarkdownFormatter) formatCollection(name string, content namespace.Content) {
	_, _ = fmt.Fprintf(f.writer, "## %s\n\n", name)

	object := collectionFields(content)
	if object == nil {
		_, _ = fmt.Fprintf(f.writer, "%s\n\n", escapeCell(describe(content)))
		return
	}

	_, _ = fmt.Fprintln(f.writer, "| Field | Content |")
	_, _ = fmt.Fprintln(f.writer, "|-------|---------|")
	for _, fieldName := range object.FieldNames() {
		field, _ := object.Field(fieldName)
		_, _ = fmt.Fprintf(f.writer, "| %s | %s |\n", fieldName, escapeCell(describe(field.Content)))
	}
	_, _ = fmt.Fprintln(f.writer)

	if targets := references(object); len(targets) > 0 {
		_, _ = fmt.Fprintf(f.writer, "References: %s\n\n", strings.Join(targets, ", "))
	}
}

// escapeCell keeps pipes inside a table cell
func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
