package formatter

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/tordrt/dbsynth/internal/namespace"
)

// JSONFormatter writes the namespace as a single JSON document
type JSONFormatter struct {
	writer io.Writer
	indent bool
}

// NewJSONFormatter creates a new JSON formatter. indent selects two-space
// indentation over compact output.
func NewJSONFormatter(w io.Writer, indent bool) *JSONFormatter {
	return &JSONFormatter{writer: w, indent: indent}
}

// Format writes ns followed by a newline
func (f *JSONFormatter) Format(ns *namespace.Namespace) error {
	data, err := encodeJSON(ns, f.indent)
	if err != nil {
		return err
	}
	if _, err := f.writer.Write(data); err != nil {
		return fmt.Errorf("failed to write namespace: %w", err)
	}
	return nil
}

func encodeJSON(v json.Marshaler, indent bool) ([]byte, error) {
	data, err := v.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("failed to encode namespace: %w", err)
	}

	var buf bytes.Buffer
	if indent {
		if err := json.Indent(&buf, data, "", "  "); err != nil {
			return nil, fmt.Errorf("failed to indent namespace: %w", err)
		}
	} else {
		buf.Write(data)
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}
