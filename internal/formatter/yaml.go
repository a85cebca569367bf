package formatter

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/tordrt/dbsynth/internal/namespace"
)

// YAMLFormatter writes the namespace as a single YAML document
type YAMLFormatter struct {
	writer io.Writer
}

// NewYAMLFormatter creates a new YAML formatter
func NewYAMLFormatter(w io.Writer) *YAMLFormatter {
	return &YAMLFormatter{writer: w}
}

// Format writes ns in block style, keeping the collection and field order
func (f *YAMLFormatter) Format(ns *namespace.Namespace) error {
	node, err := toYAMLNode(ns)
	if err != nil {
		return err
	}

	enc := yaml.NewEncoder(f.writer)
	enc.SetIndent(2)
	if err := enc.Encode(node); err != nil {
		return fmt.Errorf("failed to write namespace: %w", err)
	}
	return enc.Close()
}

// toYAMLNode goes through the JSON encoding so both formats share one field
// layout. JSON is valid YAML, so the decoder keeps mapping order.
func toYAMLNode(v json.Marshaler) (*yaml.Node, error) {
	data, err := v.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("failed to encode namespace: %w", err)
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to convert namespace to yaml: %w", err)
	}
	blockStyle(&doc)
	return &doc, nil
}

// blockStyle clears the flow and quoting styles the JSON input left behind
func blockStyle(n *yaml.Node) {
	n.Style = 0
	for _, child := range n.Content {
		blockStyle(child)
	}
}
