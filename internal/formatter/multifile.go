package formatter

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/tordrt/dbsynth/internal/namespace"
)

const (
	FormatJSON     = "json"
	FormatYAML     = "yaml"
	FormatText     = "text"
	FormatMarkdown = "markdown"
)

// MultiFileFormatter writes one file per collection into a directory, the
// layout the synthesis engine reads a namespace from
type MultiFileFormatter struct {
	OutputDir    string
	OutputFormat string // "json" or "yaml"
}

// NewMultiFileFormatter creates a new multi-file formatter
func NewMultiFileFormatter(outputDir, format string) *MultiFileFormatter {
	return &MultiFileFormatter{
		OutputDir:    outputDir,
		OutputFormat: format,
	}
}

// Format writes <collection>.json (or .yaml) for every collection of ns
func (f *MultiFileFormatter) Format(ns *namespace.Namespace) error {
	if f.OutputFormat != FormatJSON && f.OutputFormat != FormatYAML {
		return fmt.Errorf("unsupported directory format %q (use json or yaml)", f.OutputFormat)
	}

	// Create output directory if it doesn't exist
	if err := os.MkdirAll(f.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	for _, name := range ns.CollectionNames() {
		content, err := ns.GetCollection(name)
		if err != nil {
			return err
		}
		if err := f.writeCollectionFile(name, content); err != nil {
			return fmt.Errorf("failed to write collection file for %s: %w", name, err)
		}
	}

	return nil
}

// writeCollectionFile writes a single collection to its own file
func (f *MultiFileFormatter) writeCollectionFile(name string, content namespace.Content) error {
	filename := filepath.Join(f.OutputDir, name+f.getFileExtension())

	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() { _ = file.Close() }()

	if f.OutputFormat == FormatYAML {
		node, err := toYAMLNode(content)
		if err != nil {
			return err
		}
		enc := yaml.NewEncoder(file)
		enc.SetIndent(2)
		if err := enc.Encode(node); err != nil {
			return err
		}
		return enc.Close()
	}

	data, err := encodeJSON(content, true)
	if err != nil {
		return err
	}
	_, err = file.Write(data)
	return err
}

func (f *MultiFileFormatter) getFileExtension() string {
	if f.OutputFormat == FormatYAML {
		return ".yaml"
	}
	return ".json"
}
