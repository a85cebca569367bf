// Package namespace holds the schema-generation document produced by the importer:
// an ordered set of collections, each an array wrapping one object template.
package namespace

import (
	"fmt"

	"github.com/tordrt/dbsynth/internal/schema"
)

// Namespace maps collection names to content trees, preserving insertion order
type Namespace struct {
	names       []string
	collections map[string]Content
}

// New creates an empty namespace
func New() *Namespace {
	return &Namespace{collections: make(map[string]Content)}
}

// PutCollection adds a collection under name
func (n *Namespace) PutCollection(name string, content Content) error {
	if err := ValidateName(name); err != nil {
		return fmt.Errorf("collection name: %w", err)
	}
	if _, exists := n.collections[name]; exists {
		return fmt.Errorf("collection %s already exists", name)
	}
	n.names = append(n.names, name)
	n.collections[name] = content
	return nil
}

// GetCollection returns the collection stored under name
func (n *Namespace) GetCollection(name string) (Content, error) {
	c, ok := n.collections[name]
	if !ok {
		return nil, fmt.Errorf("collection %s: %w", name, ErrNotFound)
	}
	return c, nil
}

// CollectionNames returns the collection names in insertion order
func (n *Namespace) CollectionNames() []string {
	names := make([]string, len(n.names))
	copy(names, n.names)
	return names
}

// Len returns the number of collections
func (n *Namespace) Len() int {
	return len(n.names)
}

// GetFieldMut resolves ref to the field it addresses so callers can replace its content
func (n *Namespace) GetFieldMut(ref FieldRef) (*FieldContent, error) {
	collection, err := n.GetCollection(ref.Collection())
	if err != nil {
		return nil, fmt.Errorf("field %s: %w", ref, err)
	}

	array, ok := collection.(*ArrayContent)
	if !ok {
		return nil, fmt.Errorf("field %s: collection is %s, not array: %w", ref, TypeName(collection), ErrNotFound)
	}

	object, ok := array.Content.(*ObjectContent)
	if !ok {
		return nil, fmt.Errorf("field %s: template is %s, not object: %w", ref, TypeName(array.Content), ErrNotFound)
	}

	field, ok := object.Field(ref.Field())
	if !ok {
		return nil, fmt.Errorf("field %s: %w", ref, ErrNotFound)
	}
	return field, nil
}

// GetNode returns the content at ref
func (n *Namespace) GetNode(ref FieldRef) (Content, error) {
	field, err := n.GetFieldMut(ref)
	if err != nil {
		return nil, err
	}
	return field.Content, nil
}

// TryUpdate merges sampled rows into the collection called name
func (n *Namespace) TryUpdate(strategy MergeStrategy, name string, rows []schema.Row) error {
	collection, err := n.GetCollection(name)
	if err != nil {
		return err
	}

	values := make([]any, len(rows))
	for i, row := range rows {
		values[i] = row
	}

	if err := strategy.Merge(collection, values); err != nil {
		return fmt.Errorf("collection %s: %w", name, err)
	}
	return nil
}
