package namespace

import (
	"fmt"
	"regexp"
	"strings"
)

// contentSegment is the fixed middle segment of every field path
const contentSegment = "content"

var validName = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_-]*$`)

// ValidateName checks that a collection or field name can be addressed by a field path
func ValidateName(name string) error {
	if !validName.MatchString(name) {
		return fmt.Errorf("%w: %q", ErrInvalidIdentifier, name)
	}
	return nil
}

// FieldRef addresses a field of a collection template: <collection>.content.<field>
type FieldRef struct {
	collection string
	field      string
}

// NewFieldRef builds the path of field inside collection
func NewFieldRef(collection, field string) (FieldRef, error) {
	if err := ValidateName(collection); err != nil {
		return FieldRef{}, fmt.Errorf("collection name: %w", err)
	}
	if err := ValidateName(field); err != nil {
		return FieldRef{}, fmt.Errorf("field name in %s: %w", collection, err)
	}
	return FieldRef{collection: collection, field: field}, nil
}

// ParseFieldRef parses a dotted field path
func ParseFieldRef(path string) (FieldRef, error) {
	parts := strings.Split(path, ".")
	if len(parts) != 3 || parts[1] != contentSegment {
		return FieldRef{}, fmt.Errorf("%w: field path %q must have the form <collection>.content.<field>", ErrInvalidIdentifier, path)
	}
	return NewFieldRef(parts[0], parts[2])
}

// Collection returns the collection name
func (r FieldRef) Collection() string {
	return r.collection
}

// Field returns the field name
func (r FieldRef) Field() string {
	return r.field
}

func (r FieldRef) String() string {
	return r.collection + "." + contentSegment + "." + r.field
}
