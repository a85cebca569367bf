package importer

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedSchema is returned for schemas the importer refuses to model,
	// such as composite primary keys
	ErrUnsupportedSchema = errors.New("unsupported schema")

	// ErrCapability matches every CapabilityError
	ErrCapability = errors.New("data source failure")
)

// CapabilityError wraps a failed data source call with its context
type CapabilityError struct {
	Op     string
	Table  string
	Column string
	Err    error
}

func (e *CapabilityError) Error() string {
	switch {
	case e.Column != "":
		return fmt.Sprintf("failed to %s for %s.%s: %v", e.Op, e.Table, e.Column, e.Err)
	case e.Table != "":
		return fmt.Sprintf("failed to %s for %s: %v", e.Op, e.Table, e.Err)
	default:
		return fmt.Sprintf("failed to %s: %v", e.Op, e.Err)
	}
}

func (e *CapabilityError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrCapability) true for any CapabilityError
func (e *CapabilityError) Is(target error) bool {
	return target == ErrCapability
}
