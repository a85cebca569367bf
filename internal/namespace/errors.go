package namespace

import "errors"

var (
	// ErrNotFound is returned when a collection or field path does not resolve
	ErrNotFound = errors.New("not found")

	// ErrInvalidIdentifier is returned when a name cannot be used in a field path
	ErrInvalidIdentifier = errors.New("invalid identifier")

	// ErrMergeIncompatible is returned when a sampled value cannot be reconciled with its node
	ErrMergeIncompatible = errors.New("incompatible merge")
)
