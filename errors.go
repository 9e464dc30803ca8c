package tagcheck

import "errors"

// Common errors used throughout the tagcheck package
var (
	// ErrReadDocument is returned when the document cannot be opened or read.
	// It is a precondition failure, never a validation verdict.
	ErrReadDocument = errors.New("failed to read document")
	// ErrNilConfig is returned when a checker is built without configuration.
	ErrNilConfig = errors.New("configuration is required")
)
