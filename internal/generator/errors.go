package generator

import "errors"

// Generation-time failures. Every one of them aborts the whole pass; partial
// output is never written.
var (
	// ErrInvalidSchema reports a variant outside the closed set the mapper
	// recognizes, or a synthesized-name collision the schema producer must fix.
	ErrInvalidSchema = errors.New("invalid schema")

	// ErrUnsupportedNesting reports an array whose element type is itself an
	// array.
	ErrUnsupportedNesting = errors.New("unsupported array nesting")

	// ErrMissingObjectProperties reports an object-typed prop without a
	// property list.
	ErrMissingObjectProperties = errors.New("object prop missing properties")
)
