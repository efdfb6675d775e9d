package sparql2html

import "errors"

// Sentinel errors for conversion operations.
var (
	// Input errors.
	ErrReadInput     = errors.New("failed to read input")
	ErrInputTooLarge = errors.New("input exceeds maximum size")

	// Decoding errors, one per failure kind.
	ErrMalformedInput = errors.New("malformed JSON input")
	ErrSchemaMismatch = errors.New("input is not a SPARQL results document")
	ErrMissingField   = errors.New("binding is missing a required variable")

	// Output errors.
	ErrWriteOutput = errors.New("failed to write output")

	// Option validation errors.
	ErrInvalidColumns = errors.New("invalid column variables")
	ErrInvalidHeaders = errors.New("invalid header labels")
)
