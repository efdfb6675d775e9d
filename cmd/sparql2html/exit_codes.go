package main

import (
	"errors"
	"fmt"
	"os"

	sparql2html "github.com/alnah/go-sparql2html"
	"github.com/alnah/go-sparql2html/internal/config"
	"github.com/alnah/go-sparql2html/internal/hints"
)

// Exit codes for sparql2html CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess      = 0 // Successful conversion
	ExitGeneral      = 1 // General/unexpected error
	ExitUsage        = 2 // Invalid flags, config, or environment
	ExitIO           = 3 // Read/write failure, input too large, file not found
	ExitMalformed    = 4 // Input is not valid JSON
	ExitSchema       = 5 // JSON is not a SPARQL results document
	ExitMissingField = 6 // A binding lacks a required variable
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Decoding errors (exit 4-6)
	switch {
	case errors.Is(err, sparql2html.ErrMalformedInput):
		return ExitMalformed
	case errors.Is(err, sparql2html.ErrSchemaMismatch):
		return ExitSchema
	case errors.Is(err, sparql2html.ErrMissingField):
		return ExitMissingField
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, sparql2html.ErrReadInput) ||
		errors.Is(err, sparql2html.ErrInputTooLarge) ||
		errors.Is(err, sparql2html.ErrWriteOutput) ||
		errors.Is(err, ErrOpenInput) ||
		errors.Is(err, ErrWriteFile) ||
		errors.Is(err, ErrSetupLogger) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, sparql2html.ErrInvalidColumns) ||
		errors.Is(err, sparql2html.ErrInvalidHeaders) ||
		errors.Is(err, ErrInvalidEnv) ||
		errors.Is(err, ErrUnexpectedArgs) {
		return ExitUsage
	}

	return ExitGeneral
}

// withHint appends an actionable hint to err when one applies.
// vars are the column variables the conversion expected.
func withHint(err error, vars []string) error {
	var hint string
	switch {
	case errors.Is(err, sparql2html.ErrMalformedInput):
		hint = hints.ForMalformedInput()
	case errors.Is(err, sparql2html.ErrSchemaMismatch):
		hint = hints.ForSchemaMismatch()
	case errors.Is(err, sparql2html.ErrMissingField):
		hint = hints.ForMissingField(vars)
	case errors.Is(err, sparql2html.ErrInputTooLarge):
		hint = hints.ForInputTooLarge()
	case errors.Is(err, ErrWriteFile):
		hint = hints.ForOutputDirectory()
	}
	if hint == "" {
		return err
	}
	return fmt.Errorf("%w%s", err, hint)
}
