// Package errors provides structured configuration and validation
// errors with stable codes, fix suggestions, and documentation links.
//
// The matcher itself never returns errors: unmatched input degrades to
// fallback data by design. This package covers the places where
// failing fast is correct — normalization of malformed route
// definitions, configuration loading, and server startup.
package errors
