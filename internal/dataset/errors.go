package dataset

import (
	"errors"
	"fmt"
	"strings"
)

// SchemaError reports required columns missing from a dataset header.
type SchemaError struct {
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("dataset schema invalid: missing column(s) %s", strings.Join(e.Missing, ", "))
}

// AsSchemaError attempts to unwrap an error into a SchemaError.
func AsSchemaError(err error) (*SchemaError, bool) {
	var schemaErr *SchemaError
	if errors.As(err, &schemaErr) {
		return schemaErr, true
	}
	return nil, false
}

// ParseError reports a cell that could not be coerced to its column type.
// Row is the 1-based data row, not counting the header.
type ParseError struct {
	Row    int
	Column string
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("dataset row %d column %q: cannot parse %q", e.Row, e.Column, e.Value)
}

func (e *ParseError) Unwrap() error { return e.Err }

// AsParseError attempts to unwrap an error into a ParseError.
func AsParseError(err error) (*ParseError, bool) {
	var parseErr *ParseError
	if errors.As(err, &parseErr) {
		return parseErr, true
	}
	return nil, false
}

// StatusError reports a non-2xx response from a remote dataset host.
type StatusError struct {
	URL        string
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("dataset download %s: unexpected status %s", e.URL, e.Status)
}
