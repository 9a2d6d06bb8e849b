package ingest

import (
	"fmt"
	"strings"
)

// SchemaError reports required columns missing from the header row.
type SchemaError struct {
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("missing required columns: %s", strings.Join(e.Missing, ", "))
}

// ParseError reports a field that could not be coerced to its declared
// type. Row is 1-based and counts the header, matching spreadsheet row
// numbers.
type ParseError struct {
	Row    int
	Column string
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Column == "" {
		return fmt.Sprintf("row %d: malformed record: %v", e.Row, e.Err)
	}
	return fmt.Sprintf("row %d: cannot parse %q value %q: %v", e.Row, e.Column, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// DataError reports a semantic violation in an otherwise parseable row,
// e.g. negative quantity or an empty order ID.
type DataError struct {
	Row    int
	Reason string
}

func (e *DataError) Error() string {
	if e.Row == 0 {
		return e.Reason
	}
	return fmt.Sprintf("row %d: %s", e.Row, e.Reason)
}
