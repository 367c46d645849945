package roster

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMonthOutOfRange is returned when the reference month is not 1..12
var ErrMonthOutOfRange = errors.New("reference month out of range")

// SchemaError reports required columns absent from the input table
type SchemaError struct {
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("roster missing required columns: %s", strings.Join(e.Missing, ", "))
}

// DataTypeError reports a cell that failed to parse as its expected type.
// Row is 1-based over the data rows, matching how people count spreadsheet rows
type DataTypeError struct {
	Row    int
	Column string
	Value  string
	cause  error
}

func (e *DataTypeError) Error() string {
	return fmt.Sprintf("roster row %d column %s: cannot parse %q: %v", e.Row, e.Column, e.Value, e.cause)
}

func (e *DataTypeError) Unwrap() error { return e.cause }
