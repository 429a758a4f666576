package statement

import "fmt"

// Field names reported in validation errors.
const (
	FieldType = "transaction_type"
	FieldDate = "date"
)

// ValidationError describes a strict field that failed to parse on an
// admitted row. Strict failures abort the whole file: no partial result is
// returned alongside one.
type ValidationError struct {
	Row   int    // 1-based line in the source file
	Field string
	Value string // offending raw value
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("row %d: invalid %s %q", e.Row, e.Field, e.Value)
}
