// Package statement parses bank statement CSV exports into transactions.
//
// Exports from the bank are messy: row widths vary, account numbers come
// quoted or bare, and header or separator lines appear mid-file. Each raw
// row is either admitted as data or silently dropped, and admitted rows are
// coerced field by field. The type and date columns are strict (a bad value
// fails the whole file); the amount column is lenient and degrades to zero.
package statement

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/IanChok/finance-tracker/internal/model"
)

// Column layout of a statement row. The account id column is consumed by
// the row filter only and is not carried into the output record.
const (
	colAccountID = 0
	colType      = 1
	colDate      = 2
	colAmount    = 3
	colDesc      = 4
)

// dateLayout is the bank's date-posted format, e.g. "20240603".
const dateLayout = "20060102"

// Fallback values substituted for absent lenient fields. They are part of
// the output contract: callers match against these rather than re-deriving
// them.
var (
	// DefaultDate stands in for an absent date column.
	DefaultDate = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)
	// DefaultAmount stands in for an absent or unparsable amount.
	DefaultAmount = decimal.Zero
)

// DefaultDescription stands in for an absent description column.
const DefaultDescription = "N/A"

// ParseFile reads a statement CSV from disk and returns its transactions
// in file order. See Parse for the error contract.
func ParseFile(path string) ([]model.Transaction, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening statement: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

// Parse reads a statement CSV and returns its transactions in row order,
// with filtered rows omitted. Corrupt CSV quoting surfaces as a wrapped
// *csv.ParseError; an invalid transaction type or date on an admitted row
// surfaces as a *ValidationError. Either aborts the parse with no partial
// result. A file with no admitted rows yields an empty result, not an
// error.
func Parse(r io.Reader) ([]model.Transaction, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // statement exports vary in row width

	var txns []model.Transaction
	for {
		record, err := cr.Read()
		if err == io.EOF {
			return txns, nil
		}
		if err != nil {
			return nil, fmt.Errorf("reading statement CSV: %w", err)
		}

		if !admit(record) {
			continue
		}

		line, _ := cr.FieldPos(0)
		txn, err := coerce(record, line)
		if err != nil {
			return nil, err
		}
		txns = append(txns, txn)
	}
}

// coerce converts an admitted record into a transaction. The row filter
// guarantees minFields columns in the pipeline; coerce still tolerates
// shorter records so the per-field fallback rules hold on their own.
func coerce(record []string, row int) (model.Transaction, error) {
	rawType := field(record, colType)
	txType, err := model.ParseTransactionType(rawType)
	if err != nil {
		return model.Transaction{}, &ValidationError{Row: row, Field: FieldType, Value: rawType}
	}

	rawDate := field(record, colDate)
	date, err := parseDate(rawDate)
	if err != nil {
		return model.Transaction{}, &ValidationError{Row: row, Field: FieldDate, Value: rawDate}
	}

	amount, err := decimal.NewFromString(field(record, colAmount))
	if err != nil {
		amount = DefaultAmount
	}

	desc := DefaultDescription
	if colDesc < len(record) {
		desc = strings.TrimSpace(record[colDesc])
	}

	return model.Transaction{
		Type:        txType,
		Date:        date,
		Amount:      amount,
		Description: desc,
		Category:    model.CategoryOther,
	}, nil
}

// parseDate parses the date-posted column. An empty slot falls back to
// DefaultDate; a present but malformed value is a strict failure.
func parseDate(raw string) (time.Time, error) {
	if raw == "" {
		return DefaultDate, nil
	}
	return time.Parse(dateLayout, raw)
}

// field returns the column at index i, or "" when the record is too short.
func field(record []string, i int) string {
	if i >= len(record) {
		return ""
	}
	return record[i]
}
