package statement

import (
	"encoding/csv"
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IanChok/finance-tracker/internal/model"
)

const fixturePath = "../../testdata/statement.csv"

func TestParseFile(t *testing.T) {
	txns, err := ParseFile(fixturePath)
	require.NoError(t, err)
	require.Len(t, txns, 5)

	// Mortgage debit: every field populated from the row.
	first := txns[0]
	assert.Equal(t, model.TypeDebit, first.Type)
	assert.Equal(t, time.Date(2024, time.June, 3, 0, 0, 0, 0, time.UTC), first.Date)
	assert.Equal(t, "-1374.47", first.Amount.StringFixed(2))
	assert.Equal(t, "[DS]BANK   MTG/HYP", first.Description)
	assert.Equal(t, model.CategoryOther, first.Category)

	// Payroll credit keeps its positive sign.
	assert.Equal(t, model.TypeCredit, txns[1].Type)
	assert.True(t, txns[1].Amount.IsPositive())
	assert.Equal(t, "PAYROLL   ACME INC", txns[1].Description)
}

func TestParseFile_FiltersNoise(t *testing.T) {
	txns, err := ParseFile(fixturePath)
	require.NoError(t, err)

	// Header, blank separator, and short "Total" rows vanish silently:
	// the fixture has 8 lines but only 5 transactions.
	assert.Len(t, txns, 5)
	for _, txn := range txns {
		assert.NotEmpty(t, txn.Description)
	}
}

func TestParseFile_NotFound(t *testing.T) {
	_, err := ParseFile("testdata/nonexistent.csv")
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParse_InvalidType(t *testing.T) {
	in := "'6007620712733055',XFER,20240603,-1374.47,desc\n"
	_, err := Parse(strings.NewReader(in))
	require.Error(t, err)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, FieldType, verr.Field)
	assert.Equal(t, "XFER", verr.Value)
	assert.Contains(t, err.Error(), "XFER")
}

func TestParse_EmptyTypeIsStrict(t *testing.T) {
	in := "'6007620712733055',,20240603,-1374.47,desc\n"
	_, err := Parse(strings.NewReader(in))
	require.Error(t, err)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, FieldType, verr.Field)
}

func TestParse_TypeIsCaseSensitive(t *testing.T) {
	in := "'6007620712733055',debit,20240603,-1374.47,desc\n"
	_, err := Parse(strings.NewReader(in))
	require.Error(t, err)
}

func TestParse_InvalidDate(t *testing.T) {
	in := "'6007620712733055',DEBIT,05/01/2024,-1374.47,desc\n"
	_, err := Parse(strings.NewReader(in))
	require.Error(t, err)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, FieldDate, verr.Field)
	assert.Equal(t, "05/01/2024", verr.Value)
	assert.Equal(t, 1, verr.Row)
}

func TestParse_AbsentDateFallsBack(t *testing.T) {
	in := "'6007620712733055',DEBIT,,-42.10,desc\n"
	txns, err := Parse(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, txns, 1)
	assert.Equal(t, DefaultDate, txns[0].Date)
}

func TestParse_BadAmountFallsBack(t *testing.T) {
	in := "'6007620712733055',DEBIT,20240607,N/A,desc\n"
	txns, err := Parse(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, txns, 1)
	assert.True(t, txns[0].Amount.Equal(DefaultAmount))
	assert.True(t, txns[0].Amount.IsZero())
}

func TestParse_SignNotCrossValidated(t *testing.T) {
	// A DEBIT can carry a positive amount: the sign reflects raw bank data,
	// not direction semantics.
	in := "'6007620712733055',DEBIT,20240603,1374.47,desc\n"
	txns, err := Parse(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, txns, 1)
	assert.True(t, txns[0].Amount.IsPositive())
}

func TestParse_DescriptionTrimming(t *testing.T) {
	in := "'6007620712733055',DEBIT,20240603,-1374.47,\"  [DS]BANK   MTG/HYP  \"\n"
	txns, err := Parse(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, txns, 1)

	// Outer whitespace stripped, interior spacing preserved verbatim.
	assert.Equal(t, "[DS]BANK   MTG/HYP", txns[0].Description)
}

func TestParse_TrailingColumnsIgnored(t *testing.T) {
	in := "'6007620712733055',DEBIT,20240610,-15.00,COFFEE BAR,POS,4021\n"
	txns, err := Parse(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, txns, 1)
	assert.Equal(t, "COFFEE BAR", txns[0].Description)
}

func TestParse_CorruptQuoting(t *testing.T) {
	in := "'6007620712733055',DEBIT,20240603,-1.00,\"unterminated\n"
	_, err := Parse(strings.NewReader(in))
	require.Error(t, err)

	var perr *csv.ParseError
	assert.True(t, errors.As(err, &perr), "expected a csv.ParseError, got %v", err)
}

func TestParse_EmptyInput(t *testing.T) {
	txns, err := Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, txns)
}

func TestParse_Idempotent(t *testing.T) {
	first, err := ParseFile(fixturePath)
	require.NoError(t, err)
	second, err := ParseFile(fixturePath)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestCoerce_ShortRecordFallbacks(t *testing.T) {
	// The filter guards the pipeline, but coercion's fallback rules stand
	// on their own for absent trailing columns.
	txn, err := coerce([]string{"6007620712733055", "CREDIT"}, 1)
	require.NoError(t, err)
	assert.Equal(t, model.TypeCredit, txn.Type)
	assert.Equal(t, DefaultDate, txn.Date)
	assert.True(t, txn.Amount.Equal(DefaultAmount))
	assert.Equal(t, DefaultDescription, txn.Description)
	assert.Equal(t, model.CategoryOther, txn.Category)
}

func TestDefaultDate(t *testing.T) {
	assert.Equal(t, 2000, DefaultDate.Year())
	assert.Equal(t, time.January, DefaultDate.Month())
	assert.Equal(t, 1, DefaultDate.Day())
}
