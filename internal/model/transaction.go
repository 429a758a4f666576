package model

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType classifies the direction of a statement row.
type TransactionType string

const (
	TypeDebit  TransactionType = "DEBIT"
	TypeCredit TransactionType = "CREDIT"
)

// ParseTransactionType matches the raw type column against the closed set
// of transaction types. The match is exact and case-sensitive: anything
// other than "DEBIT" or "CREDIT" is an error, never a silent default.
func ParseTransactionType(raw string) (TransactionType, error) {
	switch raw {
	case string(TypeDebit):
		return TypeDebit, nil
	case string(TypeCredit):
		return TypeCredit, nil
	}
	return "", fmt.Errorf("invalid transaction type %q", raw)
}

// TransactionCategory classifies a transaction for reporting.
type TransactionCategory string

const (
	CategoryFood             TransactionCategory = "food"
	CategoryUtilities        TransactionCategory = "utilities"
	CategoryBills            TransactionCategory = "bills"
	CategoryEntertainment    TransactionCategory = "entertainment"
	CategoryTransportation   TransactionCategory = "transportation"
	CategoryHealthcare       TransactionCategory = "healthcare"
	CategoryEducation        TransactionCategory = "education"
	CategoryAccountTransfers TransactionCategory = "account_transfers"
	CategoryOther            TransactionCategory = "other"
)

// Transaction represents a parsed bank statement row.
type Transaction struct {
	Type        TransactionType
	Date        time.Time       // date posted, no time component
	Amount      decimal.Decimal // negative = outflow, sign as given by the bank
	Description string
	Category    TransactionCategory // always CategoryOther until a classifier exists
}
