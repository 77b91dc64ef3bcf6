package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecordType classifies a finance record.
type RecordType string

const (
	RecordIncome     RecordType = "income"
	RecordExpense    RecordType = "expense"
	RecordInvestment RecordType = "investment"
)

// Valid reports whether t is one of the known record types.
func (t RecordType) Valid() bool {
	switch t {
	case RecordIncome, RecordExpense, RecordInvestment:
		return true
	}
	return false
}

// FinanceRecord is a single income, expense or investment entry owned by a user.
type FinanceRecord struct {
	ID              string
	UserID          string
	TransactionType RecordType
	Amount          decimal.Decimal
	Category        string
	Description     string
	Date            time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
