package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType tells whether a ledger entry adds to or subtracts from the balance.
type TransactionType string

const (
	// Credit increases the balance (income).
	Credit TransactionType = "credit"
	// Debit decreases the balance (expense).
	Debit TransactionType = "debit"
)

// Valid reports whether t is credit or debit.
func (t TransactionType) Valid() bool {
	return t == Credit || t == Debit
}

// Transaction represents a single ledger entry.
type Transaction struct {
	// ID is assigned by the store, monotonically increasing.
	ID int64

	// Type is credit or debit. Rows written by older clients may carry
	// other values; those are kept but never counted in totals.
	Type TransactionType

	// Amount is a non-negative magnitude. It is nullable because the store
	// may hand back incomplete rows; the calculator rejects those.
	Amount decimal.NullDecimal

	// Description explains the purpose of the transaction.
	Description string

	// CreatedBy is the ID of the authoring profile, empty when unknown.
	CreatedBy string

	// CreatedAt is set by the store on insert and used for ordering.
	CreatedAt time.Time
}

// NewTransaction builds an unsaved transaction with a valid amount.
func NewTransaction(t TransactionType, amount decimal.Decimal, description, createdBy string) *Transaction {
	return &Transaction{
		Type:        t,
		Amount:      decimal.NewNullDecimal(amount),
		Description: description,
		CreatedBy:   createdBy,
	}
}
