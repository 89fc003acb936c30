package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType is the economic direction of a transaction.
type TransactionType string

const (
	Income   TransactionType = "INCOME"
	Expense  TransactionType = "EXPENSE"
	Transfer TransactionType = "TRANSFER"
)

// TransactionStatus is the lifecycle state of a transaction.
//
// Allowed transitions:
//
//	PLANNED          -> PAID       (via update; balances are NOT retouched)
//	PENDING_APPROVAL -> PAID       (approve; applies balance deltas)
//	PENDING_APPROVAL -> CANCELLED  (reject)
//	PAID             -> deleted    (delete; reverses balance deltas)
//
// There is no transition that un-pays a transaction.
type TransactionStatus string

const (
	StatusPlanned         TransactionStatus = "PLANNED"
	StatusPaid            TransactionStatus = "PAID"
	StatusCancelled       TransactionStatus = "CANCELLED"
	StatusPendingApproval TransactionStatus = "PENDING_APPROVAL"
)

// PaymentMethod is how the money moved.
type PaymentMethod string

const (
	PayCash         PaymentMethod = "CASH"
	PayBankTransfer PaymentMethod = "BANK_TRANSFER"
	PayPix          PaymentMethod = "PIX"
	PayCheck        PaymentMethod = "CHECK"
	PayCard         PaymentMethod = "CARD"
)

// Transaction is a single ledger entry against one account (or two, for
// transfers). Value is always positive; the sign applied to account balances
// is derived from the type.
type Transaction struct {
	TransactionID        string            `json:"transactionID"`
	Type                 TransactionType   `json:"type"`
	Value                decimal.Decimal   `json:"value"` // positive
	Date                 time.Time         `json:"date"`
	Description          string            `json:"description"`
	CategoryID           string            `json:"categoryID"`           // empty for transfers
	AccountID            string            `json:"accountID"`            // source account
	DestinationAccountID string            `json:"destinationAccountID"` // transfers only
	ProjectID            string            `json:"projectID"`            // optional
	PaymentMethod        PaymentMethod     `json:"paymentMethod"`
	Status               TransactionStatus `json:"status"`
	AuditFields
}

// BalanceChanges returns the per-account balance deltas a transaction causes
// when it takes effect. Only PAID transactions move money:
//
//	income   -> source gains Value
//	expense  -> source loses Value
//	transfer -> source loses Value, destination gains Value
//
// A nil-length map means the transaction has no effect on balances.
func (t Transaction) BalanceChanges() map[string]decimal.Decimal {
	changes := make(map[string]decimal.Decimal)
	if t.Status != StatusPaid {
		return changes
	}
	switch t.Type {
	case Income:
		changes[t.AccountID] = t.Value
	case Expense:
		changes[t.AccountID] = t.Value.Neg()
	case Transfer:
		changes[t.AccountID] = t.Value.Neg()
		changes[t.DestinationAccountID] = t.Value
	}
	return changes
}

// ReversalChanges returns the deltas that undo BalanceChanges, used when a
// paid transaction is deleted.
func (t Transaction) ReversalChanges() map[string]decimal.Decimal {
	reversed := make(map[string]decimal.Decimal)
	for accountID, delta := range t.BalanceChanges() {
		reversed[accountID] = delta.Neg()
	}
	return reversed
}

// CanTransitionTo reports whether the status change is part of the lifecycle.
// Same-status writes are allowed (field edits keep the status).
func (s TransactionStatus) CanTransitionTo(next TransactionStatus) bool {
	if s == next {
		return true
	}
	switch s {
	case StatusPlanned:
		return next == StatusPaid || next == StatusCancelled
	case StatusPendingApproval:
		return next == StatusPaid || next == StatusCancelled
	default:
		return false
	}
}
