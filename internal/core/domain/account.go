package domain

import (
	"github.com/shopspring/decimal"
)

// AccountType describes where the money of an account physically lives.
type AccountType string

const (
	AccountCash AccountType = "CASH"
	AccountBank AccountType = "BANK"
	AccountPix  AccountType = "PIX"
)

// Account represents a financial account of the parish ledger.
// Balance is denormalized; it is only ever mutated together with the
// transaction row that justifies the change, inside one database transaction.
type Account struct {
	AccountID   string          `json:"accountID"`
	Name        string          `json:"name"`
	AccountType AccountType     `json:"accountType"`
	Description string          `json:"description"`
	Balance     decimal.Decimal `json:"balance"`
	IsActive    bool            `json:"isActive"`
	AuditFields
}
