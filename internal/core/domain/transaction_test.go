package domain_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parishworks/parish_management_app/internal/core/domain"
)

func TestBalanceChanges_PaidIncome(t *testing.T) {
	txn := domain.Transaction{
		Type:      domain.Income,
		Value:     decimal.NewFromInt(50),
		AccountID: "acc-1",
		Status:    domain.StatusPaid,
	}

	changes := txn.BalanceChanges()
	require.Len(t, changes, 1)
	assert.True(t, changes["acc-1"].Equal(decimal.NewFromInt(50)))
}

func TestBalanceChanges_PaidExpense(t *testing.T) {
	txn := domain.Transaction{
		Type:      domain.Expense,
		Value:     decimal.NewFromInt(30),
		AccountID: "acc-1",
		Status:    domain.StatusPaid,
	}

	changes := txn.BalanceChanges()
	require.Len(t, changes, 1)
	assert.True(t, changes["acc-1"].Equal(decimal.NewFromInt(-30)))
}

func TestBalanceChanges_PaidTransfer(t *testing.T) {
	txn := domain.Transaction{
		Type:                 domain.Transfer,
		Value:                decimal.NewFromInt(25),
		AccountID:            "src",
		DestinationAccountID: "dst",
		Status:               domain.StatusPaid,
	}

	changes := txn.BalanceChanges()
	require.Len(t, changes, 2)
	assert.True(t, changes["src"].Equal(decimal.NewFromInt(-25)))
	assert.True(t, changes["dst"].Equal(decimal.NewFromInt(25)))
}

func TestBalanceChanges_NonPaidStatusesMoveNothing(t *testing.T) {
	for _, status := range []domain.TransactionStatus{
		domain.StatusPlanned,
		domain.StatusPendingApproval,
		domain.StatusCancelled,
	} {
		txn := domain.Transaction{
			Type:      domain.Expense,
			Value:     decimal.NewFromInt(30),
			AccountID: "acc-1",
			Status:    status,
		}
		assert.Empty(t, txn.BalanceChanges(), "status %s must not move money", status)
	}
}

// A paid expense of 30 against a balance of 100 leaves 70; deleting the
// transaction restores the original 100 exactly.
func TestReversalChanges_RestoresOriginalBalance(t *testing.T) {
	balance := decimal.NewFromInt(100)
	txn := domain.Transaction{
		Type:      domain.Expense,
		Value:     decimal.NewFromInt(30),
		AccountID: "caixa",
		Status:    domain.StatusPaid,
	}

	afterCreate := balance.Add(txn.BalanceChanges()["caixa"])
	assert.True(t, afterCreate.Equal(decimal.NewFromInt(70)))

	afterDelete := afterCreate.Add(txn.ReversalChanges()["caixa"])
	assert.True(t, afterDelete.Equal(balance))
}

func TestReversalChanges_TransferReversesBothLegs(t *testing.T) {
	txn := domain.Transaction{
		Type:                 domain.Transfer,
		Value:                decimal.NewFromInt(40),
		AccountID:            "src",
		DestinationAccountID: "dst",
		Status:               domain.StatusPaid,
	}

	reversal := txn.ReversalChanges()
	require.Len(t, reversal, 2)
	assert.True(t, reversal["src"].Equal(decimal.NewFromInt(40)))
	assert.True(t, reversal["dst"].Equal(decimal.NewFromInt(-40)))
}

func TestCanTransitionTo(t *testing.T) {
	cases := []struct {
		from    domain.TransactionStatus
		to      domain.TransactionStatus
		allowed bool
	}{
		{domain.StatusPlanned, domain.StatusPaid, true},
		{domain.StatusPlanned, domain.StatusCancelled, true},
		{domain.StatusPlanned, domain.StatusPendingApproval, false},
		{domain.StatusPendingApproval, domain.StatusPaid, true},
		{domain.StatusPendingApproval, domain.StatusCancelled, true},
		{domain.StatusPendingApproval, domain.StatusPlanned, false},
		{domain.StatusPaid, domain.StatusPlanned, false},
		{domain.StatusPaid, domain.StatusCancelled, false},
		{domain.StatusCancelled, domain.StatusPaid, false},
		// same-status writes are field edits, always fine
		{domain.StatusPaid, domain.StatusPaid, true},
		{domain.StatusCancelled, domain.StatusCancelled, true},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.allowed, tc.from.CanTransitionTo(tc.to), "%s -> %s", tc.from, tc.to)
	}
}
