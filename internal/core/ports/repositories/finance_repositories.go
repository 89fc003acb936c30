package repositories

import (
	"context"
	"time"

	"github.com/parishworks/parish_management_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AccountRepository persists financial accounts.
type AccountRepository interface {
	SaveAccount(ctx context.Context, account domain.Account) error
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)
	FindAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error)
	ListAccounts(ctx context.Context, limit, offset int) ([]domain.Account, error)
	UpdateAccount(ctx context.Context, account domain.Account) error
}

// CategoryRepository persists transaction categories.
type CategoryRepository interface {
	SaveCategory(ctx context.Context, category domain.Category) error
	FindCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error)
	ListCategories(ctx context.Context, limit, offset int) ([]domain.Category, error)
	UpdateCategory(ctx context.Context, category domain.Category) error
	DeleteCategory(ctx context.Context, categoryID string) error
}

// ProjectRepository persists parish projects.
type ProjectRepository interface {
	SaveProject(ctx context.Context, project domain.Project) error
	FindProjectByID(ctx context.Context, projectID string) (*domain.Project, error)
	ListProjects(ctx context.Context, limit, offset int) ([]domain.Project, error)
	UpdateProject(ctx context.Context, project domain.Project) error
	DeleteProject(ctx context.Context, projectID string) error
}

// ListTransactionsFilter narrows a transaction listing. Zero values mean
// "no filter" for that field.
type ListTransactionsFilter struct {
	AccountID string
	ProjectID string
	Status    domain.TransactionStatus
	Type      domain.TransactionType
	DateFrom  *time.Time
	DateTo    *time.Time
	Limit     int
	Offset    int
}

// TransactionRepository persists ledger transactions. Every method that takes
// balanceChanges MUST apply the deltas and the row write inside a single
// database transaction, locking the affected account rows first.
type TransactionRepository interface {
	// SaveTransaction inserts the transaction and applies balanceChanges.
	SaveTransaction(ctx context.Context, txn domain.Transaction, balanceChanges map[string]decimal.Decimal) error
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)
	ListTransactions(ctx context.Context, filter ListTransactionsFilter) ([]domain.Transaction, error)
	// UpdateTransaction overwrites editable fields. It deliberately takes no
	// balance deltas; edits never retouch account balances.
	UpdateTransaction(ctx context.Context, txn domain.Transaction) error
	// UpdateTransactionStatus moves the transaction to the given status and
	// applies balanceChanges (approval path).
	UpdateTransactionStatus(ctx context.Context, transactionID string, status domain.TransactionStatus, updatedBy string, updatedAt time.Time, balanceChanges map[string]decimal.Decimal) error
	// DeleteTransaction removes the row and applies balanceChanges (the
	// reversal of the original deltas when the row was PAID). deletedBy and
	// deletedAt stamp the audit fields of the adjusted accounts.
	DeleteTransaction(ctx context.Context, transactionID string, deletedBy string, deletedAt time.Time, balanceChanges map[string]decimal.Decimal) error
}
