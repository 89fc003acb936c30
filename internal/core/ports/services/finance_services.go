package services

import (
	"context"

	"github.com/parishworks/parish_management_app/internal/core/domain"
	"github.com/parishworks/parish_management_app/internal/dto"
)

// AccountSvcFacade exposes account operations to the transport layer.
type AccountSvcFacade interface {
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest, creatorUserID string) (*domain.Account, error)
	GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error)
	ListAccounts(ctx context.Context, limit, offset int) ([]domain.Account, error)
	UpdateAccount(ctx context.Context, accountID string, req dto.UpdateAccountRequest, userID string) (*domain.Account, error)
	DeactivateAccount(ctx context.Context, accountID string, userID string) error
}

// CategorySvcFacade exposes category operations to the transport layer.
type CategorySvcFacade interface {
	CreateCategory(ctx context.Context, req dto.CreateCategoryRequest, creatorUserID string) (*domain.Category, error)
	GetCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error)
	ListCategories(ctx context.Context, limit, offset int) ([]domain.Category, error)
	UpdateCategory(ctx context.Context, categoryID string, req dto.UpdateCategoryRequest, userID string) (*domain.Category, error)
	DeleteCategory(ctx context.Context, categoryID string, userID string) error
}

// ProjectSvcFacade exposes project operations to the transport layer.
type ProjectSvcFacade interface {
	CreateProject(ctx context.Context, req dto.CreateProjectRequest, creatorUserID string) (*domain.Project, error)
	GetProjectByID(ctx context.Context, projectID string) (*domain.Project, error)
	ListProjects(ctx context.Context, limit, offset int) ([]domain.Project, error)
	UpdateProject(ctx context.Context, projectID string, req dto.UpdateProjectRequest, userID string) (*domain.Project, error)
	DeleteProject(ctx context.Context, projectID string, userID string) error
}

// TransactionSvcFacade exposes the ledger mutation protocol to the transport
// layer. All balance side effects live behind these operations.
type TransactionSvcFacade interface {
	CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest, creatorUserID string) (*domain.Transaction, error)
	GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)
	ListTransactions(ctx context.Context, params dto.ListTransactionsParams) ([]domain.Transaction, error)
	UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest, userID string) (*domain.Transaction, error)
	DeleteTransaction(ctx context.Context, transactionID string, userID string) error
	ApproveTransaction(ctx context.Context, transactionID string, userID string) (*domain.Transaction, error)
	RejectTransaction(ctx context.Context, transactionID string, userID string) (*domain.Transaction, error)
}

// ReportingSvcFacade exposes read-only financial reports.
type ReportingSvcFacade interface {
	Balances(ctx context.Context) (*dto.BalancesReportResponse, error)
	ProjectSpend(ctx context.Context) (*dto.ProjectSpendResponse, error)
	MonthlySummary(ctx context.Context, params dto.MonthlySummaryParams) (*dto.MonthlySummaryResponse, error)
}
