package repositories

import (
	"context"
	"time"

	"github.com/parishworks/parish_management_app/internal/core/domain"
)

// ReportingRepository runs read-only aggregate queries for reports.
type ReportingRepository interface {
	GetAccountBalances(ctx context.Context) ([]domain.AccountBalanceRow, error)
	// GetProjectSpend returns per-project budget figures with the actual
	// aggregate of paid expense transactions.
	GetProjectSpend(ctx context.Context) ([]domain.ProjectSpendRow, error)
	GetMonthlySummary(ctx context.Context, from, to time.Time) ([]domain.MonthlySummaryRow, error)
}
