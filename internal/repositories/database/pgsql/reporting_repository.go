package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/parishworks/parish_management_app/internal/core/domain"
	portsrepo "github.com/parishworks/parish_management_app/internal/core/ports/repositories"
)

// PgxReportingRepository runs read-only aggregate queries for reports.
type PgxReportingRepository struct {
	pool *pgxpool.Pool
}

func newPgxReportingRepository(pool *pgxpool.Pool) portsrepo.ReportingRepository {
	return &PgxReportingRepository{pool: pool}
}

var _ portsrepo.ReportingRepository = (*PgxReportingRepository)(nil)

// GetAccountBalances returns one row per active account with its stored
// balance. Balances are never recomputed here; they are maintained by the
// transaction repository.
func (r *PgxReportingRepository) GetAccountBalances(ctx context.Context) ([]domain.AccountBalanceRow, error) {
	query := `
		SELECT account_id, name, account_type, balance
		FROM financial_accounts
		WHERE is_active = TRUE
		ORDER BY name;
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query account balances: %w", err)
	}
	defer rows.Close()

	result := make([]domain.AccountBalanceRow, 0)
	for rows.Next() {
		var row domain.AccountBalanceRow
		if err := rows.Scan(&row.AccountID, &row.Name, &row.AccountType, &row.Balance); err != nil {
			return nil, fmt.Errorf("failed to scan balance row: %w", err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating balance rows: %w", err)
	}
	return result, nil
}

// GetProjectSpend joins each project against the sum of its paid expense
// transactions.
func (r *PgxReportingRepository) GetProjectSpend(ctx context.Context) ([]domain.ProjectSpendRow, error) {
	query := `
		SELECT p.project_id, p.name, p.planned_budget, p.executed_budget,
		       COALESCE(SUM(t.value) FILTER (WHERE t.txn_type = 'EXPENSE' AND t.status = 'PAID'), 0) AS actual_spend
		FROM financial_projects p
		LEFT JOIN financial_transactions t ON t.project_id = p.project_id
		GROUP BY p.project_id, p.name, p.planned_budget, p.executed_budget
		ORDER BY p.name;
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query project spend: %w", err)
	}
	defer rows.Close()

	result := make([]domain.ProjectSpendRow, 0)
	for rows.Next() {
		var row domain.ProjectSpendRow
		if err := rows.Scan(&row.ProjectID, &row.Name, &row.PlannedBudget, &row.ExecutedBudget, &row.ActualSpend); err != nil {
			return nil, fmt.Errorf("failed to scan project spend row: %w", err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating project spend rows: %w", err)
	}
	return result, nil
}

// GetMonthlySummary aggregates paid income and expense per calendar month in
// the given range. Transfers move money between accounts and are excluded.
func (r *PgxReportingRepository) GetMonthlySummary(ctx context.Context, from, to time.Time) ([]domain.MonthlySummaryRow, error) {
	query := `
		SELECT to_char(date_trunc('month', txn_date), 'YYYY-MM') AS month,
		       COALESCE(SUM(value) FILTER (WHERE txn_type = 'INCOME'), 0) AS total_income,
		       COALESCE(SUM(value) FILTER (WHERE txn_type = 'EXPENSE'), 0) AS total_expense
		FROM financial_transactions
		WHERE status = 'PAID' AND txn_type IN ('INCOME', 'EXPENSE')
		  AND txn_date >= $1 AND txn_date <= $2
		GROUP BY 1
		ORDER BY 1;
	`
	rows, err := r.pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query monthly summary: %w", err)
	}
	defer rows.Close()

	result := make([]domain.MonthlySummaryRow, 0)
	for rows.Next() {
		var row domain.MonthlySummaryRow
		if err := rows.Scan(&row.Month, &row.TotalIncome, &row.TotalExpense); err != nil {
			return nil, fmt.Errorf("failed to scan monthly summary row: %w", err)
		}
		row.Net = row.TotalIncome.Sub(row.TotalExpense)
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating monthly summary rows: %w", err)
	}
	return result, nil
}
