package domain

import "github.com/shopspring/decimal"

// AccountBalanceRow is one line of the balances report.
type AccountBalanceRow struct {
	AccountID   string          `json:"accountID"`
	Name        string          `json:"name"`
	AccountType AccountType     `json:"accountType"`
	Balance     decimal.Decimal `json:"balance"`
}

// ProjectSpendRow compares a project's stored budget figures against the
// actual aggregate of its paid expense transactions.
type ProjectSpendRow struct {
	ProjectID      string          `json:"projectID"`
	Name           string          `json:"name"`
	PlannedBudget  decimal.Decimal `json:"plannedBudget"`
	ExecutedBudget decimal.Decimal `json:"executedBudget"` // as entered by the user
	ActualSpend    decimal.Decimal `json:"actualSpend"`    // derived from transactions
}

// MonthlySummaryRow aggregates paid income and expense for one month.
type MonthlySummaryRow struct {
	Month        string          `json:"month"` // YYYY-MM
	TotalIncome  decimal.Decimal `json:"totalIncome"`
	TotalExpense decimal.Decimal `json:"totalExpense"`
	Net          decimal.Decimal `json:"net"`
}
