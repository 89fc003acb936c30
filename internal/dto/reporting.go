package dto

import (
	"time"

	"github.com/parishworks/parish_management_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BalancesReportResponse lists every account with totals per account type.
type BalancesReportResponse struct {
	Accounts     []domain.AccountBalanceRow             `json:"accounts"`
	TotalsByType map[domain.AccountType]decimal.Decimal `json:"totalsByType"`
	GrandTotal   decimal.Decimal                        `json:"grandTotal"`
}

// ProjectSpendResponse wraps the project spend report.
type ProjectSpendResponse struct {
	Projects []domain.ProjectSpendRow `json:"projects"`
}

// MonthlySummaryParams bounds the monthly summary report.
type MonthlySummaryParams struct {
	From time.Time `form:"from" time_format:"2006-01-02" binding:"required"`
	To   time.Time `form:"to" time_format:"2006-01-02" binding:"required"`
}

// MonthlySummaryResponse wraps the monthly summary report.
type MonthlySummaryResponse struct {
	Months []domain.MonthlySummaryRow `json:"months"`
}
