package services

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/parishworks/parish_management_app/internal/apperrors"
	"github.com/parishworks/parish_management_app/internal/core/domain"
	portsrepo "github.com/parishworks/parish_management_app/internal/core/ports/repositories"
	portssvc "github.com/parishworks/parish_management_app/internal/core/ports/services"
	"github.com/parishworks/parish_management_app/internal/dto"
)

type reportingService struct {
	reportingRepo portsrepo.ReportingRepository
}

// NewReportingService builds the reporting service. Reports are read-only and
// open to any authenticated user, so no permission checks live here.
func NewReportingService(reportingRepo portsrepo.ReportingRepository) portssvc.ReportingSvcFacade {
	return &reportingService{reportingRepo: reportingRepo}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

func (s *reportingService) Balances(ctx context.Context) (*dto.BalancesReportResponse, error) {
	rows, err := s.reportingRepo.GetAccountBalances(ctx)
	if err != nil {
		return nil, err
	}

	totals := make(map[domain.AccountType]decimal.Decimal)
	grand := decimal.Zero
	for _, row := range rows {
		totals[row.AccountType] = totals[row.AccountType].Add(row.Balance)
		grand = grand.Add(row.Balance)
	}

	return &dto.BalancesReportResponse{
		Accounts:     rows,
		TotalsByType: totals,
		GrandTotal:   grand,
	}, nil
}

func (s *reportingService) ProjectSpend(ctx context.Context) (*dto.ProjectSpendResponse, error) {
	rows, err := s.reportingRepo.GetProjectSpend(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.ProjectSpendResponse{Projects: rows}, nil
}

func (s *reportingService) MonthlySummary(ctx context.Context, params dto.MonthlySummaryParams) (*dto.MonthlySummaryResponse, error) {
	if params.To.Before(params.From) {
		return nil, fmt.Errorf("%w: 'to' must not precede 'from'", apperrors.ErrValidation)
	}
	rows, err := s.reportingRepo.GetMonthlySummary(ctx, params.From, params.To)
	if err != nil {
		return nil, err
	}
	return &dto.MonthlySummaryResponse{Months: rows}, nil
}
