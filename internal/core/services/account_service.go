package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/parishworks/parish_management_app/internal/apperrors"
	"github.com/parishworks/parish_management_app/internal/core/domain"
	portsrepo "github.com/parishworks/parish_management_app/internal/core/ports/repositories"
	portssvc "github.com/parishworks/parish_management_app/internal/core/ports/services"
	"github.com/parishworks/parish_management_app/internal/dto"
)

type accountService struct {
	BaseService
	accountRepo portsrepo.AccountRepository
}

// NewAccountService builds the account service.
func NewAccountService(accountRepo portsrepo.AccountRepository, userRepo portsrepo.UserRepository) portssvc.AccountSvcFacade {
	return &accountService{
		BaseService: BaseService{userRepo: userRepo},
		accountRepo: accountRepo,
	}
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)

func (s *accountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest, creatorUserID string) (*domain.Account, error) {
	if _, err := s.requirePermission(ctx, creatorUserID, domain.PermManageFinance); err != nil {
		s.LogError(ctx, err, "User not authorized to create account", slog.String("user_id", creatorUserID))
		return nil, err
	}

	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("%w: account name is required", apperrors.ErrValidation)
	}
	if req.InitialBalance.IsNegative() {
		return nil, fmt.Errorf("%w: initial balance cannot be negative", apperrors.ErrValidation)
	}

	now := time.Now()
	account := domain.Account{
		AccountID:   uuid.NewString(),
		Name:        strings.TrimSpace(req.Name),
		AccountType: req.AccountType,
		Description: req.Description,
		Balance:     req.InitialBalance,
		IsActive:    true,
		AuditFields: domain.NewAuditFields(creatorUserID, now),
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		s.LogError(ctx, err, "Failed to save account", slog.String("account_id", account.AccountID))
		return nil, err
	}

	s.LogInfo(ctx, "Account created", slog.String("account_id", account.AccountID), slog.String("name", account.Name))
	return &account, nil
}

func (s *accountService) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	return s.accountRepo.FindAccountByID(ctx, accountID)
}

func (s *accountService) ListAccounts(ctx context.Context, limit, offset int) ([]domain.Account, error) {
	limit, offset = normalizePage(limit, offset)
	return s.accountRepo.ListAccounts(ctx, limit, offset)
}

func (s *accountService) UpdateAccount(ctx context.Context, accountID string, req dto.UpdateAccountRequest, userID string) (*domain.Account, error) {
	if _, err := s.requirePermission(ctx, userID, domain.PermManageFinance); err != nil {
		return nil, err
	}

	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, fmt.Errorf("%w: account name cannot be empty", apperrors.ErrValidation)
		}
		account.Name = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		account.Description = *req.Description
	}
	if req.IsActive != nil {
		account.IsActive = *req.IsActive
	}
	account.Touch(userID, time.Now())

	if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
		s.LogError(ctx, err, "Failed to update account", slog.String("account_id", accountID))
		return nil, err
	}
	return account, nil
}

// DeactivateAccount flips the account inactive. Accounts are never hard
// deleted; their transaction history must stay explainable.
func (s *accountService) DeactivateAccount(ctx context.Context, accountID string, userID string) error {
	if _, err := s.requirePermission(ctx, userID, domain.PermManageFinance); err != nil {
		return err
	}

	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return err
	}
	if !account.IsActive {
		return fmt.Errorf("%w: account is already inactive", apperrors.ErrConflict)
	}

	account.IsActive = false
	account.Touch(userID, time.Now())
	if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
		s.LogError(ctx, err, "Failed to deactivate account", slog.String("account_id", accountID))
		return err
	}
	s.LogInfo(ctx, "Account deactivated", slog.String("account_id", accountID))
	return nil
}
