package services

import (
	"context"
	"errors"
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
	"github.com/parishworks/parish_management_app/internal/platform/events"
)

// transactionService owns the ledger mutation protocol. Balance side effects
// happen only here: on create (when PAID), on approval, and on delete (as the
// exact reversal). Field edits never retouch balances.
type transactionService struct {
	BaseService
	txnRepo      portsrepo.TransactionRepository
	accountRepo  portsrepo.AccountRepository
	categoryRepo portsrepo.CategoryRepository
	publisher    events.Publisher
}

// NewTransactionService builds the transaction service.
func NewTransactionService(txnRepo portsrepo.TransactionRepository, accountRepo portsrepo.AccountRepository, categoryRepo portsrepo.CategoryRepository, userRepo portsrepo.UserRepository, publisher events.Publisher) portssvc.TransactionSvcFacade {
	return &transactionService{
		BaseService:  BaseService{userRepo: userRepo},
		txnRepo:      txnRepo,
		accountRepo:  accountRepo,
		categoryRepo: categoryRepo,
		publisher:    publisher,
	}
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

// validateShape checks the structural rules that hold for every transaction,
// whatever its status.
func (s *transactionService) validateShape(ctx context.Context, txn domain.Transaction) error {
	if !txn.Value.IsPositive() {
		return fmt.Errorf("%w: value must be positive", apperrors.ErrValidation)
	}
	if strings.TrimSpace(txn.Description) == "" {
		return fmt.Errorf("%w: description is required", apperrors.ErrValidation)
	}

	switch txn.Type {
	case domain.Transfer:
		if txn.DestinationAccountID == "" {
			return fmt.Errorf("%w: transfers require a destination account", apperrors.ErrValidation)
		}
		if txn.DestinationAccountID == txn.AccountID {
			return fmt.Errorf("%w: transfer source and destination must differ", apperrors.ErrValidation)
		}
		if txn.CategoryID != "" {
			return fmt.Errorf("%w: transfers do not take a category", apperrors.ErrValidation)
		}
	case domain.Income, domain.Expense:
		if txn.DestinationAccountID != "" {
			return fmt.Errorf("%w: only transfers take a destination account", apperrors.ErrValidation)
		}
		if txn.CategoryID == "" {
			return fmt.Errorf("%w: income and expense require a category", apperrors.ErrValidation)
		}
		if err := s.validateCategory(ctx, txn.CategoryID, txn.Type); err != nil {
			return err
		}
	default:
		return fmt.Errorf("%w: unknown transaction type %q", apperrors.ErrValidation, txn.Type)
	}

	accountIDs := []string{txn.AccountID}
	if txn.DestinationAccountID != "" {
		accountIDs = append(accountIDs, txn.DestinationAccountID)
	}
	accounts, err := s.accountRepo.FindAccountsByIDs(ctx, accountIDs)
	if err != nil {
		return fmt.Errorf("failed to validate accounts: %w", err)
	}
	for _, id := range accountIDs {
		acc, ok := accounts[id]
		if !ok {
			return fmt.Errorf("%w: account %s does not exist", apperrors.ErrValidation, id)
		}
		if !acc.IsActive {
			return fmt.Errorf("%w: account %s is inactive", apperrors.ErrValidation, id)
		}
	}
	return nil
}

// validateCategory checks that the category exists and classifies the same
// direction as the transaction type.
func (s *transactionService) validateCategory(ctx context.Context, categoryID string, txnType domain.TransactionType) error {
	category, err := s.categoryRepo.FindCategoryByID(ctx, categoryID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("%w: category %s does not exist", apperrors.ErrValidation, categoryID)
		}
		return fmt.Errorf("failed to validate category: %w", err)
	}
	want := domain.CategoryIncome
	if txnType == domain.Expense {
		want = domain.CategoryExpense
	}
	if category.Direction != want {
		return fmt.Errorf("%w: category %q classifies %s entries, not %s", apperrors.ErrValidation, category.Name, category.Direction, txnType)
	}
	return nil
}

// CreateTransaction records a new transaction. Users who may manage finance
// but not post paid entries get their transaction forced to PENDING_APPROVAL;
// no balance moves until someone approves it.
func (s *transactionService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest, creatorUserID string) (*domain.Transaction, error) {
	user, err := s.requirePermission(ctx, creatorUserID, domain.PermManageFinance)
	if err != nil {
		s.LogError(ctx, err, "User not authorized to create transaction", slog.String("user_id", creatorUserID))
		return nil, err
	}

	status := req.Status
	forcedPending := false
	if status == domain.StatusPaid && !user.Role.Has(domain.PermPostPaidTransaction) {
		status = domain.StatusPendingApproval
		forcedPending = true
	}

	now := time.Now()
	txn := domain.Transaction{
		TransactionID:        uuid.NewString(),
		Type:                 req.Type,
		Value:                req.Value,
		Date:                 req.Date,
		Description:          req.Description,
		CategoryID:           req.CategoryID,
		AccountID:            req.AccountID,
		DestinationAccountID: req.DestinationAccountID,
		ProjectID:            req.ProjectID,
		PaymentMethod:        req.PaymentMethod,
		Status:               status,
		AuditFields:          domain.NewAuditFields(creatorUserID, now),
	}

	if err := s.validateShape(ctx, txn); err != nil {
		return nil, err
	}

	changes := txn.BalanceChanges()
	if err := s.txnRepo.SaveTransaction(ctx, txn, changes); err != nil {
		s.LogError(ctx, err, "Failed to save transaction", slog.String("transaction_id", txn.TransactionID))
		return nil, err
	}

	s.LogInfo(ctx, "Transaction created",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("status", string(txn.Status)),
		slog.Bool("forced_pending", forcedPending),
		slog.Int("accounts_adjusted", len(changes)),
	)

	switch txn.Status {
	case domain.StatusPendingApproval:
		s.notify(ctx, events.KindApprovalRequested, txn.TransactionID, creatorUserID)
	case domain.StatusPaid:
		s.notify(ctx, events.KindTransactionSettled, txn.TransactionID, creatorUserID)
	}
	return &txn, nil
}

func (s *transactionService) GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	return s.txnRepo.FindTransactionByID(ctx, transactionID)
}

func (s *transactionService) ListTransactions(ctx context.Context, params dto.ListTransactionsParams) ([]domain.Transaction, error) {
	limit, offset := normalizePage(params.Limit, params.Offset)
	filter := portsrepo.ListTransactionsFilter{
		AccountID: params.AccountID,
		ProjectID: params.ProjectID,
		Status:    domain.TransactionStatus(params.Status),
		Type:      domain.TransactionType(params.Type),
		DateFrom:  params.DateFrom,
		DateTo:    params.DateTo,
		Limit:     limit,
		Offset:    offset,
	}
	return s.txnRepo.ListTransactions(ctx, filter)
}

// UpdateTransaction edits the transaction's fields. Balances are NOT
// adjusted, even when value or status changes on a paid row; the approval and
// delete paths are the only ways money moves after creation.
func (s *transactionService) UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest, userID string) (*domain.Transaction, error) {
	if _, err := s.requirePermission(ctx, userID, domain.PermManageFinance); err != nil {
		return nil, err
	}

	txn, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}

	if req.Value != nil {
		if !req.Value.IsPositive() {
			return nil, fmt.Errorf("%w: value must be positive", apperrors.ErrValidation)
		}
		txn.Value = *req.Value
	}
	if req.Date != nil {
		txn.Date = *req.Date
	}
	if req.Description != nil {
		if strings.TrimSpace(*req.Description) == "" {
			return nil, fmt.Errorf("%w: description cannot be empty", apperrors.ErrValidation)
		}
		txn.Description = *req.Description
	}
	if req.CategoryID != nil {
		if txn.Type == domain.Transfer {
			if *req.CategoryID != "" {
				return nil, fmt.Errorf("%w: transfers do not take a category", apperrors.ErrValidation)
			}
		} else {
			if *req.CategoryID == "" {
				return nil, fmt.Errorf("%w: income and expense require a category", apperrors.ErrValidation)
			}
			if err := s.validateCategory(ctx, *req.CategoryID, txn.Type); err != nil {
				return nil, err
			}
		}
		txn.CategoryID = *req.CategoryID
	}
	if req.ProjectID != nil {
		txn.ProjectID = *req.ProjectID
	}
	if req.PaymentMethod != nil {
		txn.PaymentMethod = *req.PaymentMethod
	}
	if req.Status != nil && *req.Status != txn.Status {
		if !txn.Status.CanTransitionTo(*req.Status) {
			return nil, fmt.Errorf("%w: cannot move transaction from %s to %s", apperrors.ErrConflict, txn.Status, *req.Status)
		}
		if txn.Status == domain.StatusPendingApproval {
			return nil, fmt.Errorf("%w: pending transactions change status through approve/reject", apperrors.ErrConflict)
		}
		txn.Status = *req.Status
	}
	txn.Touch(userID, time.Now())

	if err := s.txnRepo.UpdateTransaction(ctx, *txn); err != nil {
		s.LogError(ctx, err, "Failed to update transaction", slog.String("transaction_id", transactionID))
		return nil, err
	}
	return txn, nil
}

// ApproveTransaction moves a pending transaction to PAID and applies its
// balance deltas atomically.
func (s *transactionService) ApproveTransaction(ctx context.Context, transactionID string, userID string) (*domain.Transaction, error) {
	if _, err := s.requirePermission(ctx, userID, domain.PermApproveTransaction); err != nil {
		s.LogError(ctx, err, "User not authorized to approve transaction", slog.String("user_id", userID))
		return nil, err
	}

	txn, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	if txn.Status != domain.StatusPendingApproval {
		return nil, fmt.Errorf("%w: transaction is %s, not pending approval", apperrors.ErrConflict, txn.Status)
	}

	now := time.Now()
	paid := *txn
	paid.Status = domain.StatusPaid
	changes := paid.BalanceChanges()

	if err := s.txnRepo.UpdateTransactionStatus(ctx, transactionID, domain.StatusPaid, userID, now, changes); err != nil {
		s.LogError(ctx, err, "Failed to approve transaction", slog.String("transaction_id", transactionID))
		return nil, err
	}

	paid.Touch(userID, now)
	s.LogInfo(ctx, "Transaction approved",
		slog.String("transaction_id", transactionID),
		slog.Int("accounts_adjusted", len(changes)),
	)
	s.notify(ctx, events.KindTransactionSettled, transactionID, userID)
	return &paid, nil
}

// RejectTransaction moves a pending transaction to CANCELLED. No balances
// were ever touched for it, so none move now.
func (s *transactionService) RejectTransaction(ctx context.Context, transactionID string, userID string) (*domain.Transaction, error) {
	if _, err := s.requirePermission(ctx, userID, domain.PermApproveTransaction); err != nil {
		return nil, err
	}

	txn, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	if txn.Status != domain.StatusPendingApproval {
		return nil, fmt.Errorf("%w: transaction is %s, not pending approval", apperrors.ErrConflict, txn.Status)
	}

	now := time.Now()
	if err := s.txnRepo.UpdateTransactionStatus(ctx, transactionID, domain.StatusCancelled, userID, now, nil); err != nil {
		s.LogError(ctx, err, "Failed to reject transaction", slog.String("transaction_id", transactionID))
		return nil, err
	}

	rejected := *txn
	rejected.Status = domain.StatusCancelled
	rejected.Touch(userID, now)
	s.LogInfo(ctx, "Transaction rejected", slog.String("transaction_id", transactionID))
	return &rejected, nil
}

// DeleteTransaction removes the row. Deleting a paid transaction reverses its
// balance deltas in the same database transaction, so the ledger stays
// consistent whatever order mutations arrive in.
func (s *transactionService) DeleteTransaction(ctx context.Context, transactionID string, userID string) error {
	if _, err := s.requirePermission(ctx, userID, domain.PermManageFinance); err != nil {
		return err
	}

	txn, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return err
	}

	reversal := txn.ReversalChanges()
	if err := s.txnRepo.DeleteTransaction(ctx, transactionID, userID, time.Now(), reversal); err != nil {
		s.LogError(ctx, err, "Failed to delete transaction", slog.String("transaction_id", transactionID))
		return err
	}

	s.LogInfo(ctx, "Transaction deleted",
		slog.String("transaction_id", transactionID),
		slog.Int("accounts_adjusted", len(reversal)),
	)
	return nil
}

// notify publishes best-effort; a broker failure never fails the request.
func (s *transactionService) notify(ctx context.Context, kind events.EventKind, entityID, actorID string) {
	if s.publisher == nil {
		return
	}
	event := events.NewNotificationEvent(kind, entityID, actorID)
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.LogWarn(ctx, "Failed to publish notification event",
			slog.String("kind", string(kind)),
			slog.String("entity_id", entityID),
			slog.String("error", err.Error()),
		)
	}
}
