package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/parishworks/parish_management_app/internal/apperrors"
	"github.com/parishworks/parish_management_app/internal/core/domain"
	"github.com/parishworks/parish_management_app/internal/core/services"
	portssvc "github.com/parishworks/parish_management_app/internal/core/ports/services"
	"github.com/parishworks/parish_management_app/internal/dto"
)

type TransactionServiceTestSuite struct {
	suite.Suite
	mockTxnRepo      *MockTransactionRepository
	mockAccountRepo  *MockAccountRepository
	mockCategoryRepo *MockCategoryRepository
	mockUserRepo     *MockUserRepository
	mockPublisher    *MockPublisher
	service          portssvc.TransactionSvcFacade

	adminID     string
	treasurerID string
	memberID    string
}

func (suite *TransactionServiceTestSuite) SetupTest() {
	suite.mockTxnRepo = new(MockTransactionRepository)
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.mockCategoryRepo = new(MockCategoryRepository)
	suite.mockUserRepo = new(MockUserRepository)
	suite.mockPublisher = new(MockPublisher)
	suite.service = services.NewTransactionService(suite.mockTxnRepo, suite.mockAccountRepo, suite.mockCategoryRepo, suite.mockUserRepo, suite.mockPublisher)

	suite.adminID = uuid.NewString()
	suite.treasurerID = uuid.NewString()
	suite.memberID = uuid.NewString()

	suite.mockUserRepo.On("FindUserByID", mock.Anything, suite.adminID).
		Return(userWithRole(suite.adminID, domain.RoleAdmin), nil).Maybe()
	suite.mockUserRepo.On("FindUserByID", mock.Anything, suite.treasurerID).
		Return(userWithRole(suite.treasurerID, domain.RoleTreasurer), nil).Maybe()
	suite.mockUserRepo.On("FindUserByID", mock.Anything, suite.memberID).
		Return(userWithRole(suite.memberID, domain.RoleMember), nil).Maybe()

	suite.mockCategoryRepo.On("FindCategoryByID", mock.Anything, "cat-1").
		Return(&domain.Category{CategoryID: "cat-1", Name: "Liturgy supplies", Direction: domain.CategoryExpense}, nil).Maybe()
	suite.mockCategoryRepo.On("FindCategoryByID", mock.Anything, "cat-offering").
		Return(&domain.Category{CategoryID: "cat-offering", Name: "Offerings", Direction: domain.CategoryIncome}, nil).Maybe()
}

func (suite *TransactionServiceTestSuite) activeAccounts(ids ...string) map[string]domain.Account {
	accounts := make(map[string]domain.Account, len(ids))
	for _, id := range ids {
		accounts[id] = domain.Account{AccountID: id, Name: "Account " + id, IsActive: true}
	}
	return accounts
}

func (suite *TransactionServiceTestSuite) expenseRequest(status domain.TransactionStatus) dto.CreateTransactionRequest {
	return dto.CreateTransactionRequest{
		Type:          domain.Expense,
		Value:         decimal.NewFromInt(30),
		Date:          time.Now(),
		Description:   "Altar flowers",
		CategoryID:    "cat-1",
		AccountID:     "acc-1",
		PaymentMethod: domain.PayCash,
		Status:        status,
	}
}

func (suite *TransactionServiceTestSuite) TestCreatePaidExpense_AppliesNegativeDelta() {
	ctx := context.Background()
	suite.mockAccountRepo.On("FindAccountsByIDs", ctx, []string{"acc-1"}).
		Return(suite.activeAccounts("acc-1"), nil).Once()

	suite.mockTxnRepo.On("SaveTransaction", ctx, mock.AnythingOfType("domain.Transaction"),
		mock.MatchedBy(func(changes map[string]decimal.Decimal) bool {
			return len(changes) == 1 && changes["acc-1"].Equal(decimal.NewFromInt(-30))
		})).Return(nil).Once()
	suite.mockPublisher.On("Publish", mock.Anything, mock.Anything).Return(nil).Once()

	txn, err := suite.service.CreateTransaction(ctx, suite.expenseRequest(domain.StatusPaid), suite.adminID)

	suite.Require().NoError(err)
	suite.Equal(domain.StatusPaid, txn.Status)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestCreatePaidTransfer_MovesBothLegs() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		Type:                 domain.Transfer,
		Value:                decimal.NewFromInt(25),
		Date:                 time.Now(),
		Description:          "Move to savings",
		AccountID:            "src",
		DestinationAccountID: "dst",
		PaymentMethod:        domain.PayBankTransfer,
		Status:               domain.StatusPaid,
	}
	suite.mockAccountRepo.On("FindAccountsByIDs", ctx, []string{"src", "dst"}).
		Return(suite.activeAccounts("src", "dst"), nil).Once()
	suite.mockTxnRepo.On("SaveTransaction", ctx, mock.AnythingOfType("domain.Transaction"),
		mock.MatchedBy(func(changes map[string]decimal.Decimal) bool {
			return changes["src"].Equal(decimal.NewFromInt(-25)) && changes["dst"].Equal(decimal.NewFromInt(25))
		})).Return(nil).Once()
	suite.mockPublisher.On("Publish", mock.Anything, mock.Anything).Return(nil).Once()

	txn, err := suite.service.CreateTransaction(ctx, req, suite.adminID)

	suite.Require().NoError(err)
	suite.Equal(domain.StatusPaid, txn.Status)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestCreatePlanned_NoBalanceMoves() {
	ctx := context.Background()
	suite.mockAccountRepo.On("FindAccountsByIDs", ctx, []string{"acc-1"}).
		Return(suite.activeAccounts("acc-1"), nil).Once()
	suite.mockTxnRepo.On("SaveTransaction", ctx, mock.AnythingOfType("domain.Transaction"),
		mock.MatchedBy(func(changes map[string]decimal.Decimal) bool {
			return len(changes) == 0
		})).Return(nil).Once()

	txn, err := suite.service.CreateTransaction(ctx, suite.expenseRequest(domain.StatusPlanned), suite.adminID)

	suite.Require().NoError(err)
	suite.Equal(domain.StatusPlanned, txn.Status)
	suite.mockPublisher.AssertNotCalled(suite.T(), "Publish", mock.Anything, mock.Anything)
}

// A treasurer may record transactions but not post them as PAID; the service
// downgrades the status to PENDING_APPROVAL and no money moves.
func (suite *TransactionServiceTestSuite) TestCreatePaid_TreasurerForcedPending() {
	ctx := context.Background()
	suite.mockAccountRepo.On("FindAccountsByIDs", ctx, []string{"acc-1"}).
		Return(suite.activeAccounts("acc-1"), nil).Once()
	suite.mockTxnRepo.On("SaveTransaction", ctx,
		mock.MatchedBy(func(txn domain.Transaction) bool {
			return txn.Status == domain.StatusPendingApproval
		}),
		mock.MatchedBy(func(changes map[string]decimal.Decimal) bool {
			return len(changes) == 0
		})).Return(nil).Once()
	suite.mockPublisher.On("Publish", mock.Anything, mock.Anything).Return(nil).Once()

	txn, err := suite.service.CreateTransaction(ctx, suite.expenseRequest(domain.StatusPaid), suite.treasurerID)

	suite.Require().NoError(err)
	suite.Equal(domain.StatusPendingApproval, txn.Status)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestCreate_MemberForbidden() {
	ctx := context.Background()

	_, err := suite.service.CreateTransaction(ctx, suite.expenseRequest(domain.StatusPaid), suite.memberID)

	suite.Require().ErrorIs(err, apperrors.ErrForbidden)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestCreate_TransferNeedsDistinctDestination() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		Type:          domain.Transfer,
		Value:         decimal.NewFromInt(10),
		Date:          time.Now(),
		Description:   "Self transfer",
		AccountID:     "acc-1",
		PaymentMethod: domain.PayCash,
		Status:        domain.StatusPaid,
	}

	_, err := suite.service.CreateTransaction(ctx, req, suite.adminID)
	suite.Require().ErrorIs(err, apperrors.ErrValidation)

	req.DestinationAccountID = "acc-1"
	_, err = suite.service.CreateTransaction(ctx, req, suite.adminID)
	suite.Require().ErrorIs(err, apperrors.ErrValidation)
}

func (suite *TransactionServiceTestSuite) TestCreate_InactiveAccountRejected() {
	ctx := context.Background()
	accounts := map[string]domain.Account{
		"acc-1": {AccountID: "acc-1", IsActive: false},
	}
	suite.mockAccountRepo.On("FindAccountsByIDs", ctx, []string{"acc-1"}).Return(accounts, nil).Once()

	_, err := suite.service.CreateTransaction(ctx, suite.expenseRequest(domain.StatusPaid), suite.adminID)

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything, mock.Anything)
}

// An expense posted against an income category never reaches the repository,
// so no balance moves for it.
func (suite *TransactionServiceTestSuite) TestCreate_CategoryDirectionMismatchRejected() {
	ctx := context.Background()
	req := suite.expenseRequest(domain.StatusPaid)
	req.CategoryID = "cat-offering"

	_, err := suite.service.CreateTransaction(ctx, req, suite.adminID)

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestCreate_UnknownCategoryRejected() {
	ctx := context.Background()
	suite.mockCategoryRepo.On("FindCategoryByID", ctx, "cat-ghost").
		Return(nil, apperrors.ErrNotFound).Once()
	req := suite.expenseRequest(domain.StatusPaid)
	req.CategoryID = "cat-ghost"

	_, err := suite.service.CreateTransaction(ctx, req, suite.adminID)

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything, mock.Anything)
}

// Editing a paid transaction changes the row only; the repository method that
// takes balance deltas is never touched.
func (suite *TransactionServiceTestSuite) TestUpdatePaid_NeverRetouchesBalances() {
	ctx := context.Background()
	txnID := uuid.NewString()
	stored := &domain.Transaction{
		TransactionID: txnID,
		Type:          domain.Expense,
		Value:         decimal.NewFromInt(30),
		Description:   "Altar flowers",
		CategoryID:    "cat-1",
		AccountID:     "acc-1",
		PaymentMethod: domain.PayCash,
		Status:        domain.StatusPaid,
	}
	suite.mockTxnRepo.On("FindTransactionByID", ctx, txnID).Return(stored, nil).Once()

	newValue := decimal.NewFromInt(45)
	suite.mockTxnRepo.On("UpdateTransaction", ctx, mock.MatchedBy(func(txn domain.Transaction) bool {
		return txn.Value.Equal(newValue)
	})).Return(nil).Once()

	updated, err := suite.service.UpdateTransaction(ctx, txnID, dto.UpdateTransactionRequest{Value: &newValue}, suite.adminID)

	suite.Require().NoError(err)
	suite.True(updated.Value.Equal(newValue))
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything, mock.Anything)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "UpdateTransactionStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestUpdate_PendingMustGoThroughApproveReject() {
	ctx := context.Background()
	txnID := uuid.NewString()
	stored := &domain.Transaction{
		TransactionID: txnID,
		Type:          domain.Expense,
		Value:         decimal.NewFromInt(30),
		Description:   "Pending expense",
		CategoryID:    "cat-1",
		AccountID:     "acc-1",
		PaymentMethod: domain.PayCash,
		Status:        domain.StatusPendingApproval,
	}
	suite.mockTxnRepo.On("FindTransactionByID", ctx, txnID).Return(stored, nil).Once()

	paid := domain.StatusPaid
	_, err := suite.service.UpdateTransaction(ctx, txnID, dto.UpdateTransactionRequest{Status: &paid}, suite.adminID)

	suite.Require().ErrorIs(err, apperrors.ErrConflict)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "UpdateTransaction", mock.Anything, mock.Anything)
}

// Income and expense rows need a category for life, not just at creation.
func (suite *TransactionServiceTestSuite) TestUpdate_ClearingCategoryRejected() {
	ctx := context.Background()
	txnID := uuid.NewString()
	stored := &domain.Transaction{
		TransactionID: txnID,
		Type:          domain.Expense,
		Value:         decimal.NewFromInt(30),
		Description:   "Altar flowers",
		CategoryID:    "cat-1",
		AccountID:     "acc-1",
		PaymentMethod: domain.PayCash,
		Status:        domain.StatusPlanned,
	}
	suite.mockTxnRepo.On("FindTransactionByID", ctx, txnID).Return(stored, nil).Once()

	empty := ""
	_, err := suite.service.UpdateTransaction(ctx, txnID, dto.UpdateTransactionRequest{CategoryID: &empty}, suite.adminID)

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "UpdateTransaction", mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestUpdate_CategoryDirectionMismatchRejected() {
	ctx := context.Background()
	txnID := uuid.NewString()
	stored := &domain.Transaction{
		TransactionID: txnID,
		Type:          domain.Expense,
		Value:         decimal.NewFromInt(30),
		Description:   "Altar flowers",
		CategoryID:    "cat-1",
		AccountID:     "acc-1",
		PaymentMethod: domain.PayCash,
		Status:        domain.StatusPlanned,
	}
	suite.mockTxnRepo.On("FindTransactionByID", ctx, txnID).Return(stored, nil).Once()

	offering := "cat-offering"
	_, err := suite.service.UpdateTransaction(ctx, txnID, dto.UpdateTransactionRequest{CategoryID: &offering}, suite.adminID)

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "UpdateTransaction", mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestUpdate_DisallowedTransitionRejected() {
	ctx := context.Background()
	txnID := uuid.NewString()
	stored := &domain.Transaction{
		TransactionID: txnID,
		Type:          domain.Expense,
		Value:         decimal.NewFromInt(30),
		Description:   "Paid expense",
		CategoryID:    "cat-1",
		AccountID:     "acc-1",
		PaymentMethod: domain.PayCash,
		Status:        domain.StatusPaid,
	}
	suite.mockTxnRepo.On("FindTransactionByID", ctx, txnID).Return(stored, nil).Once()

	cancelled := domain.StatusCancelled
	_, err := suite.service.UpdateTransaction(ctx, txnID, dto.UpdateTransactionRequest{Status: &cancelled}, suite.adminID)

	suite.Require().ErrorIs(err, apperrors.ErrConflict)
}

func (suite *TransactionServiceTestSuite) TestApprove_AppliesDeltas() {
	ctx := context.Background()
	txnID := uuid.NewString()
	stored := &domain.Transaction{
		TransactionID: txnID,
		Type:          domain.Income,
		Value:         decimal.NewFromInt(200),
		Description:   "Sunday collection",
		CategoryID:    "cat-1",
		AccountID:     "acc-1",
		PaymentMethod: domain.PayCash,
		Status:        domain.StatusPendingApproval,
	}
	suite.mockTxnRepo.On("FindTransactionByID", ctx, txnID).Return(stored, nil).Once()
	suite.mockTxnRepo.On("UpdateTransactionStatus", ctx, txnID, domain.StatusPaid, suite.adminID, mock.AnythingOfType("time.Time"),
		mock.MatchedBy(func(changes map[string]decimal.Decimal) bool {
			return len(changes) == 1 && changes["acc-1"].Equal(decimal.NewFromInt(200))
		})).Return(nil).Once()
	suite.mockPublisher.On("Publish", mock.Anything, mock.Anything).Return(nil).Once()

	approved, err := suite.service.ApproveTransaction(ctx, txnID, suite.adminID)

	suite.Require().NoError(err)
	suite.Equal(domain.StatusPaid, approved.Status)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestApprove_NonPendingConflicts() {
	ctx := context.Background()
	txnID := uuid.NewString()
	stored := &domain.Transaction{TransactionID: txnID, Status: domain.StatusPaid}
	suite.mockTxnRepo.On("FindTransactionByID", ctx, txnID).Return(stored, nil).Once()

	_, err := suite.service.ApproveTransaction(ctx, txnID, suite.adminID)

	suite.Require().ErrorIs(err, apperrors.ErrConflict)
}

func (suite *TransactionServiceTestSuite) TestApprove_TreasurerForbidden() {
	ctx := context.Background()

	_, err := suite.service.ApproveTransaction(ctx, uuid.NewString(), suite.treasurerID)

	suite.Require().ErrorIs(err, apperrors.ErrForbidden)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "FindTransactionByID", mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestReject_NoDeltas() {
	ctx := context.Background()
	txnID := uuid.NewString()
	stored := &domain.Transaction{
		TransactionID: txnID,
		Type:          domain.Expense,
		Value:         decimal.NewFromInt(75),
		AccountID:     "acc-1",
		Status:        domain.StatusPendingApproval,
	}
	suite.mockTxnRepo.On("FindTransactionByID", ctx, txnID).Return(stored, nil).Once()
	suite.mockTxnRepo.On("UpdateTransactionStatus", ctx, txnID, domain.StatusCancelled, suite.adminID, mock.AnythingOfType("time.Time"),
		mock.MatchedBy(func(changes map[string]decimal.Decimal) bool {
			return len(changes) == 0
		})).Return(nil).Once()

	rejected, err := suite.service.RejectTransaction(ctx, txnID, suite.adminID)

	suite.Require().NoError(err)
	suite.Equal(domain.StatusCancelled, rejected.Status)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestDeletePaid_PassesExactReversal() {
	ctx := context.Background()
	txnID := uuid.NewString()
	stored := &domain.Transaction{
		TransactionID: txnID,
		Type:          domain.Expense,
		Value:         decimal.NewFromInt(30),
		AccountID:     "caixa",
		Status:        domain.StatusPaid,
	}
	suite.mockTxnRepo.On("FindTransactionByID", ctx, txnID).Return(stored, nil).Once()
	suite.mockTxnRepo.On("DeleteTransaction", ctx, txnID, suite.adminID, mock.AnythingOfType("time.Time"),
		mock.MatchedBy(func(changes map[string]decimal.Decimal) bool {
			return len(changes) == 1 && changes["caixa"].Equal(decimal.NewFromInt(30))
		})).Return(nil).Once()

	err := suite.service.DeleteTransaction(ctx, txnID, suite.adminID)

	suite.Require().NoError(err)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestDeletePlanned_NoReversal() {
	ctx := context.Background()
	txnID := uuid.NewString()
	stored := &domain.Transaction{
		TransactionID: txnID,
		Type:          domain.Expense,
		Value:         decimal.NewFromInt(30),
		AccountID:     "acc-1",
		Status:        domain.StatusPlanned,
	}
	suite.mockTxnRepo.On("FindTransactionByID", ctx, txnID).Return(stored, nil).Once()
	suite.mockTxnRepo.On("DeleteTransaction", ctx, txnID, suite.adminID, mock.AnythingOfType("time.Time"),
		mock.MatchedBy(func(changes map[string]decimal.Decimal) bool {
			return len(changes) == 0
		})).Return(nil).Once()

	err := suite.service.DeleteTransaction(ctx, txnID, suite.adminID)

	suite.Require().NoError(err)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

// Broker failures never fail the mutation; the transaction still commits.
func (suite *TransactionServiceTestSuite) TestCreatePaid_PublisherFailureIgnored() {
	ctx := context.Background()
	suite.mockAccountRepo.On("FindAccountsByIDs", ctx, []string{"acc-1"}).
		Return(suite.activeAccounts("acc-1"), nil).Once()
	suite.mockTxnRepo.On("SaveTransaction", ctx, mock.Anything, mock.Anything).Return(nil).Once()
	suite.mockPublisher.On("Publish", mock.Anything, mock.Anything).
		Return(context.DeadlineExceeded).Once()

	txn, err := suite.service.CreateTransaction(ctx, suite.expenseRequest(domain.StatusPaid), suite.adminID)

	suite.Require().NoError(err)
	suite.NotNil(txn)
}

func TestTransactionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}
