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
	portssvc "github.com/parishworks/parish_management_app/internal/core/ports/services"
	"github.com/parishworks/parish_management_app/internal/core/services"
	"github.com/parishworks/parish_management_app/internal/dto"
)

type AccountServiceTestSuite struct {
	suite.Suite
	mockRepo     *MockAccountRepository
	mockUserRepo *MockUserRepository
	service      portssvc.AccountSvcFacade

	adminID  string
	memberID string
}

func (suite *AccountServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockAccountRepository)
	suite.mockUserRepo = new(MockUserRepository)
	suite.service = services.NewAccountService(suite.mockRepo, suite.mockUserRepo)

	suite.adminID = uuid.NewString()
	suite.memberID = uuid.NewString()
	suite.mockUserRepo.On("FindUserByID", mock.Anything, suite.adminID).
		Return(userWithRole(suite.adminID, domain.RoleAdmin), nil).Maybe()
	suite.mockUserRepo.On("FindUserByID", mock.Anything, suite.memberID).
		Return(userWithRole(suite.memberID, domain.RoleMember), nil).Maybe()
}

func (suite *AccountServiceTestSuite) TestCreateAccount_Success() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{
		Name:           "Caixa Paroquial",
		AccountType:    domain.AccountCash,
		InitialBalance: decimal.NewFromInt(100),
	}

	suite.mockRepo.On("SaveAccount", ctx, mock.AnythingOfType("domain.Account")).Return(nil).Once()

	account, err := suite.service.CreateAccount(ctx, req, suite.adminID)

	suite.Require().NoError(err)
	suite.Require().NotNil(account)
	suite.NotEmpty(account.AccountID)
	suite.Equal("Caixa Paroquial", account.Name)
	suite.Equal(domain.AccountCash, account.AccountType)
	suite.True(account.Balance.Equal(decimal.NewFromInt(100)))
	suite.True(account.IsActive)
	suite.Equal(suite.adminID, account.CreatedBy)
	suite.WithinDuration(time.Now(), account.CreatedAt, time.Second)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestCreateAccount_NegativeBalanceRejected() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{
		Name:           "Broken",
		AccountType:    domain.AccountBank,
		InitialBalance: decimal.NewFromInt(-1),
	}

	_, err := suite.service.CreateAccount(ctx, req, suite.adminID)

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveAccount", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestCreateAccount_MemberForbidden() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{Name: "Nope", AccountType: domain.AccountCash}

	_, err := suite.service.CreateAccount(ctx, req, suite.memberID)

	suite.Require().ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *AccountServiceTestSuite) TestDeactivateAccount_Success() {
	ctx := context.Background()
	accountID := uuid.NewString()
	stored := &domain.Account{AccountID: accountID, Name: "Caixa", IsActive: true}

	suite.mockRepo.On("FindAccountByID", ctx, accountID).Return(stored, nil).Once()
	suite.mockRepo.On("UpdateAccount", ctx, mock.MatchedBy(func(a domain.Account) bool {
		return a.AccountID == accountID && !a.IsActive
	})).Return(nil).Once()

	err := suite.service.DeactivateAccount(ctx, accountID, suite.adminID)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestDeactivateAccount_AlreadyInactive() {
	ctx := context.Background()
	accountID := uuid.NewString()
	stored := &domain.Account{AccountID: accountID, Name: "Caixa", IsActive: false}

	suite.mockRepo.On("FindAccountByID", ctx, accountID).Return(stored, nil).Once()

	err := suite.service.DeactivateAccount(ctx, accountID, suite.adminID)

	suite.Require().ErrorIs(err, apperrors.ErrConflict)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateAccount", mock.Anything, mock.Anything)
}

func TestAccountServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}
