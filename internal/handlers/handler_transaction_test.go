package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/parishworks/parish_management_app/internal/apperrors"
	"github.com/parishworks/parish_management_app/internal/core/domain"
	portssvc "github.com/parishworks/parish_management_app/internal/core/ports/services"
	"github.com/parishworks/parish_management_app/internal/dto"
	"github.com/parishworks/parish_management_app/internal/middleware"
	"github.com/parishworks/parish_management_app/internal/utils"
)

type MockTransactionService struct {
	mock.Mock
}

func (m *MockTransactionService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest, creatorUserID string) (*domain.Transaction, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) ListTransactions(ctx context.Context, params dto.ListTransactionsParams) ([]domain.Transaction, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest, userID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) DeleteTransaction(ctx context.Context, transactionID string, userID string) error {
	args := m.Called(ctx, transactionID, userID)
	return args.Error(0)
}

func (m *MockTransactionService) ApproveTransaction(ctx context.Context, transactionID string, userID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) RejectTransaction(ctx context.Context, transactionID string, userID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

var _ portssvc.TransactionSvcFacade = (*MockTransactionService)(nil)

type TransactionHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockService *MockTransactionService
	jwtSecret   string
	userID      string
}

func (suite *TransactionHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.userID = uuid.NewString()
	suite.mockService = new(MockTransactionService)

	suite.router = gin.New()
	v1 := suite.router.Group("/api/v1", middleware.AuthMiddleware(suite.jwtSecret))
	registerTransactionRoutes(v1, suite.mockService)
}

func (suite *TransactionHandlerTestSuite) authedRequest(method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		suite.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	token, err := utils.GenerateJWT(suite.userID, suite.jwtSecret, time.Hour, "pma-test")
	suite.Require().NoError(err)
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *TransactionHandlerTestSuite) TestCreateTransaction_Created() {
	req := dto.CreateTransactionRequest{
		Type:          domain.Income,
		Value:         decimal.NewFromInt(120),
		Date:          time.Now(),
		Description:   "Sunday collection",
		CategoryID:    "cat-1",
		AccountID:     "acc-1",
		PaymentMethod: domain.PayCash,
		Status:        domain.StatusPaid,
	}
	created := &domain.Transaction{
		TransactionID: uuid.NewString(),
		Type:          domain.Income,
		Value:         req.Value,
		Description:   req.Description,
		AccountID:     req.AccountID,
		Status:        domain.StatusPaid,
	}
	suite.mockService.On("CreateTransaction", mock.Anything, mock.AnythingOfType("dto.CreateTransactionRequest"), suite.userID).
		Return(created, nil).Once()

	w := suite.authedRequest(http.MethodPost, "/api/v1/transactions", req)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.TransactionResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(created.TransactionID, resp.TransactionID)
	suite.Equal(domain.StatusPaid, resp.Status)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestCreateTransaction_MissingAuthRejected() {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/transactions", nil)
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "CreateTransaction", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TransactionHandlerTestSuite) TestCreateTransaction_InvalidBody() {
	// Missing required fields fails binding before the service is touched.
	w := suite.authedRequest(http.MethodPost, "/api/v1/transactions", map[string]string{"type": "INCOME"})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "CreateTransaction", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TransactionHandlerTestSuite) TestApproveTransaction_ConflictMapsTo409() {
	txnID := uuid.NewString()
	suite.mockService.On("ApproveTransaction", mock.Anything, txnID, suite.userID).
		Return(nil, fmt.Errorf("%w: transaction is PAID, not pending approval", apperrors.ErrConflict)).Once()

	w := suite.authedRequest(http.MethodPost, "/api/v1/transactions/"+txnID+"/approve", nil)

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *TransactionHandlerTestSuite) TestGetTransaction_NotFoundMapsTo404() {
	txnID := uuid.NewString()
	suite.mockService.On("GetTransactionByID", mock.Anything, txnID).
		Return(nil, apperrors.ErrNotFound).Once()

	w := suite.authedRequest(http.MethodGet, "/api/v1/transactions/"+txnID, nil)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *TransactionHandlerTestSuite) TestDeleteTransaction_NoContent() {
	txnID := uuid.NewString()
	suite.mockService.On("DeleteTransaction", mock.Anything, txnID, suite.userID).Return(nil).Once()

	w := suite.authedRequest(http.MethodDelete, "/api/v1/transactions/"+txnID, nil)

	suite.Equal(http.StatusNoContent, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}

func TestTransactionHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionHandlerTestSuite))
}
