package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/parishworks/parish_management_app/internal/apperrors"
	"github.com/parishworks/parish_management_app/internal/core/domain"
	portssvc "github.com/parishworks/parish_management_app/internal/core/ports/services"
	"github.com/parishworks/parish_management_app/internal/core/services"
)

type MockInventoryRepository struct {
	mock.Mock
}

func (m *MockInventoryRepository) SaveItem(ctx context.Context, item domain.InventoryItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockInventoryRepository) FindItemByID(ctx context.Context, itemID string) (*domain.InventoryItem, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InventoryItem), args.Error(1)
}

func (m *MockInventoryRepository) ListItems(ctx context.Context, limit, offset int) ([]domain.InventoryItem, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InventoryItem), args.Error(1)
}

func (m *MockInventoryRepository) UpdateItem(ctx context.Context, item domain.InventoryItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockInventoryRepository) AdjustItemQuantity(ctx context.Context, itemID string, delta int, updatedBy string, updatedAt time.Time) (*domain.InventoryItem, error) {
	args := m.Called(ctx, itemID, delta, updatedBy, updatedAt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InventoryItem), args.Error(1)
}

func (m *MockInventoryRepository) DeleteItem(ctx context.Context, itemID string) error {
	args := m.Called(ctx, itemID)
	return args.Error(0)
}

type InventoryServiceTestSuite struct {
	suite.Suite
	mockRepo     *MockInventoryRepository
	mockUserRepo *MockUserRepository
	service      portssvc.InventorySvcFacade

	secretaryID string
}

func (suite *InventoryServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockInventoryRepository)
	suite.mockUserRepo = new(MockUserRepository)
	suite.service = services.NewInventoryService(suite.mockRepo, suite.mockUserRepo)

	suite.secretaryID = uuid.NewString()
	suite.mockUserRepo.On("FindUserByID", mock.Anything, suite.secretaryID).
		Return(userWithRole(suite.secretaryID, domain.RoleSecretary), nil).Maybe()
}

// The service hands the raw delta to the repository; it never reads the
// count first and writes back an absolute value, so concurrent adjustments
// cannot overwrite each other.
func (suite *InventoryServiceTestSuite) TestAdjustQuantity_DelegatesDeltaToRepository() {
	ctx := context.Background()
	itemID := uuid.NewString()
	adjusted := &domain.InventoryItem{ItemID: itemID, Name: "Folding chairs", Quantity: 52}

	suite.mockRepo.On("AdjustItemQuantity", ctx, itemID, 12, suite.secretaryID, mock.AnythingOfType("time.Time")).
		Return(adjusted, nil).Once()

	item, err := suite.service.AdjustQuantity(ctx, itemID, 12, suite.secretaryID)

	suite.Require().NoError(err)
	suite.Equal(52, item.Quantity)
	suite.mockRepo.AssertNotCalled(suite.T(), "FindItemByID", mock.Anything, mock.Anything)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateItem", mock.Anything, mock.Anything)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *InventoryServiceTestSuite) TestAdjustQuantity_BelowZeroRejected() {
	ctx := context.Background()
	itemID := uuid.NewString()

	suite.mockRepo.On("AdjustItemQuantity", ctx, itemID, -6, suite.secretaryID, mock.AnythingOfType("time.Time")).
		Return(nil, apperrors.ErrValidation).Once()

	_, err := suite.service.AdjustQuantity(ctx, itemID, -6, suite.secretaryID)

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateItem", mock.Anything, mock.Anything)
}

func (suite *InventoryServiceTestSuite) TestAdjustQuantity_ZeroDeltaRejected() {
	ctx := context.Background()

	_, err := suite.service.AdjustQuantity(ctx, uuid.NewString(), 0, suite.secretaryID)

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "AdjustItemQuantity", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestInventoryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(InventoryServiceTestSuite))
}
