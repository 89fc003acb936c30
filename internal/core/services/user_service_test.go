package services_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/parishworks/parish_management_app/internal/apperrors"
	"github.com/parishworks/parish_management_app/internal/core/domain"
	portssvc "github.com/parishworks/parish_management_app/internal/core/ports/services"
	"github.com/parishworks/parish_management_app/internal/core/services"
	"github.com/parishworks/parish_management_app/internal/dto"
	"github.com/parishworks/parish_management_app/internal/utils"
)

type UserServiceTestSuite struct {
	suite.Suite
	mockRepo *MockUserRepository
	service  portssvc.UserSvcFacade

	adminID     string
	secretaryID string
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockUserRepository)
	suite.service = services.NewUserService(suite.mockRepo)

	suite.adminID = uuid.NewString()
	suite.secretaryID = uuid.NewString()
	suite.mockRepo.On("FindUserByID", mock.Anything, suite.adminID).
		Return(userWithRole(suite.adminID, domain.RoleAdmin), nil).Maybe()
	suite.mockRepo.On("FindUserByID", mock.Anything, suite.secretaryID).
		Return(userWithRole(suite.secretaryID, domain.RoleSecretary), nil).Maybe()
}

func (suite *UserServiceTestSuite) TestCreateUser_Success() {
	ctx := context.Background()
	req := dto.CreateUserRequest{
		Username: "MariaSilva",
		Password: "a-strong-password",
		Name:     "Maria Silva",
		Email:    "Maria@Example.com",
		Role:     domain.RoleTreasurer,
	}

	suite.mockRepo.On("SaveUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.Username == "mariasilva" && u.Email == "maria@example.com" &&
			u.Role == domain.RoleTreasurer && u.PasswordHash != req.Password
	})).Return(nil).Once()

	user, err := suite.service.CreateUser(ctx, req, suite.adminID)

	suite.Require().NoError(err)
	suite.NotEmpty(user.UserID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestCreateUser_NonAdminForbidden() {
	ctx := context.Background()
	req := dto.CreateUserRequest{Username: "x", Password: "y", Name: "z", Email: "x@y.z", Role: domain.RoleMember}

	_, err := suite.service.CreateUser(ctx, req, suite.secretaryID)

	suite.Require().ErrorIs(err, apperrors.ErrForbidden)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestCreateUser_UnknownRoleRejected() {
	ctx := context.Background()
	req := dto.CreateUserRequest{Username: "x", Password: "y", Name: "z", Email: "x@y.z", Role: domain.Role("SUPERUSER")}

	_, err := suite.service.CreateUser(ctx, req, suite.adminID)

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
}

func (suite *UserServiceTestSuite) TestDeleteUser_SelfDeleteConflicts() {
	ctx := context.Background()

	err := suite.service.DeleteUser(ctx, suite.adminID, suite.adminID)

	suite.Require().ErrorIs(err, apperrors.ErrConflict)
	suite.mockRepo.AssertNotCalled(suite.T(), "MarkUserDeleted", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// All refresh token failures collapse into ErrUnauthorized so callers cannot
// probe which check failed.
func (suite *UserServiceTestSuite) TestValidateRefreshToken() {
	ctx := context.Background()
	token := "opaque-refresh-token"

	freshUser := func(hash string, expiry time.Time) *domain.User {
		u := userWithRole(uuid.NewString(), domain.RoleMember)
		u.RefreshTokenHash = sql.NullString{String: hash, Valid: hash != ""}
		u.RefreshTokenExpiryTime = sql.NullTime{Time: expiry, Valid: !expiry.IsZero()}
		return u
	}

	// Valid token.
	valid := freshUser(utils.HashToken(token), time.Now().Add(time.Hour))
	suite.mockRepo.On("FindUserByID", ctx, "valid").Return(valid, nil).Once()
	user, err := suite.service.ValidateRefreshToken(ctx, "valid", token)
	suite.Require().NoError(err)
	suite.Equal(valid.UserID, user.UserID)

	// Unknown user.
	suite.mockRepo.On("FindUserByID", ctx, "missing").Return(nil, apperrors.ErrNotFound).Once()
	_, err = suite.service.ValidateRefreshToken(ctx, "missing", token)
	suite.Require().ErrorIs(err, apperrors.ErrUnauthorized)

	// No stored token.
	suite.mockRepo.On("FindUserByID", ctx, "empty").Return(freshUser("", time.Time{}), nil).Once()
	_, err = suite.service.ValidateRefreshToken(ctx, "empty", token)
	suite.Require().ErrorIs(err, apperrors.ErrUnauthorized)

	// Expired token.
	expired := freshUser(utils.HashToken(token), time.Now().Add(-time.Minute))
	suite.mockRepo.On("FindUserByID", ctx, "expired").Return(expired, nil).Once()
	_, err = suite.service.ValidateRefreshToken(ctx, "expired", token)
	suite.Require().ErrorIs(err, apperrors.ErrUnauthorized)

	// Wrong token.
	stored := freshUser(utils.HashToken("a-different-token"), time.Now().Add(time.Hour))
	suite.mockRepo.On("FindUserByID", ctx, "wrong").Return(stored, nil).Once()
	_, err = suite.service.ValidateRefreshToken(ctx, "wrong", token)
	suite.Require().ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *UserServiceTestSuite) TestFindOrCreateOAuthUser_FirstLoginCreatesMember() {
	ctx := context.Background()
	email := "newcomer@example.com"

	suite.mockRepo.On("FindUserByEmail", ctx, email).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.Email == email && u.Role == domain.RoleMember && u.PasswordHash != ""
	})).Return(nil).Once()

	user, err := suite.service.FindOrCreateOAuthUser(ctx, "New Comer", "Newcomer@Example.com")

	suite.Require().NoError(err)
	suite.Equal(domain.RoleMember, user.Role)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestFindOrCreateOAuthUser_ExistingUserReturned() {
	ctx := context.Background()
	existing := userWithRole(uuid.NewString(), domain.RoleCoordinator)
	existing.Email = "known@example.com"

	suite.mockRepo.On("FindUserByEmail", ctx, "known@example.com").Return(existing, nil).Once()

	user, err := suite.service.FindOrCreateOAuthUser(ctx, "Known", "known@example.com")

	suite.Require().NoError(err)
	suite.Equal(existing.UserID, user.UserID)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
