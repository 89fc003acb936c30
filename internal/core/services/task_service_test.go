package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/parishworks/parish_management_app/internal/apperrors"
	"github.com/parishworks/parish_management_app/internal/core/domain"
	portssvc "github.com/parishworks/parish_management_app/internal/core/ports/services"
	"github.com/parishworks/parish_management_app/internal/core/services"
	"github.com/parishworks/parish_management_app/internal/dto"
)

type TaskServiceTestSuite struct {
	suite.Suite
	mockTaskRepo   *MockTaskRepository
	mockMemberRepo *MockMemberRepository
	mockUserRepo   *MockUserRepository
	service        portssvc.TaskSvcFacade

	secretaryID string
	memberID    string
}

func (suite *TaskServiceTestSuite) SetupTest() {
	suite.mockTaskRepo = new(MockTaskRepository)
	suite.mockMemberRepo = new(MockMemberRepository)
	suite.mockUserRepo = new(MockUserRepository)
	suite.service = services.NewTaskService(suite.mockTaskRepo, suite.mockMemberRepo, suite.mockUserRepo)

	suite.secretaryID = uuid.NewString()
	suite.memberID = uuid.NewString()
	suite.mockUserRepo.On("FindUserByID", mock.Anything, suite.secretaryID).
		Return(userWithRole(suite.secretaryID, domain.RoleSecretary), nil).Maybe()
	suite.mockUserRepo.On("FindUserByID", mock.Anything, suite.memberID).
		Return(userWithRole(suite.memberID, domain.RoleMember), nil).Maybe()
}

func (suite *TaskServiceTestSuite) TestCreateTask_Success() {
	ctx := context.Background()
	req := dto.CreateTaskRequest{Title: "Prepare bulletin", Ministry: "Communications"}

	suite.mockTaskRepo.On("SaveTask", ctx, mock.MatchedBy(func(task domain.Task) bool {
		return task.Title == "Prepare bulletin" && task.Status == domain.TaskPending
	})).Return(nil).Once()

	task, err := suite.service.CreateTask(ctx, req, suite.secretaryID)

	suite.Require().NoError(err)
	suite.Equal(domain.TaskPending, task.Status)
	suite.mockTaskRepo.AssertExpectations(suite.T())
}

func (suite *TaskServiceTestSuite) TestCreateTask_UnknownAssigneeRejected() {
	ctx := context.Background()
	assignee := uuid.NewString()
	req := dto.CreateTaskRequest{Title: "Visit the sick", AssigneeMemberID: assignee}

	suite.mockMemberRepo.On("FindMemberByID", ctx, assignee).
		Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.CreateTask(ctx, req, suite.secretaryID)

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
	suite.mockTaskRepo.AssertNotCalled(suite.T(), "SaveTask", mock.Anything, mock.Anything)
}

func (suite *TaskServiceTestSuite) TestCreateTask_MemberForbidden() {
	ctx := context.Background()

	_, err := suite.service.CreateTask(ctx, dto.CreateTaskRequest{Title: "Nope"}, suite.memberID)

	suite.Require().ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *TaskServiceTestSuite) TestTransitionTask_ForwardAllowed() {
	ctx := context.Background()
	taskID := uuid.NewString()
	stored := &domain.Task{TaskID: taskID, Title: "Prepare bulletin", Status: domain.TaskPending}

	suite.mockTaskRepo.On("FindTaskByID", ctx, taskID).Return(stored, nil).Once()
	suite.mockTaskRepo.On("UpdateTask", ctx, mock.MatchedBy(func(task domain.Task) bool {
		return task.Status == domain.TaskInProgress
	})).Return(nil).Once()

	task, err := suite.service.TransitionTask(ctx, taskID, domain.TaskInProgress, suite.secretaryID)

	suite.Require().NoError(err)
	suite.Equal(domain.TaskInProgress, task.Status)
	suite.mockTaskRepo.AssertExpectations(suite.T())
}

func (suite *TaskServiceTestSuite) TestTransitionTask_BackwardRejected() {
	ctx := context.Background()
	taskID := uuid.NewString()
	stored := &domain.Task{TaskID: taskID, Title: "Prepare bulletin", Status: domain.TaskDone}

	suite.mockTaskRepo.On("FindTaskByID", ctx, taskID).Return(stored, nil).Once()

	_, err := suite.service.TransitionTask(ctx, taskID, domain.TaskInProgress, suite.secretaryID)

	suite.Require().ErrorIs(err, apperrors.ErrConflict)
	suite.mockTaskRepo.AssertNotCalled(suite.T(), "UpdateTask", mock.Anything, mock.Anything)
}

func TestTaskServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TaskServiceTestSuite))
}
