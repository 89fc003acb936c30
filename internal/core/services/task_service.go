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
)

type taskService struct {
	BaseService
	taskRepo   portsrepo.TaskRepository
	memberRepo portsrepo.MemberRepository
}

// NewTaskService builds the ministry task service.
func NewTaskService(taskRepo portsrepo.TaskRepository, memberRepo portsrepo.MemberRepository, userRepo portsrepo.UserRepository) portssvc.TaskSvcFacade {
	return &taskService{
		BaseService: BaseService{userRepo: userRepo},
		taskRepo:    taskRepo,
		memberRepo:  memberRepo,
	}
}

var _ portssvc.TaskSvcFacade = (*taskService)(nil)

func (s *taskService) validateAssignee(ctx context.Context, memberID string) error {
	if memberID == "" {
		return nil
	}
	if _, err := s.memberRepo.FindMemberByID(ctx, memberID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("%w: assignee member %s does not exist", apperrors.ErrValidation, memberID)
		}
		return err
	}
	return nil
}

func (s *taskService) CreateTask(ctx context.Context, req dto.CreateTaskRequest, creatorUserID string) (*domain.Task, error) {
	if _, err := s.requirePermission(ctx, creatorUserID, domain.PermManageContent); err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.Title) == "" {
		return nil, fmt.Errorf("%w: task title is required", apperrors.ErrValidation)
	}
	if err := s.validateAssignee(ctx, req.AssigneeMemberID); err != nil {
		return nil, err
	}

	task := domain.Task{
		TaskID:           uuid.NewString(),
		Title:            strings.TrimSpace(req.Title),
		Description:      req.Description,
		Ministry:         req.Ministry,
		AssigneeMemberID: req.AssigneeMemberID,
		DueDate:          req.DueDate,
		Status:           domain.TaskPending,
		AuditFields:      domain.NewAuditFields(creatorUserID, time.Now()),
	}
	if err := s.taskRepo.SaveTask(ctx, task); err != nil {
		s.LogError(ctx, err, "Failed to save task", slog.String("task_id", task.TaskID))
		return nil, err
	}
	return &task, nil
}

func (s *taskService) GetTaskByID(ctx context.Context, taskID string) (*domain.Task, error) {
	return s.taskRepo.FindTaskByID(ctx, taskID)
}

func (s *taskService) ListTasks(ctx context.Context, limit, offset int) ([]domain.Task, error) {
	limit, offset = normalizePage(limit, offset)
	return s.taskRepo.ListTasks(ctx, limit, offset)
}

func (s *taskService) UpdateTask(ctx context.Context, taskID string, req dto.UpdateTaskRequest, userID string) (*domain.Task, error) {
	if _, err := s.requirePermission(ctx, userID, domain.PermManageContent); err != nil {
		return nil, err
	}

	task, err := s.taskRepo.FindTaskByID(ctx, taskID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		if strings.TrimSpace(*req.Title) == "" {
			return nil, fmt.Errorf("%w: task title cannot be empty", apperrors.ErrValidation)
		}
		task.Title = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		task.Description = *req.Description
	}
	if req.Ministry != nil {
		task.Ministry = *req.Ministry
	}
	if req.AssigneeMemberID != nil {
		if err := s.validateAssignee(ctx, *req.AssigneeMemberID); err != nil {
			return nil, err
		}
		task.AssigneeMemberID = *req.AssigneeMemberID
	}
	if req.DueDate != nil {
		task.DueDate = req.DueDate
	}
	task.Touch(userID, time.Now())

	if err := s.taskRepo.UpdateTask(ctx, *task); err != nil {
		s.LogError(ctx, err, "Failed to update task", slog.String("task_id", taskID))
		return nil, err
	}
	return task, nil
}

// TransitionTask moves the task through its lifecycle, rejecting transitions
// the state machine does not allow.
func (s *taskService) TransitionTask(ctx context.Context, taskID string, next domain.TaskStatus, userID string) (*domain.Task, error) {
	if _, err := s.requirePermission(ctx, userID, domain.PermManageContent); err != nil {
		return nil, err
	}

	task, err := s.taskRepo.FindTaskByID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if !task.Status.CanTransitionTo(next) {
		return nil, fmt.Errorf("%w: cannot move task from %s to %s", apperrors.ErrConflict, task.Status, next)
	}

	task.Status = next
	task.Touch(userID, time.Now())
	if err := s.taskRepo.UpdateTask(ctx, *task); err != nil {
		s.LogError(ctx, err, "Failed to transition task", slog.String("task_id", taskID))
		return nil, err
	}
	s.LogInfo(ctx, "Task transitioned", slog.String("task_id", taskID), slog.String("status", string(next)))
	return task, nil
}

func (s *taskService) DeleteTask(ctx context.Context, taskID string, userID string) error {
	if _, err := s.requirePermission(ctx, userID, domain.PermManageContent); err != nil {
		return err
	}
	if err := s.taskRepo.DeleteTask(ctx, taskID); err != nil {
		s.LogError(ctx, err, "Failed to delete task", slog.String("task_id", taskID))
		return err
	}
	return nil
}
