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

type scheduleService struct {
	BaseService
	scheduleRepo portsrepo.ScheduleRepository
	memberRepo   portsrepo.MemberRepository
}

// NewScheduleService builds the ministry schedule service.
func NewScheduleService(scheduleRepo portsrepo.ScheduleRepository, memberRepo portsrepo.MemberRepository, userRepo portsrepo.UserRepository) portssvc.ScheduleSvcFacade {
	return &scheduleService{
		BaseService:  BaseService{userRepo: userRepo},
		scheduleRepo: scheduleRepo,
		memberRepo:   memberRepo,
	}
}

var _ portssvc.ScheduleSvcFacade = (*scheduleService)(nil)

func (s *scheduleService) validateWindow(startsAt, endsAt time.Time) error {
	if !endsAt.After(startsAt) {
		return fmt.Errorf("%w: schedule must end after it starts", apperrors.ErrValidation)
	}
	return nil
}

func (s *scheduleService) validateAssignedMembers(ctx context.Context, memberIDs []string) error {
	for _, id := range memberIDs {
		if _, err := s.memberRepo.FindMemberByID(ctx, id); err != nil {
			return fmt.Errorf("%w: assigned member %s does not exist", apperrors.ErrValidation, id)
		}
	}
	return nil
}

func (s *scheduleService) CreateSchedule(ctx context.Context, req dto.CreateScheduleRequest, creatorUserID string) (*domain.Schedule, error) {
	if _, err := s.requirePermission(ctx, creatorUserID, domain.PermManageContent); err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.Title) == "" {
		return nil, fmt.Errorf("%w: schedule title is required", apperrors.ErrValidation)
	}
	if err := s.validateWindow(req.StartsAt, req.EndsAt); err != nil {
		return nil, err
	}
	if err := s.validateAssignedMembers(ctx, req.AssignedMemberIDs); err != nil {
		return nil, err
	}

	assigned := req.AssignedMemberIDs
	if assigned == nil {
		assigned = []string{}
	}
	schedule := domain.Schedule{
		ScheduleID:        uuid.NewString(),
		Title:             strings.TrimSpace(req.Title),
		Ministry:          req.Ministry,
		StartsAt:          req.StartsAt,
		EndsAt:            req.EndsAt,
		Location:          req.Location,
		AssignedMemberIDs: assigned,
		AuditFields:       domain.NewAuditFields(creatorUserID, time.Now()),
	}
	if err := s.scheduleRepo.SaveSchedule(ctx, schedule); err != nil {
		s.LogError(ctx, err, "Failed to save schedule", slog.String("schedule_id", schedule.ScheduleID))
		return nil, err
	}
	return &schedule, nil
}

func (s *scheduleService) GetScheduleByID(ctx context.Context, scheduleID string) (*domain.Schedule, error) {
	return s.scheduleRepo.FindScheduleByID(ctx, scheduleID)
}

func (s *scheduleService) ListSchedules(ctx context.Context, limit, offset int) ([]domain.Schedule, error) {
	limit, offset = normalizePage(limit, offset)
	return s.scheduleRepo.ListSchedules(ctx, limit, offset)
}

func (s *scheduleService) UpdateSchedule(ctx context.Context, scheduleID string, req dto.UpdateScheduleRequest, userID string) (*domain.Schedule, error) {
	if _, err := s.requirePermission(ctx, userID, domain.PermManageContent); err != nil {
		return nil, err
	}

	schedule, err := s.scheduleRepo.FindScheduleByID(ctx, scheduleID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		if strings.TrimSpace(*req.Title) == "" {
			return nil, fmt.Errorf("%w: schedule title cannot be empty", apperrors.ErrValidation)
		}
		schedule.Title = strings.TrimSpace(*req.Title)
	}
	if req.Ministry != nil {
		schedule.Ministry = *req.Ministry
	}
	if req.StartsAt != nil {
		schedule.StartsAt = *req.StartsAt
	}
	if req.EndsAt != nil {
		schedule.EndsAt = *req.EndsAt
	}
	if err := s.validateWindow(schedule.StartsAt, schedule.EndsAt); err != nil {
		return nil, err
	}
	if req.Location != nil {
		schedule.Location = *req.Location
	}
	if req.AssignedMemberIDs != nil {
		if err := s.validateAssignedMembers(ctx, *req.AssignedMemberIDs); err != nil {
			return nil, err
		}
		schedule.AssignedMemberIDs = *req.AssignedMemberIDs
	}
	schedule.Touch(userID, time.Now())

	if err := s.scheduleRepo.UpdateSchedule(ctx, *schedule); err != nil {
		s.LogError(ctx, err, "Failed to update schedule", slog.String("schedule_id", scheduleID))
		return nil, err
	}
	return schedule, nil
}

func (s *scheduleService) DeleteSchedule(ctx context.Context, scheduleID string, userID string) error {
	if _, err := s.requirePermission(ctx, userID, domain.PermManageContent); err != nil {
		return err
	}
	if err := s.scheduleRepo.DeleteSchedule(ctx, scheduleID); err != nil {
		s.LogError(ctx, err, "Failed to delete schedule", slog.String("schedule_id", scheduleID))
		return err
	}
	return nil
}
