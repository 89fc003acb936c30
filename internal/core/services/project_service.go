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

type projectService struct {
	BaseService
	projectRepo portsrepo.ProjectRepository
}

// NewProjectService builds the project service.
func NewProjectService(projectRepo portsrepo.ProjectRepository, userRepo portsrepo.UserRepository) portssvc.ProjectSvcFacade {
	return &projectService{
		BaseService: BaseService{userRepo: userRepo},
		projectRepo: projectRepo,
	}
}

var _ portssvc.ProjectSvcFacade = (*projectService)(nil)

func (s *projectService) CreateProject(ctx context.Context, req dto.CreateProjectRequest, creatorUserID string) (*domain.Project, error) {
	if _, err := s.requirePermission(ctx, creatorUserID, domain.PermManageFinance); err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("%w: project name is required", apperrors.ErrValidation)
	}
	if req.PlannedBudget.IsNegative() || req.ExecutedBudget.IsNegative() {
		return nil, fmt.Errorf("%w: budgets cannot be negative", apperrors.ErrValidation)
	}

	project := domain.Project{
		ProjectID:      uuid.NewString(),
		Name:           strings.TrimSpace(req.Name),
		Description:    req.Description,
		PlannedBudget:  req.PlannedBudget,
		ExecutedBudget: req.ExecutedBudget,
		AuditFields:    domain.NewAuditFields(creatorUserID, time.Now()),
	}
	if err := s.projectRepo.SaveProject(ctx, project); err != nil {
		s.LogError(ctx, err, "Failed to save project", slog.String("project_id", project.ProjectID))
		return nil, err
	}
	return &project, nil
}

func (s *projectService) GetProjectByID(ctx context.Context, projectID string) (*domain.Project, error) {
	return s.projectRepo.FindProjectByID(ctx, projectID)
}

func (s *projectService) ListProjects(ctx context.Context, limit, offset int) ([]domain.Project, error) {
	limit, offset = normalizePage(limit, offset)
	return s.projectRepo.ListProjects(ctx, limit, offset)
}

func (s *projectService) UpdateProject(ctx context.Context, projectID string, req dto.UpdateProjectRequest, userID string) (*domain.Project, error) {
	if _, err := s.requirePermission(ctx, userID, domain.PermManageFinance); err != nil {
		return nil, err
	}

	project, err := s.projectRepo.FindProjectByID(ctx, projectID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, fmt.Errorf("%w: project name cannot be empty", apperrors.ErrValidation)
		}
		project.Name = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		project.Description = *req.Description
	}
	if req.PlannedBudget != nil {
		if req.PlannedBudget.IsNegative() {
			return nil, fmt.Errorf("%w: planned budget cannot be negative", apperrors.ErrValidation)
		}
		project.PlannedBudget = *req.PlannedBudget
	}
	if req.ExecutedBudget != nil {
		if req.ExecutedBudget.IsNegative() {
			return nil, fmt.Errorf("%w: executed budget cannot be negative", apperrors.ErrValidation)
		}
		project.ExecutedBudget = *req.ExecutedBudget
	}
	project.Touch(userID, time.Now())

	if err := s.projectRepo.UpdateProject(ctx, *project); err != nil {
		s.LogError(ctx, err, "Failed to update project", slog.String("project_id", projectID))
		return nil, err
	}
	return project, nil
}

func (s *projectService) DeleteProject(ctx context.Context, projectID string, userID string) error {
	if _, err := s.requirePermission(ctx, userID, domain.PermManageFinance); err != nil {
		return err
	}
	if err := s.projectRepo.DeleteProject(ctx, projectID); err != nil {
		s.LogError(ctx, err, "Failed to delete project", slog.String("project_id", projectID))
		return err
	}
	s.LogInfo(ctx, "Project deleted", slog.String("project_id", projectID))
	return nil
}
