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

type categoryService struct {
	BaseService
	categoryRepo portsrepo.CategoryRepository
}

// NewCategoryService builds the category service.
func NewCategoryService(categoryRepo portsrepo.CategoryRepository, userRepo portsrepo.UserRepository) portssvc.CategorySvcFacade {
	return &categoryService{
		BaseService:  BaseService{userRepo: userRepo},
		categoryRepo: categoryRepo,
	}
}

var _ portssvc.CategorySvcFacade = (*categoryService)(nil)

func (s *categoryService) CreateCategory(ctx context.Context, req dto.CreateCategoryRequest, creatorUserID string) (*domain.Category, error) {
	if _, err := s.requirePermission(ctx, creatorUserID, domain.PermManageFinance); err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("%w: category name is required", apperrors.ErrValidation)
	}

	category := domain.Category{
		CategoryID:  uuid.NewString(),
		Name:        strings.TrimSpace(req.Name),
		Direction:   req.Direction,
		AuditFields: domain.NewAuditFields(creatorUserID, time.Now()),
	}
	if err := s.categoryRepo.SaveCategory(ctx, category); err != nil {
		s.LogError(ctx, err, "Failed to save category", slog.String("category_id", category.CategoryID))
		return nil, err
	}
	return &category, nil
}

func (s *categoryService) GetCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error) {
	return s.categoryRepo.FindCategoryByID(ctx, categoryID)
}

func (s *categoryService) ListCategories(ctx context.Context, limit, offset int) ([]domain.Category, error) {
	limit, offset = normalizePage(limit, offset)
	return s.categoryRepo.ListCategories(ctx, limit, offset)
}

func (s *categoryService) UpdateCategory(ctx context.Context, categoryID string, req dto.UpdateCategoryRequest, userID string) (*domain.Category, error) {
	if _, err := s.requirePermission(ctx, userID, domain.PermManageFinance); err != nil {
		return nil, err
	}

	category, err := s.categoryRepo.FindCategoryByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, fmt.Errorf("%w: category name cannot be empty", apperrors.ErrValidation)
		}
		category.Name = strings.TrimSpace(*req.Name)
	}
	if req.Direction != nil {
		category.Direction = *req.Direction
	}
	category.Touch(userID, time.Now())

	if err := s.categoryRepo.UpdateCategory(ctx, *category); err != nil {
		s.LogError(ctx, err, "Failed to update category", slog.String("category_id", categoryID))
		return nil, err
	}
	return category, nil
}

func (s *categoryService) DeleteCategory(ctx context.Context, categoryID string, userID string) error {
	if _, err := s.requirePermission(ctx, userID, domain.PermManageFinance); err != nil {
		return err
	}
	if err := s.categoryRepo.DeleteCategory(ctx, categoryID); err != nil {
		s.LogError(ctx, err, "Failed to delete category", slog.String("category_id", categoryID))
		return err
	}
	s.LogInfo(ctx, "Category deleted", slog.String("category_id", categoryID))
	return nil
}
