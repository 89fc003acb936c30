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

type courseService struct {
	BaseService
	courseRepo portsrepo.CourseRepository
}

// NewCourseService builds the learning course service.
func NewCourseService(courseRepo portsrepo.CourseRepository, userRepo portsrepo.UserRepository) portssvc.CourseSvcFacade {
	return &courseService{
		BaseService: BaseService{userRepo: userRepo},
		courseRepo:  courseRepo,
	}
}

var _ portssvc.CourseSvcFacade = (*courseService)(nil)

func (s *courseService) CreateCourse(ctx context.Context, req dto.CreateCourseRequest, creatorUserID string) (*domain.Course, error) {
	if _, err := s.requirePermission(ctx, creatorUserID, domain.PermManageContent); err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.Title) == "" {
		return nil, fmt.Errorf("%w: course title is required", apperrors.ErrValidation)
	}

	course := domain.Course{
		CourseID:    uuid.NewString(),
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		Ministry:    req.Ministry,
		IsPublished: req.IsPublished,
		AuditFields: domain.NewAuditFields(creatorUserID, time.Now()),
	}
	if err := s.courseRepo.SaveCourse(ctx, course); err != nil {
		s.LogError(ctx, err, "Failed to save course", slog.String("course_id", course.CourseID))
		return nil, err
	}
	return &course, nil
}

func (s *courseService) GetCourseByID(ctx context.Context, courseID string) (*domain.Course, error) {
	return s.courseRepo.FindCourseByID(ctx, courseID)
}

func (s *courseService) ListCourses(ctx context.Context, limit, offset int) ([]domain.Course, error) {
	limit, offset = normalizePage(limit, offset)
	return s.courseRepo.ListCourses(ctx, limit, offset)
}

func (s *courseService) UpdateCourse(ctx context.Context, courseID string, req dto.UpdateCourseRequest, userID string) (*domain.Course, error) {
	if _, err := s.requirePermission(ctx, userID, domain.PermManageContent); err != nil {
		return nil, err
	}

	course, err := s.courseRepo.FindCourseByID(ctx, courseID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		if strings.TrimSpace(*req.Title) == "" {
			return nil, fmt.Errorf("%w: course title cannot be empty", apperrors.ErrValidation)
		}
		course.Title = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		course.Description = *req.Description
	}
	if req.Ministry != nil {
		course.Ministry = *req.Ministry
	}
	if req.IsPublished != nil {
		course.IsPublished = *req.IsPublished
	}
	course.Touch(userID, time.Now())

	if err := s.courseRepo.UpdateCourse(ctx, *course); err != nil {
		s.LogError(ctx, err, "Failed to update course", slog.String("course_id", courseID))
		return nil, err
	}
	return course, nil
}

func (s *courseService) DeleteCourse(ctx context.Context, courseID string, userID string) error {
	if _, err := s.requirePermission(ctx, userID, domain.PermManageContent); err != nil {
		return err
	}
	if err := s.courseRepo.DeleteCourse(ctx, courseID); err != nil {
		s.LogError(ctx, err, "Failed to delete course", slog.String("course_id", courseID))
		return err
	}
	return nil
}
