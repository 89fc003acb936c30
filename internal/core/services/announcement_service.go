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
	"github.com/parishworks/parish_management_app/internal/platform/events"
)

type announcementService struct {
	BaseService
	announcementRepo portsrepo.AnnouncementRepository
	publisher        events.Publisher
}

// NewAnnouncementService builds the announcements feed service.
func NewAnnouncementService(announcementRepo portsrepo.AnnouncementRepository, userRepo portsrepo.UserRepository, publisher events.Publisher) portssvc.AnnouncementSvcFacade {
	return &announcementService{
		BaseService:      BaseService{userRepo: userRepo},
		announcementRepo: announcementRepo,
		publisher:        publisher,
	}
}

var _ portssvc.AnnouncementSvcFacade = (*announcementService)(nil)

func (s *announcementService) CreateAnnouncement(ctx context.Context, req dto.CreateAnnouncementRequest, creatorUserID string) (*domain.Announcement, error) {
	if _, err := s.requirePermission(ctx, creatorUserID, domain.PermManageContent); err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Body) == "" {
		return nil, fmt.Errorf("%w: announcement title and body are required", apperrors.ErrValidation)
	}

	a := domain.Announcement{
		AnnouncementID: uuid.NewString(),
		Title:          strings.TrimSpace(req.Title),
		Body:           req.Body,
		Ministry:       req.Ministry,
		IsPublished:    req.IsPublished,
		AuditFields:    domain.NewAuditFields(creatorUserID, time.Now()),
	}
	if err := s.announcementRepo.SaveAnnouncement(ctx, a); err != nil {
		s.LogError(ctx, err, "Failed to save announcement", slog.String("announcement_id", a.AnnouncementID))
		return nil, err
	}

	if a.IsPublished {
		s.publishEvent(ctx, a.AnnouncementID, creatorUserID)
	}
	return &a, nil
}

func (s *announcementService) GetAnnouncementByID(ctx context.Context, announcementID string) (*domain.Announcement, error) {
	return s.announcementRepo.FindAnnouncementByID(ctx, announcementID)
}

func (s *announcementService) ListAnnouncements(ctx context.Context, limit, offset int) ([]domain.Announcement, error) {
	limit, offset = normalizePage(limit, offset)
	return s.announcementRepo.ListAnnouncements(ctx, limit, offset)
}

func (s *announcementService) UpdateAnnouncement(ctx context.Context, announcementID string, req dto.UpdateAnnouncementRequest, userID string) (*domain.Announcement, error) {
	if _, err := s.requirePermission(ctx, userID, domain.PermManageContent); err != nil {
		return nil, err
	}

	a, err := s.announcementRepo.FindAnnouncementByID(ctx, announcementID)
	if err != nil {
		return nil, err
	}
	wasPublished := a.IsPublished

	if req.Title != nil {
		if strings.TrimSpace(*req.Title) == "" {
			return nil, fmt.Errorf("%w: announcement title cannot be empty", apperrors.ErrValidation)
		}
		a.Title = strings.TrimSpace(*req.Title)
	}
	if req.Body != nil {
		if strings.TrimSpace(*req.Body) == "" {
			return nil, fmt.Errorf("%w: announcement body cannot be empty", apperrors.ErrValidation)
		}
		a.Body = *req.Body
	}
	if req.Ministry != nil {
		a.Ministry = *req.Ministry
	}
	if req.IsPublished != nil {
		a.IsPublished = *req.IsPublished
	}
	a.Touch(userID, time.Now())

	if err := s.announcementRepo.UpdateAnnouncement(ctx, *a); err != nil {
		s.LogError(ctx, err, "Failed to update announcement", slog.String("announcement_id", announcementID))
		return nil, err
	}

	if !wasPublished && a.IsPublished {
		s.publishEvent(ctx, a.AnnouncementID, userID)
	}
	return a, nil
}

func (s *announcementService) DeleteAnnouncement(ctx context.Context, announcementID string, userID string) error {
	if _, err := s.requirePermission(ctx, userID, domain.PermManageContent); err != nil {
		return err
	}
	if err := s.announcementRepo.DeleteAnnouncement(ctx, announcementID); err != nil {
		s.LogError(ctx, err, "Failed to delete announcement", slog.String("announcement_id", announcementID))
		return err
	}
	return nil
}

// publishEvent is best-effort; a broker failure never fails the request.
func (s *announcementService) publishEvent(ctx context.Context, announcementID, actorID string) {
	if s.publisher == nil {
		return
	}
	event := events.NewNotificationEvent(events.KindAnnouncementPosted, announcementID, actorID)
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.LogWarn(ctx, "Failed to publish announcement event",
			slog.String("announcement_id", announcementID),
			slog.String("error", err.Error()),
		)
	}
}
