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

type memberService struct {
	BaseService
	memberRepo portsrepo.MemberRepository
}

// NewMemberService builds the member directory service.
func NewMemberService(memberRepo portsrepo.MemberRepository, userRepo portsrepo.UserRepository) portssvc.MemberSvcFacade {
	return &memberService{
		BaseService: BaseService{userRepo: userRepo},
		memberRepo:  memberRepo,
	}
}

var _ portssvc.MemberSvcFacade = (*memberService)(nil)

func (s *memberService) CreateMember(ctx context.Context, req dto.CreateMemberRequest, creatorUserID string) (*domain.Member, error) {
	if _, err := s.requirePermission(ctx, creatorUserID, domain.PermManageDirectory); err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("%w: member name is required", apperrors.ErrValidation)
	}

	member := domain.Member{
		MemberID:    uuid.NewString(),
		Name:        strings.TrimSpace(req.Name),
		Email:       strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:       req.Phone,
		BirthDate:   req.BirthDate,
		Ministry:    req.Ministry,
		IsActive:    true,
		AuditFields: domain.NewAuditFields(creatorUserID, time.Now()),
	}
	if err := s.memberRepo.SaveMember(ctx, member); err != nil {
		s.LogError(ctx, err, "Failed to save member", slog.String("member_id", member.MemberID))
		return nil, err
	}
	return &member, nil
}

func (s *memberService) GetMemberByID(ctx context.Context, memberID string) (*domain.Member, error) {
	return s.memberRepo.FindMemberByID(ctx, memberID)
}

func (s *memberService) ListMembers(ctx context.Context, limit, offset int) ([]domain.Member, error) {
	limit, offset = normalizePage(limit, offset)
	return s.memberRepo.ListMembers(ctx, limit, offset)
}

func (s *memberService) UpdateMember(ctx context.Context, memberID string, req dto.UpdateMemberRequest, userID string) (*domain.Member, error) {
	if _, err := s.requirePermission(ctx, userID, domain.PermManageDirectory); err != nil {
		return nil, err
	}

	member, err := s.memberRepo.FindMemberByID(ctx, memberID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, fmt.Errorf("%w: member name cannot be empty", apperrors.ErrValidation)
		}
		member.Name = strings.TrimSpace(*req.Name)
	}
	if req.Email != nil {
		member.Email = strings.ToLower(strings.TrimSpace(*req.Email))
	}
	if req.Phone != nil {
		member.Phone = *req.Phone
	}
	if req.BirthDate != nil {
		member.BirthDate = req.BirthDate
	}
	if req.Ministry != nil {
		member.Ministry = *req.Ministry
	}
	if req.IsActive != nil {
		member.IsActive = *req.IsActive
	}
	member.Touch(userID, time.Now())

	if err := s.memberRepo.UpdateMember(ctx, *member); err != nil {
		s.LogError(ctx, err, "Failed to update member", slog.String("member_id", memberID))
		return nil, err
	}
	return member, nil
}

func (s *memberService) DeleteMember(ctx context.Context, memberID string, userID string) error {
	if _, err := s.requirePermission(ctx, userID, domain.PermManageDirectory); err != nil {
		return err
	}
	if err := s.memberRepo.DeleteMember(ctx, memberID); err != nil {
		s.LogError(ctx, err, "Failed to delete member", slog.String("member_id", memberID))
		return err
	}
	s.LogInfo(ctx, "Member deleted", slog.String("member_id", memberID))
	return nil
}
