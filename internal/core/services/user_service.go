package services

import (
	"context"
	"crypto/subtle"
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
	"github.com/parishworks/parish_management_app/internal/utils"
)

type userService struct {
	BaseService
}

// NewUserService builds the user service.
func NewUserService(userRepo portsrepo.UserRepository) portssvc.UserSvcFacade {
	return &userService{BaseService: BaseService{userRepo: userRepo}}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

func (s *userService) CreateUser(ctx context.Context, req dto.CreateUserRequest, creatorUserID string) (*domain.User, error) {
	if _, err := s.requirePermission(ctx, creatorUserID, domain.PermManageUsers); err != nil {
		s.LogError(ctx, err, "User not authorized to create users", slog.String("user_id", creatorUserID))
		return nil, err
	}
	if !req.Role.IsValid() {
		return nil, fmt.Errorf("%w: unknown role %q", apperrors.ErrValidation, req.Role)
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := domain.User{
		UserID:       uuid.NewString(),
		Username:     strings.ToLower(strings.TrimSpace(req.Username)),
		PasswordHash: hash,
		Name:         req.Name,
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		Role:         req.Role,
		AuditFields:  domain.NewAuditFields(creatorUserID, time.Now()),
	}
	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		s.LogError(ctx, err, "Failed to save user", slog.String("username", user.Username))
		return nil, err
	}

	s.LogInfo(ctx, "User created", slog.String("user_id", user.UserID), slog.String("role", string(user.Role)))
	return &user, nil
}

func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return s.userRepo.FindUserByID(ctx, userID)
}

func (s *userService) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	return s.userRepo.FindUserByUsername(ctx, strings.ToLower(strings.TrimSpace(username)))
}

func (s *userService) ListUsers(ctx context.Context, limit, offset int, requestingUserID string) ([]domain.User, error) {
	if _, err := s.requirePermission(ctx, requestingUserID, domain.PermManageUsers); err != nil {
		return nil, err
	}
	limit, offset = normalizePage(limit, offset)
	return s.userRepo.ListUsers(ctx, limit, offset)
}

// UpdateUser changes profile fields. Role changes require PermManageUsers;
// users may edit their own name and email without it.
func (s *userService) UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest, requestingUserID string) (*domain.User, error) {
	requester, err := s.userRepo.FindUserByID(ctx, requestingUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve acting user: %w", err)
	}

	isSelf := requestingUserID == userID
	canManage := requester.Role.Has(domain.PermManageUsers)
	if !isSelf && !canManage {
		return nil, fmt.Errorf("%w: cannot edit other users", apperrors.ErrForbidden)
	}

	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Email != nil {
		user.Email = strings.ToLower(strings.TrimSpace(*req.Email))
	}
	if req.Role != nil && *req.Role != user.Role {
		if !canManage {
			return nil, fmt.Errorf("%w: role changes require user management permission", apperrors.ErrForbidden)
		}
		if !req.Role.IsValid() {
			return nil, fmt.Errorf("%w: unknown role %q", apperrors.ErrValidation, *req.Role)
		}
		user.Role = *req.Role
	}
	user.Touch(requestingUserID, time.Now())

	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		s.LogError(ctx, err, "Failed to update user", slog.String("user_id", userID))
		return nil, err
	}
	return user, nil
}

func (s *userService) DeleteUser(ctx context.Context, userID string, requestingUserID string) error {
	if _, err := s.requirePermission(ctx, requestingUserID, domain.PermManageUsers); err != nil {
		return err
	}
	if userID == requestingUserID {
		return fmt.Errorf("%w: cannot delete your own user", apperrors.ErrConflict)
	}
	if err := s.userRepo.MarkUserDeleted(ctx, userID, requestingUserID, time.Now()); err != nil {
		s.LogError(ctx, err, "Failed to delete user", slog.String("user_id", userID))
		return err
	}
	s.LogInfo(ctx, "User deleted", slog.String("user_id", userID))
	return nil
}

// FindOrCreateOAuthUser resolves a Google sign-in to a local user by email,
// creating a MEMBER user on first login. OAuth users have no usable password.
func (s *userService) FindOrCreateOAuthUser(ctx context.Context, name, email string) (*domain.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, fmt.Errorf("%w: identity provider returned no email", apperrors.ErrValidation)
	}

	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	// First login: random unusable password, lowest-privilege role.
	randomSecret, err := utils.GenerateSecureRandomString(32)
	if err != nil {
		return nil, fmt.Errorf("failed to generate placeholder secret: %w", err)
	}
	hash, err := utils.HashPassword(randomSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to hash placeholder secret: %w", err)
	}

	newUser := domain.User{
		UserID:       uuid.NewString(),
		Username:     email,
		PasswordHash: hash,
		Name:         name,
		Email:        email,
		Role:         domain.RoleMember,
	}
	newUser.AuditFields = domain.NewAuditFields(newUser.UserID, time.Now())

	if err := s.userRepo.SaveUser(ctx, newUser); err != nil {
		s.LogError(ctx, err, "Failed to create OAuth user", slog.String("email", email))
		return nil, err
	}
	s.LogInfo(ctx, "OAuth user created", slog.String("user_id", newUser.UserID))
	return &newUser, nil
}

func (s *userService) StoreRefreshToken(ctx context.Context, userID, refreshToken string, expiresAt time.Time) error {
	hash := utils.HashToken(refreshToken)
	return s.userRepo.UpdateRefreshToken(ctx, userID, &hash, &expiresAt)
}

// ValidateRefreshToken checks the presented token against the stored hash and
// expiry. Any mismatch is ErrUnauthorized; callers must not learn which check
// failed.
func (s *userService) ValidateRefreshToken(ctx context.Context, userID, refreshToken string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, err
	}

	if !user.RefreshTokenHash.Valid || !user.RefreshTokenExpiryTime.Valid {
		return nil, apperrors.ErrUnauthorized
	}
	if time.Now().After(user.RefreshTokenExpiryTime.Time) {
		return nil, apperrors.ErrUnauthorized
	}
	presented := utils.HashToken(refreshToken)
	if subtle.ConstantTimeCompare([]byte(user.RefreshTokenHash.String), []byte(presented)) != 1 {
		return nil, apperrors.ErrUnauthorized
	}
	return user, nil
}

func (s *userService) ClearRefreshToken(ctx context.Context, userID string) error {
	return s.userRepo.UpdateRefreshToken(ctx, userID, nil, nil)
}
