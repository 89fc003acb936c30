package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/parishworks/parish_management_app/internal/apperrors"
	"github.com/parishworks/parish_management_app/internal/core/domain"
	portsrepo "github.com/parishworks/parish_management_app/internal/core/ports/repositories"
	"github.com/parishworks/parish_management_app/internal/middleware"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

// BaseService carries the cross-cutting pieces every service needs: the user
// repository for permission checks and logging helpers bound to the
// request-scoped logger.
type BaseService struct {
	userRepo portsrepo.UserRepository
}

// requirePermission loads the acting user and checks the permission against
// the role matrix. Returns the user so callers can branch on the role.
func (s *BaseService) requirePermission(ctx context.Context, userID string, perm domain.Permission) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve acting user: %w", err)
	}
	if !user.Role.Has(perm) {
		return nil, fmt.Errorf("%w: role %s lacks %s", apperrors.ErrForbidden, user.Role, perm)
	}
	return user, nil
}

// LogError logs an error with the request-scoped logger.
func (s *BaseService) LogError(ctx context.Context, err error, msg string, args ...any) {
	middleware.GetLoggerFromCtx(ctx).Error(msg, append(args, slog.String("error", err.Error()))...)
}

// LogInfo logs an informational message with the request-scoped logger.
func (s *BaseService) LogInfo(ctx context.Context, msg string, args ...any) {
	middleware.GetLoggerFromCtx(ctx).Info(msg, args...)
}

// LogWarn logs a warning with the request-scoped logger.
func (s *BaseService) LogWarn(ctx context.Context, msg string, args ...any) {
	middleware.GetLoggerFromCtx(ctx).Warn(msg, args...)
}

// normalizePage clamps paging values into a sane range.
func normalizePage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
