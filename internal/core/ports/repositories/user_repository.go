package repositories

import (
	"context"
	"time"

	"github.com/parishworks/parish_management_app/internal/core/domain"
)

// UserRepository persists application users.
type UserRepository interface {
	SaveUser(ctx context.Context, user domain.User) error
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
	ListUsers(ctx context.Context, limit, offset int) ([]domain.User, error)
	UpdateUser(ctx context.Context, user domain.User) error
	// UpdateRefreshToken stores the hash and expiry of the active refresh
	// token; nil values clear it (logout).
	UpdateRefreshToken(ctx context.Context, userID string, tokenHash *string, expiresAt *time.Time) error
	MarkUserDeleted(ctx context.Context, userID string, deletedBy string, deletedAt time.Time) error
}
