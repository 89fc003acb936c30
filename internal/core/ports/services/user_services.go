package services

import (
	"context"
	"time"

	"github.com/parishworks/parish_management_app/internal/core/domain"
	"github.com/parishworks/parish_management_app/internal/dto"
)

// UserSvcFacade exposes user management to the transport layer.
type UserSvcFacade interface {
	CreateUser(ctx context.Context, req dto.CreateUserRequest, creatorUserID string) (*domain.User, error)
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)
	ListUsers(ctx context.Context, limit, offset int, requestingUserID string) ([]domain.User, error)
	UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest, requestingUserID string) (*domain.User, error)
	DeleteUser(ctx context.Context, userID string, requestingUserID string) error
	// FindOrCreateOAuthUser resolves a user signing in through an external
	// identity provider, creating a MEMBER user on first login.
	FindOrCreateOAuthUser(ctx context.Context, name, email string) (*domain.User, error)
	StoreRefreshToken(ctx context.Context, userID, refreshToken string, expiresAt time.Time) error
	ValidateRefreshToken(ctx context.Context, userID, refreshToken string) (*domain.User, error)
	ClearRefreshToken(ctx context.Context, userID string) error
}

// TokenSvcFacade mints and validates the application's own tokens.
type TokenSvcFacade interface {
	GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error)
	GenerateRefreshToken(ctx context.Context, user *domain.User) (string, time.Time, error)
}

// GoogleOAuthSvcFacade wraps the Google side of the OAuth code exchange.
type GoogleOAuthSvcFacade interface {
	// ExchangeCode swaps an authorization code for a verified identity
	// (name, email) extracted from Google's ID token.
	ExchangeCode(ctx context.Context, code string) (name, email string, err error)
}
