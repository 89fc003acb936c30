package services

import (
	"context"
	"fmt"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/idtoken"

	"github.com/parishworks/parish_management_app/internal/apperrors"
	portssvc "github.com/parishworks/parish_management_app/internal/core/ports/services"
	"github.com/parishworks/parish_management_app/internal/platform/config"
)

type googleOAuthService struct {
	oauthConfig *oauth2.Config
}

// NewGoogleOAuthService builds the Google code-exchange service.
func NewGoogleOAuthService(cfg *config.Config) portssvc.GoogleOAuthSvcFacade {
	return &googleOAuthService{
		oauthConfig: &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.GoogleRedirectURL,
			Scopes:       []string{"openid", "profile", "email"},
			Endpoint:     google.Endpoint,
		},
	}
}

var _ portssvc.GoogleOAuthSvcFacade = (*googleOAuthService)(nil)

// ExchangeCode swaps the authorization code for tokens and validates the ID
// token, returning the verified name and email.
func (s *googleOAuthService) ExchangeCode(ctx context.Context, code string) (string, string, error) {
	token, err := s.oauthConfig.Exchange(ctx, code)
	if err != nil {
		return "", "", fmt.Errorf("%w: code exchange failed: %v", apperrors.ErrUnauthorized, err)
	}

	rawIDToken, ok := token.Extra("id_token").(string)
	if !ok || rawIDToken == "" {
		return "", "", fmt.Errorf("%w: no id_token in Google response", apperrors.ErrUnauthorized)
	}

	payload, err := idtoken.Validate(ctx, rawIDToken, s.oauthConfig.ClientID)
	if err != nil {
		return "", "", fmt.Errorf("%w: id_token validation failed: %v", apperrors.ErrUnauthorized, err)
	}

	email, _ := payload.Claims["email"].(string)
	name, _ := payload.Claims["name"].(string)
	if email == "" {
		return "", "", fmt.Errorf("%w: id_token carries no email claim", apperrors.ErrUnauthorized)
	}
	return name, email, nil
}
