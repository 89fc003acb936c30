package dto

import "time"

// LoginRequest carries username/password credentials.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse returns the access token; the refresh token travels in an
// HTTP-only cookie.
type LoginResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
	User      UserResponse `json:"user"`
}

// GoogleExchangeCodeRequest carries the authorization code obtained by the
// frontend from Google.
type GoogleExchangeCodeRequest struct {
	Code string `json:"code" binding:"required"`
}
