package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/parishworks/parish_management_app/internal/core/domain"
	portssvc "github.com/parishworks/parish_management_app/internal/core/ports/services"
	"github.com/parishworks/parish_management_app/internal/dto"
	"github.com/parishworks/parish_management_app/internal/middleware"
	"github.com/parishworks/parish_management_app/internal/platform/config"
	"github.com/parishworks/parish_management_app/internal/utils"
)

// authHandler handles login, token refresh, logout and Google sign-in.
type authHandler struct {
	cfg          *config.Config
	userService  portssvc.UserSvcFacade
	tokenService portssvc.TokenSvcFacade
	googleOAuth  portssvc.GoogleOAuthSvcFacade
}

// registerAuthRoutes registers the public authentication routes. Login-style
// endpoints share an IP rate limit.
func registerAuthRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	h := &authHandler{
		cfg:          cfg,
		userService:  services.User,
		tokenService: services.Token,
		googleOAuth:  services.GoogleOAuth,
	}

	rateLimited := newLoginRateLimiter(cfg)
	auth := r.Group("/api/v1/auth")
	{
		auth.POST("/login", rateLimited, h.login)
		auth.POST("/google/exchange-code", rateLimited, h.googleExchangeCode)
		auth.POST("/refresh", h.refresh)
		auth.POST("/logout", middleware.AuthMiddleware(cfg.JWTSecret), h.logout)
	}
}

// issueSession mints the access and refresh tokens, persists the refresh
// token hash and sets the refresh cookie.
func (h *authHandler) issueSession(c *gin.Context, logger *slog.Logger, user *domain.User) (*dto.LoginResponse, bool) {
	ctx := c.Request.Context()

	accessToken, accessExpiry, err := h.tokenService.GenerateAccessToken(ctx, user)
	if err != nil {
		logger.Error("Failed to generate access token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to complete login"})
		return nil, false
	}

	refreshToken, refreshExpiry, err := h.tokenService.GenerateRefreshToken(ctx, user)
	if err != nil {
		logger.Error("Failed to generate refresh token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to complete login"})
		return nil, false
	}
	if err := h.userService.StoreRefreshToken(ctx, user.UserID, refreshToken, refreshExpiry); err != nil {
		logger.Error("Failed to store refresh token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to complete login"})
		return nil, false
	}

	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(
		h.cfg.RefreshTokenCookieName,
		user.UserID+":"+refreshToken,
		int(h.cfg.RefreshTokenExpiryDuration.Seconds()),
		h.cfg.RefreshTokenCookiePath,
		"",
		h.cfg.IsProduction, // secure cookie only over TLS
		true,               // HTTP-only
	)

	return &dto.LoginResponse{
		Token:     accessToken,
		ExpiresAt: accessExpiry,
		User:      dto.ToUserResponse(user),
	}, true
}

// splitRefreshCookie splits the "userID:token" cookie value.
func splitRefreshCookie(cookie string) (userID, token string, ok bool) {
	parts := strings.SplitN(cookie, ":", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", false
	}
	return parts[0], parts[1], true
}

// login godoc
// @Summary Log in with username and password
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 401 {object} map[string]string "Invalid credentials"
// @Router /auth/login [post]
func (h *authHandler) login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	user, err := h.userService.GetUserByUsername(c.Request.Context(), req.Username)
	if err != nil || !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		logger.Warn("Login failed", slog.String("username", req.Username))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
		return
	}

	resp, ok := h.issueSession(c, logger, user)
	if !ok {
		return
	}
	logger.Info("User logged in", slog.String("user_id", user.UserID))
	c.JSON(http.StatusOK, resp)
}

// googleExchangeCode godoc
// @Summary Sign in with a Google authorization code
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.GoogleExchangeCodeRequest true "Authorization code"
// @Success 200 {object} dto.LoginResponse
// @Failure 401 {object} map[string]string "Code exchange failed"
// @Router /auth/google/exchange-code [post]
func (h *authHandler) googleExchangeCode(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.GoogleExchangeCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	name, email, err := h.googleOAuth.ExchangeCode(c.Request.Context(), req.Code)
	if err != nil {
		logger.Warn("Google code exchange failed", slog.String("error", err.Error()))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Google sign-in failed"})
		return
	}

	user, err := h.userService.FindOrCreateOAuthUser(c.Request.Context(), name, email)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to resolve Google user")
		return
	}

	resp, ok := h.issueSession(c, logger, user)
	if !ok {
		return
	}
	logger.Info("User logged in via Google", slog.String("user_id", user.UserID))
	c.JSON(http.StatusOK, resp)
}

// refresh godoc
// @Summary Exchange the refresh cookie for a fresh access token
// @Tags auth
// @Produce json
// @Success 200 {object} dto.LoginResponse
// @Failure 401 {object} map[string]string "Missing or invalid refresh token"
// @Router /auth/refresh [post]
func (h *authHandler) refresh(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	cookie, err := c.Cookie(h.cfg.RefreshTokenCookieName)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Refresh token missing"})
		return
	}

	userID, token, ok := splitRefreshCookie(cookie)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Malformed refresh token"})
		return
	}

	user, err := h.userService.ValidateRefreshToken(c.Request.Context(), userID, token)
	if err != nil {
		logger.Warn("Refresh token validation failed", slog.String("user_id", userID))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid refresh token"})
		return
	}

	// Rotate: a refresh token is single-use.
	resp, ok := h.issueSession(c, logger, user)
	if !ok {
		return
	}
	logger.Info("Session refreshed", slog.String("user_id", user.UserID))
	c.JSON(http.StatusOK, resp)
}

// logout godoc
// @Summary Log out and invalidate the refresh token
// @Tags auth
// @Produce json
// @Success 204 "Logged out"
// @Security BearerAuth
// @Router /auth/logout [post]
func (h *authHandler) logout(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := mustUserID(c, logger)
	if !ok {
		return
	}
	if err := h.userService.ClearRefreshToken(c.Request.Context(), userID); err != nil {
		respondServiceError(c, logger, err, "Failed to log out")
		return
	}

	c.SetCookie(h.cfg.RefreshTokenCookieName, "", -1, h.cfg.RefreshTokenCookiePath, "", h.cfg.IsProduction, true)
	c.Status(http.StatusNoContent)
}
