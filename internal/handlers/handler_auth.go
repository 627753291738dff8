package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/mindcare-app/mindcare_backend/internal/apperrors"
	"github.com/mindcare-app/mindcare_backend/internal/core/domain"
	portssvc "github.com/mindcare-app/mindcare_backend/internal/core/ports/services"
	"github.com/mindcare-app/mindcare_backend/internal/dto"
	"github.com/mindcare-app/mindcare_backend/internal/middleware"
	"github.com/mindcare-app/mindcare_backend/internal/platform/config"
	"github.com/mindcare-app/mindcare_backend/internal/utils"
)

// AuthHandler handles authentication related requests.
type AuthHandler struct {
	userService        portssvc.UserSvcFacade
	tokenService       portssvc.TokenSvcFacade
	psychartistService portssvc.PsychartistSvcFacade
	cfg                *config.Config
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(cfg *config.Config, services *portssvc.ServiceContainer) *AuthHandler {
	return &AuthHandler{
		userService:        services.User,
		tokenService:       services.Token,
		psychartistService: services.Psychartist,
		cfg:                cfg,
	}
}

// registerAuthRoutes sets up the public authentication routes.
func registerAuthRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	h := NewAuthHandler(cfg, services)

	// 5 requests per minute per IP on credential endpoints
	rate, _ := limiter.NewRateFromFormatted("5-M")
	ipLimiter := limiter.New(memory.NewStore(), rate)

	auth := r.Group("/api/v1/auth")
	{
		auth.POST("/register", middleware.RateLimit(ipLimiter), h.Register)
		auth.POST("/login", middleware.RateLimit(ipLimiter), h.Login)
		auth.POST("/refresh", h.Refresh)
		auth.POST("/logout", h.Logout)
	}

	registerGoogleOAuthRoutes(auth, cfg, services)
}

// registerProfileRoute attaches the authenticated profile view to the
// protected v1 group.
func registerProfileRoute(rg *gin.RouterGroup, cfg *config.Config, services *portssvc.ServiceContainer) {
	h := NewAuthHandler(cfg, services)
	rg.GET("/auth/profile", h.Profile)
}

// The refresh cookie carries "<userID>.<token>"; the token itself is hex, so
// the first dot is an unambiguous separator.
func refreshCookieValue(userID, token string) string {
	return userID + "." + token
}

func splitRefreshCookie(value string) (userID, token string, ok bool) {
	userID, token, ok = strings.Cut(value, ".")
	return userID, token, ok && userID != "" && token != ""
}

func (h *AuthHandler) setRefreshCookie(c *gin.Context, userID, token string, expiry time.Time) {
	maxAge := int(time.Until(expiry).Seconds())
	c.SetCookie(h.cfg.RefreshTokenCookieName, refreshCookieValue(userID, token), maxAge, h.cfg.RefreshTokenCookiePath, "", h.cfg.IsProduction, true)
}

func (h *AuthHandler) clearRefreshCookie(c *gin.Context) {
	c.SetCookie(h.cfg.RefreshTokenCookieName, "", -1, h.cfg.RefreshTokenCookiePath, "", h.cfg.IsProduction, true)
}

// issueTokens creates the access token, rotates the refresh token, and sets
// the refresh cookie.
func (h *AuthHandler) issueTokens(c *gin.Context, user *domain.User) (string, error) {
	ctx := c.Request.Context()

	accessToken, _, err := h.tokenService.GenerateAccessToken(ctx, user)
	if err != nil {
		return "", err
	}

	refreshToken, refreshExpiry, err := h.tokenService.GenerateRefreshToken(ctx, user)
	if err != nil {
		return "", err
	}
	if err := h.userService.UpdateRefreshToken(ctx, user.UserID, utils.HashRefreshToken(refreshToken), refreshExpiry); err != nil {
		return "", err
	}

	h.setRefreshCookie(c, user.UserID, refreshToken, refreshExpiry)
	return accessToken, nil
}

// Register godoc
// @Summary Register new account
// @Description Creates a new local account.
// @Tags auth
// @Accept json
// @Produce json
// @Param register body dto.RegisterRequest true "Registration payload"
// @Success 201 {object} dto.UserResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	user, err := h.userService.RegisterUser(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) || errors.Is(err, apperrors.ErrDuplicate) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to register user", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to register user"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

// Login godoc
// @Summary Credential login
// @Description Authenticates a user and returns a JWT access token. A refresh token is set as an HTTPOnly cookie.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	user, err := h.userService.AuthenticateUser(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, apperrors.ErrUnauthorized) {
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid username or password"})
			return
		}
		logger.Error("Login failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to log in"})
		return
	}

	accessToken, err := h.issueTokens(c, user)
	if err != nil {
		logger.Error("Failed to issue tokens", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{Token: accessToken, User: dto.ToUserResponse(user)})
}

// Refresh godoc
// @Summary Refresh access token
// @Description Exchanges the refresh token cookie for a new access token. The refresh token is rotated.
// @Tags auth
// @Produce json
// @Success 200 {object} dto.RefreshTokenResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	cookie, err := c.Cookie(h.cfg.RefreshTokenCookieName)
	if err != nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Refresh token missing"})
		return
	}
	userID, rawToken, ok := splitRefreshCookie(cookie)
	if !ok {
		h.clearRefreshCookie(c)
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid refresh token"})
		return
	}

	user, err := h.tokenService.ValidateRefreshToken(c.Request.Context(), userID, rawToken)
	if err != nil {
		if errors.Is(err, apperrors.ErrUnauthorized) {
			h.clearRefreshCookie(c)
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid refresh token"})
			return
		}
		logger.Error("Refresh token validation failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to refresh token"})
		return
	}

	accessToken, err := h.issueTokens(c, user)
	if err != nil {
		logger.Error("Failed to rotate tokens", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to refresh token"})
		return
	}

	c.JSON(http.StatusOK, dto.RefreshTokenResponse{Token: accessToken})
}

// Logout godoc
// @Summary Log out
// @Description Clears the stored refresh token and the cookie.
// @Tags auth
// @Produce json
// @Success 200 {object} MessageResponse
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if cookie, err := c.Cookie(h.cfg.RefreshTokenCookieName); err == nil {
		if userID, _, ok := splitRefreshCookie(cookie); ok {
			if err := h.userService.ClearRefreshToken(c.Request.Context(), userID); err != nil {
				logger.Warn("Failed to clear stored refresh token", slog.String("error", err.Error()))
			}
		}
	}

	h.clearRefreshCookie(c)
	c.JSON(http.StatusOK, MessageResponse{Message: "Logged out"})
}

// Profile godoc
// @Summary Own profile
// @Description Returns the authenticated account with its practitioner application status and profile summary, when present.
// @Tags auth
// @Produce json
// @Success 200 {object} dto.ProfileResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /auth/profile [get]
func (h *AuthHandler) Profile(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	caller, ok := requireCaller(c)
	if !ok {
		return
	}

	user, err := h.userService.GetUserByID(c.Request.Context(), caller.UserID)
	if err != nil {
		handleServiceError(c, err, "User not found")
		return
	}

	// The practitioner blocks are best-effort: absence is normal and a lookup
	// failure only degrades the view.
	app, err := h.psychartistService.GetApplicationForUser(c.Request.Context(), caller.UserID)
	if err != nil {
		logger.Warn("Failed to load application for profile view", slog.String("error", err.Error()))
		app = nil
	}
	profile, err := h.psychartistService.GetProfileForUser(c.Request.Context(), caller.UserID)
	if err != nil {
		logger.Warn("Failed to load practitioner profile for profile view", slog.String("error", err.Error()))
		profile = nil
	}

	c.JSON(http.StatusOK, dto.ToProfileResponse(user, app, profile))
}
