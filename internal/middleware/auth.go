package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/mindcare-app/mindcare_backend/internal/core/domain"
	portssvc "github.com/mindcare-app/mindcare_backend/internal/core/ports/services"
	"github.com/mindcare-app/mindcare_backend/internal/utils"
)

// AuthMiddleware creates a Gin middleware handler that validates JWT bearer
// tokens and resolves the caller's account. Tokens for deactivated accounts
// are rejected, and the superuser flag is loaded fresh from the store so
// privilege changes take effect immediately.
func AuthMiddleware(jwtSecret string, users portssvc.UserReaderSvc) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			logger.Warn("Authorization header missing")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			logger.Warn("Authorization header format invalid")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header format must be Bearer {token}"})
			return
		}

		claims, err := utils.ParseAndValidateJWT(parts[1], jwtSecret)
		if err != nil {
			logger.Warn("Invalid token", slog.String("error", err.Error()))
			msg := "Invalid token"
			if errors.Is(err, jwt.ErrTokenExpired) {
				msg = "Token has expired"
			} else if errors.Is(err, jwt.ErrTokenNotValidYet) {
				msg = "Token not valid yet"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msg})
			return
		}

		userID := claims.Subject
		if userID == "" {
			logger.Error("User ID (subject) missing from valid token")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
			return
		}

		user, err := users.GetUserByID(c.Request.Context(), userID)
		if err != nil {
			logger.Warn("Token subject does not resolve to a user", slog.String("user_id", userID))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}
		if !user.IsActive {
			logger.Warn("Token for deactivated account rejected", slog.String("user_id", userID))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Account is disabled"})
			return
		}

		caller := domain.Caller{UserID: user.UserID, IsSuperuser: user.IsSuperuser}

		ctxWithCaller := context.WithValue(c.Request.Context(), callerKey, caller)
		enrichedLogger := logger.With(slog.String("user_id", userID))
		ctxWithLoggerAndCaller := context.WithValue(ctxWithCaller, loggerCtxKey, enrichedLogger)
		c.Request = c.Request.WithContext(ctxWithLoggerAndCaller)

		c.Next()
	}
}

// RequireSuperuser gates admin-only routes. Must run after AuthMiddleware.
func RequireSuperuser() gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())
		caller, ok := GetCallerFromContext(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		if !caller.IsSuperuser {
			logger.Warn("Non-superuser denied admin route", slog.String("user_id", caller.UserID))
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin privileges required"})
			return
		}
		c.Next()
	}
}
