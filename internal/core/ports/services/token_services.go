package services

import (
	"context"
	"time"

	"golang.org/x/oauth2"
	"google.golang.org/api/idtoken"

	"github.com/mindcare-app/mindcare_backend/internal/core/domain"
)

// TokenSvcFacade issues and validates the application's own tokens.
type TokenSvcFacade interface {
	// GenerateAccessToken creates a JWT access token for the user.
	GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error)

	// GenerateRefreshToken creates an opaque refresh token and its expiry.
	GenerateRefreshToken(ctx context.Context, user *domain.User) (string, time.Time, error)

	// ValidateRefreshToken checks a raw refresh token against the stored hash
	// for the user and returns the user when it matches and is unexpired.
	ValidateRefreshToken(ctx context.Context, userID string, refreshToken string) (*domain.User, error)
}

// GoogleOAuthSvcFacade wraps the Google side of the sign-in code exchange.
type GoogleOAuthSvcFacade interface {
	// ExchangeCodeForToken exchanges an OAuth authorization code for tokens.
	ExchangeCodeForToken(ctx context.Context, code string) (*oauth2.Token, error)

	// ValidateGoogleIDToken validates an ID token and returns its payload.
	ValidateGoogleIDToken(ctx context.Context, idTokenString string) (*idtoken.Payload, error)
}
