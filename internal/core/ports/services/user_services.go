package services

import (
	"context"
	"time"

	"github.com/mindcare-app/mindcare_backend/internal/core/domain"
	"github.com/mindcare-app/mindcare_backend/internal/dto"
)

// UserReaderSvc defines read operations for account data
type UserReaderSvc interface {
	// GetUserByID retrieves a user by ID.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// GetUserByUsername retrieves a user by username.
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)
}

// UserWriterSvc defines write operations for account data
type UserWriterSvc interface {
	// RegisterUser creates a new local account. Password and confirmation
	// must match; username and email must be unused.
	RegisterUser(ctx context.Context, req dto.RegisterRequest) (*domain.User, error)

	// CreateOAuthUser finds or creates an account for an external identity.
	CreateOAuthUser(ctx context.Context, name, email string, authProvider string, providerUserID string) (*domain.User, error)

	// UpdateRefreshToken stores the refresh token hash and expiry for a user.
	UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash string, refreshTokenExpiryTime time.Time) error

	// ClearRefreshToken clears the refresh token for a user.
	ClearRefreshToken(ctx context.Context, userID string) error
}

// UserAuthSvc defines operations for credential authentication
type UserAuthSvc interface {
	// AuthenticateUser validates username/password and the active flag.
	// Returns apperrors.ErrUnauthorized for bad credentials or an inactive
	// account.
	AuthenticateUser(ctx context.Context, username, password string) (*domain.User, error)
}

// UserSvcFacade combines all user-related service interfaces
type UserSvcFacade interface {
	UserReaderSvc
	UserWriterSvc
	UserAuthSvc
}
