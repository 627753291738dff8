package repositories

import (
	"context"
	"time"

	"github.com/mindcare-app/mindcare_backend/internal/core/domain"
)

// UserReader defines read operations for account data
type UserReader interface {
	// FindUserByID retrieves a specific user by their ID.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByUsername retrieves a user by their unique username.
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)

	// FindUserByEmail retrieves a user by their unique email.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// FindUserByProviderDetails retrieves a user by OAuth provider and provider user ID.
	FindUserByProviderDetails(ctx context.Context, authProvider string, providerUserID string) (*domain.User, error)
}

// UserWriter defines write operations for account data
type UserWriter interface {
	// SaveUser persists a new user. Returns apperrors.ErrDuplicate when the
	// username or email is already taken.
	SaveUser(ctx context.Context, user domain.User) error

	// UpdateRefreshToken stores the hash and expiry of a user's refresh token.
	UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash string, refreshTokenExpiryTime time.Time) error

	// ClearRefreshToken removes the stored refresh token for a user.
	ClearRefreshToken(ctx context.Context, userID string) error
}

// UserRepositoryFacade combines all user-related repository interfaces
type UserRepositoryFacade interface {
	UserReader
	UserWriter
}
