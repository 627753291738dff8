package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mindcare-app/mindcare_backend/internal/apperrors"
	"github.com/mindcare-app/mindcare_backend/internal/core/domain"
	portsrepo "github.com/mindcare-app/mindcare_backend/internal/core/ports/repositories"
	portssvc "github.com/mindcare-app/mindcare_backend/internal/core/ports/services"
	"github.com/mindcare-app/mindcare_backend/internal/dto"
	"github.com/mindcare-app/mindcare_backend/internal/middleware"
	"github.com/mindcare-app/mindcare_backend/internal/utils"
)

type userService struct {
	userRepo portsrepo.UserRepositoryFacade
}

// NewUserService creates the account service.
func NewUserService(userRepo portsrepo.UserRepositoryFacade) portssvc.UserSvcFacade {
	return &userService{userRepo: userRepo}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user by ID: %w", err)
	}
	return user, nil
}

func (s *userService) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user by username: %w", err)
	}
	return user, nil
}

func (s *userService) RegisterUser(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.Password != req.PasswordConfirm {
		return nil, fmt.Errorf("passwords do not match: %w", apperrors.ErrValidation)
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := domain.User{
		UserID:       uuid.NewString(),
		Username:     req.Username,
		Email:        strings.ToLower(req.Email),
		PasswordHash: &hash,
		AuthProvider: domain.ProviderLocal,
		IsActive:     true,
		JoinedAt:     time.Now(),
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	logger.Info("User registered", slog.String("user_id", user.UserID), slog.String("username", user.Username))
	return &user, nil
}

func (s *userService) CreateOAuthUser(ctx context.Context, name, email string, authProvider string, providerUserID string) (*domain.User, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	email = strings.ToLower(email)

	user, err := s.userRepo.FindUserByProviderDetails(ctx, authProvider, providerUserID)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up user by provider details: %w", err)
	}

	// An existing local account with the same email claims the identity.
	user, err = s.userRepo.FindUserByEmail(ctx, email)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up user by email: %w", err)
	}

	username := deriveUsername(name, email)
	newUser := domain.User{
		UserID:         uuid.NewString(),
		Username:       username,
		Email:          email,
		AuthProvider:   domain.AuthProvider(authProvider),
		ProviderUserID: &providerUserID,
		IsActive:       true,
		JoinedAt:       time.Now(),
	}

	if err := s.userRepo.SaveUser(ctx, newUser); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			// Username collision: retry once with a random suffix.
			newUser.Username = fmt.Sprintf("%s_%s", username, uuid.NewString()[:8])
			if retryErr := s.userRepo.SaveUser(ctx, newUser); retryErr != nil {
				return nil, fmt.Errorf("failed to create oauth user: %w", retryErr)
			}
		} else {
			return nil, fmt.Errorf("failed to create oauth user: %w", err)
		}
	}

	logger.Info("OAuth user created", slog.String("user_id", newUser.UserID), slog.String("provider", authProvider))
	return &newUser, nil
}

// deriveUsername builds a username from the display name, falling back to the
// email local part.
func deriveUsername(name, email string) string {
	candidate := strings.ReplaceAll(strings.TrimSpace(name), " ", "_")
	if candidate == "" {
		candidate, _, _ = strings.Cut(email, "@")
	}
	if len(candidate) > 150 {
		candidate = candidate[:150]
	}
	return candidate
}

func (s *userService) UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash string, refreshTokenExpiryTime time.Time) error {
	if err := s.userRepo.UpdateRefreshToken(ctx, userID, refreshTokenHash, refreshTokenExpiryTime); err != nil {
		return fmt.Errorf("failed to update refresh token: %w", err)
	}
	return nil
}

func (s *userService) ClearRefreshToken(ctx context.Context, userID string) error {
	if err := s.userRepo.ClearRefreshToken(ctx, userID); err != nil {
		return fmt.Errorf("failed to clear refresh token: %w", err)
	}
	return nil
}

func (s *userService) AuthenticateUser(ctx context.Context, username, password string) (*domain.User, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	user, err := s.userRepo.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to look up user for authentication: %w", err)
	}

	if user.PasswordHash == nil || !utils.CheckPasswordHash(password, *user.PasswordHash) {
		logger.Warn("Failed login attempt", slog.String("username", username))
		return nil, apperrors.ErrUnauthorized
	}
	if !user.IsActive {
		logger.Warn("Login attempt for deactivated account", slog.String("user_id", user.UserID))
		return nil, apperrors.ErrUnauthorized
	}

	return user, nil
}
