package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mindcare-app/mindcare_backend/internal/apperrors"
	"github.com/mindcare-app/mindcare_backend/internal/core/domain"
	portsrepo "github.com/mindcare-app/mindcare_backend/internal/core/ports/repositories"
	portssvc "github.com/mindcare-app/mindcare_backend/internal/core/ports/services"
	"github.com/mindcare-app/mindcare_backend/internal/dto"
	"github.com/mindcare-app/mindcare_backend/internal/middleware"
	"github.com/mindcare-app/mindcare_backend/internal/platform/cache"
	"github.com/mindcare-app/mindcare_backend/internal/platform/storage"
)

const (
	directoryCacheKey       = "psychartists:directory"
	directoryEntryKeyPrefix = "psychartists:profile:"
)

type psychartistService struct {
	psychartistRepo portsrepo.PsychartistRepositoryFacade
	mediaStore      storage.MediaStore
	cache           *cache.Cache
	directoryTTL    time.Duration
}

// NewPsychartistService creates the practitioner service. mediaStore may be
// nil when uploads are not configured; cache may be nil to disable caching.
func NewPsychartistService(psychartistRepo portsrepo.PsychartistRepositoryFacade, mediaStore storage.MediaStore, c *cache.Cache, directoryTTL time.Duration) portssvc.PsychartistSvcFacade {
	return &psychartistService{
		psychartistRepo: psychartistRepo,
		mediaStore:      mediaStore,
		cache:           c,
		directoryTTL:    directoryTTL,
	}
}

var _ portssvc.PsychartistSvcFacade = (*psychartistService)(nil)

func (s *psychartistService) SubmitApplication(ctx context.Context, caller domain.Caller, req dto.ApplyRequest) (*domain.PsychartistApplication, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	app := domain.PsychartistApplication{
		ApplicationID:     uuid.NewString(),
		UserID:            caller.UserID,
		FullName:          req.FullName,
		LicenseNumber:     req.LicenseNumber,
		ContactEmail:      strings.ToLower(req.ContactEmail),
		PhoneNumber:       req.PhoneNumber,
		Specialization:    req.Specialization,
		YearsOfExperience: req.YearsOfExperience,
		Education:         req.Education,
		Certifications:    req.Certifications,
		Approach:          req.Approach,
		Languages:         req.Languages,
		AvailableHours:    req.AvailableHours,
		SessionRate:       req.SessionRate,
		Bio:               req.Bio,
		Status:            domain.ApplicationPending,
		AppliedAt:         time.Now(),
	}

	if err := s.psychartistRepo.SaveApplication(ctx, app); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to submit application: %w", err)
	}

	logger.Info("Practitioner application submitted", slog.String("application_id", app.ApplicationID))
	return &app, nil
}

func (s *psychartistService) GetOwnApplication(ctx context.Context, caller domain.Caller) (*domain.PsychartistApplication, error) {
	app, err := s.psychartistRepo.FindApplicationByUserID(ctx, caller.UserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get own application: %w", err)
	}
	return app, nil
}

func (s *psychartistService) AttachProfilePicture(ctx context.Context, caller domain.Caller, filename string, contentType string, size int64, r io.Reader) (string, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if s.mediaStore == nil {
		return "", fmt.Errorf("media storage is not configured: %w", apperrors.ErrConflict)
	}
	if !strings.HasPrefix(contentType, "image/") {
		return "", fmt.Errorf("profile picture must be an image: %w", apperrors.ErrValidation)
	}

	// The caller must have an application to attach a picture to.
	if _, err := s.psychartistRepo.FindApplicationByUserID(ctx, caller.UserID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return "", apperrors.ErrNotFound
		}
		return "", fmt.Errorf("failed to look up application for picture upload: %w", err)
	}

	key := "psychartist_profiles/" + uuid.NewString() + strings.ToLower(path.Ext(filename))
	url, err := s.mediaStore.Put(ctx, key, contentType, size, r)
	if err != nil {
		return "", fmt.Errorf("failed to store profile picture: %w", err)
	}

	if err := s.psychartistRepo.UpdateApplicationPicture(ctx, caller.UserID, url); err != nil {
		return "", fmt.Errorf("failed to record profile picture: %w", err)
	}

	s.invalidateCache(ctx, s.cachedProfileIDForUser(ctx, caller.UserID)...)
	logger.Info("Profile picture attached", slog.String("user_id", caller.UserID))
	return url, nil
}

func (s *psychartistService) ListApplications(ctx context.Context, status *domain.ApplicationStatus) ([]domain.PsychartistApplication, error) {
	apps, err := s.psychartistRepo.FindApplications(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}
	return apps, nil
}

func (s *psychartistService) ApproveApplication(ctx context.Context, reviewer domain.Caller, applicationID string, reviewNotes string) (*domain.Psychartist, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	profile, err := s.psychartistRepo.ApproveApplication(ctx, applicationID, reviewer.UserID, reviewNotes, time.Now())
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) || errors.Is(err, apperrors.ErrConflict) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to approve application: %w", err)
	}

	s.invalidateCache(ctx, profile.PsychartistID)
	logger.Info("Application approved",
		slog.String("application_id", applicationID),
		slog.String("psychartist_id", profile.PsychartistID),
		slog.String("reviewed_by", reviewer.UserID))
	return profile, nil
}

func (s *psychartistService) RejectApplication(ctx context.Context, reviewer domain.Caller, applicationID string, reviewNotes string) (*domain.PsychartistApplication, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	app, err := s.psychartistRepo.RejectApplication(ctx, applicationID, reviewer.UserID, reviewNotes, time.Now())
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) || errors.Is(err, apperrors.ErrConflict) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to reject application: %w", err)
	}

	s.invalidateCache(ctx, s.cachedProfileIDForUser(ctx, app.UserID)...)
	logger.Info("Application rejected",
		slog.String("application_id", applicationID),
		slog.String("reviewed_by", reviewer.UserID))
	return app, nil
}

func (s *psychartistService) ListPublicProfiles(ctx context.Context) ([]domain.Psychartist, error) {
	var cached []domain.Psychartist
	if err := s.cache.GetJSON(ctx, directoryCacheKey, &cached); err == nil {
		return cached, nil
	} else if !errors.Is(err, cache.ErrCacheMiss) {
		middleware.GetLoggerFromCtx(ctx).Warn("Directory cache read failed", slog.String("error", err.Error()))
	}

	profiles, err := s.psychartistRepo.FindActivePsychartists(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list public profiles: %w", err)
	}

	if err := s.cache.SetJSON(ctx, directoryCacheKey, profiles, s.directoryTTL); err != nil {
		middleware.GetLoggerFromCtx(ctx).Warn("Directory cache write failed", slog.String("error", err.Error()))
	}
	return profiles, nil
}

func (s *psychartistService) GetPublicProfile(ctx context.Context, psychartistID string) (*domain.Psychartist, error) {
	key := directoryEntryKeyPrefix + psychartistID
	var cached domain.Psychartist
	if err := s.cache.GetJSON(ctx, key, &cached); err == nil {
		return &cached, nil
	} else if !errors.Is(err, cache.ErrCacheMiss) {
		middleware.GetLoggerFromCtx(ctx).Warn("Profile cache read failed", slog.String("error", err.Error()))
	}

	profile, err := s.psychartistRepo.FindActivePsychartistByID(ctx, psychartistID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get public profile: %w", err)
	}

	if err := s.cache.SetJSON(ctx, key, profile, s.directoryTTL); err != nil {
		middleware.GetLoggerFromCtx(ctx).Warn("Profile cache write failed", slog.String("error", err.Error()))
	}
	return profile, nil
}

func (s *psychartistService) GetApplicationForUser(ctx context.Context, userID string) (*domain.PsychartistApplication, error) {
	app, err := s.psychartistRepo.FindApplicationByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get application for user: %w", err)
	}
	return app, nil
}

func (s *psychartistService) GetProfileForUser(ctx context.Context, userID string) (*domain.Psychartist, error) {
	profile, err := s.psychartistRepo.FindPsychartistByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get profile for user: %w", err)
	}
	return profile, nil
}

// invalidateCache drops the cached public directory together with the
// per-profile entries for the given ids. Every review transition and picture
// change goes through here so neither surface can serve a stale profile.
func (s *psychartistService) invalidateCache(ctx context.Context, psychartistIDs ...string) {
	keys := make([]string, 0, len(psychartistIDs)+1)
	keys = append(keys, directoryCacheKey)
	for _, id := range psychartistIDs {
		keys = append(keys, directoryEntryKeyPrefix+id)
	}
	if err := s.cache.Delete(ctx, keys...); err != nil {
		middleware.GetLoggerFromCtx(ctx).Warn("Cache invalidation failed", slog.String("error", err.Error()))
	}
}

// cachedProfileIDForUser resolves the profile id linked to an account so its
// cached public entry can be dropped. Empty when the account has no profile or
// caching is disabled.
func (s *psychartistService) cachedProfileIDForUser(ctx context.Context, userID string) []string {
	if s.cache == nil {
		return nil
	}
	profile, err := s.psychartistRepo.FindPsychartistByUserID(ctx, userID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			middleware.GetLoggerFromCtx(ctx).Warn("Profile lookup for cache invalidation failed", slog.String("error", err.Error()))
		}
		return nil
	}
	return []string{profile.PsychartistID}
}
