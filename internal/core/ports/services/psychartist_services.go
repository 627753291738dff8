package services

import (
	"context"
	"io"

	"github.com/mindcare-app/mindcare_backend/internal/core/domain"
	"github.com/mindcare-app/mindcare_backend/internal/dto"
)

// PsychartistSvcFacade covers the application workflow, the admin review
// surface, and public discovery.
type PsychartistSvcFacade interface {
	// SubmitApplication creates the caller's one-time application in pending
	// state. Returns apperrors.ErrDuplicate when one already exists; the
	// existing application is left untouched.
	SubmitApplication(ctx context.Context, caller domain.Caller, req dto.ApplyRequest) (*domain.PsychartistApplication, error)

	// GetOwnApplication retrieves the caller's application, or
	// apperrors.ErrNotFound when none exists.
	GetOwnApplication(ctx context.Context, caller domain.Caller) (*domain.PsychartistApplication, error)

	// AttachProfilePicture uploads the picture to the media store and records
	// its URL on the caller's application (and profile, when one exists).
	// A media-store outage fails only the picture, never the application.
	AttachProfilePicture(ctx context.Context, caller domain.Caller, filename string, contentType string, size int64, r io.Reader) (string, error)

	// ListApplications is the admin listing with an optional exact status filter.
	ListApplications(ctx context.Context, status *domain.ApplicationStatus) ([]domain.PsychartistApplication, error)

	// ApproveApplication transitions pending → approved and materializes or
	// refreshes the public profile with is_active = is_verified = true.
	ApproveApplication(ctx context.Context, reviewer domain.Caller, applicationID string, reviewNotes string) (*domain.Psychartist, error)

	// RejectApplication transitions pending → rejected and deactivates an
	// existing profile without deleting it.
	RejectApplication(ctx context.Context, reviewer domain.Caller, applicationID string, reviewNotes string) (*domain.PsychartistApplication, error)

	// ListPublicProfiles returns active, verified profiles only.
	ListPublicProfiles(ctx context.Context) ([]domain.Psychartist, error)

	// GetPublicProfile returns one active, verified profile by id.
	GetPublicProfile(ctx context.Context, psychartistID string) (*domain.Psychartist, error)

	// GetApplicationForUser fetches the application linked to an account, nil
	// (not an error) when absent. Used by the profile composition view.
	GetApplicationForUser(ctx context.Context, userID string) (*domain.PsychartistApplication, error)

	// GetProfileForUser fetches the profile linked to an account in any state,
	// nil (not an error) when absent.
	GetProfileForUser(ctx context.Context, userID string) (*domain.Psychartist, error)
}
