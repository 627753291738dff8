package repositories

import (
	"context"
	"time"

	"github.com/mindcare-app/mindcare_backend/internal/core/domain"
)

// ApplicationReader defines read operations for practitioner applications.
type ApplicationReader interface {
	FindApplicationByID(ctx context.Context, applicationID string) (*domain.PsychartistApplication, error)

	// FindApplicationByUserID retrieves the one application an account may
	// have; apperrors.ErrNotFound when none exists.
	FindApplicationByUserID(ctx context.Context, userID string) (*domain.PsychartistApplication, error)

	// FindApplications lists applications for the admin surface, newest first,
	// optionally filtered to an exact status. Applicant username/email are
	// joined in.
	FindApplications(ctx context.Context, status *domain.ApplicationStatus) ([]domain.PsychartistApplication, error)
}

// ApplicationWriter defines write operations for practitioner applications.
type ApplicationWriter interface {
	// SaveApplication persists a new application. Returns
	// apperrors.ErrDuplicate when the account already has one.
	SaveApplication(ctx context.Context, app domain.PsychartistApplication) error

	// UpdateApplicationPicture stores the media URL for the applicant's
	// profile picture, and propagates it to an existing profile if any.
	UpdateApplicationPicture(ctx context.Context, userID string, pictureURL string) error
}

// ApplicationReviewer performs the terminal status transitions. Both methods
// run the precondition check (status = pending) and all resulting writes in a
// single transaction so concurrent reviewers cannot both win.
type ApplicationReviewer interface {
	// ApproveApplication marks the application approved, stamps the review
	// fields, and creates or refreshes the linked profile with
	// is_active = is_verified = true. Returns apperrors.ErrNotFound for an
	// unknown id and apperrors.ErrConflict when the application has already
	// been reviewed.
	ApproveApplication(ctx context.Context, applicationID string, reviewerID string, reviewNotes string, reviewedAt time.Time) (*domain.Psychartist, error)

	// RejectApplication marks the application rejected and deactivates an
	// existing profile (is_active = is_verified = false) without deleting it.
	// Same error contract as ApproveApplication.
	RejectApplication(ctx context.Context, applicationID string, reviewerID string, reviewNotes string, reviewedAt time.Time) (*domain.PsychartistApplication, error)
}

// PsychartistReader defines read operations for public practitioner profiles.
type PsychartistReader interface {
	// FindActivePsychartists lists profiles with is_active AND is_verified,
	// newest first.
	FindActivePsychartists(ctx context.Context) ([]domain.Psychartist, error)

	// FindActivePsychartistByID retrieves one active, verified profile;
	// inactive or unverified profiles are reported as not found.
	FindActivePsychartistByID(ctx context.Context, psychartistID string) (*domain.Psychartist, error)

	// FindPsychartistByUserID retrieves the profile linked to an account in
	// any state, for the owner's own profile view.
	FindPsychartistByUserID(ctx context.Context, userID string) (*domain.Psychartist, error)
}

// PsychartistRepositoryFacade combines application and profile repositories.
type PsychartistRepositoryFacade interface {
	ApplicationReader
	ApplicationWriter
	ApplicationReviewer
	PsychartistReader
}
