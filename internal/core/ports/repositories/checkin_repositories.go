package repositories

import (
	"context"

	"github.com/mindcare-app/mindcare_backend/internal/core/domain"
)

// CheckInReader defines read operations for mood check-ins.
type CheckInReader interface {
	// FindCheckInByID retrieves a check-in regardless of owner; ownership is
	// enforced by the service layer.
	FindCheckInByID(ctx context.Context, checkInID string) (*domain.CheckIn, error)

	// FindCheckInsByOwner retrieves all check-ins for an account, newest first.
	FindCheckInsByOwner(ctx context.Context, userID string) ([]domain.CheckIn, error)
}

// CheckInWriter defines write operations for mood check-ins.
type CheckInWriter interface {
	SaveCheckIn(ctx context.Context, checkIn domain.CheckIn) error
	UpdateCheckIn(ctx context.Context, checkIn domain.CheckIn) error
	DeleteCheckIn(ctx context.Context, checkInID string) error
}

// QuickCheckInReader defines read operations for quick check-ins.
type QuickCheckInReader interface {
	FindQuickCheckInByID(ctx context.Context, quickCheckInID string) (*domain.QuickCheckIn, error)
	FindQuickCheckInsByOwner(ctx context.Context, userID string) ([]domain.QuickCheckIn, error)
}

// QuickCheckInWriter defines write operations for quick check-ins.
type QuickCheckInWriter interface {
	SaveQuickCheckIn(ctx context.Context, quickCheckIn domain.QuickCheckIn) error
	UpdateQuickCheckIn(ctx context.Context, quickCheckIn domain.QuickCheckIn) error
	DeleteQuickCheckIn(ctx context.Context, quickCheckInID string) error
}

// CheckInRepositoryFacade combines both check-in kinds behind one repository.
type CheckInRepositoryFacade interface {
	CheckInReader
	CheckInWriter
	QuickCheckInReader
	QuickCheckInWriter
}
