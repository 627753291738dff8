package services

import (
	"context"

	"github.com/mindcare-app/mindcare_backend/internal/core/domain"
	"github.com/mindcare-app/mindcare_backend/internal/dto"
)

// CheckInSvcFacade is the ownership-scoped CRUD surface for both check-in
// kinds. Every operation takes the caller; records owned by someone else are
// reported as not found unless the caller is a superuser.
type CheckInSvcFacade interface {
	ListCheckIns(ctx context.Context, caller domain.Caller) ([]domain.CheckIn, error)
	CreateCheckIn(ctx context.Context, caller domain.Caller, req dto.CreateCheckInRequest) (*domain.CheckIn, error)
	GetCheckIn(ctx context.Context, caller domain.Caller, checkInID string) (*domain.CheckIn, error)
	UpdateCheckIn(ctx context.Context, caller domain.Caller, checkInID string, req dto.UpdateCheckInRequest) (*domain.CheckIn, error)
	DeleteCheckIn(ctx context.Context, caller domain.Caller, checkInID string) error

	ListQuickCheckIns(ctx context.Context, caller domain.Caller) ([]domain.QuickCheckIn, error)
	CreateQuickCheckIn(ctx context.Context, caller domain.Caller, req dto.CreateQuickCheckInRequest) (*domain.QuickCheckIn, error)
	GetQuickCheckIn(ctx context.Context, caller domain.Caller, quickCheckInID string) (*domain.QuickCheckIn, error)
	UpdateQuickCheckIn(ctx context.Context, caller domain.Caller, quickCheckInID string, req dto.UpdateQuickCheckInRequest) (*domain.QuickCheckIn, error)
	DeleteQuickCheckIn(ctx context.Context, caller domain.Caller, quickCheckInID string) error
}
