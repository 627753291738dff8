package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/mindcare-app/mindcare_backend/internal/apperrors"
	"github.com/mindcare-app/mindcare_backend/internal/core/domain"
	portsrepo "github.com/mindcare-app/mindcare_backend/internal/core/ports/repositories"
	portssvc "github.com/mindcare-app/mindcare_backend/internal/core/ports/services"
	"github.com/mindcare-app/mindcare_backend/internal/dto"
	"github.com/mindcare-app/mindcare_backend/internal/middleware"
)

type checkInService struct {
	checkInRepo portsrepo.CheckInRepositoryFacade
}

// NewCheckInService creates the check-in service.
func NewCheckInService(checkInRepo portsrepo.CheckInRepositoryFacade) portssvc.CheckInSvcFacade {
	return &checkInService{checkInRepo: checkInRepo}
}

var _ portssvc.CheckInSvcFacade = (*checkInService)(nil)

func (s *checkInService) ListCheckIns(ctx context.Context, caller domain.Caller) ([]domain.CheckIn, error) {
	checkIns, err := s.checkInRepo.FindCheckInsByOwner(ctx, caller.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list check-ins: %w", err)
	}
	return checkIns, nil
}

func (s *checkInService) CreateCheckIn(ctx context.Context, caller domain.Caller, req dto.CreateCheckInRequest) (*domain.CheckIn, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	checkIn := domain.CheckIn{
		CheckInID: uuid.NewString(),
		UserID:    caller.UserID, // ownership is always the caller's
		Mood:      req.Mood,
		Reason:    req.Reason,
		Notes:     req.Notes,
		Color:     req.Color,
		CreatedAt: time.Now(),
	}

	if err := s.checkInRepo.SaveCheckIn(ctx, checkIn); err != nil {
		return nil, fmt.Errorf("failed to create check-in: %w", err)
	}

	logger.Info("Check-in created", slog.String("checkin_id", checkIn.CheckInID))
	return &checkIn, nil
}

// getOwnedCheckIn fetches a check-in and hides it behind ErrNotFound when the
// caller is not allowed to see it.
func (s *checkInService) getOwnedCheckIn(ctx context.Context, caller domain.Caller, checkInID string) (*domain.CheckIn, error) {
	checkIn, err := s.checkInRepo.FindCheckInByID(ctx, checkInID)
	if err != nil {
		return nil, err
	}
	if !caller.CanActOn(checkIn.UserID) {
		return nil, apperrors.ErrNotFound
	}
	return checkIn, nil
}

func (s *checkInService) GetCheckIn(ctx context.Context, caller domain.Caller, checkInID string) (*domain.CheckIn, error) {
	return s.getOwnedCheckIn(ctx, caller, checkInID)
}

func (s *checkInService) UpdateCheckIn(ctx context.Context, caller domain.Caller, checkInID string, req dto.UpdateCheckInRequest) (*domain.CheckIn, error) {
	checkIn, err := s.getOwnedCheckIn(ctx, caller, checkInID)
	if err != nil {
		return nil, err
	}

	if req.Mood != nil {
		checkIn.Mood = *req.Mood
	}
	if req.Reason != nil {
		checkIn.Reason = *req.Reason
	}
	if req.Notes != nil {
		checkIn.Notes = req.Notes
	}
	if req.Color != nil {
		checkIn.Color = *req.Color
	}

	if err := s.checkInRepo.UpdateCheckIn(ctx, *checkIn); err != nil {
		return nil, fmt.Errorf("failed to update check-in: %w", err)
	}
	return checkIn, nil
}

func (s *checkInService) DeleteCheckIn(ctx context.Context, caller domain.Caller, checkInID string) error {
	if _, err := s.getOwnedCheckIn(ctx, caller, checkInID); err != nil {
		return err
	}
	if err := s.checkInRepo.DeleteCheckIn(ctx, checkInID); err != nil {
		return fmt.Errorf("failed to delete check-in: %w", err)
	}
	return nil
}

func (s *checkInService) ListQuickCheckIns(ctx context.Context, caller domain.Caller) ([]domain.QuickCheckIn, error) {
	quickCheckIns, err := s.checkInRepo.FindQuickCheckInsByOwner(ctx, caller.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list quick check-ins: %w", err)
	}
	return quickCheckIns, nil
}

func (s *checkInService) CreateQuickCheckIn(ctx context.Context, caller domain.Caller, req dto.CreateQuickCheckInRequest) (*domain.QuickCheckIn, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	kind := domain.CheckInKind(req.Kind)
	if kind == "" {
		kind = domain.CheckInKindQuick
	}

	quickCheckIn := domain.QuickCheckIn{
		QuickCheckInID: uuid.NewString(),
		UserID:         caller.UserID,
		Mood:           req.Mood,
		Intensity:      req.Intensity,
		Note:           req.Note,
		Kind:           kind,
		CreatedAt:      time.Now(),
	}

	if err := s.checkInRepo.SaveQuickCheckIn(ctx, quickCheckIn); err != nil {
		return nil, fmt.Errorf("failed to create quick check-in: %w", err)
	}

	logger.Info("Quick check-in created", slog.String("quick_checkin_id", quickCheckIn.QuickCheckInID))
	return &quickCheckIn, nil
}

func (s *checkInService) getOwnedQuickCheckIn(ctx context.Context, caller domain.Caller, quickCheckInID string) (*domain.QuickCheckIn, error) {
	quickCheckIn, err := s.checkInRepo.FindQuickCheckInByID(ctx, quickCheckInID)
	if err != nil {
		return nil, err
	}
	if !caller.CanActOn(quickCheckIn.UserID) {
		return nil, apperrors.ErrNotFound
	}
	return quickCheckIn, nil
}

func (s *checkInService) GetQuickCheckIn(ctx context.Context, caller domain.Caller, quickCheckInID string) (*domain.QuickCheckIn, error) {
	return s.getOwnedQuickCheckIn(ctx, caller, quickCheckInID)
}

func (s *checkInService) UpdateQuickCheckIn(ctx context.Context, caller domain.Caller, quickCheckInID string, req dto.UpdateQuickCheckInRequest) (*domain.QuickCheckIn, error) {
	quickCheckIn, err := s.getOwnedQuickCheckIn(ctx, caller, quickCheckInID)
	if err != nil {
		return nil, err
	}

	if req.Mood != nil {
		quickCheckIn.Mood = *req.Mood
	}
	if req.Intensity != nil {
		quickCheckIn.Intensity = req.Intensity
	}
	if req.Note != nil {
		quickCheckIn.Note = *req.Note
	}
	if req.Kind != nil {
		quickCheckIn.Kind = domain.CheckInKind(*req.Kind)
	}

	if err := s.checkInRepo.UpdateQuickCheckIn(ctx, *quickCheckIn); err != nil {
		return nil, fmt.Errorf("failed to update quick check-in: %w", err)
	}
	return quickCheckIn, nil
}

func (s *checkInService) DeleteQuickCheckIn(ctx context.Context, caller domain.Caller, quickCheckInID string) error {
	if _, err := s.getOwnedQuickCheckIn(ctx, caller, quickCheckInID); err != nil {
		return err
	}
	if err := s.checkInRepo.DeleteQuickCheckIn(ctx, quickCheckInID); err != nil {
		return fmt.Errorf("failed to delete quick check-in: %w", err)
	}
	return nil
}
