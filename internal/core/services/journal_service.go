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

type journalService struct {
	journalRepo portsrepo.JournalRepositoryFacade
}

// NewJournalService creates the journal service.
func NewJournalService(journalRepo portsrepo.JournalRepositoryFacade) portssvc.JournalSvcFacade {
	return &journalService{journalRepo: journalRepo}
}

var _ portssvc.JournalSvcFacade = (*journalService)(nil)

func (s *journalService) ListJournalEntries(ctx context.Context, caller domain.Caller) ([]domain.JournalEntry, error) {
	entries, err := s.journalRepo.FindJournalEntriesByOwner(ctx, caller.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list journal entries: %w", err)
	}
	return entries, nil
}

func (s *journalService) CreateJournalEntry(ctx context.Context, caller domain.Caller, req dto.CreateJournalEntryRequest) (*domain.JournalEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	now := time.Now()
	entry := domain.JournalEntry{
		JournalEntryID: uuid.NewString(),
		UserID:         caller.UserID,
		Title:          req.Title,
		Content:        req.Content,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.journalRepo.SaveJournalEntry(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to create journal entry: %w", err)
	}

	logger.Info("Journal entry created", slog.String("journal_entry_id", entry.JournalEntryID))
	return &entry, nil
}

func (s *journalService) getOwnedEntry(ctx context.Context, caller domain.Caller, journalEntryID string) (*domain.JournalEntry, error) {
	entry, err := s.journalRepo.FindJournalEntryByID(ctx, journalEntryID)
	if err != nil {
		return nil, err
	}
	if !caller.CanActOn(entry.UserID) {
		return nil, apperrors.ErrNotFound
	}
	return entry, nil
}

func (s *journalService) GetJournalEntry(ctx context.Context, caller domain.Caller, journalEntryID string) (*domain.JournalEntry, error) {
	return s.getOwnedEntry(ctx, caller, journalEntryID)
}

func (s *journalService) UpdateJournalEntry(ctx context.Context, caller domain.Caller, journalEntryID string, req dto.UpdateJournalEntryRequest) (*domain.JournalEntry, error) {
	entry, err := s.getOwnedEntry(ctx, caller, journalEntryID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		entry.Title = req.Title
	}
	if req.Content != nil {
		entry.Content = *req.Content
	}
	entry.UpdatedAt = time.Now()

	if err := s.journalRepo.UpdateJournalEntry(ctx, *entry); err != nil {
		return nil, fmt.Errorf("failed to update journal entry: %w", err)
	}
	return entry, nil
}

func (s *journalService) DeleteJournalEntry(ctx context.Context, caller domain.Caller, journalEntryID string) error {
	if _, err := s.getOwnedEntry(ctx, caller, journalEntryID); err != nil {
		return err
	}
	if err := s.journalRepo.DeleteJournalEntry(ctx, journalEntryID); err != nil {
		return fmt.Errorf("failed to delete journal entry: %w", err)
	}
	return nil
}
