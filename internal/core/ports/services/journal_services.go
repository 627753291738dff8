package services

import (
	"context"

	"github.com/mindcare-app/mindcare_backend/internal/core/domain"
	"github.com/mindcare-app/mindcare_backend/internal/dto"
)

// JournalSvcFacade is the ownership-scoped CRUD surface for journal entries.
type JournalSvcFacade interface {
	ListJournalEntries(ctx context.Context, caller domain.Caller) ([]domain.JournalEntry, error)
	CreateJournalEntry(ctx context.Context, caller domain.Caller, req dto.CreateJournalEntryRequest) (*domain.JournalEntry, error)
	GetJournalEntry(ctx context.Context, caller domain.Caller, journalEntryID string) (*domain.JournalEntry, error)
	UpdateJournalEntry(ctx context.Context, caller domain.Caller, journalEntryID string, req dto.UpdateJournalEntryRequest) (*domain.JournalEntry, error)
	DeleteJournalEntry(ctx context.Context, caller domain.Caller, journalEntryID string) error
}
