package repositories

import (
	"context"

	"github.com/mindcare-app/mindcare_backend/internal/core/domain"
)

// JournalReader defines read operations for journal entries.
type JournalReader interface {
	FindJournalEntryByID(ctx context.Context, journalEntryID string) (*domain.JournalEntry, error)

	// FindJournalEntriesByOwner retrieves all entries for an account, newest first.
	FindJournalEntriesByOwner(ctx context.Context, userID string) ([]domain.JournalEntry, error)
}

// JournalWriter defines write operations for journal entries.
type JournalWriter interface {
	SaveJournalEntry(ctx context.Context, entry domain.JournalEntry) error

	// UpdateJournalEntry persists title/content changes and the refreshed
	// updated_at stamp. created_at is never touched.
	UpdateJournalEntry(ctx context.Context, entry domain.JournalEntry) error

	DeleteJournalEntry(ctx context.Context, journalEntryID string) error
}

// JournalRepositoryFacade combines all journal repository interfaces.
type JournalRepositoryFacade interface {
	JournalReader
	JournalWriter
}
