package dto

import (
	"github.com/mindcare-app/mindcare_backend/internal/core/domain"
)

// CreateJournalEntryRequest defines the payload for a new journal entry.
type CreateJournalEntryRequest struct {
	Title   *string `json:"title" binding:"omitempty,max=200"`
	Content string  `json:"content" binding:"required"`
}

// UpdateJournalEntryRequest carries partial updates; nil fields are left
// unchanged. Any mutation refreshes the entry's updated_at stamp.
type UpdateJournalEntryRequest struct {
	Title   *string `json:"title" binding:"omitempty,max=200"`
	Content *string `json:"content"`
}

// JournalEntryResponse is the API representation of a journal entry.
type JournalEntryResponse struct {
	JournalEntryID string  `json:"id"`
	UserID         string  `json:"user"`
	Title          *string `json:"title"`
	Content        string  `json:"content"`
	CreatedAt      string  `json:"created_at"`
	UpdatedAt      string  `json:"updated_at"`
}

// ToJournalEntryResponse converts a domain.JournalEntry to its API representation.
func ToJournalEntryResponse(e *domain.JournalEntry) JournalEntryResponse {
	return JournalEntryResponse{
		JournalEntryID: e.JournalEntryID,
		UserID:         e.UserID,
		Title:          e.Title,
		Content:        e.Content,
		CreatedAt:      FormatTimestamp(e.CreatedAt),
		UpdatedAt:      FormatTimestamp(e.UpdatedAt),
	}
}

// ToJournalEntryResponseList converts a slice of journal entries.
func ToJournalEntryResponseList(entries []domain.JournalEntry) []JournalEntryResponse {
	out := make([]JournalEntryResponse, len(entries))
	for i := range entries {
		out[i] = ToJournalEntryResponse(&entries[i])
	}
	return out
}
