package domain

import "time"

// JournalEntry is a free-text entry owned by a single account.
// CreatedAt is immutable; UpdatedAt is refreshed on every mutation.
type JournalEntry struct {
	JournalEntryID string    `json:"journalEntryID"`
	UserID         string    `json:"userID"`
	Title          *string   `json:"title,omitempty"`
	Content        string    `json:"content"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}
