package models

import (
	"database/sql"
	"time"
)

// JournalEntry is the database row for a journal entry.
type JournalEntry struct {
	JournalEntryID string         `db:"journal_entry_id"`
	UserID         string         `db:"user_id"`
	Title          sql.NullString `db:"title"`
	Content        string         `db:"content"`
	CreatedAt      time.Time      `db:"created_at"`
	UpdatedAt      time.Time      `db:"updated_at"`
}
