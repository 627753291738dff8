package models

import (
	"database/sql"
	"time"
)

// CheckIn is the database row for a detailed mood check-in.
type CheckIn struct {
	CheckInID string         `db:"checkin_id"`
	UserID    string         `db:"user_id"`
	Mood      string         `db:"mood"`
	Reason    string         `db:"reason"`
	Notes     sql.NullString `db:"notes"`
	Color     string         `db:"color"`
	CreatedAt time.Time      `db:"created_at"`
}

// QuickCheckIn is the database row for a quick mood check-in.
type QuickCheckIn struct {
	QuickCheckInID string        `db:"quick_checkin_id"`
	UserID         string        `db:"user_id"`
	Mood           string        `db:"mood"`
	Intensity      sql.NullInt32 `db:"intensity"`
	Note           string        `db:"note"`
	Kind           string        `db:"kind"`
	CreatedAt      time.Time     `db:"created_at"`
}
