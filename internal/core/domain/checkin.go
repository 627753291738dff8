package domain

import "time"

// QuickMoodMaxLen caps the short mood code on quick check-ins.
const QuickMoodMaxLen = 16

// CheckInKind tags where a quick check-in originated.
type CheckInKind string

const (
	CheckInKindFull  CheckInKind = "full"
	CheckInKindQuick CheckInKind = "quick"
)

// CheckIn is a detailed mood check-in owned by a single account.
type CheckIn struct {
	CheckInID string    `json:"checkInID"`
	UserID    string    `json:"userID"`
	Mood      string    `json:"mood"`
	Reason    string    `json:"reason"`
	Notes     *string   `json:"notes,omitempty"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"createdAt"`
}

// QuickCheckIn is the lightweight variant: an emoji or short label, optionally
// with an intensity and note.
type QuickCheckIn struct {
	QuickCheckInID string      `json:"quickCheckInID"`
	UserID         string      `json:"userID"`
	Mood           string      `json:"mood"`
	Intensity      *int        `json:"intensity,omitempty"`
	Note           string      `json:"note,omitempty"`
	Kind           CheckInKind `json:"kind"`
	CreatedAt      time.Time   `json:"createdAt"`
}
