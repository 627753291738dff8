package dto

import (
	"github.com/mindcare-app/mindcare_backend/internal/core/domain"
)

// CreateCheckInRequest defines the payload for a detailed check-in. Any owner
// field in the payload is ignored; ownership is always the caller's.
type CreateCheckInRequest struct {
	Mood   string  `json:"mood" binding:"required,max=255"`
	Reason string  `json:"reason" binding:"required,max=500"`
	Notes  *string `json:"notes"`
	Color  string  `json:"color" binding:"required,max=50"`
}

// UpdateCheckInRequest carries partial updates; nil fields are left unchanged.
type UpdateCheckInRequest struct {
	Mood   *string `json:"mood" binding:"omitempty,max=255"`
	Reason *string `json:"reason" binding:"omitempty,max=500"`
	Notes  *string `json:"notes"`
	Color  *string `json:"color" binding:"omitempty,max=50"`
}

// CheckInResponse is the API representation of a detailed check-in.
type CheckInResponse struct {
	CheckInID string  `json:"id"`
	UserID    string  `json:"user"`
	Mood      string  `json:"mood"`
	Reason    string  `json:"reason"`
	Notes     *string `json:"notes"`
	Color     string  `json:"color"`
	CreatedAt string  `json:"created_at"`
}

// ToCheckInResponse converts a domain.CheckIn to its API representation.
func ToCheckInResponse(c *domain.CheckIn) CheckInResponse {
	return CheckInResponse{
		CheckInID: c.CheckInID,
		UserID:    c.UserID,
		Mood:      c.Mood,
		Reason:    c.Reason,
		Notes:     c.Notes,
		Color:     c.Color,
		CreatedAt: FormatTimestamp(c.CreatedAt),
	}
}

// ToCheckInResponseList converts a slice of check-ins.
func ToCheckInResponseList(checkIns []domain.CheckIn) []CheckInResponse {
	out := make([]CheckInResponse, len(checkIns))
	for i := range checkIns {
		out[i] = ToCheckInResponse(&checkIns[i])
	}
	return out
}

// CreateQuickCheckInRequest defines the payload for a quick check-in. The mood
// code is capped at 16 characters; no business-rule validation is applied to
// its value.
type CreateQuickCheckInRequest struct {
	Mood      string `json:"mood" binding:"required,max=16"`
	Intensity *int   `json:"intensity"`
	Note      string `json:"note" binding:"max=500"`
	Kind      string `json:"type" binding:"omitempty,oneof=full quick"`
}

// UpdateQuickCheckInRequest carries partial updates; nil fields are left unchanged.
type UpdateQuickCheckInRequest struct {
	Mood      *string `json:"mood" binding:"omitempty,max=16"`
	Intensity *int    `json:"intensity"`
	Note      *string `json:"note" binding:"omitempty,max=500"`
	Kind      *string `json:"type" binding:"omitempty,oneof=full quick"`
}

// QuickCheckInResponse is the API representation of a quick check-in.
type QuickCheckInResponse struct {
	QuickCheckInID string `json:"id"`
	UserID         string `json:"user"`
	Mood           string `json:"mood"`
	Intensity      *int   `json:"intensity"`
	Note           string `json:"note"`
	Kind           string `json:"type"`
	CreatedAt      string `json:"created_at"`
}

// ToQuickCheckInResponse converts a domain.QuickCheckIn to its API representation.
func ToQuickCheckInResponse(q *domain.QuickCheckIn) QuickCheckInResponse {
	return QuickCheckInResponse{
		QuickCheckInID: q.QuickCheckInID,
		UserID:         q.UserID,
		Mood:           q.Mood,
		Intensity:      q.Intensity,
		Note:           q.Note,
		Kind:           string(q.Kind),
		CreatedAt:      FormatTimestamp(q.CreatedAt),
	}
}

// ToQuickCheckInResponseList converts a slice of quick check-ins.
func ToQuickCheckInResponseList(quickCheckIns []domain.QuickCheckIn) []QuickCheckInResponse {
	out := make([]QuickCheckInResponse, len(quickCheckIns))
	for i := range quickCheckIns {
		out[i] = ToQuickCheckInResponse(&quickCheckIns[i])
	}
	return out
}
