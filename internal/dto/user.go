package dto

import (
	"github.com/mindcare-app/mindcare_backend/internal/core/domain"
)

// RegisterRequest defines the payload for account registration.
type RegisterRequest struct {
	Username        string `json:"username" binding:"required,max=150"`
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required,min=8"`
	PasswordConfirm string `json:"password_confirm" binding:"required"`
}

// LoginRequest defines the payload for credential login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UserResponse is the public representation of an account.
type UserResponse struct {
	UserID   string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	JoinedAt string `json:"date_joined"`
}

// ToUserResponse converts a domain.User to its API representation.
func ToUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		UserID:   user.UserID,
		Username: user.Username,
		Email:    user.Email,
		JoinedAt: FormatTimestamp(user.JoinedAt),
	}
}

// ApplicationStatusSummary reports whether the account has a practitioner
// application and where it stands. All fields besides HasApplication are nil
// when no application exists.
type ApplicationStatusSummary struct {
	HasApplication bool    `json:"has_application"`
	Status         *string `json:"status"`
	AppliedAt      *string `json:"applied_at"`
}

// PsychartistSummary is the compact profile block attached to the owner's
// profile view.
type PsychartistSummary struct {
	PsychartistID     string  `json:"id"`
	FullName          string  `json:"full_name"`
	Specialization    string  `json:"specialization"`
	YearsOfExperience int     `json:"years_of_experience"`
	ProfilePictureURL *string `json:"profile_picture"`
	IsActive          bool    `json:"is_active"`
	AverageRating     float64 `json:"average_rating"`
	TotalReviews      int     `json:"total_reviews"`
}

// ProfileResponse composes the authenticated user's own profile view. The
// practitioner blocks are filled best-effort: their absence never fails the
// request.
type ProfileResponse struct {
	UserResponse
	PsychartistStatus  ApplicationStatusSummary `json:"psychartist_status"`
	PsychartistProfile *PsychartistSummary      `json:"psychartist_profile"`
}

// ToProfileResponse builds the composed profile view from the user record and
// the optional application/profile records.
func ToProfileResponse(user *domain.User, app *domain.PsychartistApplication, profile *domain.Psychartist) ProfileResponse {
	resp := ProfileResponse{
		UserResponse: ToUserResponse(user),
		PsychartistStatus: ApplicationStatusSummary{
			HasApplication: false,
		},
	}
	if app != nil {
		status := string(app.Status)
		appliedAt := FormatTimestamp(app.AppliedAt)
		resp.PsychartistStatus = ApplicationStatusSummary{
			HasApplication: true,
			Status:         &status,
			AppliedAt:      &appliedAt,
		}
	}
	if profile != nil {
		rating, _ := profile.AverageRating.Float64()
		resp.PsychartistProfile = &PsychartistSummary{
			PsychartistID:     profile.PsychartistID,
			FullName:          profile.FullName,
			Specialization:    profile.Specialization,
			YearsOfExperience: profile.YearsOfExperience,
			ProfilePictureURL: profile.ProfilePictureURL,
			IsActive:          profile.IsActive,
			AverageRating:     rating,
			TotalReviews:      profile.TotalReviews,
		}
	}
	return resp
}
