package dto

import (
	"github.com/shopspring/decimal"

	"github.com/mindcare-app/mindcare_backend/internal/core/domain"
)

// ApplyRequest defines the payload for a one-time practitioner application.
type ApplyRequest struct {
	FullName          string           `json:"full_name" binding:"required,max=200"`
	LicenseNumber     string           `json:"license_number" binding:"required,max=100"`
	ContactEmail      string           `json:"contact_email" binding:"required,email"`
	PhoneNumber       string           `json:"phone_number" binding:"required,max=20"`
	Specialization    string           `json:"specialization" binding:"required,max=200"`
	YearsOfExperience int              `json:"years_of_experience" binding:"min=0"`
	Education         string           `json:"education" binding:"required"`
	Certifications    string           `json:"certifications"`
	Approach          string           `json:"approach" binding:"required,max=200"`
	Languages         string           `json:"languages" binding:"max=200"`
	AvailableHours    string           `json:"available_hours" binding:"max=200"`
	SessionRate       *decimal.Decimal `json:"session_rate"`
	Bio               string           `json:"bio" binding:"required"`
}

// ApplyResponse acknowledges a submitted application.
type ApplyResponse struct {
	Message       string `json:"message"`
	ApplicationID string `json:"application_id"`
	Status        string `json:"status"`
}

// ReviewRequest carries the optional notes an admin attaches to a decision.
type ReviewRequest struct {
	ReviewNotes string `json:"review_notes"`
}

// ListApplicationsParams defines query parameters for the admin listing.
type ListApplicationsParams struct {
	Status string `form:"status" binding:"omitempty,appstatus"`
}

// ApplicationResponse is the applicant-facing representation of an application.
type ApplicationResponse struct {
	ApplicationID     string           `json:"id"`
	FullName          string           `json:"full_name"`
	LicenseNumber     string           `json:"license_number"`
	ContactEmail      string           `json:"contact_email"`
	PhoneNumber       string           `json:"phone_number"`
	ProfilePictureURL *string          `json:"profile_picture"`
	Specialization    string           `json:"specialization"`
	YearsOfExperience int              `json:"years_of_experience"`
	Education         string           `json:"education"`
	Certifications    string           `json:"certifications"`
	Approach          string           `json:"approach"`
	Languages         string           `json:"languages"`
	AvailableHours    string           `json:"available_hours"`
	SessionRate       *decimal.Decimal `json:"session_rate"`
	Bio               string           `json:"bio"`
	Status            string           `json:"status"`
	AppliedAt         string           `json:"applied_at"`
	ReviewedAt        *string          `json:"reviewed_at"`
	ReviewNotes       string           `json:"review_notes"`
}

// ApplicationAdminResponse adds applicant identity for the admin surface.
type ApplicationAdminResponse struct {
	ApplicationResponse
	UserID            string `json:"user_id"`
	ApplicantUsername string `json:"user_username"`
	ApplicantEmail    string `json:"user_email"`
}

// ToApplicationResponse converts an application to its applicant-facing form.
func ToApplicationResponse(app *domain.PsychartistApplication) ApplicationResponse {
	return ApplicationResponse{
		ApplicationID:     app.ApplicationID,
		FullName:          app.FullName,
		LicenseNumber:     app.LicenseNumber,
		ContactEmail:      app.ContactEmail,
		PhoneNumber:       app.PhoneNumber,
		ProfilePictureURL: app.ProfilePictureURL,
		Specialization:    app.Specialization,
		YearsOfExperience: app.YearsOfExperience,
		Education:         app.Education,
		Certifications:    app.Certifications,
		Approach:          app.Approach,
		Languages:         app.Languages,
		AvailableHours:    app.AvailableHours,
		SessionRate:       app.SessionRate,
		Bio:               app.Bio,
		Status:            string(app.Status),
		AppliedAt:         FormatTimestamp(app.AppliedAt),
		ReviewedAt:        FormatTimestampPtr(app.ReviewedAt),
		ReviewNotes:       app.ReviewNotes,
	}
}

// ToApplicationAdminResponse converts an application to its admin-facing form.
func ToApplicationAdminResponse(app *domain.PsychartistApplication) ApplicationAdminResponse {
	return ApplicationAdminResponse{
		ApplicationResponse: ToApplicationResponse(app),
		UserID:              app.UserID,
		ApplicantUsername:   app.ApplicantUsername,
		ApplicantEmail:      app.ApplicantEmail,
	}
}

// ToApplicationAdminResponseList converts a slice of applications for the
// admin listing.
func ToApplicationAdminResponseList(apps []domain.PsychartistApplication) []ApplicationAdminResponse {
	out := make([]ApplicationAdminResponse, len(apps))
	for i := range apps {
		out[i] = ToApplicationAdminResponse(&apps[i])
	}
	return out
}

// PsychartistResponse is the public representation of a practitioner profile.
type PsychartistResponse struct {
	PsychartistID     string           `json:"id"`
	Username          string           `json:"user_username"`
	FullName          string           `json:"full_name"`
	LicenseNumber     string           `json:"license_number"`
	ContactEmail      string           `json:"contact_email"`
	PhoneNumber       string           `json:"phone_number"`
	ProfilePictureURL *string          `json:"profile_picture"`
	Specialization    string           `json:"specialization"`
	YearsOfExperience int              `json:"years_of_experience"`
	Education         string           `json:"education"`
	Certifications    string           `json:"certifications"`
	Approach          string           `json:"approach"`
	Languages         string           `json:"languages"`
	AvailableHours    string           `json:"available_hours"`
	SessionRate       *decimal.Decimal `json:"session_rate"`
	Bio               string           `json:"bio"`
	IsActive          bool             `json:"is_active"`
	IsVerified        bool             `json:"is_verified"`
	AverageRating     decimal.Decimal  `json:"average_rating"`
	TotalReviews      int              `json:"total_reviews"`
	CreatedAt         string           `json:"created_at"`
	UpdatedAt         string           `json:"updated_at"`
}

// ToPsychartistResponse converts a profile to its public representation.
func ToPsychartistResponse(p *domain.Psychartist) PsychartistResponse {
	return PsychartistResponse{
		PsychartistID:     p.PsychartistID,
		Username:          p.Username,
		FullName:          p.FullName,
		LicenseNumber:     p.LicenseNumber,
		ContactEmail:      p.ContactEmail,
		PhoneNumber:       p.PhoneNumber,
		ProfilePictureURL: p.ProfilePictureURL,
		Specialization:    p.Specialization,
		YearsOfExperience: p.YearsOfExperience,
		Education:         p.Education,
		Certifications:    p.Certifications,
		Approach:          p.Approach,
		Languages:         p.Languages,
		AvailableHours:    p.AvailableHours,
		SessionRate:       p.SessionRate,
		Bio:               p.Bio,
		IsActive:          p.IsActive,
		IsVerified:        p.IsVerified,
		AverageRating:     p.AverageRating,
		TotalReviews:      p.TotalReviews,
		CreatedAt:         FormatTimestamp(p.CreatedAt),
		UpdatedAt:         FormatTimestamp(p.UpdatedAt),
	}
}

// ToPsychartistResponseList converts a slice of profiles for public discovery.
func ToPsychartistResponseList(profiles []domain.Psychartist) []PsychartistResponse {
	out := make([]PsychartistResponse, len(profiles))
	for i := range profiles {
		out[i] = ToPsychartistResponse(&profiles[i])
	}
	return out
}
