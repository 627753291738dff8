package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ApplicationStatus is the review state of a practitioner application.
// Transitions are one-way from pending; approved and rejected are terminal.
type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "pending"
	ApplicationApproved ApplicationStatus = "approved"
	ApplicationRejected ApplicationStatus = "rejected"
)

// IsValid reports whether s is one of the known review states.
func (s ApplicationStatus) IsValid() bool {
	switch s {
	case ApplicationPending, ApplicationApproved, ApplicationRejected:
		return true
	}
	return false
}

// PsychartistApplication is a one-per-account request to become a verified
// practitioner.
type PsychartistApplication struct {
	ApplicationID string `json:"applicationID"`
	UserID        string `json:"userID"`

	// Personal information
	FullName          string  `json:"fullName"`
	LicenseNumber     string  `json:"licenseNumber"`
	ContactEmail      string  `json:"contactEmail"`
	PhoneNumber       string  `json:"phoneNumber"`
	ProfilePictureURL *string `json:"profilePictureURL,omitempty"`

	// Professional information
	Specialization    string `json:"specialization"`
	YearsOfExperience int    `json:"yearsOfExperience"`
	Education         string `json:"education"`
	Certifications    string `json:"certifications,omitempty"`
	Approach          string `json:"approach"`
	Languages         string `json:"languages,omitempty"`

	// Practice information
	AvailableHours string           `json:"availableHours,omitempty"`
	SessionRate    *decimal.Decimal `json:"sessionRate,omitempty"`
	Bio            string           `json:"bio"`

	Status      ApplicationStatus `json:"status"`
	AppliedAt   time.Time         `json:"appliedAt"`
	ReviewedAt  *time.Time        `json:"reviewedAt,omitempty"`
	ReviewedBy  *string           `json:"reviewedBy,omitempty"`
	ReviewNotes string            `json:"reviewNotes"`

	// Populated on admin listings via a join; empty elsewhere.
	ApplicantUsername string `json:"applicantUsername,omitempty"`
	ApplicantEmail    string `json:"applicantEmail,omitempty"`
}

// Psychartist is the public practitioner profile materialized from an
// approved application. It is deactivated, never deleted, on rejection.
type Psychartist struct {
	PsychartistID string `json:"psychartistID"`
	UserID        string `json:"userID"`
	ApplicationID string `json:"applicationID"`

	FullName          string  `json:"fullName"`
	LicenseNumber     string  `json:"licenseNumber"`
	ContactEmail      string  `json:"contactEmail"`
	PhoneNumber       string  `json:"phoneNumber"`
	ProfilePictureURL *string `json:"profilePictureURL,omitempty"`
	Specialization    string  `json:"specialization"`
	YearsOfExperience int     `json:"yearsOfExperience"`
	Education         string  `json:"education"`
	Certifications    string  `json:"certifications,omitempty"`
	Approach          string  `json:"approach"`
	Languages         string  `json:"languages,omitempty"`
	AvailableHours    string  `json:"availableHours,omitempty"`
	SessionRate       *decimal.Decimal `json:"sessionRate,omitempty"`
	Bio               string  `json:"bio"`

	IsActive   bool      `json:"isActive"`
	IsVerified bool      `json:"isVerified"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`

	AverageRating decimal.Decimal `json:"averageRating"`
	TotalReviews  int             `json:"totalReviews"`

	Username string `json:"username,omitempty"`
}
