package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// PsychartistApplication is the database row for a practitioner application.
type PsychartistApplication struct {
	ApplicationID     string              `db:"application_id"`
	UserID            string              `db:"user_id"`
	FullName          string              `db:"full_name"`
	LicenseNumber     string              `db:"license_number"`
	ContactEmail      string              `db:"contact_email"`
	PhoneNumber       string              `db:"phone_number"`
	ProfilePictureURL sql.NullString      `db:"profile_picture_url"`
	Specialization    string              `db:"specialization"`
	YearsOfExperience int                 `db:"years_of_experience"`
	Education         string              `db:"education"`
	Certifications    string              `db:"certifications"`
	Approach          string              `db:"approach"`
	Languages         string              `db:"languages"`
	AvailableHours    string              `db:"available_hours"`
	SessionRate       decimal.NullDecimal `db:"session_rate"`
	Bio               string              `db:"bio"`
	Status            string              `db:"status"`
	AppliedAt         time.Time           `db:"applied_at"`
	ReviewedAt        sql.NullTime        `db:"reviewed_at"`
	ReviewedBy        sql.NullString      `db:"reviewed_by"`
	ReviewNotes       string              `db:"review_notes"`
}

// Psychartist is the database row for a public practitioner profile.
type Psychartist struct {
	PsychartistID     string              `db:"psychartist_id"`
	UserID            string              `db:"user_id"`
	ApplicationID     string              `db:"application_id"`
	FullName          string              `db:"full_name"`
	LicenseNumber     string              `db:"license_number"`
	ContactEmail      string              `db:"contact_email"`
	PhoneNumber       string              `db:"phone_number"`
	ProfilePictureURL sql.NullString      `db:"profile_picture_url"`
	Specialization    string              `db:"specialization"`
	YearsOfExperience int                 `db:"years_of_experience"`
	Education         string              `db:"education"`
	Certifications    string              `db:"certifications"`
	Approach          string              `db:"approach"`
	Languages         string              `db:"languages"`
	AvailableHours    string              `db:"available_hours"`
	SessionRate       decimal.NullDecimal `db:"session_rate"`
	Bio               string              `db:"bio"`
	IsActive          bool                `db:"is_active"`
	IsVerified        bool                `db:"is_verified"`
	CreatedAt         time.Time           `db:"created_at"`
	UpdatedAt         time.Time           `db:"updated_at"`
	AverageRating     decimal.Decimal     `db:"average_rating"`
	TotalReviews      int                 `db:"total_reviews"`
}
