package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/mindcare-app/mindcare_backend/internal/apperrors"
	"github.com/mindcare-app/mindcare_backend/internal/core/domain"
	portsrepo "github.com/mindcare-app/mindcare_backend/internal/core/ports/repositories"
	"github.com/mindcare-app/mindcare_backend/internal/models"
)

type PgxPsychartistRepository struct {
	BaseRepository
}

func newPgxPsychartistRepository(db *pgxpool.Pool) portsrepo.PsychartistRepositoryFacade {
	return &PgxPsychartistRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.PsychartistRepositoryFacade = (*PgxPsychartistRepository)(nil)

func toModelApplication(d domain.PsychartistApplication) models.PsychartistApplication {
	m := models.PsychartistApplication{
		ApplicationID:     d.ApplicationID,
		UserID:            d.UserID,
		FullName:          d.FullName,
		LicenseNumber:     d.LicenseNumber,
		ContactEmail:      d.ContactEmail,
		PhoneNumber:       d.PhoneNumber,
		Specialization:    d.Specialization,
		YearsOfExperience: d.YearsOfExperience,
		Education:         d.Education,
		Certifications:    d.Certifications,
		Approach:          d.Approach,
		Languages:         d.Languages,
		AvailableHours:    d.AvailableHours,
		Bio:               d.Bio,
		Status:            string(d.Status),
		AppliedAt:         d.AppliedAt,
		ReviewNotes:       d.ReviewNotes,
	}
	if d.ProfilePictureURL != nil {
		m.ProfilePictureURL = sql.NullString{String: *d.ProfilePictureURL, Valid: true}
	}
	if d.SessionRate != nil {
		m.SessionRate = decimal.NullDecimal{Decimal: *d.SessionRate, Valid: true}
	}
	if d.ReviewedAt != nil {
		m.ReviewedAt = sql.NullTime{Time: *d.ReviewedAt, Valid: true}
	}
	if d.ReviewedBy != nil {
		m.ReviewedBy = sql.NullString{String: *d.ReviewedBy, Valid: true}
	}
	return m
}

func toDomainApplication(m models.PsychartistApplication) domain.PsychartistApplication {
	d := domain.PsychartistApplication{
		ApplicationID:     m.ApplicationID,
		UserID:            m.UserID,
		FullName:          m.FullName,
		LicenseNumber:     m.LicenseNumber,
		ContactEmail:      m.ContactEmail,
		PhoneNumber:       m.PhoneNumber,
		Specialization:    m.Specialization,
		YearsOfExperience: m.YearsOfExperience,
		Education:         m.Education,
		Certifications:    m.Certifications,
		Approach:          m.Approach,
		Languages:         m.Languages,
		AvailableHours:    m.AvailableHours,
		Bio:               m.Bio,
		Status:            domain.ApplicationStatus(m.Status),
		AppliedAt:         m.AppliedAt,
		ReviewNotes:       m.ReviewNotes,
	}
	if m.ProfilePictureURL.Valid {
		url := m.ProfilePictureURL.String
		d.ProfilePictureURL = &url
	}
	if m.SessionRate.Valid {
		rate := m.SessionRate.Decimal
		d.SessionRate = &rate
	}
	if m.ReviewedAt.Valid {
		t := m.ReviewedAt.Time
		d.ReviewedAt = &t
	}
	if m.ReviewedBy.Valid {
		by := m.ReviewedBy.String
		d.ReviewedBy = &by
	}
	return d
}

func toDomainPsychartist(m models.Psychartist) domain.Psychartist {
	d := domain.Psychartist{
		PsychartistID:     m.PsychartistID,
		UserID:            m.UserID,
		ApplicationID:     m.ApplicationID,
		FullName:          m.FullName,
		LicenseNumber:     m.LicenseNumber,
		ContactEmail:      m.ContactEmail,
		PhoneNumber:       m.PhoneNumber,
		Specialization:    m.Specialization,
		YearsOfExperience: m.YearsOfExperience,
		Education:         m.Education,
		Certifications:    m.Certifications,
		Approach:          m.Approach,
		Languages:         m.Languages,
		AvailableHours:    m.AvailableHours,
		Bio:               m.Bio,
		IsActive:          m.IsActive,
		IsVerified:        m.IsVerified,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
		AverageRating:     m.AverageRating,
		TotalReviews:      m.TotalReviews,
	}
	if m.ProfilePictureURL.Valid {
		url := m.ProfilePictureURL.String
		d.ProfilePictureURL = &url
	}
	if m.SessionRate.Valid {
		rate := m.SessionRate.Decimal
		d.SessionRate = &rate
	}
	return d
}

const applicationColumns = `application_id, user_id, full_name, license_number, contact_email, phone_number, profile_picture_url, specialization, years_of_experience, education, certifications, approach, languages, available_hours, session_rate, bio, status, applied_at, reviewed_at, reviewed_by, review_notes`

func scanApplication(row pgx.Row) (models.PsychartistApplication, error) {
	var m models.PsychartistApplication
	err := row.Scan(
		&m.ApplicationID,
		&m.UserID,
		&m.FullName,
		&m.LicenseNumber,
		&m.ContactEmail,
		&m.PhoneNumber,
		&m.ProfilePictureURL,
		&m.Specialization,
		&m.YearsOfExperience,
		&m.Education,
		&m.Certifications,
		&m.Approach,
		&m.Languages,
		&m.AvailableHours,
		&m.SessionRate,
		&m.Bio,
		&m.Status,
		&m.AppliedAt,
		&m.ReviewedAt,
		&m.ReviewedBy,
		&m.ReviewNotes,
	)
	return m, err
}

const psychartistColumns = `psychartist_id, user_id, application_id, full_name, license_number, contact_email, phone_number, profile_picture_url, specialization, years_of_experience, education, certifications, approach, languages, available_hours, session_rate, bio, is_active, is_verified, created_at, updated_at, average_rating, total_reviews`

func scanPsychartist(row pgx.Row) (models.Psychartist, error) {
	var m models.Psychartist
	err := row.Scan(
		&m.PsychartistID,
		&m.UserID,
		&m.ApplicationID,
		&m.FullName,
		&m.LicenseNumber,
		&m.ContactEmail,
		&m.PhoneNumber,
		&m.ProfilePictureURL,
		&m.Specialization,
		&m.YearsOfExperience,
		&m.Education,
		&m.Certifications,
		&m.Approach,
		&m.Languages,
		&m.AvailableHours,
		&m.SessionRate,
		&m.Bio,
		&m.IsActive,
		&m.IsVerified,
		&m.CreatedAt,
		&m.UpdatedAt,
		&m.AverageRating,
		&m.TotalReviews,
	)
	return m, err
}

func (r *PgxPsychartistRepository) SaveApplication(ctx context.Context, app domain.PsychartistApplication) error {
	m := toModelApplication(app)
	query := `
		INSERT INTO psychartist_applications (` + applicationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ApplicationID,
		m.UserID,
		m.FullName,
		m.LicenseNumber,
		m.ContactEmail,
		m.PhoneNumber,
		m.ProfilePictureURL,
		m.Specialization,
		m.YearsOfExperience,
		m.Education,
		m.Certifications,
		m.Approach,
		m.Languages,
		m.AvailableHours,
		m.SessionRate,
		m.Bio,
		m.Status,
		m.AppliedAt,
		m.ReviewedAt,
		m.ReviewedBy,
		m.ReviewNotes,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation on user_id
			return fmt.Errorf("account already has an application: %w", apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save application: %w", err)
	}
	return nil
}

func (r *PgxPsychartistRepository) FindApplicationByID(ctx context.Context, applicationID string) (*domain.PsychartistApplication, error) {
	query := `SELECT ` + applicationColumns + ` FROM psychartist_applications WHERE application_id = $1;`
	m, err := scanApplication(r.Pool.QueryRow(ctx, query, applicationID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find application by ID %s: %w", applicationID, err)
	}
	d := toDomainApplication(m)
	return &d, nil
}

func (r *PgxPsychartistRepository) FindApplicationByUserID(ctx context.Context, userID string) (*domain.PsychartistApplication, error) {
	query := `SELECT ` + applicationColumns + ` FROM psychartist_applications WHERE user_id = $1;`
	m, err := scanApplication(r.Pool.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find application for user %s: %w", userID, err)
	}
	d := toDomainApplication(m)
	return &d, nil
}

func (r *PgxPsychartistRepository) FindApplications(ctx context.Context, status *domain.ApplicationStatus) ([]domain.PsychartistApplication, error) {
	query := `
		SELECT a.application_id, a.user_id, a.full_name, a.license_number, a.contact_email, a.phone_number,
		       a.profile_picture_url, a.specialization, a.years_of_experience, a.education, a.certifications,
		       a.approach, a.languages, a.available_hours, a.session_rate, a.bio, a.status, a.applied_at,
		       a.reviewed_at, a.reviewed_by, a.review_notes, u.username, u.email
		FROM psychartist_applications a
		JOIN users u ON u.user_id = a.user_id
		WHERE ($1::text IS NULL OR a.status = $1)
		ORDER BY a.applied_at DESC;
	`
	var statusArg *string
	if status != nil {
		s := string(*status)
		statusArg = &s
	}
	rows, err := r.Pool.Query(ctx, query, statusArg)
	if err != nil {
		return nil, fmt.Errorf("failed to query applications: %w", err)
	}
	defer rows.Close()

	apps := []domain.PsychartistApplication{}
	for rows.Next() {
		var m models.PsychartistApplication
		var username, email string
		if err := rows.Scan(
			&m.ApplicationID,
			&m.UserID,
			&m.FullName,
			&m.LicenseNumber,
			&m.ContactEmail,
			&m.PhoneNumber,
			&m.ProfilePictureURL,
			&m.Specialization,
			&m.YearsOfExperience,
			&m.Education,
			&m.Certifications,
			&m.Approach,
			&m.Languages,
			&m.AvailableHours,
			&m.SessionRate,
			&m.Bio,
			&m.Status,
			&m.AppliedAt,
			&m.ReviewedAt,
			&m.ReviewedBy,
			&m.ReviewNotes,
			&username,
			&email,
		); err != nil {
			return nil, fmt.Errorf("failed to scan application row: %w", err)
		}
		d := toDomainApplication(m)
		d.ApplicantUsername = username
		d.ApplicantEmail = email
		apps = append(apps, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating application rows: %w", err)
	}
	return apps, nil
}

func (r *PgxPsychartistRepository) UpdateApplicationPicture(ctx context.Context, userID string, pictureURL string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	tag, err := tx.Exec(ctx, `UPDATE psychartist_applications SET profile_picture_url = $2 WHERE user_id = $1;`, userID, pictureURL)
	if err != nil {
		return fmt.Errorf("failed to update application picture for user %s: %w", userID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	// Keep an already materialized profile in sync.
	_, err = tx.Exec(ctx, `UPDATE psychartists SET profile_picture_url = $2, updated_at = now() WHERE user_id = $1;`, userID, pictureURL)
	if err != nil {
		return fmt.Errorf("failed to propagate picture to profile for user %s: %w", userID, err)
	}

	return r.Commit(ctx, tx)
}

// markReviewed stamps the review fields on a pending application and
// returns the updated row. ErrNotFound for an unknown id, ErrConflict when the
// application has already been reviewed.
func (r *PgxPsychartistRepository) markReviewed(ctx context.Context, tx pgx.Tx, applicationID string, newStatus domain.ApplicationStatus, reviewerID string, reviewNotes string, reviewedAt time.Time) (*models.PsychartistApplication, error) {
	query := `
		UPDATE psychartist_applications
		SET status = $2, reviewed_at = $3, reviewed_by = $4, review_notes = $5
		WHERE application_id = $1 AND status = 'pending'
		RETURNING ` + applicationColumns + `;
	`
	m, err := scanApplication(tx.QueryRow(ctx, query, applicationID, string(newStatus), reviewedAt, reviewerID, reviewNotes))
	if err == nil {
		return &m, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("failed to mark application %s reviewed: %w", applicationID, err)
	}

	// Either the id is unknown or the application was already reviewed.
	var status string
	err = tx.QueryRow(ctx, `SELECT status FROM psychartist_applications WHERE application_id = $1;`, applicationID).Scan(&status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to check application %s status: %w", applicationID, err)
	}
	return nil, fmt.Errorf("application already reviewed (status %s): %w", status, apperrors.ErrConflict)
}

func (r *PgxPsychartistRepository) ApproveApplication(ctx context.Context, applicationID string, reviewerID string, reviewNotes string, reviewedAt time.Time) (*domain.Psychartist, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	app, err := r.markReviewed(ctx, tx, applicationID, domain.ApplicationApproved, reviewerID, reviewNotes, reviewedAt)
	if err != nil {
		return nil, err
	}

	// Materialize the profile from the application. A previously rejected
	// account keeps its profile row, so refresh it in place.
	upsert := `
		INSERT INTO psychartists (
			psychartist_id, user_id, application_id, full_name, license_number, contact_email,
			phone_number, profile_picture_url, specialization, years_of_experience, education,
			certifications, approach, languages, available_hours, session_rate, bio,
			is_active, is_verified, created_at, updated_at, average_rating, total_reviews
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, TRUE, TRUE, $18, $18, 0, 0)
		ON CONFLICT (user_id) DO UPDATE SET
			application_id = EXCLUDED.application_id,
			full_name = EXCLUDED.full_name,
			license_number = EXCLUDED.license_number,
			contact_email = EXCLUDED.contact_email,
			phone_number = EXCLUDED.phone_number,
			profile_picture_url = EXCLUDED.profile_picture_url,
			specialization = EXCLUDED.specialization,
			years_of_experience = EXCLUDED.years_of_experience,
			education = EXCLUDED.education,
			certifications = EXCLUDED.certifications,
			approach = EXCLUDED.approach,
			languages = EXCLUDED.languages,
			available_hours = EXCLUDED.available_hours,
			session_rate = EXCLUDED.session_rate,
			bio = EXCLUDED.bio,
			is_active = TRUE,
			is_verified = TRUE,
			updated_at = EXCLUDED.updated_at
		RETURNING ` + psychartistColumns + `;
	`
	m, err := scanPsychartist(tx.QueryRow(ctx, upsert,
		uuid.NewString(),
		app.UserID,
		app.ApplicationID,
		app.FullName,
		app.LicenseNumber,
		app.ContactEmail,
		app.PhoneNumber,
		app.ProfilePictureURL,
		app.Specialization,
		app.YearsOfExperience,
		app.Education,
		app.Certifications,
		app.Approach,
		app.Languages,
		app.AvailableHours,
		app.SessionRate,
		app.Bio,
		reviewedAt,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to materialize profile for application %s: %w", applicationID, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	d := toDomainPsychartist(m)
	return &d, nil
}

func (r *PgxPsychartistRepository) RejectApplication(ctx context.Context, applicationID string, reviewerID string, reviewNotes string, reviewedAt time.Time) (*domain.PsychartistApplication, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	app, err := r.markReviewed(ctx, tx, applicationID, domain.ApplicationRejected, reviewerID, reviewNotes, reviewedAt)
	if err != nil {
		return nil, err
	}

	// The profile, if one exists from an earlier approval, is hidden rather
	// than deleted.
	_, err = tx.Exec(ctx, `
		UPDATE psychartists
		SET is_active = FALSE, is_verified = FALSE, updated_at = $2
		WHERE user_id = $1;
	`, app.UserID, reviewedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to deactivate profile for application %s: %w", applicationID, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	d := toDomainApplication(*app)
	return &d, nil
}

func (r *PgxPsychartistRepository) FindActivePsychartists(ctx context.Context) ([]domain.Psychartist, error) {
	query := `
		SELECT p.psychartist_id, p.user_id, p.application_id, p.full_name, p.license_number, p.contact_email,
		       p.phone_number, p.profile_picture_url, p.specialization, p.years_of_experience, p.education,
		       p.certifications, p.approach, p.languages, p.available_hours, p.session_rate, p.bio,
		       p.is_active, p.is_verified, p.created_at, p.updated_at, p.average_rating, p.total_reviews,
		       u.username
		FROM psychartists p
		JOIN users u ON u.user_id = p.user_id
		WHERE p.is_active AND p.is_verified
		ORDER BY p.created_at DESC;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query active psychartists: %w", err)
	}
	defer rows.Close()

	profiles := []domain.Psychartist{}
	for rows.Next() {
		var m models.Psychartist
		var username string
		if err := rows.Scan(
			&m.PsychartistID,
			&m.UserID,
			&m.ApplicationID,
			&m.FullName,
			&m.LicenseNumber,
			&m.ContactEmail,
			&m.PhoneNumber,
			&m.ProfilePictureURL,
			&m.Specialization,
			&m.YearsOfExperience,
			&m.Education,
			&m.Certifications,
			&m.Approach,
			&m.Languages,
			&m.AvailableHours,
			&m.SessionRate,
			&m.Bio,
			&m.IsActive,
			&m.IsVerified,
			&m.CreatedAt,
			&m.UpdatedAt,
			&m.AverageRating,
			&m.TotalReviews,
			&username,
		); err != nil {
			return nil, fmt.Errorf("failed to scan psychartist row: %w", err)
		}
		d := toDomainPsychartist(m)
		d.Username = username
		profiles = append(profiles, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating psychartist rows: %w", err)
	}
	return profiles, nil
}

func (r *PgxPsychartistRepository) FindActivePsychartistByID(ctx context.Context, psychartistID string) (*domain.Psychartist, error) {
	query := `
		SELECT p.psychartist_id, p.user_id, p.application_id, p.full_name, p.license_number, p.contact_email,
		       p.phone_number, p.profile_picture_url, p.specialization, p.years_of_experience, p.education,
		       p.certifications, p.approach, p.languages, p.available_hours, p.session_rate, p.bio,
		       p.is_active, p.is_verified, p.created_at, p.updated_at, p.average_rating, p.total_reviews,
		       u.username
		FROM psychartists p
		JOIN users u ON u.user_id = p.user_id
		WHERE p.psychartist_id = $1 AND p.is_active AND p.is_verified;
	`
	var m models.Psychartist
	var username string
	err := r.Pool.QueryRow(ctx, query, psychartistID).Scan(
		&m.PsychartistID,
		&m.UserID,
		&m.ApplicationID,
		&m.FullName,
		&m.LicenseNumber,
		&m.ContactEmail,
		&m.PhoneNumber,
		&m.ProfilePictureURL,
		&m.Specialization,
		&m.YearsOfExperience,
		&m.Education,
		&m.Certifications,
		&m.Approach,
		&m.Languages,
		&m.AvailableHours,
		&m.SessionRate,
		&m.Bio,
		&m.IsActive,
		&m.IsVerified,
		&m.CreatedAt,
		&m.UpdatedAt,
		&m.AverageRating,
		&m.TotalReviews,
		&username,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find active psychartist %s: %w", psychartistID, err)
	}
	d := toDomainPsychartist(m)
	d.Username = username
	return &d, nil
}

func (r *PgxPsychartistRepository) FindPsychartistByUserID(ctx context.Context, userID string) (*domain.Psychartist, error) {
	query := `SELECT ` + psychartistColumns + ` FROM psychartists WHERE user_id = $1;`
	m, err := scanPsychartist(r.Pool.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find psychartist profile for user %s: %w", userID, err)
	}
	d := toDomainPsychartist(m)
	return &d, nil
}
