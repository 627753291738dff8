package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mindcare-app/mindcare_backend/internal/apperrors"
	"github.com/mindcare-app/mindcare_backend/internal/core/domain"
	portsrepo "github.com/mindcare-app/mindcare_backend/internal/core/ports/repositories"
	"github.com/mindcare-app/mindcare_backend/internal/models"
)

type PgxCheckInRepository struct {
	BaseRepository
}

func newPgxCheckInRepository(db *pgxpool.Pool) portsrepo.CheckInRepositoryFacade {
	return &PgxCheckInRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.CheckInRepositoryFacade = (*PgxCheckInRepository)(nil)

func toModelCheckIn(d domain.CheckIn) models.CheckIn {
	m := models.CheckIn{
		CheckInID: d.CheckInID,
		UserID:    d.UserID,
		Mood:      d.Mood,
		Reason:    d.Reason,
		Color:     d.Color,
		CreatedAt: d.CreatedAt,
	}
	if d.Notes != nil {
		m.Notes = sql.NullString{String: *d.Notes, Valid: true}
	}
	return m
}

func toDomainCheckIn(m models.CheckIn) domain.CheckIn {
	d := domain.CheckIn{
		CheckInID: m.CheckInID,
		UserID:    m.UserID,
		Mood:      m.Mood,
		Reason:    m.Reason,
		Color:     m.Color,
		CreatedAt: m.CreatedAt,
	}
	if m.Notes.Valid {
		notes := m.Notes.String
		d.Notes = &notes
	}
	return d
}

func toModelQuickCheckIn(d domain.QuickCheckIn) models.QuickCheckIn {
	m := models.QuickCheckIn{
		QuickCheckInID: d.QuickCheckInID,
		UserID:         d.UserID,
		Mood:           d.Mood,
		Note:           d.Note,
		Kind:           string(d.Kind),
		CreatedAt:      d.CreatedAt,
	}
	if d.Intensity != nil {
		m.Intensity = sql.NullInt32{Int32: int32(*d.Intensity), Valid: true}
	}
	return m
}

func toDomainQuickCheckIn(m models.QuickCheckIn) domain.QuickCheckIn {
	d := domain.QuickCheckIn{
		QuickCheckInID: m.QuickCheckInID,
		UserID:         m.UserID,
		Mood:           m.Mood,
		Note:           m.Note,
		Kind:           domain.CheckInKind(m.Kind),
		CreatedAt:      m.CreatedAt,
	}
	if m.Intensity.Valid {
		intensity := int(m.Intensity.Int32)
		d.Intensity = &intensity
	}
	return d
}

func (r *PgxCheckInRepository) SaveCheckIn(ctx context.Context, checkIn domain.CheckIn) error {
	m := toModelCheckIn(checkIn)
	query := `
		INSERT INTO checkins (checkin_id, user_id, mood, reason, notes, color, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.Pool.Exec(ctx, query, m.CheckInID, m.UserID, m.Mood, m.Reason, m.Notes, m.Color, m.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to save check-in: %w", err)
	}
	return nil
}

func (r *PgxCheckInRepository) FindCheckInByID(ctx context.Context, checkInID string) (*domain.CheckIn, error) {
	query := `
		SELECT checkin_id, user_id, mood, reason, notes, color, created_at
		FROM checkins
		WHERE checkin_id = $1;
	`
	var m models.CheckIn
	err := r.Pool.QueryRow(ctx, query, checkInID).Scan(
		&m.CheckInID,
		&m.UserID,
		&m.Mood,
		&m.Reason,
		&m.Notes,
		&m.Color,
		&m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find check-in by ID %s: %w", checkInID, err)
	}
	d := toDomainCheckIn(m)
	return &d, nil
}

func (r *PgxCheckInRepository) FindCheckInsByOwner(ctx context.Context, userID string) ([]domain.CheckIn, error) {
	query := `
		SELECT checkin_id, user_id, mood, reason, notes, color, created_at
		FROM checkins
		WHERE user_id = $1
		ORDER BY created_at DESC, checkin_id DESC;
	`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query check-ins for user %s: %w", userID, err)
	}
	defer rows.Close()

	checkIns := []domain.CheckIn{}
	for rows.Next() {
		var m models.CheckIn
		if err := rows.Scan(&m.CheckInID, &m.UserID, &m.Mood, &m.Reason, &m.Notes, &m.Color, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan check-in row: %w", err)
		}
		checkIns = append(checkIns, toDomainCheckIn(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating check-in rows: %w", err)
	}
	return checkIns, nil
}

func (r *PgxCheckInRepository) UpdateCheckIn(ctx context.Context, checkIn domain.CheckIn) error {
	m := toModelCheckIn(checkIn)
	query := `
		UPDATE checkins
		SET mood = $2, reason = $3, notes = $4, color = $5
		WHERE checkin_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, m.CheckInID, m.Mood, m.Reason, m.Notes, m.Color)
	if err != nil {
		return fmt.Errorf("failed to update check-in %s: %w", m.CheckInID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxCheckInRepository) DeleteCheckIn(ctx context.Context, checkInID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM checkins WHERE checkin_id = $1;`, checkInID)
	if err != nil {
		return fmt.Errorf("failed to delete check-in %s: %w", checkInID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxCheckInRepository) SaveQuickCheckIn(ctx context.Context, quickCheckIn domain.QuickCheckIn) error {
	m := toModelQuickCheckIn(quickCheckIn)
	query := `
		INSERT INTO quick_checkins (quick_checkin_id, user_id, mood, intensity, note, kind, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.Pool.Exec(ctx, query, m.QuickCheckInID, m.UserID, m.Mood, m.Intensity, m.Note, m.Kind, m.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to save quick check-in: %w", err)
	}
	return nil
}

func (r *PgxCheckInRepository) FindQuickCheckInByID(ctx context.Context, quickCheckInID string) (*domain.QuickCheckIn, error) {
	query := `
		SELECT quick_checkin_id, user_id, mood, intensity, note, kind, created_at
		FROM quick_checkins
		WHERE quick_checkin_id = $1;
	`
	var m models.QuickCheckIn
	err := r.Pool.QueryRow(ctx, query, quickCheckInID).Scan(
		&m.QuickCheckInID,
		&m.UserID,
		&m.Mood,
		&m.Intensity,
		&m.Note,
		&m.Kind,
		&m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find quick check-in by ID %s: %w", quickCheckInID, err)
	}
	d := toDomainQuickCheckIn(m)
	return &d, nil
}

func (r *PgxCheckInRepository) FindQuickCheckInsByOwner(ctx context.Context, userID string) ([]domain.QuickCheckIn, error) {
	query := `
		SELECT quick_checkin_id, user_id, mood, intensity, note, kind, created_at
		FROM quick_checkins
		WHERE user_id = $1
		ORDER BY created_at DESC;
	`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query quick check-ins for user %s: %w", userID, err)
	}
	defer rows.Close()

	quickCheckIns := []domain.QuickCheckIn{}
	for rows.Next() {
		var m models.QuickCheckIn
		if err := rows.Scan(&m.QuickCheckInID, &m.UserID, &m.Mood, &m.Intensity, &m.Note, &m.Kind, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan quick check-in row: %w", err)
		}
		quickCheckIns = append(quickCheckIns, toDomainQuickCheckIn(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating quick check-in rows: %w", err)
	}
	return quickCheckIns, nil
}

func (r *PgxCheckInRepository) UpdateQuickCheckIn(ctx context.Context, quickCheckIn domain.QuickCheckIn) error {
	m := toModelQuickCheckIn(quickCheckIn)
	query := `
		UPDATE quick_checkins
		SET mood = $2, intensity = $3, note = $4, kind = $5
		WHERE quick_checkin_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, m.QuickCheckInID, m.Mood, m.Intensity, m.Note, m.Kind)
	if err != nil {
		return fmt.Errorf("failed to update quick check-in %s: %w", m.QuickCheckInID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxCheckInRepository) DeleteQuickCheckIn(ctx context.Context, quickCheckInID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM quick_checkins WHERE quick_checkin_id = $1;`, quickCheckInID)
	if err != nil {
		return fmt.Errorf("failed to delete quick check-in %s: %w", quickCheckInID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
