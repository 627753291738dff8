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

type PgxJournalRepository struct {
	BaseRepository
}

func newPgxJournalRepository(db *pgxpool.Pool) portsrepo.JournalRepositoryFacade {
	return &PgxJournalRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.JournalRepositoryFacade = (*PgxJournalRepository)(nil)

func toModelJournalEntry(d domain.JournalEntry) models.JournalEntry {
	m := models.JournalEntry{
		JournalEntryID: d.JournalEntryID,
		UserID:         d.UserID,
		Content:        d.Content,
		CreatedAt:      d.CreatedAt,
		UpdatedAt:      d.UpdatedAt,
	}
	if d.Title != nil {
		m.Title = sql.NullString{String: *d.Title, Valid: true}
	}
	return m
}

func toDomainJournalEntry(m models.JournalEntry) domain.JournalEntry {
	d := domain.JournalEntry{
		JournalEntryID: m.JournalEntryID,
		UserID:         m.UserID,
		Content:        m.Content,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
	if m.Title.Valid {
		title := m.Title.String
		d.Title = &title
	}
	return d
}

func (r *PgxJournalRepository) SaveJournalEntry(ctx context.Context, entry domain.JournalEntry) error {
	m := toModelJournalEntry(entry)
	query := `
		INSERT INTO journal_entries (journal_entry_id, user_id, title, content, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err := r.Pool.Exec(ctx, query, m.JournalEntryID, m.UserID, m.Title, m.Content, m.CreatedAt, m.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to save journal entry: %w", err)
	}
	return nil
}

func (r *PgxJournalRepository) FindJournalEntryByID(ctx context.Context, journalEntryID string) (*domain.JournalEntry, error) {
	query := `
		SELECT journal_entry_id, user_id, title, content, created_at, updated_at
		FROM journal_entries
		WHERE journal_entry_id = $1;
	`
	var m models.JournalEntry
	err := r.Pool.QueryRow(ctx, query, journalEntryID).Scan(
		&m.JournalEntryID,
		&m.UserID,
		&m.Title,
		&m.Content,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find journal entry by ID %s: %w", journalEntryID, err)
	}
	d := toDomainJournalEntry(m)
	return &d, nil
}

func (r *PgxJournalRepository) FindJournalEntriesByOwner(ctx context.Context, userID string) ([]domain.JournalEntry, error) {
	query := `
		SELECT journal_entry_id, user_id, title, content, created_at, updated_at
		FROM journal_entries
		WHERE user_id = $1
		ORDER BY created_at DESC;
	`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query journal entries for user %s: %w", userID, err)
	}
	defer rows.Close()

	entries := []domain.JournalEntry{}
	for rows.Next() {
		var m models.JournalEntry
		if err := rows.Scan(&m.JournalEntryID, &m.UserID, &m.Title, &m.Content, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan journal entry row: %w", err)
		}
		entries = append(entries, toDomainJournalEntry(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating journal entry rows: %w", err)
	}
	return entries, nil
}

func (r *PgxJournalRepository) UpdateJournalEntry(ctx context.Context, entry domain.JournalEntry) error {
	m := toModelJournalEntry(entry)
	query := `
		UPDATE journal_entries
		SET title = $2, content = $3, updated_at = $4
		WHERE journal_entry_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, m.JournalEntryID, m.Title, m.Content, m.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to update journal entry %s: %w", m.JournalEntryID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxJournalRepository) DeleteJournalEntry(ctx context.Context, journalEntryID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM journal_entries WHERE journal_entry_id = $1;`, journalEntryID)
	if err != nil {
		return fmt.Errorf("failed to delete journal entry %s: %w", journalEntryID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
