package models

import (
	"database/sql"
	"time"
)

// User is the database row for an account.
type User struct {
	UserID         string         `db:"user_id"`
	Username       string         `db:"username"`
	Email          string         `db:"email"`
	PasswordHash   sql.NullString `db:"password_hash"`
	AuthProvider   string         `db:"auth_provider"`
	ProviderUserID sql.NullString `db:"provider_user_id"`
	IsActive       bool           `db:"is_active"`
	IsSuperuser    bool           `db:"is_superuser"`
	JoinedAt       time.Time      `db:"joined_at"`

	RefreshTokenHash       sql.NullString `db:"refresh_token_hash"`
	RefreshTokenExpiryTime sql.NullTime   `db:"refresh_token_expiry_time"`
}
