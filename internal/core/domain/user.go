package domain

import "time"

// AuthProvider identifies how a user authenticates.
type AuthProvider string

const (
	ProviderLocal  AuthProvider = "local"
	ProviderGoogle AuthProvider = "google"
)

// User represents an account in the domain.
type User struct {
	UserID         string       `json:"userID"`
	Username       string       `json:"username"`
	Email          string       `json:"email"`
	PasswordHash   *string      `json:"-"` // nil for OAuth-only accounts
	AuthProvider   AuthProvider `json:"authProvider"`
	ProviderUserID *string      `json:"-"`
	IsActive       bool         `json:"isActive"`
	IsSuperuser    bool         `json:"isSuperuser"`
	JoinedAt       time.Time    `json:"joinedAt"`

	RefreshTokenHash       string     `json:"-"`
	RefreshTokenExpiryTime *time.Time `json:"-"`
}

// Caller is the authenticated identity attached to every request.
// Ownership filters and the superuser override are decided from it.
type Caller struct {
	UserID      string
	IsSuperuser bool
}

// CanActOn reports whether the caller may operate on a record owned by ownerID.
func (c Caller) CanActOn(ownerID string) bool {
	return c.IsSuperuser || c.UserID == ownerID
}
