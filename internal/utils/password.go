package utils

import "golang.org/x/crypto/bcrypt"

// HashPassword derives a bcrypt hash at the default cost for storage in the
// users table. OAuth-only accounts never call this; their password_hash stays
// NULL.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPasswordHash reports whether password matches the stored bcrypt hash.
func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
