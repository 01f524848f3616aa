// Package auth contains credential helpers for the demo login table.
package auth

import (
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword hashes a password with bcrypt at the given cost. A cost
// outside bcrypt's range uses bcrypt.DefaultCost.
func HashPassword(password string, cost int) (string, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether password matches the bcrypt hash.
func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// Credentials maps a lower-cased email to a bcrypt password hash.
type Credentials map[string]string

// NewCredentials hashes every plain-text password in table.
func NewCredentials(table map[string]string, cost int) (Credentials, error) {
	creds := make(Credentials, len(table))
	for email, password := range table {
		hash, err := HashPassword(password, cost)
		if err != nil {
			return nil, err
		}
		creds[normalize(email)] = hash
	}
	return creds, nil
}

// Lookup returns the stored hash for email.
func (c Credentials) Lookup(email string) (string, bool) {
	hash, ok := c[normalize(email)]
	return hash, ok
}

// Verify checks password against the entry for email. Emails without an
// entry have no password set and always verify.
func (c Credentials) Verify(email, password string) bool {
	hash, ok := c.Lookup(email)
	if !ok {
		return true
	}
	return CheckPassword(password, hash)
}

func normalize(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
