// Package users holds the user directory: the authoritative store of
// registered identities, keyed by normalized email.
package users

import (
	"strings"
	"time"
)

// User represents one registered identity. Email is the unique directory
// key and is always stored in normalized (lower-cased, trimmed) form.
//
// PasswordHash is the encoded argon2id digest of the login password. It is
// never serialized to storage tiers; Redacted strips it before a user record
// leaves the directory.
type User struct {
	ID           string    `json:"id"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	Country      string    `json:"country"`
	DateOfBirth  string    `json:"dateOfBirth"`
	Gender       string    `json:"gender"`
	Address      string    `json:"address"`
	City         string    `json:"city"`
	PostalCode   string    `json:"postalCode"`
	CreatedAt    time.Time `json:"createdAt"`
	PasswordHash string    `json:"-"`
}

// Redacted returns a copy of the user without secret material.
func (u *User) Redacted() *User {
	c := *u
	c.PasswordHash = ""
	return &c
}

// NormalizeEmail lower-cases the email and trims surrounding whitespace.
// Directory lookups and uniqueness checks always use this form.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
