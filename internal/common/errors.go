// Package common defines shared constants and sentinel errors used across
// the regvault application layers. Callers should use errors.Is to match
// these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrInternal = errors.New("internal error")

	// Registration / login errors. ErrInvalidCredentials is deliberately the
	// same for an unknown email and a wrong password, so callers cannot
	// enumerate registered accounts from the error message.
	ErrDuplicateUser      = errors.New("user with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")

	// Lockout errors.
	ErrAccountLocked = errors.New("account is temporarily locked")

	// Validation errors.
	ErrValidation = errors.New("validation error")
)
