package users

import (
	"context"
)

// Repository is the injected user directory abstraction. Implementations
// must provide atomic check-and-insert semantics: PutIfAbsent either inserts
// the user or reports common.ErrDuplicateUser, with no window in between.
type Repository interface {
	// PutIfAbsent inserts the user keyed by its (already normalized) email.
	// Returns common.ErrDuplicateUser when the email is taken.
	PutIfAbsent(ctx context.Context, user *User) error

	// GetByEmail returns the user stored under the normalized email, or
	// common.ErrNotFound.
	GetByEmail(ctx context.Context, email string) (*User, error)

	// Remove deletes the user stored under the normalized email. Removing an
	// absent user is not an error.
	Remove(ctx context.Context, email string) error

	// Clear wipes the whole directory.
	Clear(ctx context.Context) error
}
