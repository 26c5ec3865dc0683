// Package plain implements the best-effort storage tier: unencrypted
// key/value settings holding the registration draft and the lockout
// bookkeeping counters.
package plain

import (
	"context"
)

// Repository is a key/value store over strings. An empty string is never a
// stored value; Get returning "" means the key is absent.
type Repository interface {
	// Set upserts the value under key.
	Set(ctx context.Context, key string, value string) error

	// Get returns the value under key, or "" when absent.
	Get(ctx context.Context, key string) (string, error)

	// Delete removes the key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// MultiDelete removes all given keys in one transaction.
	MultiDelete(ctx context.Context, keys ...string) error
}
