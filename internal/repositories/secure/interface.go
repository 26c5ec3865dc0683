// Package secure implements the secure-credential storage tier: a single
// email/password pair kept under a fixed service namespace, sealed with the
// device key before it reaches the database.
package secure

import (
	"context"
)

// Repository stores one credential pair per service namespace. Values are
// opaque blobs; sealing is the caller's concern.
type Repository interface {
	// Store upserts the credential pair for the service.
	Store(ctx context.Context, service string, username, secret []byte) error

	// Get returns the stored pair, or (nil, nil, nil) when absent.
	Get(ctx context.Context, service string) (username, secret []byte, err error)

	// Remove deletes the pair. Removing an absent pair is not an error.
	Remove(ctx context.Context, service string) error
}
