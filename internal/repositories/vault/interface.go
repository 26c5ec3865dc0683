// Package vault implements the encrypted-record storage tier: a key/value
// table holding the persisted user record and the session token, values
// sealed with the device key before they reach the database.
package vault

import (
	"context"
)

// Repository is a key/value store over opaque blobs.
type Repository interface {
	// Set upserts the value under key.
	Set(ctx context.Context, key string, value []byte) error

	// Get returns the value under key, or (nil, nil) when absent.
	Get(ctx context.Context, key string) ([]byte, error)

	// Delete removes the key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Clear wipes the whole tier.
	Clear(ctx context.Context) error
}
