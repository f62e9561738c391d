// internal/infrastructure/storage/store.go
package storage

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when no snapshot exists under the key
var ErrNotFound = errors.New("snapshot not found")

// Store is the durable key-value snapshot contract. Every successful
// state-mutating command writes its logical snapshot under a stable key;
// snapshots are read back only once, to seed a fresh session store.
type Store interface {
	Put(ctx context.Context, key string, value interface{}) error
	Get(ctx context.Context, key string, dest interface{}) error
	Delete(ctx context.Context, key string) error
}

// Snapshot keys. The three entries are independent: removing one never
// implies removing another.

// CartItemsKey returns the key holding a session's cart item list
func CartItemsKey(sessionID string) string {
	return "cart:" + sessionID + ":items"
}

// ShippingAddressKey returns the key holding a session's shipping address
func ShippingAddressKey(sessionID string) string {
	return "cart:" + sessionID + ":shipping"
}

// SessionKey returns the key holding a session's user session
func SessionKey(sessionID string) string {
	return "session:" + sessionID
}
