// Package store provides the durable string-keyed store the commerce state
// layer persists into, with in-memory, file-backed, and MongoDB-backed
// implementations. The store offers no atomicity across keys and no
// read-modify-write isolation within a key; callers serialize their own
// read-modify-write sequences (see KeyLock).
package store

import "context"

// KeyValueStore is the persistence contract. All operations may fail with a
// STORE_IO_ERROR; Get reports absence through its second return rather than
// an error.
type KeyValueStore interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}

// Key layout. Cart and order history are scoped to the owning user's email
// so that switching accounts on one device never leaks state between them.
const sessionKey = "session"

// UserKey returns the store key holding the user record for an email.
func UserKey(email string) string { return "user:" + email }

// CartKey returns the store key holding a user's active cart.
func CartKey(email string) string { return "cart:" + email }

// OrdersKey returns the store key holding a user's order history.
func OrdersKey(email string) string { return "orders:" + email }

// SessionKey returns the store key holding the current-session pointer.
func SessionKey() string { return sessionKey }
