// Package storage holds the string-keyed stores that back a client's cart and
// session, the server-side counterpart of a browser's local storage.
package storage

import "context"

// Store reads and writes the keys of a single client namespace.
type Store interface {
	// Get returns ok=false when the key is absent.
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
	Delete(key string) error
}

// Backend hands out one Store per client.
type Backend interface {
	Namespace(ctx context.Context, clientID string) Store
}
