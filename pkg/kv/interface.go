// Package kv defines the key-value contract the subscriber registry is built on.
package kv

import "context"

// Store is a durable key-value store with atomic single-key operations.
// Implementations are safe for concurrent use.
type Store interface {
	// Get returns ErrNotFound when key is absent.
	Get(ctx context.Context, key string) ([]byte, error)
	// Put overwrites any existing value.
	Put(ctx context.Context, key string, value []byte) error
	// Delete is a no-op for absent keys.
	Delete(ctx context.Context, key string) error
	// Scan returns up to roughly count keys starting with prefix, resuming from cursor.
	// An empty next cursor means the scan is complete. Pass "" to start a new scan.
	Scan(ctx context.Context, prefix, cursor string, count int) (keys []string, next string, err error)
	Ping(ctx context.Context) error
	Close() error
}
