// Package storage defines the durable key-value text blob store consumed by
// the directory and session services. Implementations must treat malformed or
// missing content as absent rather than failing callers.
package storage

import (
	"context"
	"errors"
)

// ErrNotFound indicates a requested key holds no value.
var ErrNotFound = errors.New("key not found")

// BlobStore persists opaque text blobs by key.
type BlobStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
}
