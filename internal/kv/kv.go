// Package kv provides the key-value capability used for credential storage.
// Values carry optional metadata (an expiry timestamp) stored alongside the
// payload so callers can check expiry without deserializing the value.
package kv

import (
	"context"
	"errors"
	"time"
)

var ErrNotFound = errors.New("kv: key not found")

type Metadata struct {
	ExpiresAt *time.Time
}

type Store interface {
	// GetWithMetadata returns the stored value and its metadata, or
	// ErrNotFound when the key has never been written.
	GetWithMetadata(ctx context.Context, key string) ([]byte, Metadata, error)
	// Put overwrites value and metadata as one record. Readers never
	// observe a partial write.
	Put(ctx context.Context, key string, value []byte, meta Metadata) error
}
