package service

import (
	"context"
	"io"
)

// MediaStore persists uploaded binary assets (product images) and returns
// the public URL clients should use.
type MediaStore interface {
	// Save writes the object under key and returns its public URL.
	Save(ctx context.Context, key string, contentType string, body io.Reader) (string, error)

	// Delete removes the object. Deleting an absent object is a no-op.
	Delete(ctx context.Context, key string) error

	// Close releases the underlying bucket.
	Close() error
}
