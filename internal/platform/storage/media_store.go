package storage

import (
	"context"
	"io"
)

// MediaStore persists uploaded media objects and returns publicly reachable
// URLs for them.
type MediaStore interface {
	// Put stores the object under the given key and returns its public URL.
	Put(ctx context.Context, key string, contentType string, size int64, r io.Reader) (string, error)
}
