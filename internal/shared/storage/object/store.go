package object

import (
	"context"
	"io"
)

// ObjectStore defines the contract for saving and retrieving binary objects.
type ObjectStore interface {
	// Save stores the reader contents under a fresh key derived from fileName
	// and returns the key, the byte count and the sniffed MIME type.
	Save(ctx context.Context, fileName string, r io.Reader) (storageKey string, sizeBytes int64, mimeType string, err error)
	Open(ctx context.Context, storageKey string) (io.ReadCloser, error)
	// PublicURL returns the browser-reachable URL for a stored object.
	PublicURL(storageKey string) string
}
