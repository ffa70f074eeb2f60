package port

import (
	"context"
	"io"
)

// PutObjectInput describes one document to store.
type PutObjectInput struct {
	Key         string
	Body        io.Reader
	ContentType string
	Size        int64
}

// StoredObject is the location of a stored document.
type StoredObject struct {
	Key      string
	Location string
	ETag     string
}

// DocumentStorage keeps uploaded student documents. Implementations are bound
// to a single bucket or namespace.
type DocumentStorage interface {
	Put(ctx context.Context, input PutObjectInput) (*StoredObject, error)
	Delete(ctx context.Context, key string) error
	// URL returns a link the client can use to fetch the document.
	URL(ctx context.Context, key string) (string, error)
}
