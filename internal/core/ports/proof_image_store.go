package ports

import (
	"context"
	"io"
	"time"
)

// ImageUpload is an incoming proof image payload. Size and ContentType come
// from the multipart part headers; Content is the payload stream.
type ImageUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Content     io.Reader
}

// StoredImage describes one artifact held by the store.
type StoredImage struct {
	Ref     string
	ModTime time.Time
}

// ProofImageStore is the artifact store for proof-of-delivery images.
// Blob writes are not transactional with the database: a record-write failure
// after a successful Save leaves the blob orphaned, to be collected by the
// orphan sweep.
type ProofImageStore interface {
	// Save persists the payload under a generated name and returns the
	// reference to record on the proof row.
	Save(ctx context.Context, upload ImageUpload) (string, error)

	// Remove deletes the artifact with the given reference.
	Remove(ctx context.Context, ref string) error

	// List enumerates all stored artifacts.
	List(ctx context.Context) ([]StoredImage, error)
}
