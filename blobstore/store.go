package blobstore

import (
	"context"
	"errors"
	"io"
	"os"
)

// ErrNotFound is returned when a blob does not exist.
//
// Implementations should return an error that satisfies `errors.Is(err, ErrNotFound)`.
// The default maps to `os.ErrNotExist`.
var ErrNotFound = os.ErrNotExist

// ErrUnsupportedScheme is returned by Mux for URIs without a registered store.
var ErrUnsupportedScheme = errors.New("blobstore: unsupported scheme")

// BlobStore is an abstraction for opening immutable input blobs.
type BlobStore interface {
	// Open opens a blob for reading.
	Open(ctx context.Context, name string) (Blob, error)
}

// Blob is a read-only handle to a data blob.
type Blob interface {
	io.ReaderAt
	io.Closer
	// Size returns the size of the blob in bytes.
	Size() int64
}

// Mappable is an optional interface for Blobs that expose their contents
// without copying.
type Mappable interface {
	// Bytes returns the underlying byte slice.
	// The slice is valid until the Blob is closed.
	Bytes() ([]byte, error)
}

// Bytes returns the full contents of b, zero-copy when b is Mappable.
func Bytes(b Blob) ([]byte, error) {
	if m, ok := b.(Mappable); ok {
		return m.Bytes()
	}
	buf := make([]byte, b.Size())
	if _, err := io.ReadFull(NewReader(b), buf); err != nil {
		return nil, err
	}
	return buf, nil
}

// NewReader returns a sequential reader over the whole blob.
func NewReader(b Blob) *io.SectionReader {
	return io.NewSectionReader(b, 0, b.Size())
}

// Open opens uri from s and unwraps compressed content.
// The returned blob must be closed by the caller.
func Open(ctx context.Context, s BlobStore, uri string) (Blob, error) {
	b, err := s.Open(ctx, uri)
	if err != nil {
		return nil, err
	}
	return Decompress(uri, b)
}
