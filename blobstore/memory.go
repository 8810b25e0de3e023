package blobstore

import (
	"bytes"
	"context"
	"sync"
)

// MemoryStore is an in-memory BlobStore implementation for testing.
// Thread-safe for concurrent reads and writes.
type MemoryStore struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

// NewMemoryStore creates a new in-memory blob store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		blobs: make(map[string][]byte),
	}
}

// Open opens a blob for reading.
func (m *MemoryStore) Open(_ context.Context, name string) (Blob, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	data, ok := m.blobs[name]
	if !ok {
		return nil, ErrNotFound
	}
	return NewBytesBlob(bytes.Clone(data)), nil
}

// Put stores a copy of data under name.
func (m *MemoryStore) Put(name string, data []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.blobs[name] = bytes.Clone(data)
}

// BytesBlob is a Blob backed by a byte slice.
type BytesBlob struct {
	r    *bytes.Reader
	data []byte
}

// NewBytesBlob wraps data without copying.
func NewBytesBlob(data []byte) *BytesBlob {
	return &BytesBlob{r: bytes.NewReader(data), data: data}
}

func (b *BytesBlob) ReadAt(p []byte, off int64) (int, error) { return b.r.ReadAt(p, off) }
func (b *BytesBlob) Close() error                             { return nil }
func (b *BytesBlob) Size() int64                              { return int64(len(b.data)) }
func (b *BytesBlob) Bytes() ([]byte, error)                   { return b.data, nil }
