package blobstore

import (
	"bytes"
	"context"
	"path/filepath"

	"github.com/hupe1980/optics/internal/mmap"
)

// LocalStore opens input files from the local file system. Files are mapped
// whole and read in place by the decoders.
type LocalStore struct {
	root string
}

// NewLocalStore creates a LocalStore resolving relative names against root.
// An empty root means the working directory.
func NewLocalStore(root string) *LocalStore {
	return &LocalStore{root: root}
}

// Open maps the named file.
func (s *LocalStore) Open(_ context.Context, name string) (Blob, error) {
	path := name
	if !filepath.IsAbs(name) {
		path = filepath.Join(s.root, name)
	}
	m, err := mmap.Map(path)
	if err != nil {
		return nil, err
	}
	return &mappedBlob{Reader: bytes.NewReader(m.Data()), m: m}, nil
}

// mappedBlob reads from the mapping; Close drops the reader before unmapping
// so later reads see an empty blob instead of released memory.
type mappedBlob struct {
	*bytes.Reader
	m *mmap.Mapping
}

func (b *mappedBlob) Close() error {
	b.Reader = bytes.NewReader(nil)
	return b.m.Close()
}

func (b *mappedBlob) Bytes() ([]byte, error) {
	return b.m.Data(), nil
}
