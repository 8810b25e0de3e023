package blobstore

import (
	"context"
	"fmt"
	"strings"
)

// Mux routes URIs to stores by scheme. Names without a scheme go to the
// local store.
//
//	mux := blobstore.NewMux(blobstore.NewLocalStore(""))
//	mux.Handle("s3", s3Store)
//	blob, err := mux.Open(ctx, "s3://bucket/data.arrow")
type Mux struct {
	local  BlobStore
	stores map[string]BlobStore
}

// NewMux creates a Mux that sends scheme-less names to local.
func NewMux(local BlobStore) *Mux {
	return &Mux{
		local:  local,
		stores: make(map[string]BlobStore),
	}
}

// Handle registers store for scheme (e.g. "s3").
func (m *Mux) Handle(scheme string, store BlobStore) {
	m.stores[scheme] = store
}

// Open opens uri from the store registered for its scheme.
// The store receives the part after "scheme://".
func (m *Mux) Open(ctx context.Context, uri string) (Blob, error) {
	scheme, name := SplitURI(uri)
	if scheme == "" || scheme == "file" {
		return m.local.Open(ctx, name)
	}
	store, ok := m.stores[scheme]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedScheme, scheme)
	}
	return store.Open(ctx, name)
}

// SplitURI splits "scheme://name" into its parts. Plain paths have an
// empty scheme.
func SplitURI(uri string) (scheme, name string) {
	scheme, name, ok := strings.Cut(uri, "://")
	if !ok {
		return "", uri
	}
	return scheme, name
}
