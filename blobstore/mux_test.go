package blobstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitURI(t *testing.T) {
	tests := []struct {
		uri    string
		scheme string
		name   string
	}{
		{"data.npy", "", "data.npy"},
		{"/tmp/data.npy", "", "/tmp/data.npy"},
		{"s3://bucket/key.arrow", "s3", "bucket/key.arrow"},
		{"file:///tmp/x", "file", "/tmp/x"},
	}

	for _, tt := range tests {
		t.Run(tt.uri, func(t *testing.T) {
			scheme, name := SplitURI(tt.uri)
			assert.Equal(t, tt.scheme, scheme)
			assert.Equal(t, tt.name, name)
		})
	}
}

func TestMux(t *testing.T) {
	local := NewMemoryStore()
	local.Put("data.npy", []byte("local"))
	remote := NewMemoryStore()
	remote.Put("bucket/data.npy", []byte("remote"))

	mux := NewMux(local)
	mux.Handle("s3", remote)
	ctx := context.Background()

	b, err := mux.Open(ctx, "data.npy")
	require.NoError(t, err)
	all, _ := Bytes(b)
	assert.Equal(t, "local", string(all))

	b, err = mux.Open(ctx, "s3://bucket/data.npy")
	require.NoError(t, err)
	all, _ = Bytes(b)
	assert.Equal(t, "remote", string(all))

	_, err = mux.Open(ctx, "gs://bucket/data.npy")
	assert.ErrorIs(t, err, ErrUnsupportedScheme)
}
