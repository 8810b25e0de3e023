package blobstore

import (
	"bytes"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// CompressionType identifies a whole-file compression wrapper.
type CompressionType uint8

const (
	// CompressionNone indicates raw content.
	CompressionNone CompressionType = iota
	// CompressionZSTD indicates a zstd frame (".zst").
	CompressionZSTD
	// CompressionGzip indicates a gzip stream (".gz").
	CompressionGzip
	// CompressionLZ4 indicates an LZ4 frame (".lz4").
	CompressionLZ4
)

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionZSTD:
		return "zstd"
	case CompressionGzip:
		return "gzip"
	case CompressionLZ4:
		return "lz4"
	default:
		return fmt.Sprintf("Unknown(%d)", uint8(c))
	}
}

// CompressionFor infers the compression from the name's extension.
func CompressionFor(name string) CompressionType {
	switch strings.ToLower(path.Ext(name)) {
	case ".zst", ".zstd":
		return CompressionZSTD
	case ".gz":
		return CompressionGzip
	case ".lz4":
		return CompressionLZ4
	default:
		return CompressionNone
	}
}

// Decompress returns b unchanged for uncompressed names. Otherwise it reads
// and decodes the whole blob into memory and closes b.
func Decompress(name string, b Blob) (Blob, error) {
	ct := CompressionFor(name)
	if ct == CompressionNone {
		return b, nil
	}
	defer b.Close()

	r, err := newDecoder(ct, NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ct, err)
	}
	defer r.Close()

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		return nil, fmt.Errorf("%s: %w", ct, err)
	}
	return NewBytesBlob(buf.Bytes()), nil
}

func newDecoder(ct CompressionType, r io.Reader) (io.ReadCloser, error) {
	switch ct {
	case CompressionZSTD:
		dec, err := zstd.NewReader(r)
		if err != nil {
			return nil, err
		}
		return dec.IOReadCloser(), nil
	case CompressionGzip:
		return gzip.NewReader(r)
	case CompressionLZ4:
		return io.NopCloser(lz4.NewReader(r)), nil
	default:
		return io.NopCloser(r), nil
	}
}
