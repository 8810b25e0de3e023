package mmap

import (
	"errors"
	"math"
	"os"
	"sync"
)

var (
	// ErrTooLarge is returned for files that do not fit the address space.
	ErrTooLarge = errors.New("mmap: file too large to map")
	// ErrNotRegular is returned for directories, pipes and devices.
	ErrNotRegular = errors.New("mmap: not a regular file")
)

// Mapping is a whole input file mapped read-only for one front-to-back
// decode. The kernel is advised of sequential access where supported.
type Mapping struct {
	mu      sync.Mutex
	data    []byte
	release func([]byte) error
}

// Map maps the file at path. The descriptor is closed before Map returns.
// Empty files yield an empty Mapping without a kernel mapping.
func Map(path string) (*Mapping, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, err
	}
	if !fi.Mode().IsRegular() {
		return nil, &os.PathError{Op: "mmap", Path: path, Err: ErrNotRegular}
	}
	if fi.Size() == 0 {
		return &Mapping{}, nil
	}
	if fi.Size() > math.MaxInt {
		return nil, ErrTooLarge
	}

	data, release, err := mapFile(f, int(fi.Size()))
	if err != nil {
		return nil, &os.PathError{Op: "mmap", Path: path, Err: err}
	}
	return &Mapping{data: data, release: release}, nil
}

// Data returns the file contents. It is nil after Close.
func (m *Mapping) Data() []byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.data
}

// Close releases the mapping. Later calls are no-ops.
func (m *Mapping) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	data, release := m.data, m.release
	m.data, m.release = nil, nil
	if release == nil {
		return nil
	}
	return release(data)
}
