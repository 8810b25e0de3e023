// Package npy reads and writes NumPy .npy array files as gonum values.
package npy

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sbinet/npyio"
	"gonum.org/v1/gonum/mat"

	"github.com/hupe1980/optics/blobstore"
)

// ErrEmpty is returned for arrays without elements.
var ErrEmpty = errors.New("npy: array is empty")

// ErrShape indicates an array whose shape does not fit the expected layout.
type ErrShape struct {
	Shape []int
	Want  string
}

func (e *ErrShape) Error() string {
	return fmt.Sprintf("npy: shape %v, want %s", e.Shape, e.Want)
}

// ErrDType is returned for element types that are not numeric.
type ErrDType struct {
	DType string
}

func (e *ErrDType) Error() string {
	return fmt.Sprintf("npy: unsupported dtype %q", e.DType)
}

// ReadMatrix decodes a 2-D array of any numeric dtype as float64, in C or
// Fortran order.
func ReadMatrix(r io.Reader) (*mat.Dense, error) {
	nr, err := npyio.NewReader(r)
	if err != nil {
		return nil, err
	}
	shape := nr.Header.Descr.Shape
	if len(shape) != 2 {
		return nil, &ErrShape{Shape: shape, Want: "(rows, cols)"}
	}
	if shape[0] == 0 || shape[1] == 0 {
		return nil, ErrEmpty
	}

	data, err := readFloats(nr)
	if err != nil {
		return nil, err
	}
	if nr.Header.Descr.Fortran {
		return mat.DenseCopyOf(mat.NewDense(shape[1], shape[0], data).T()), nil
	}
	return mat.NewDense(shape[0], shape[1], data), nil
}

// ReadVector decodes a 1-D array of any numeric dtype as float64.
func ReadVector(r io.Reader) ([]float64, error) {
	nr, err := npyio.NewReader(r)
	if err != nil {
		return nil, err
	}
	shape := nr.Header.Descr.Shape
	if len(shape) != 1 {
		return nil, &ErrShape{Shape: shape, Want: "(n,)"}
	}
	return readFloats(nr)
}

// readFloats reads every element in file order, widened to float64.
func readFloats(nr *npyio.Reader) ([]float64, error) {
	dtype := nr.Header.Descr.Type
	switch strings.TrimLeft(dtype, "<>|=") {
	case "f8":
		var v []float64
		err := nr.Read(&v)
		return v, err
	case "f4":
		return readWiden[float32](nr)
	case "i8":
		return readWiden[int64](nr)
	case "i4":
		return readWiden[int32](nr)
	case "i2":
		return readWiden[int16](nr)
	case "i1":
		return readWiden[int8](nr)
	case "u8":
		return readWiden[uint64](nr)
	case "u4":
		return readWiden[uint32](nr)
	case "u2":
		return readWiden[uint16](nr)
	case "u1":
		return readWiden[uint8](nr)
	}
	return nil, &ErrDType{DType: dtype}
}

type number interface {
	~float32 | ~int8 | ~int16 | ~int32 | ~int64 | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

func readWiden[T number](nr *npyio.Reader) ([]float64, error) {
	var v []T
	if err := nr.Read(&v); err != nil {
		return nil, err
	}
	out := make([]float64, len(v))
	for i, x := range v {
		out[i] = float64(x)
	}
	return out, nil
}

// WriteMatrix encodes m as a 2-D float64 array.
func WriteMatrix(w io.Writer, m mat.Matrix) error {
	return npyio.Write(w, mat.DenseCopyOf(m))
}

// WriteVector encodes v as a 1-D float64 array.
func WriteVector(w io.Writer, v []float64) error {
	return npyio.Write(w, v)
}

// LoadMatrix opens uri from store and decodes it as a 2-D array.
func LoadMatrix(ctx context.Context, store blobstore.BlobStore, uri string) (*mat.Dense, error) {
	b, err := blobstore.Open(ctx, store, uri)
	if err != nil {
		return nil, err
	}
	defer b.Close()

	m, err := ReadMatrix(blobstore.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", uri, err)
	}
	return m, nil
}

// LoadVector opens uri from store and decodes it as a 1-D array.
func LoadVector(ctx context.Context, store blobstore.BlobStore, uri string) ([]float64, error) {
	b, err := blobstore.Open(ctx, store, uri)
	if err != nil {
		return nil, err
	}
	defer b.Close()

	v, err := ReadVector(blobstore.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", uri, err)
	}
	return v, nil
}

// RequireColumns returns an *ErrShape if m has fewer than n columns.
func RequireColumns(m mat.Matrix, n int) error {
	r, c := m.Dims()
	if c < n {
		return &ErrShape{Shape: []int{r, c}, Want: fmt.Sprintf("at least %d columns", n)}
	}
	return nil
}
