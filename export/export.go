// Package export writes cluster assignments as delimited text tables.
package export

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"gonum.org/v1/gonum/mat"

	"github.com/hupe1980/optics"
	"github.com/hupe1980/optics/internal/fs"
)

// Header is the first line of every cluster table.
const Header = "# cluster,lat,lon"

// ErrLengthMismatch is returned when labels and points differ in length.
type ErrLengthMismatch struct {
	Labels int
	Points int
}

func (e *ErrLengthMismatch) Error() string {
	return fmt.Sprintf("export: %d labels for %d points", e.Labels, e.Points)
}

// ErrColumns is returned when points carry fewer than two coordinates.
type ErrColumns struct {
	Cols int
}

func (e *ErrColumns) Error() string {
	return fmt.Sprintf("export: points have %d columns, need 2", e.Cols)
}

// WriteClusters writes one "label,lat,lon" row per point to path, every
// value with six decimals.
//
// path holds either the complete new table or its previous content; a nil
// fsys means fs.Default.
func WriteClusters(fsys fs.FileSystem, path string, labels optics.Labels, points mat.Matrix) error {
	rows, cols := points.Dims()
	if len(labels) != rows {
		return &ErrLengthMismatch{Labels: len(labels), Points: rows}
	}
	if cols < 2 {
		return &ErrColumns{Cols: cols}
	}
	return fs.WriteAtomic(fsys, path, 0o644, func(w io.Writer) error {
		if _, err := fmt.Fprintln(w, Header); err != nil {
			return err
		}
		for i, l := range labels {
			if _, err := fmt.Fprintf(w, "%s,%s,%s\n", formatValue(float64(l)), formatValue(points.At(i, 0)), formatValue(points.At(i, 1))); err != nil {
				return err
			}
		}
		return nil
	})
}

// formatValue prints v like C's %f, spelling non-finite values nan, inf
// and -inf.
func formatValue(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}
	return strconv.FormatFloat(v, 'f', 6, 64)
}
