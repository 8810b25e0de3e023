// Package chart renders OPTICS datasets and reachability plots.
package chart

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Default image size.
const (
	Width  = 8 * vg.Inch
	Height = 6 * vg.Inch
)

var (
	// ErrNoValues is returned when a plot would be empty.
	ErrNoValues = errors.New("chart: no values")
	// ErrColumns is returned for datasets with fewer than two columns.
	ErrColumns = errors.New("chart: scatter needs at least two columns")
)

// FormatValues prints values on a single line as "[v0 v1 ...]".
func FormatValues(w io.Writer, values []float64) error {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range values {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(formatFloat(v))
	}
	sb.WriteString("]\n")
	_, err := io.WriteString(w, sb.String())
	return err
}

func formatFloat(v float64) string {
	switch {
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	case math.IsNaN(v):
		return "nan"
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// Scatter plots the first two columns of points.
func Scatter(points mat.Matrix) (*plot.Plot, error) {
	rows, cols := points.Dims()
	if cols < 2 {
		return nil, ErrColumns
	}
	if rows == 0 {
		return nil, ErrNoValues
	}

	xys := make(plotter.XYs, rows)
	for i := range xys {
		xys[i].X = points.At(i, 0)
		xys[i].Y = points.At(i, 1)
	}
	s, err := plotter.NewScatter(xys)
	if err != nil {
		return nil, fmt.Errorf("chart: scatter: %w", err)
	}
	s.GlyphStyle.Radius = vg.Points(1.5)

	p := plot.New()
	p.Title.Text = "Dataset"
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"
	p.Add(s)
	return p, nil
}

// ReachabilityBars builds one bar per value, in order. Non-finite values
// become zero-height bars.
func ReachabilityBars(values []float64) (*plotter.BarChart, error) {
	if len(values) == 0 {
		return nil, ErrNoValues
	}
	vs := make(plotter.Values, len(values))
	for i, v := range values {
		if math.IsInf(v, 0) || math.IsNaN(v) {
			continue
		}
		vs[i] = v
	}
	bars, err := plotter.NewBarChart(vs, vg.Points(2))
	if err != nil {
		return nil, fmt.Errorf("chart: bars: %w", err)
	}
	bars.LineStyle.Width = 0
	return bars, nil
}

// Reachability plots values as a bar chart indexed by position.
func Reachability(values []float64) (*plot.Plot, error) {
	bars, err := ReachabilityBars(values)
	if err != nil {
		return nil, err
	}

	p := plot.New()
	p.Title.Text = "Reachability plot"
	p.X.Label.Text = "ordering"
	p.Y.Label.Text = "reachability"
	p.Add(bars)
	return p, nil
}

// Save encodes p as format ("png", "svg", "pdf", ...) into w.
func Save(p *plot.Plot, w io.Writer, format string) error {
	wt, err := p.WriterTo(Width, Height, format)
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}
