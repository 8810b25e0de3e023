// Package distance provides the point metrics used by OPTICS.
package distance

import (
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"gonum.org/v1/gonum/floats"
)

// Euclidean calculates the L2 distance between two points.
// Assumes points are the same length (caller's responsibility).
func Euclidean(a, b []float64) float64 {
	return floats.Distance(a, b, 2)
}

// Haversine calculates the great-circle distance in meters between two
// (lat, lon) points given in degrees. Only the first two coordinates are used.
func Haversine(a, b []float64) float64 {
	return geo.DistanceHaversine(orb.Point{a[1], a[0]}, orb.Point{b[1], b[0]})
}

// Metric represents the distance metric used for point comparison.
type Metric int

const (
	MetricEuclidean Metric = iota
	MetricHaversine
)

func (m Metric) String() string {
	switch m {
	case MetricEuclidean:
		return "Euclidean"
	case MetricHaversine:
		return "Haversine"
	default:
		return fmt.Sprintf("Unknown(%d)", m)
	}
}

// Func is a function type for distance calculation.
type Func func(a, b []float64) float64

// Provider returns the distance function for the given metric.
func Provider(m Metric) (Func, error) {
	switch m {
	case MetricEuclidean:
		return Euclidean, nil
	case MetricHaversine:
		return Haversine, nil
	default:
		return nil, fmt.Errorf("unsupported metric: %v", m)
	}
}

// MinDims returns the number of coordinates the metric reads.
// Zero means any dimensionality is accepted.
func (m Metric) MinDims() int {
	if m == MetricHaversine {
		return 2
	}
	return 0
}
