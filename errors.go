package optics

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyDataset is returned when there are no points to cluster.
	ErrEmptyDataset = errors.New("dataset is empty")

	// ErrInvalidEps is returned when a cut threshold is negative or NaN.
	ErrInvalidEps = errors.New("eps must be a non-negative number")

	// ErrInvalidXi is returned when xi is outside the open interval (0, 1).
	ErrInvalidXi = errors.New("xi must be in (0, 1)")

	// ErrUnknownMethod is returned for an unsupported extraction method.
	ErrUnknownMethod = errors.New("unknown cluster method")
)

// ErrInvalidMinSamples indicates a neighbourhood size that cannot be used
// with the given number of points.
type ErrInvalidMinSamples struct {
	MinSamples int
	Points     int
}

func (e *ErrInvalidMinSamples) Error() string {
	return fmt.Sprintf("min_samples must be in [2, %d], got %d", e.Points, e.MinSamples)
}

// ErrInvalidMinClusterSize indicates a Xi minimum cluster size outside [2, points].
type ErrInvalidMinClusterSize struct {
	MinClusterSize int
	Points         int
}

func (e *ErrInvalidMinClusterSize) Error() string {
	return fmt.Sprintf("min_cluster_size must be in [2, %d], got %d", e.Points, e.MinClusterSize)
}

// ErrDimension indicates that the points have too few coordinates for the metric.
type ErrDimension struct {
	Required int
	Actual   int
}

func (e *ErrDimension) Error() string {
	return fmt.Sprintf("points need at least %d columns, got %d", e.Required, e.Actual)
}
