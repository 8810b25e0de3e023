package optics

import (
	"context"
	"fmt"
	"slices"

	"gonum.org/v1/gonum/mat"
)

// Params is the full parameter set of a clustering run.
type Params struct {
	// MinSamples is the core point neighbourhood size, including the point.
	MinSamples int
	// Method selects the extraction applied to the ordering.
	Method Method
	// Eps is the reachability cut used by MethodDBSCAN.
	Eps float64
	// Xi is the minimum steepness used by MethodXi.
	Xi float64
	// MinClusterSize is used by MethodXi. Zero means MinSamples.
	MinClusterSize int
	// DisablePredecessorCorrection turns off the Xi predecessor check.
	DisablePredecessorCorrection bool
}

// Cluster orders points with OPTICS and extracts labels with p.Method.
// p.MinSamples overrides any WithMinSamples option.
func Cluster(ctx context.Context, points mat.Matrix, p Params, opts ...Option) (Labels, *Analysis, error) {
	opts = append(slices.Clip(opts), WithMinSamples(p.MinSamples))

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	a, err := Fit(ctx, points, opts...)
	if err != nil {
		return nil, nil, err
	}

	var labels Labels
	switch p.Method {
	case MethodDBSCAN:
		labels, err = a.ExtractDBSCAN(p.Eps)
	case MethodXi:
		labels, _, err = a.ExtractXi(p.Xi, p.MinClusterSize, !p.DisablePredecessorCorrection)
	default:
		err = fmt.Errorf("%w: %v", ErrUnknownMethod, p.Method)
	}
	if err != nil {
		return nil, nil, err
	}

	o.logger.LogExtract(ctx, p.Method, labels)
	o.metrics.RecordExtract(p.Method, labels.NumClusters(), labels.NoiseCount())
	return labels, a, nil
}
