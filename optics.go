package optics

import (
	"context"
	"math"
	"sort"
	"time"

	"github.com/RoaringBitmap/roaring/v2"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"

	"github.com/hupe1980/optics/distance"
)

// NoPredecessor marks a point that was not reached from any core point.
const NoPredecessor = -1

// reachDecimals matches the float64 precision used when comparing core and
// reachability distances, so that ties and eps cuts agree on every platform.
const reachDecimals = 1e15

// Analysis is the result of an OPTICS ordering.
//
// Reachability, CoreDistances and Predecessor are indexed by point.
// Ordering lists point indices in traversal order.
type Analysis struct {
	Ordering      []int
	Reachability  []float64
	CoreDistances []float64
	Predecessor   []int
	MinSamples    int
	MaxEps        float64
}

// Len returns the number of analysed points.
func (a *Analysis) Len() int {
	return len(a.Ordering)
}

// ReachabilityPlot returns the reachability distances in traversal order.
func (a *Analysis) ReachabilityPlot() []float64 {
	plot := make([]float64, len(a.Ordering))
	for i, p := range a.Ordering {
		plot[i] = a.Reachability[p]
	}
	return plot
}

// Fit computes the OPTICS ordering of the rows of points.
//
// Each row is one point. The traversal always starts at point 0 and picks
// the unprocessed point with the smallest reachability next, breaking ties
// by the lowest index, so the result is deterministic.
func Fit(ctx context.Context, points mat.Matrix, opts ...Option) (*Analysis, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	start := time.Now()
	a, err := fit(ctx, points, o)

	var n int
	if points != nil {
		n, _ = points.Dims()
	}
	elapsed := time.Since(start)
	o.logger.LogFit(ctx, n, o.minSamples, elapsed, err)
	o.metrics.RecordFit(n, elapsed, err)

	return a, err
}

func fit(ctx context.Context, points mat.Matrix, o options) (*Analysis, error) {
	if points == nil {
		return nil, ErrEmptyDataset
	}
	n, d := points.Dims()
	if n == 0 {
		return nil, ErrEmptyDataset
	}
	if req := o.metric.MinDims(); d < req {
		return nil, &ErrDimension{Required: req, Actual: d}
	}
	if o.minSamples < 2 || o.minSamples > n {
		return nil, &ErrInvalidMinSamples{MinSamples: o.minSamples, Points: n}
	}
	if math.IsNaN(o.maxEps) || o.maxEps < 0 {
		return nil, ErrInvalidEps
	}

	distFunc, err := distance.Provider(o.metric)
	if err != nil {
		return nil, err
	}

	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = mat.Row(nil, i, points)
	}

	core, err := coreDistances(ctx, rows, o.minSamples, distFunc, o.workers)
	if err != nil {
		return nil, err
	}
	for i, c := range core {
		if c > o.maxEps {
			core[i] = math.Inf(1)
			continue
		}
		core[i] = roundReach(c)
	}

	a := &Analysis{
		Ordering:      make([]int, 0, n),
		Reachability:  make([]float64, n),
		CoreDistances: core,
		Predecessor:   make([]int, n),
		MinSamples:    o.minSamples,
		MaxEps:        o.maxEps,
	}
	for i := 0; i < n; i++ {
		a.Reachability[i] = math.Inf(1)
		a.Predecessor[i] = NoPredecessor
	}

	unprocessed := roaring.New()
	unprocessed.AddRange(0, uint64(n))

	for !unprocessed.IsEmpty() {
		if len(a.Ordering)%256 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		p := nextPoint(unprocessed, a.Reachability)
		unprocessed.Remove(uint32(p))
		a.Ordering = append(a.Ordering, p)

		if math.IsInf(core[p], 1) {
			continue
		}

		// Relax every unprocessed neighbour within maxEps.
		it := unprocessed.Iterator()
		for it.HasNext() {
			q := int(it.Next())
			dist := distFunc(rows[p], rows[q])
			if dist > o.maxEps {
				continue
			}
			rd := roundReach(math.Max(dist, core[p]))
			if rd < a.Reachability[q] {
				a.Reachability[q] = rd
				a.Predecessor[q] = p
			}
		}
	}

	if allInf(a.Reachability) {
		o.logger.WarnContext(ctx, "all reachability values are infinite; max_eps may be too small",
			"max_eps", o.maxEps,
		)
	}

	return a, nil
}

// nextPoint returns the unprocessed point with the smallest reachability.
// The bitmap iterates in ascending order, so the lowest index wins ties.
func nextPoint(unprocessed *roaring.Bitmap, reach []float64) int {
	best := -1
	it := unprocessed.Iterator()
	for it.HasNext() {
		q := int(it.Next())
		if best == -1 || reach[q] < reach[best] {
			best = q
		}
	}
	return best
}

// coreDistances computes, for every point, the distance to its
// minSamples-th nearest point, counting the point itself.
// Rows are split into chunks processed concurrently; each chunk writes
// only its own slots.
func coreDistances(ctx context.Context, rows [][]float64, minSamples int, distFunc distance.Func, workers int) ([]float64, error) {
	n := len(rows)
	core := make([]float64, n)

	if workers < 1 {
		workers = 1
	}
	chunk := (n + workers - 1) / workers
	if chunk < 64 {
		chunk = 64
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for lo := 0; lo < n; lo += chunk {
		hi := min(lo+chunk, n)
		g.Go(func() error {
			dists := make([]float64, n)
			for i := lo; i < hi; i++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				for j := range rows {
					dists[j] = distFunc(rows[i], rows[j])
				}
				sort.Float64s(dists)
				core[i] = dists[minSamples-1]
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return core, nil
}

func roundReach(v float64) float64 {
	if math.IsInf(v, 0) {
		return v
	}
	return math.RoundToEven(v*reachDecimals) / reachDecimals
}

func allInf(vs []float64) bool {
	for _, v := range vs {
		if !math.IsInf(v, 1) {
			return false
		}
	}
	return true
}
