package optics

import (
	"fmt"
	"math"
	"slices"
)

// ExtractDBSCAN labels points by cutting the reachability plot at eps.
//
// Walking the ordering, a point that is not reachable within eps but has a
// core distance within eps opens a new cluster. Points reachable within eps
// join the cluster opened last. Points that are neither are Noise.
func (a *Analysis) ExtractDBSCAN(eps float64) (Labels, error) {
	if math.IsNaN(eps) || eps < 0 {
		return nil, ErrInvalidEps
	}
	if eps > a.MaxEps {
		return nil, fmt.Errorf("%w: eps %v exceeds max_eps %v", ErrInvalidEps, eps, a.MaxEps)
	}

	labels := make(Labels, len(a.Ordering))
	current := Noise
	for _, p := range a.Ordering {
		far := a.Reachability[p] > eps
		nearCore := a.CoreDistances[p] <= eps
		if far && nearCore {
			current++
		}
		labels[p] = current
		if far && !nearCore {
			labels[p] = Noise
		}
	}
	return labels, nil
}

// ExtractXi labels points using steep down and steep up areas of the
// reachability plot. xi is the minimum relative steepness and must be in (0, 1).
// A minClusterSize of zero uses the analysis' MinSamples.
//
// It also returns the extracted clusters as inclusive [start, end] intervals
// over the ordering, smaller nested clusters before the clusters containing them.
// Labels are assigned to the first listed cluster covering only unlabelled points.
func (a *Analysis) ExtractXi(xi float64, minClusterSize int, predecessorCorrection bool) (Labels, [][2]int, error) {
	n := len(a.Ordering)
	if !(xi > 0 && xi < 1) {
		return nil, nil, ErrInvalidXi
	}
	if minClusterSize == 0 {
		minClusterSize = a.MinSamples
	}
	if minClusterSize < 2 || minClusterSize > n {
		return nil, nil, &ErrInvalidMinClusterSize{MinClusterSize: minClusterSize, Points: n}
	}

	predPlot := make([]int, n)
	for i, p := range a.Ordering {
		predPlot[i] = a.Predecessor[p]
	}

	x := xiExtractor{
		reach:      append(a.ReachabilityPlot(), math.Inf(1)),
		pred:       predPlot,
		ordering:   a.Ordering,
		xiComp:     1 - xi,
		minSamples: a.MinSamples,
		minSize:    minClusterSize,
		correct:    predecessorCorrection,
	}
	clusters := x.clusters()

	pos := make([]int, n)
	for i := range pos {
		pos[i] = Noise
	}
	label := 0
	for _, c := range clusters {
		if !allNoise(pos[c[0] : c[1]+1]) {
			continue
		}
		for i := c[0]; i <= c[1]; i++ {
			pos[i] = label
		}
		label++
	}

	labels := make(Labels, n)
	for i, p := range a.Ordering {
		labels[p] = pos[i]
	}
	return labels, clusters, nil
}

type steepDownArea struct {
	start, end int
	mib        float64
}

// xiExtractor holds the reachability plot with a trailing +Inf sentinel,
// which lets a cluster close at the end of the plot without an upward area.
type xiExtractor struct {
	reach      []float64
	pred       []int
	ordering   []int
	xiComp     float64
	minSamples int
	minSize    int
	correct    bool
}

func (x *xiExtractor) clusters() [][2]int {
	r := x.reach
	n := len(r) - 1

	steepUp := make([]bool, n)
	steepDown := make([]bool, n)
	up := make([]bool, n)
	down := make([]bool, n)
	for i := 0; i < n; i++ {
		// NaN ratios (Inf/Inf) compare false everywhere.
		ratio := r[i] / r[i+1]
		steepUp[i] = ratio <= x.xiComp
		steepDown[i] = ratio >= 1/x.xiComp
		down[i] = ratio > 1
		up[i] = ratio < 1
	}

	var (
		sdas     []*steepDownArea
		clusters [][2]int
		index    int
		mib      float64 // maximum in between
	)

	for steep := 0; steep < n; steep++ {
		if !steepUp[steep] && !steepDown[steep] {
			continue
		}
		if steep < index {
			continue
		}

		mib = math.Max(mib, slices.Max(r[index:steep+1]))
		sdas = x.filterSDAs(sdas, mib)

		if steepDown[steep] {
			end := extendRegion(steepDown, up, steep, x.minSamples)
			sdas = append(sdas, &steepDownArea{start: steep, end: end})
			index = end + 1
			mib = r[index]
			continue
		}

		uStart := steep
		uEnd := extendRegion(steepUp, down, uStart, x.minSamples)
		index = uEnd + 1
		mib = r[index]

		var found [][2]int
		for _, d := range sdas {
			cStart, cEnd := d.start, uEnd

			if r[cEnd+1]*x.xiComp < d.mib {
				continue
			}

			dMax := r[d.start]
			if dMax*x.xiComp >= r[cEnd+1] {
				for r[cStart+1] > r[cEnd+1] && cStart < d.end {
					cStart++
				}
			} else if r[cEnd+1]*x.xiComp >= dMax {
				for cEnd > uStart && r[cEnd-1] > dMax {
					cEnd--
				}
			}

			if x.correct {
				var ok bool
				cStart, cEnd, ok = x.correctPredecessor(cStart, cEnd)
				if !ok {
					continue
				}
			}

			if cEnd-cStart+1 < x.minSize {
				continue
			}
			if cStart > d.end {
				continue
			}
			if cEnd < uStart {
				continue
			}
			found = append(found, [2]int{cStart, cEnd})
		}

		slices.Reverse(found)
		clusters = append(clusters, found...)
	}

	return clusters
}

// filterSDAs drops steep down areas whose start is not sufficiently above
// mib and raises the mib of the remaining ones.
func (x *xiExtractor) filterSDAs(sdas []*steepDownArea, mib float64) []*steepDownArea {
	if math.IsInf(mib, 0) {
		return nil
	}
	kept := sdas[:0]
	for _, d := range sdas {
		if mib <= x.reach[d.start]*x.xiComp {
			d.mib = math.Max(d.mib, mib)
			kept = append(kept, d)
		}
	}
	return kept
}

// correctPredecessor shrinks [s, e] from the right until the end point was
// reached from inside the interval or the start is higher than the end.
func (x *xiExtractor) correctPredecessor(s, e int) (int, int, bool) {
	for s < e {
		if x.reach[s] > x.reach[e] {
			return s, e, true
		}
		pe := x.pred[e]
		if slices.Contains(x.ordering[s:e], pe) {
			return s, e, true
		}
		e--
	}
	return 0, 0, false
}

// extendRegion grows a steep area starting at start. The area may contain
// at most minSamples consecutive points that are neither steep nor moving in
// the area's direction, and ends before the first point moving the other way.
func extendRegion(steep, xward []bool, start, minSamples int) int {
	nonXward := 0
	end := start
	for i := start; i < len(steep); i++ {
		switch {
		case steep[i]:
			nonXward = 0
			end = i
		case !xward[i]:
			nonXward++
			if nonXward > minSamples {
				return end
			}
		default:
			return end
		}
	}
	return end
}

func allNoise(labels []int) bool {
	for _, l := range labels {
		if l != Noise {
			return false
		}
	}
	return true
}
