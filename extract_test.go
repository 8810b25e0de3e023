package optics

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/hupe1980/optics/testutil"
)

func TestExtractDBSCAN(t *testing.T) {
	a, err := Fit(context.Background(), linePoints(), WithMinSamples(2))
	require.NoError(t, err)

	tests := []struct {
		name     string
		eps      float64
		expected Labels
	}{
		{"TwoGroups", 2, Labels{0, 0, 0, 1, 1, 1}},
		{"Merged", 8, Labels{0, 0, 0, 0, 0, 0}},
		{"AllNoise", 0.5, Labels{Noise, Noise, Noise, Noise, Noise, Noise}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			labels, err := a.ExtractDBSCAN(tt.eps)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, labels)
		})
	}
}

func TestExtractDBSCAN_NonCoreStartIsNoise(t *testing.T) {
	// An outlier at index 0 is visited first; it is neither reachable nor
	// core within eps, so it stays noise and the cluster that follows is 0.
	inf := math.Inf(1)
	a := &Analysis{
		Ordering:      []int{0, 1, 2, 3},
		Reachability:  []float64{inf, 5, 0.1, 0.1},
		CoreDistances: []float64{3, 0.1, 0.1, 0.1},
		Predecessor:   []int{NoPredecessor, 0, 1, 2},
		MinSamples:    2,
		MaxEps:        inf,
	}

	labels, err := a.ExtractDBSCAN(1)
	require.NoError(t, err)
	assert.Equal(t, Labels{Noise, 0, 0, 0}, labels)
}

func TestExtractDBSCAN_EpsBoundary(t *testing.T) {
	// 0.31-0.3 is 0.010000000000000009 in float64; core and reachability
	// are both rounded, so the pair sits exactly on eps.
	points := mat.NewDense(2, 2, []float64{0.3, 0, 0.31, 0})

	a, err := Fit(context.Background(), points, WithMinSamples(2))
	require.NoError(t, err)
	assert.Equal(t, []float64{0.01, 0.01}, a.CoreDistances)
	assert.Equal(t, 0.01, a.Reachability[1])

	labels, err := a.ExtractDBSCAN(0.01)
	require.NoError(t, err)
	assert.Equal(t, Labels{0, 0}, labels)
}

func TestExtractDBSCAN_Errors(t *testing.T) {
	a, err := Fit(context.Background(), linePoints(), WithMinSamples(2), WithMaxEps(3))
	require.NoError(t, err)

	_, err = a.ExtractDBSCAN(-1)
	assert.ErrorIs(t, err, ErrInvalidEps)

	_, err = a.ExtractDBSCAN(math.NaN())
	assert.ErrorIs(t, err, ErrInvalidEps)

	_, err = a.ExtractDBSCAN(4)
	assert.ErrorIs(t, err, ErrInvalidEps)
}

func TestExtractXi_Line(t *testing.T) {
	a, err := Fit(context.Background(), linePoints(), WithMinSamples(2))
	require.NoError(t, err)

	labels, clusters, err := a.ExtractXi(0.1, 0, true)
	require.NoError(t, err)

	assert.Equal(t, Labels{0, 0, 0, 1, 1, 1}, labels)
	assert.Equal(t, [][2]int{{0, 2}, {3, 5}, {0, 5}}, clusters)
}

func TestExtractXi_MinClusterSize(t *testing.T) {
	a, err := Fit(context.Background(), linePoints(), WithMinSamples(2))
	require.NoError(t, err)

	// Only the interval spanning every point is large enough.
	labels, clusters, err := a.ExtractXi(0.1, 4, true)
	require.NoError(t, err)

	assert.Equal(t, [][2]int{{0, 5}}, clusters)
	assert.Equal(t, Labels{0, 0, 0, 0, 0, 0}, labels)
}

func TestExtractXi_SeparatesBlobs(t *testing.T) {
	rng := testutil.NewRNG(11)
	points := rng.Blobs([][]float64{{0, 0}, {20, 20}}, 60, 0.5)

	a, err := Fit(context.Background(), points, WithMinSamples(5))
	require.NoError(t, err)

	labels, _, err := a.ExtractXi(0.05, 0, true)
	require.NoError(t, err)
	require.Len(t, labels, 120)
	assert.GreaterOrEqual(t, labels.NumClusters(), 2)

	// No cluster may span both blobs.
	first := make(map[int]bool)
	for p := 0; p < 60; p++ {
		if labels[p] != Noise {
			first[labels[p]] = true
		}
	}
	for p := 60; p < 120; p++ {
		assert.False(t, labels[p] != Noise && first[labels[p]], "label %d spans both blobs", labels[p])
	}
}

func TestExtractXi_Errors(t *testing.T) {
	a, err := Fit(context.Background(), linePoints(), WithMinSamples(2))
	require.NoError(t, err)

	for _, xi := range []float64{0, 1, -0.5, 2, math.NaN()} {
		_, _, err := a.ExtractXi(xi, 0, true)
		assert.ErrorIs(t, err, ErrInvalidXi)
	}

	_, _, err = a.ExtractXi(0.1, 7, true)
	var imcs *ErrInvalidMinClusterSize
	require.True(t, errors.As(err, &imcs))
	assert.Equal(t, 7, imcs.MinClusterSize)

	_, _, err = a.ExtractXi(0.1, 1, true)
	assert.True(t, errors.As(err, &imcs))
}

func TestExtendRegion(t *testing.T) {
	steep := []bool{true, false, true, false, false, false, true}
	xward := []bool{false, false, false, false, false, false, false}

	// Two consecutive non-steep points are tolerated with minSamples 2,
	// three are not.
	assert.Equal(t, 2, extendRegion(steep, xward, 0, 2))
	assert.Equal(t, 6, extendRegion(steep, xward, 0, 3))

	// A point moving the other way ends the region.
	xward[1] = true
	assert.Equal(t, 0, extendRegion(steep, xward, 0, 3))
}
