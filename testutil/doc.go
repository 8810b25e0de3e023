// Package testutil provides synthetic point sets for tests and examples.
//
// # Random Point Generation
//
//	rng := testutil.NewRNG(seed)
//	blobs := rng.Blobs([][]float64{{0, 0}, {5, 5}}, 100, 0.3)
//	disc := rng.Disc([]float64{52.5, 13.4}, 0.001, 20)
//
// # Deterministic Layouts
//
//	grid := testutil.Grid([]float64{0, 0}, 4, 4, 1.0)
//	all := testutil.Stack(blobs, grid)
package testutil
