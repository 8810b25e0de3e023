// Package optics implements OPTICS density-based clustering over point sets.
//
// OPTICS orders points so that spatially close points are neighbours in the
// ordering and records, per point, a reachability distance. Clusters are cut
// from the resulting reachability plot afterwards, either at a fixed
// threshold (DBSCAN-style) or at steep areas (Xi).
//
// # Quick Start
//
//	points := mat.NewDense(n, 2, data)
//	labels, analysis, err := optics.Cluster(ctx, points, optics.Params{
//	    MinSamples: 8,
//	    Method:     optics.MethodDBSCAN,
//	    Eps:        0.01,
//	})
//
// labels[i] is the cluster of row i, or optics.Noise.
//
// # Ordering Only
//
//	a, err := optics.Fit(ctx, points, optics.WithMinSamples(3), optics.WithMaxEps(0.5))
//	plot := a.ReachabilityPlot() // reachability in traversal order
//
// # Geographic Points
//
// Rows of (lat, lon) degrees can be clustered with great-circle distances:
//
//	a, err := optics.Fit(ctx, stops, optics.WithMetric(distance.MetricHaversine))
//
// # Determinism
//
// Fit has no randomised initialisation: the same points and options always
// produce the same ordering, and therefore the same labels.
package optics
