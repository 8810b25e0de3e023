// Package distance provides point distance calculations for density clustering.
//
// # Supported Metrics
//
//   - MetricEuclidean: L2 distance over all coordinates (default)
//   - MetricHaversine: great-circle distance in meters over (lat, lon) degrees
//
// # Usage
//
//	d := distance.Euclidean(a, b)
//	fn, err := distance.Provider(distance.MetricHaversine)
package distance
