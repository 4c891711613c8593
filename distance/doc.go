// Package distance provides vector distance calculations for float64 vectors.
//
// # Supported Metrics
//
//   - MetricCosine: 1 - cosine similarity (default), range [0, 2]
//   - MetricEuclidean: L2 distance, range [0, +Inf)
//   - MetricInnerProduct: 1 - dot product, for maximum-inner-product search
//
// All distance functions validate that both inputs have the same length and
// fail with *ErrDimensionMismatch otherwise. CosineSimilarity is the only
// exception: it is a similarity helper, not a distance, and is defined only
// for equal-length inputs.
//
// # Usage
//
//	dist, err := distance.CosineDistance(a, b)
//	fn, err := distance.Provider(distance.MetricEuclidean)
package distance
