package distance

import (
	"fmt"
	"math"
)

// maxCosineDistance is returned when either input has zero L2 norm. A zero
// vector carries no direction, so it is treated as maximally dissimilar from
// everything, including another zero vector.
const maxCosineDistance = 2.0

// Func is a function type for distance calculation between two equal-length
// vectors. Implementations must return an error on mismatched lengths and
// must be free of side effects.
type Func func(a, b []float64) (float64, error)

// Metric represents the distance metric used for vector comparison.
type Metric int

const (
	MetricCosine Metric = iota
	MetricEuclidean
	MetricInnerProduct
)

func (m Metric) String() string {
	switch m {
	case MetricCosine:
		return "Cosine"
	case MetricEuclidean:
		return "Euclidean"
	case MetricInnerProduct:
		return "InnerProduct"
	default:
		return fmt.Sprintf("Unknown(%d)", m)
	}
}

// Provider returns the distance function for the given metric.
func Provider(m Metric) (Func, error) {
	switch m {
	case MetricCosine:
		return CosineDistance, nil
	case MetricEuclidean:
		return EuclideanDistance, nil
	case MetricInnerProduct:
		return InnerProductDistance, nil
	default:
		return nil, fmt.Errorf("unsupported metric: %v", m)
	}
}

// ErrDimensionMismatch indicates a vector dimensionality mismatch.
type ErrDimensionMismatch struct {
	Expected int
	Actual   int
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}

// CosineDistance returns 1 - cosine similarity of a and b, accumulating the
// dot product and both squared norms in a single pass. Range [0, 2]. If
// either vector has zero norm the result is 2.
func CosineDistance(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, &ErrDimensionMismatch{Expected: len(a), Actual: len(b)}
	}

	var dot, na, nb float64
	for i := range a {
		dot += a[i] * b[i]
		na += a[i] * a[i]
		nb += b[i] * b[i]
	}

	if na == 0 || nb == 0 {
		return maxCosineDistance, nil
	}

	return 1 - dot/(math.Sqrt(na)*math.Sqrt(nb)), nil
}

// EuclideanDistance returns the L2 distance between a and b.
func EuclideanDistance(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, &ErrDimensionMismatch{Expected: len(a), Actual: len(b)}
	}

	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}

	return math.Sqrt(sum), nil
}

// InnerProductDistance returns 1 - dot(a, b), converting inner-product
// similarity (higher is better) into a distance (lower is better). Unlike
// the cosine and euclidean metrics it is sensitive to vector magnitude.
// Empty inputs yield zero distance.
func InnerProductDistance(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, &ErrDimensionMismatch{Expected: len(a), Actual: len(b)}
	}
	if len(a) == 0 {
		return 0, nil
	}

	var dot float64
	for i := range a {
		dot += a[i] * b[i]
	}

	return 1 - dot, nil
}

// CosineSimilarity returns the cosine of the angle between a and b, range
// [-1, 1], or 0 when either vector has zero norm. It is defined only for
// equal-length inputs; on mismatched lengths the result is unspecified.
func CosineSimilarity(a, b []float64) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}

	var dot, na, nb float64
	for i := 0; i < n; i++ {
		dot += a[i] * b[i]
		na += a[i] * a[i]
		nb += b[i] * b[i]
	}

	if na == 0 || nb == 0 {
		return 0
	}

	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}
