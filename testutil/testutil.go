package testutil

import (
	"fmt"
	"math/rand/v2"
	"sort"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/hupe1980/navgraph/distance"
	"github.com/hupe1980/navgraph/searcher"
)

// RandomVectors generates n gaussian vectors of the given dimension, keyed
// "v0".."v<n-1>". The same seed yields the same vectors.
func RandomVectors(n, dim int, seed uint64) map[string][]float64 {
	normal := distuv.Normal{
		Mu:    0,
		Sigma: 1,
		Src:   rand.NewPCG(seed, seed+1),
	}

	vectors := make(map[string][]float64, n)
	for i := 0; i < n; i++ {
		vec := make([]float64, dim)
		for d := range vec {
			vec[d] = normal.Rand()
		}
		vectors[fmt.Sprintf("v%d", i)] = vec
	}
	return vectors
}

// Lookup adapts a vector map to the searcher's lookup contract.
func Lookup(vectors map[string][]float64) searcher.VectorLookup {
	return func(id string) ([]float64, error) {
		vec, ok := vectors[id]
		if !ok {
			return nil, fmt.Errorf("testutil: no vector for %q", id)
		}
		return vec, nil
	}
}

// BruteForceKNN is the exact nearest-neighbor oracle: it scores every vector
// against the query and returns the k closest in ascending distance order.
func BruteForceKNN(vectors map[string][]float64, query []float64, k int, dfn distance.Func) ([]searcher.Candidate, error) {
	if dfn == nil {
		dfn = distance.CosineDistance
	}

	candidates := make([]searcher.Candidate, 0, len(vectors))
	for id, vec := range vectors {
		d, err := dfn(query, vec)
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, searcher.Candidate{ID: id, Distance: d})
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].Distance != candidates[j].Distance {
			return candidates[i].Distance < candidates[j].Distance
		}
		return candidates[i].ID < candidates[j].ID
	})

	if len(candidates) > k {
		candidates = candidates[:k]
	}
	return candidates, nil
}

// Recall returns the fraction of oracle ids present in got.
func Recall(got, oracle []searcher.Candidate) float64 {
	if len(oracle) == 0 {
		return 1
	}

	want := make(map[string]bool, len(oracle))
	for _, c := range oracle {
		want[c.ID] = true
	}

	hits := 0
	for _, c := range got {
		if want[c.ID] {
			hits++
		}
	}
	return float64(hits) / float64(len(oracle))
}
