package testutil

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/navgraph/distance"
	"github.com/hupe1980/navgraph/graph"
	"github.com/hupe1980/navgraph/searcher"
)

func TestRandomVectors(t *testing.T) {
	a := RandomVectors(10, 4, 42)
	b := RandomVectors(10, 4, 42)
	c := RandomVectors(10, 4, 7)

	require.Len(t, a, 10)
	require.Len(t, a["v0"], 4)

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}

func TestBruteForceKNN(t *testing.T) {
	vectors := map[string][]float64{
		"a": {0, 1},
		"b": {0, 2},
		"c": {5, 0},
	}

	results, err := BruteForceKNN(vectors, []float64{0, 1.4}, 2, distance.EuclideanDistance)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "a", results[0].ID)
	assert.Equal(t, "b", results[1].ID)
}

func TestRecall(t *testing.T) {
	got := []searcher.Candidate{{ID: "a"}, {ID: "b"}, {ID: "x"}}
	oracle := []searcher.Candidate{{ID: "a"}, {ID: "b"}, {ID: "c"}}

	assert.InDelta(t, 2.0/3.0, Recall(got, oracle), 1e-12)
	assert.Equal(t, 1.0, Recall(nil, nil))
}

func TestBuilderSmall(t *testing.T) {
	vectors := RandomVectors(20, 8, 1)
	store := graph.New(graph.Config{M: 4})

	b := NewBuilder(store, Lookup(vectors), distance.CosineDistance, BuilderConfig{Seed: 1})
	require.NoError(t, b.InsertAll(vectors))

	assert.Equal(t, 20, store.Len())

	_, ok := store.EntryPoint()
	assert.True(t, ok)

	// Layer 0 degrees stay within the construction cap.
	for id := range vectors {
		assert.LessOrEqual(t, len(store.Neighbors(id, 0)), 8, "node %s", id)
	}
}

func TestBuilderRecall(t *testing.T) {
	const (
		n   = 400
		dim = 16
		k   = 10
	)

	vectors := RandomVectors(n, dim, 42)
	store := graph.New(graph.Config{M: 16})

	b := NewBuilder(store, Lookup(vectors), distance.CosineDistance, BuilderConfig{
		EFConstruction: 200,
		Seed:           42,
	})
	require.NoError(t, b.InsertAll(vectors))

	view := store.Snapshot()
	require.Equal(t, n, view.Count())

	var total float64
	const queries = 20
	for qi := 0; qi < queries; qi++ {
		query := vectors[fmt.Sprintf("v%d", qi*17%n)]

		oracle, err := BruteForceKNN(vectors, query, k, distance.CosineDistance)
		require.NoError(t, err)

		got, err := searcher.Search(view, Lookup(vectors), query, k, searcher.Options{EF: 200})
		require.NoError(t, err)

		total += Recall(got, oracle)
	}

	avg := total / queries
	assert.GreaterOrEqual(t, avg, 0.8, "average recall@%d", k)
}
