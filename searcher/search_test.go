package searcher_test

import (
	"errors"
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/navgraph/distance"
	"github.com/hupe1980/navgraph/graph"
	"github.com/hupe1980/navgraph/searcher"
)

func lookupFrom(vectors map[string][]float64) searcher.VectorLookup {
	return func(id string) ([]float64, error) {
		vec, ok := vectors[id]
		if !ok {
			return nil, errors.New("vector not found: " + id)
		}
		return vec, nil
	}
}

// ringFixture places n unit vectors evenly on a circle and links each node to
// its two neighbors at layer 0. Node "0" is the entry point.
func ringFixture(t *testing.T, n int) (*graph.View, searcher.VectorLookup) {
	t.Helper()

	s := graph.New(graph.Config{})
	vectors := make(map[string][]float64, n)

	for i := 0; i < n; i++ {
		id := strconv.Itoa(i)
		theta := 2 * math.Pi * float64(i) / float64(n)
		vectors[id] = []float64{math.Cos(theta), math.Sin(theta)}
		require.NoError(t, s.AddNode(id, 0))
	}
	for i := 0; i < n; i++ {
		require.NoError(t, s.AddConnection(strconv.Itoa(i), strconv.Itoa((i+1)%n), 0))
	}
	s.SetEntryPoint("0")

	return s.Snapshot(), lookupFrom(vectors)
}

func TestSearchInvalidK(t *testing.T) {
	view, lookup := ringFixture(t, 5)

	for _, k := range []int{0, -1} {
		_, err := searcher.Search(view, lookup, []float64{1, 0}, k, searcher.Options{})
		assert.ErrorIs(t, err, searcher.ErrInvalidK)
	}
}

func TestSearchEmptyGraph(t *testing.T) {
	s := graph.New(graph.Config{})
	view := s.Snapshot()

	results, err := searcher.Search(view, lookupFrom(nil), []float64{1, 0}, 3, searcher.Options{})
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestSearchSingleNode(t *testing.T) {
	s := graph.New(graph.Config{})
	require.NoError(t, s.AddNode("only", 0))
	s.SetEntryPoint("only")

	lookup := lookupFrom(map[string][]float64{"only": {0, 1}})

	results, err := searcher.Search(s.Snapshot(), lookup, []float64{0, 1}, 5, searcher.Options{})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "only", results[0].ID)
	assert.InDelta(t, 0, results[0].Distance, 1e-12)
}

func TestSearchRing(t *testing.T) {
	view, lookup := ringFixture(t, 5)

	t.Run("ExactMatch", func(t *testing.T) {
		theta := 2 * math.Pi * 2 / 5
		query := []float64{math.Cos(theta), math.Sin(theta)}

		results, err := searcher.Search(view, lookup, query, 1, searcher.Options{
			EF:           5,
			DistanceFunc: distance.EuclideanDistance,
		})
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, "2", results[0].ID)
		assert.InDelta(t, 0, results[0].Distance, 1e-9)
	})

	t.Run("TopThreeAscending", func(t *testing.T) {
		// Slightly past node 2 toward node 3 so neighbors 3 and 1 are not
		// equidistant.
		theta := 2*math.Pi*2/5 + 0.01
		query := []float64{math.Cos(theta), math.Sin(theta)}

		results, err := searcher.Search(view, lookup, query, 3, searcher.Options{
			EF:           5,
			DistanceFunc: distance.EuclideanDistance,
		})
		require.NoError(t, err)
		require.Len(t, results, 3)

		assert.Equal(t, "2", results[0].ID)
		assert.Equal(t, "3", results[1].ID)
		assert.Equal(t, "1", results[2].ID)

		for i := 1; i < len(results); i++ {
			assert.LessOrEqual(t, results[i-1].Distance, results[i].Distance)
		}
	})

	t.Run("NoDuplicates", func(t *testing.T) {
		results, err := searcher.Search(view, lookup, []float64{1, 0}, 5, searcher.Options{EF: 10})
		require.NoError(t, err)

		seen := make(map[string]bool)
		for _, c := range results {
			assert.False(t, seen[c.ID])
			seen[c.ID] = true
		}
	})

	t.Run("AtMostK", func(t *testing.T) {
		results, err := searcher.Search(view, lookup, []float64{1, 0}, 2, searcher.Options{EF: 10})
		require.NoError(t, err)
		assert.Len(t, results, 2)
	})
}

func TestSearchMultiLayerDescent(t *testing.T) {
	// Two-layer graph: a and c reach layer 1, b sits only at the base. The
	// descent must route a -> c at layer 1, then find b from c at layer 0.
	s := graph.New(graph.Config{})
	require.NoError(t, s.AddNode("a", 1))
	require.NoError(t, s.AddNode("b", 0))
	require.NoError(t, s.AddNode("c", 1))
	require.NoError(t, s.AddConnection("a", "c", 1))
	require.NoError(t, s.AddConnection("a", "c", 0))
	require.NoError(t, s.AddConnection("c", "b", 0))
	s.SetEntryPoint("a")

	lookup := lookupFrom(map[string][]float64{
		"a": {1, 0},
		"c": {0, 1},
		"b": {-0.1, 1},
	})

	query := []float64{-0.1, 1}
	results, err := searcher.Search(s.Snapshot(), lookup, query, 2, searcher.Options{EF: 3})
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "b", results[0].ID)
	assert.Equal(t, "c", results[1].ID)
}

func TestSearchWithFilter(t *testing.T) {
	view, lookup := ringFixture(t, 5)

	// Query sits at node 2 but only 1 and 4 are allowed.
	theta := 2 * math.Pi * 2 / 5
	query := []float64{math.Cos(theta), math.Sin(theta)}

	filter := searcher.NewBitmapFilter(view, "1", "4")
	require.Equal(t, uint64(2), filter.Cardinality())

	results, err := searcher.Search(view, lookup, query, 5, searcher.Options{
		EF:     5,
		Filter: filter,
	})
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "1", results[0].ID)
	assert.Equal(t, "4", results[1].ID)
}

func TestSearchLookupErrorAborts(t *testing.T) {
	view, _ := ringFixture(t, 5)

	wantErr := errors.New("backing store unavailable")
	lookup := func(id string) ([]float64, error) {
		if id == "3" {
			return nil, wantErr
		}
		theta := 2 * math.Pi * float64(mustAtoi(id)) / 5
		return []float64{math.Cos(theta), math.Sin(theta)}, nil
	}

	_, err := searcher.Search(view, lookup, []float64{1, 0}, 5, searcher.Options{EF: 10})
	assert.ErrorIs(t, err, wantErr)
}

func TestSearchDistanceErrorAborts(t *testing.T) {
	view, _ := ringFixture(t, 5)

	// Lookup returns a 3-dim vector for a 2-dim query.
	lookup := func(id string) ([]float64, error) {
		return []float64{1, 0, 0}, nil
	}

	_, err := searcher.Search(view, lookup, []float64{1, 0}, 2, searcher.Options{
		DistanceFunc: distance.EuclideanDistance,
	})

	var mismatch *distance.ErrDimensionMismatch
	assert.ErrorAs(t, err, &mismatch)
}

func TestSearchLayer(t *testing.T) {
	view, lookup := ringFixture(t, 8)

	theta := 2 * math.Pi * 3 / 8
	query := []float64{math.Cos(theta), math.Sin(theta)}

	results, err := searcher.SearchLayer(view, lookup, distance.CosineDistance, query, []string{"0"}, 0, 4)
	require.NoError(t, err)
	require.Len(t, results, 4)
	assert.Equal(t, "3", results[0].ID)

	for i := 1; i < len(results); i++ {
		assert.LessOrEqual(t, results[i-1].Distance, results[i].Distance)
	}

	t.Run("AbsentLayer", func(t *testing.T) {
		results, err := searcher.SearchLayer(view, lookup, distance.CosineDistance, query, []string{"0"}, 7, 4)
		require.NoError(t, err)
		assert.Empty(t, results)
	})
}

func mustAtoi(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		panic(err)
	}
	return n
}
