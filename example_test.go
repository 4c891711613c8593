package navgraph_test

import (
	"context"
	"fmt"

	"github.com/hupe1980/navgraph"
	"github.com/hupe1980/navgraph/graph"
)

func Example() {
	vectors := map[string][]float64{
		"a": {1, 0},
		"b": {0.9, 0.1},
		"c": {0, 1},
	}

	lookup := func(id string) ([]float64, error) {
		return vectors[id], nil
	}

	idx, err := navgraph.New(graph.Config{M: 16}, lookup)
	if err != nil {
		panic(err)
	}

	ctx := context.Background()
	for _, id := range []string{"a", "b", "c"} {
		if err := idx.AddNode(ctx, id, 0); err != nil {
			panic(err)
		}
	}

	_ = idx.Connect(ctx, "a", "b", 0)
	_ = idx.Connect(ctx, "b", "c", 0)
	idx.SetEntryPoint("a")

	results, err := idx.Search(ctx, []float64{1, 0.05}, 2)
	if err != nil {
		panic(err)
	}

	for _, c := range results {
		fmt.Println(c.ID)
	}
	// Output:
	// a
	// b
}
