package navgraph

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/navgraph/distance"
	"github.com/hupe1980/navgraph/graph"
	"github.com/hupe1980/navgraph/searcher"
)

// Index ties the mutable graph store to the query path. It is safe for
// concurrent use: mutations go through the store's lock and every search
// runs against its own immutable snapshot.
type Index struct {
	store  *graph.Store
	lookup searcher.VectorLookup
	opts   options
}

// New creates an Index over an empty graph. lookup resolves node ids to
// vectors and must not be nil; the index itself never stores vectors.
func New(cfg graph.Config, lookup searcher.VectorLookup, optFns ...Option) (*Index, error) {
	if lookup == nil {
		return nil, ErrNilLookup
	}

	opts := applyOptions(optFns)

	if opts.distanceFunc == nil {
		if opts.useMetric {
			fn, err := distance.Provider(opts.metric)
			if err != nil {
				return nil, err
			}
			opts.distanceFunc = fn
		} else {
			opts.distanceFunc = distance.CosineDistance
		}
	}

	return &Index{
		store:  graph.New(cfg),
		lookup: lookup,
		opts:   opts,
	}, nil
}

// AddNode registers a node that exists at layers 0..maxLayer.
func (i *Index) AddNode(ctx context.Context, id string, maxLayer int) error {
	start := time.Now()

	err := i.store.AddNode(id, maxLayer)

	i.opts.metricsCollector.RecordAddNode(time.Since(start), err)
	i.opts.logger.LogAddNode(ctx, id, maxLayer, err)
	return err
}

// Connect inserts a symmetric edge between a and b at the given layer.
func (i *Index) Connect(ctx context.Context, a, b string, layer int) error {
	start := time.Now()

	err := i.store.AddConnection(a, b, layer)

	i.opts.metricsCollector.RecordConnect(time.Since(start), err)
	i.opts.logger.LogConnect(ctx, a, b, layer, err)
	return err
}

// Disconnect removes the symmetric edge between a and b at the given layer.
func (i *Index) Disconnect(ctx context.Context, a, b string, layer int) error {
	start := time.Now()

	err := i.store.RemoveConnection(a, b, layer)

	i.opts.metricsCollector.RecordConnect(time.Since(start), err)
	i.opts.logger.LogConnect(ctx, a, b, layer, err)
	return err
}

// SetConnections replaces the neighbor set of (id, layer) one-directionally.
func (i *Index) SetConnections(id string, layer int, neighbors []string) error {
	return i.store.SetConnections(id, layer, neighbors)
}

// Neighbors returns the current neighbor ids of (id, layer).
func (i *Index) Neighbors(id string, layer int) []string {
	return i.store.Neighbors(id, layer)
}

// SetEntryPoint sets the search entry point.
func (i *Index) SetEntryPoint(id string) {
	i.store.SetEntryPoint(id)
}

// EntryPoint returns the current entry point, if one is set.
func (i *Index) EntryPoint() (string, bool) {
	return i.store.EntryPoint()
}

// SetMaxLevel overrides the graph's max level.
func (i *Index) SetMaxLevel(level int) {
	i.store.SetMaxLevel(level)
}

// MaxLevel returns the highest layer present, -1 when empty.
func (i *Index) MaxLevel() int {
	return i.store.MaxLevel()
}

// Len returns the number of nodes in the graph.
func (i *Index) Len() int {
	return i.store.Len()
}

// Clear resets the graph to empty.
func (i *Index) Clear() {
	i.store.Clear()
}

// Store exposes the underlying graph store for construction policies that
// need direct access.
func (i *Index) Store() *graph.Store {
	return i.store
}

// Snapshot returns an immutable view of the current graph state.
func (i *Index) Snapshot() *graph.View {
	return i.store.Snapshot()
}

// Search returns the k nearest neighbors of query in ascending distance
// order. The search runs against a snapshot taken at call time; concurrent
// mutations do not affect it.
func (i *Index) Search(ctx context.Context, query []float64, k int, optFns ...SearchOption) ([]searcher.Candidate, error) {
	if err := i.opts.controller.AcquireSearch(ctx); err != nil {
		return nil, err
	}
	defer i.opts.controller.ReleaseSearch()

	start := time.Now()

	results, err := i.search(query, k, optFns)

	i.opts.metricsCollector.RecordSearch(k, time.Since(start), err)
	i.opts.logger.LogSearch(ctx, k, len(results), err)
	return results, err
}

func (i *Index) search(query []float64, k int, optFns []SearchOption) ([]searcher.Candidate, error) {
	sopts := searcher.Options{
		EF:           i.opts.ef,
		DistanceFunc: i.opts.distanceFunc,
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&sopts)
		}
	}

	return searcher.Search(i.store.Snapshot(), i.lookup, query, k, sopts)
}

// BatchSearch runs one search per query concurrently and returns the result
// sets in query order. The first error cancels the remaining searches.
func (i *Index) BatchSearch(ctx context.Context, queries [][]float64, k int, optFns ...SearchOption) ([][]searcher.Candidate, error) {
	start := time.Now()

	results := make([][]searcher.Candidate, len(queries))

	g, gctx := errgroup.WithContext(ctx)
	for qi, query := range queries {
		g.Go(func() error {
			r, err := i.Search(gctx, query, k, optFns...)
			if err != nil {
				return err
			}
			results[qi] = r
			return nil
		})
	}

	err := g.Wait()

	failed := 0
	if err != nil {
		failed = 1
	}
	i.opts.metricsCollector.RecordBatchSearch(len(queries), failed, time.Since(start))
	i.opts.logger.LogBatchSearch(ctx, len(queries), err)

	if err != nil {
		return nil, err
	}
	return results, nil
}
