package testutil

import (
	"math"
	"math/rand/v2"
	"sort"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/hupe1980/navgraph/distance"
	"github.com/hupe1980/navgraph/graph"
	"github.com/hupe1980/navgraph/searcher"
)

// BuilderConfig tunes the reference construction policy.
type BuilderConfig struct {
	// M is the neighbor-count target per node per layer. Layer 0 allows
	// 2*M. Defaults to the store's configured M.
	M int

	// EFConstruction is the beam width used while inserting. Defaults
	// to 100.
	EFConstruction int

	// Seed drives layer assignment.
	Seed uint64
}

// Builder is a reference implementation of the insertion side of the index:
// exponential layer assignment, beam-search candidate discovery and
// closest-first neighbor linking with overflow pruning. It exists so tests
// can exercise the query path against realistically built graphs; it is not
// tuned for production use.
type Builder struct {
	store  *graph.Store
	lookup searcher.VectorLookup
	dfn    distance.Func

	m     int
	mMax0 int
	ef    int

	levels distuv.Exponential
}

// NewBuilder creates a builder that inserts into the given store, resolving
// vectors through lookup and scoring with dfn.
func NewBuilder(store *graph.Store, lookup searcher.VectorLookup, dfn distance.Func, cfg BuilderConfig) *Builder {
	if cfg.M <= 0 {
		cfg.M = store.Config().M
	}
	if cfg.EFConstruction <= 0 {
		cfg.EFConstruction = 100
	}
	if dfn == nil {
		dfn = distance.CosineDistance
	}

	return &Builder{
		store:  store,
		lookup: lookup,
		dfn:    dfn,
		m:      cfg.M,
		mMax0:  2 * cfg.M,
		ef:     cfg.EFConstruction,
		levels: distuv.Exponential{
			// floor of an Exp(ln M) draw reproduces the standard
			// layer distribution with normalization 1/ln(M).
			Rate: math.Log(float64(cfg.M)),
			Src:  rand.NewPCG(cfg.Seed, cfg.Seed+1),
		},
	}
}

// Insert adds the node to the graph and links it into every layer it
// reaches.
func (b *Builder) Insert(id string) error {
	level := int(b.levels.Rand())

	vec, err := b.lookup(id)
	if err != nil {
		return err
	}

	view := b.store.Snapshot()

	if err := b.store.AddNode(id, level); err != nil {
		return err
	}

	ep, ok := view.EntryPoint()
	if !ok || view.Count() == 0 {
		b.store.SetEntryPoint(id)
		return nil
	}

	entry := []string{ep}

	// Descend to the first layer the new node reaches.
	for layer := view.MaxLayer(); layer > level; layer-- {
		best, err := searcher.SearchLayer(view, b.lookup, b.dfn, vec, entry, layer, 1)
		if err != nil {
			return err
		}
		if len(best) > 0 {
			entry = []string{best[0].ID}
		}
	}

	// Link into every shared layer, closest candidates first.
	top := min(level, view.MaxLayer())
	for layer := top; layer >= 0; layer-- {
		candidates, err := searcher.SearchLayer(view, b.lookup, b.dfn, vec, entry, layer, b.ef)
		if err != nil {
			return err
		}
		if len(candidates) == 0 {
			continue
		}

		limit := b.m
		if layer == 0 {
			limit = b.mMax0
		}

		links := candidates
		if len(links) > b.m {
			links = links[:b.m]
		}

		for _, c := range links {
			if err := b.store.AddConnection(id, c.ID, layer); err != nil {
				return err
			}
			if err := b.pruneOverflow(c.ID, layer, limit); err != nil {
				return err
			}
		}

		entry = make([]string, len(candidates))
		for i, c := range candidates {
			entry[i] = c.ID
		}
	}

	if level > view.MaxLayer() {
		b.store.SetEntryPoint(id)
	}
	return nil
}

// InsertAll inserts every id of the vector map in sorted order, for
// reproducible graphs.
func (b *Builder) InsertAll(vectors map[string][]float64) error {
	ids := make([]string, 0, len(vectors))
	for id := range vectors {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		if err := b.Insert(id); err != nil {
			return err
		}
	}
	return nil
}

// pruneOverflow drops the farthest edges of (id, layer) until the neighbor
// count is back within limit.
func (b *Builder) pruneOverflow(id string, layer, limit int) error {
	neighbors := b.store.Neighbors(id, layer)
	if len(neighbors) <= limit {
		return nil
	}

	vec, err := b.lookup(id)
	if err != nil {
		return err
	}

	scored := make([]searcher.Candidate, 0, len(neighbors))
	for _, nid := range neighbors {
		nvec, err := b.lookup(nid)
		if err != nil {
			return err
		}
		d, err := b.dfn(vec, nvec)
		if err != nil {
			return err
		}
		scored = append(scored, searcher.Candidate{ID: nid, Distance: d})
	}

	sort.Slice(scored, func(i, j int) bool {
		return scored[i].Distance < scored[j].Distance
	})

	for _, c := range scored[limit:] {
		if err := b.store.RemoveConnection(id, c.ID, layer); err != nil {
			return err
		}
	}
	return nil
}
