package searcher

import (
	"errors"

	"github.com/hupe1980/navgraph/distance"
)

// ErrInvalidK indicates a non-positive requested result count.
var ErrInvalidK = errors.New("searcher: k must be greater than zero")

// DefaultEF is the beam width used when the caller does not set one and k is
// smaller.
const DefaultEF = 10

// GraphView is the read-only graph surface the searcher traverses. It is
// satisfied by graph.View.
type GraphView interface {
	EntryPoint() (string, bool)
	MaxLayer() int
	Count() int
	HasLayer(layer int) bool
	Neighbors(layer int, id string) []string
	Ordinal(id string) (uint32, bool)
}

// VectorLookup resolves a node id to its vector. A lookup error aborts the
// query that triggered it.
type VectorLookup func(id string) ([]float64, error)

// Options tunes a search.
type Options struct {
	// EF is the beam width at the base layer. Values below k are raised to
	// k; zero selects max(k, DefaultEF).
	EF int

	// DistanceFunc scores candidates. Defaults to cosine distance.
	DistanceFunc distance.Func

	// Filter, when set, restricts the result set to matching nodes. The
	// traversal still walks non-matching nodes so the beam can reach
	// matching regions through them.
	Filter Filter
}

// Search runs the full multi-layer query: greedy descent from the entry
// point through the upper layers, then an EF-bounded beam search at the base
// layer, truncated to the k closest matches in ascending distance order.
//
// An empty graph yields an empty result and no error.
func Search(view GraphView, lookup VectorLookup, query []float64, k int, opts Options) ([]Candidate, error) {
	if k <= 0 {
		return nil, ErrInvalidK
	}

	dfn := opts.DistanceFunc
	if dfn == nil {
		dfn = distance.CosineDistance
	}

	ef := opts.EF
	if ef <= 0 {
		ef = DefaultEF
	}
	if ef < k {
		ef = k
	}

	ep, ok := view.EntryPoint()
	if !ok || view.Count() == 0 {
		return []Candidate{}, nil
	}

	s := Get()
	defer Put(s)
	s.Visited.EnsureCapacity(view.Count())

	entry := []string{ep}

	// Greedy descent: ef=1 through the upper layers, carrying the closest
	// node found at each as the next layer's entry. A layer that yields
	// nothing leaves the previous entry in place.
	for layer := view.MaxLayer(); layer >= 1; layer-- {
		best, err := searchLayer(view, lookup, dfn, query, entry, layer, 1, nil, s)
		if err != nil {
			return nil, err
		}
		if len(best) > 0 {
			entry = []string{best[0].ID}
		}
	}

	results, err := searchLayer(view, lookup, dfn, query, entry, 0, ef, opts.Filter, s)
	if err != nil {
		return nil, err
	}

	if len(results) > k {
		results = results[:k]
	}
	return results, nil
}

// SearchLayer runs a single-layer beam search from the given entry points
// and returns up to ef candidates in ascending distance order. It is the
// primitive that both query descent and external graph construction build
// on.
func SearchLayer(view GraphView, lookup VectorLookup, dfn distance.Func, query []float64, entryPoints []string, layer, ef int) ([]Candidate, error) {
	if dfn == nil {
		dfn = distance.CosineDistance
	}

	s := Get()
	defer Put(s)
	s.Visited.EnsureCapacity(view.Count())

	return searchLayer(view, lookup, dfn, query, entryPoints, layer, ef, nil, s)
}

// searchLayer is the beam search kernel. The visited set is seeded with the
// entry points; the frontier is a min-heap and the result set an ef-bounded
// max-heap. Expansion stops once the closest open candidate is farther than
// the worst kept result and the result set is full.
func searchLayer(view GraphView, lookup VectorLookup, dfn distance.Func, query []float64, entryPoints []string, layer, ef int, filter Filter, s *Searcher) ([]Candidate, error) {
	if ef <= 0 || !view.HasLayer(layer) {
		return nil, nil
	}

	s.Visited.Reset()
	s.Candidates.Reset()
	s.Results.Reset()

	for _, id := range entryPoints {
		ord, ok := view.Ordinal(id)
		if !ok || s.Visited.Visited(ord) {
			continue
		}
		s.Visited.Visit(ord)

		vec, err := lookup(id)
		if err != nil {
			return nil, err
		}
		d, err := dfn(query, vec)
		if err != nil {
			return nil, err
		}

		c := Candidate{ID: id, Distance: d}
		s.Candidates.PushItem(c)
		if filter == nil || filter.Matches(ord) {
			s.Results.PushItemBounded(c, ef)
		}
	}

	for s.Candidates.Len() > 0 {
		current, _ := s.Candidates.PopItem()

		if worst, ok := s.Results.TopItem(); ok && s.Results.Len() >= ef && current.Distance > worst.Distance {
			break
		}

		for _, nid := range view.Neighbors(layer, current.ID) {
			ord, ok := view.Ordinal(nid)
			if !ok || s.Visited.Visited(ord) {
				continue
			}
			s.Visited.Visit(ord)

			vec, err := lookup(nid)
			if err != nil {
				return nil, err
			}
			d, err := dfn(query, vec)
			if err != nil {
				return nil, err
			}

			worst, hasWorst := s.Results.TopItem()
			if !hasWorst || s.Results.Len() < ef || d < worst.Distance {
				c := Candidate{ID: nid, Distance: d}
				s.Candidates.PushItem(c)
				if filter == nil || filter.Matches(ord) {
					s.Results.PushItemBounded(c, ef)
				}
			}
		}
	}

	// Drain the max-heap into ascending order.
	s.Scratch = s.Scratch[:0]
	for s.Results.Len() > 0 {
		c, _ := s.Results.PopItem()
		s.Scratch = append(s.Scratch, c)
	}

	out := make([]Candidate, len(s.Scratch))
	for i, c := range s.Scratch {
		out[len(out)-1-i] = c
	}
	return out, nil
}
