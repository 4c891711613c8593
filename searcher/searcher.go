package searcher

import "sync"

// Searcher is a reusable execution context for search operations. It owns
// the scratch memory a traversal needs, eliminating heap allocations in the
// steady state.
//
// Searcher is NOT safe for concurrent use. It is owned by a single goroutine
// for the duration of one search.
type Searcher struct {
	// Visited tracks visited node ordinals during graph traversal.
	Visited *VisitedSet

	// Candidates is the min-heap exploration frontier.
	Candidates *PriorityQueue

	// Results is the max-heap of the best matches found so far.
	Results *PriorityQueue

	// Scratch is a reusable buffer for collecting ordered output.
	Scratch []Candidate
}

var searcherPool = sync.Pool{
	New: func() any {
		return NewSearcher(1024, 128)
	},
}

// NewSearcher creates a searcher with the given initial capacities.
func NewSearcher(visitedCap, queueCap int) *Searcher {
	return &Searcher{
		Visited:    NewVisitedSet(visitedCap),
		Candidates: NewPriorityQueue(false),
		Results:    NewPriorityQueue(true),
		Scratch:    make([]Candidate, 0, queueCap),
	}
}

// Get returns a reset Searcher from the pool.
func Get() *Searcher {
	s := searcherPool.Get().(*Searcher)
	s.Reset()
	return s
}

// Put returns a Searcher to the pool.
func Put(s *Searcher) {
	searcherPool.Put(s)
}

// Reset clears the searcher state for reuse, retaining capacity.
func (s *Searcher) Reset() {
	s.Visited.Reset()
	s.Candidates.Reset()
	s.Results.Reset()
	s.Scratch = s.Scratch[:0]
}
