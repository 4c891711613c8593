// Package searcher implements the query path of the navigable-small-world
// index: greedy descent through the upper layers followed by a beam search
// at the base layer.
//
// Searches run against an immutable graph.View and fetch vectors through a
// caller-supplied VectorLookup, so the package has no dependency on how
// vectors are stored. A pooled Searcher holds all scratch state (visited
// bitset, candidate and result heaps), keeping the steady-state query path
// allocation free.
package searcher
