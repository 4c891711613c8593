// Package navgraph provides an in-memory hierarchical navigable-small-world
// index core: a mutable multi-layer proximity graph plus a snapshot-based
// query path.
//
// The package deliberately separates graph topology from vector storage.
// Vectors live wherever the caller keeps them and are resolved through a
// VectorLookup, so the index can sit on top of any store that can map an id
// to a vector.
//
// Typical usage:
//
//	idx, err := navgraph.New(graph.Config{M: 16}, lookup)
//	if err != nil { ... }
//
//	_ = idx.AddNode("doc-1", 0)
//	_ = idx.Connect("doc-1", "doc-2", 0)
//	idx.SetEntryPoint("doc-1")
//
//	results, err := idx.Search(ctx, query, 10)
//
// Graph construction policy (layer assignment, neighbor selection) is out of
// scope; callers drive insertion through AddNode/Connect/SetEntryPoint.
package navgraph
