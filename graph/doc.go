// Package graph implements the mutable multi-layer proximity graph that
// backs the navigable-small-world index.
//
// A Store owns the canonical graph state: the node registry, per-node
// per-layer neighbor sets, the entry point and the global max level. All
// edge mutations performed through AddConnection/RemoveConnection are
// symmetric. The Store deliberately does not validate entry-point or
// max-level consistency against the node population; the external
// construction policy that drives insertion is responsible for keeping them
// coherent.
//
// Queries never read the Store directly. Snapshot produces an immutable
// point-in-time View (entry point, max layer, per-layer adjacency, node
// count) that a search can traverse without coordination while mutations
// continue against the Store.
package graph
