package graph

// View is an immutable point-in-time projection of a Store, laid out for
// traversal: entry point, max layer, per-layer adjacency lists and node
// count. A search holds one View for its whole duration and therefore never
// observes a mid-query mutation; concurrent read-only searches against the
// same View need no coordination.
//
// Each node in the View is also assigned a dense ordinal in [0, Count), so
// that bitset- and bitmap-based consumers (visited tracking, allowlist
// filters) can key on integers instead of string ids.
type View struct {
	entryPoint    string
	hasEntryPoint bool
	maxLayer      int
	count         int

	// layers[l] maps node id to its neighbor ids at layer l.
	layers []map[string][]string

	ordinals map[string]uint32
}

// Snapshot builds a View of the store's current state. The View shares no
// mutable state with the store: later mutations are invisible to it.
func (s *Store) Snapshot() *View {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v := &View{
		entryPoint:    s.entryPoint,
		hasEntryPoint: s.hasEntryPoint,
		maxLayer:      s.maxLevel,
		count:         len(s.nodes),
		ordinals:      make(map[string]uint32, len(s.nodes)),
	}

	if s.maxLevel >= 0 {
		v.layers = make([]map[string][]string, s.maxLevel+1)
		for l := range v.layers {
			v.layers[l] = make(map[string][]string)
		}
	}

	var ord uint32
	for id, n := range s.nodes {
		v.ordinals[id] = ord
		ord++

		for l := 0; l <= n.MaxLayer && l < len(v.layers); l++ {
			set := n.Connections[l]
			neighbors := make([]string, 0, len(set))
			for nid := range set {
				neighbors = append(neighbors, nid)
			}
			v.layers[l][id] = neighbors
		}
	}

	return v
}

// EntryPoint returns the snapshotted entry point id, if one was set.
func (v *View) EntryPoint() (string, bool) {
	return v.entryPoint, v.hasEntryPoint
}

// MaxLayer returns the snapshotted max layer, -1 for an empty graph.
func (v *View) MaxLayer() int {
	return v.maxLayer
}

// Count returns the number of nodes in the snapshot.
func (v *View) Count() int {
	return v.count
}

// HasLayer reports whether the view carries adjacency data for the layer.
func (v *View) HasLayer(layer int) bool {
	return layer >= 0 && layer < len(v.layers)
}

// Neighbors returns the neighbor ids of (id, layer). The returned slice is
// owned by the View and must not be modified.
func (v *View) Neighbors(layer int, id string) []string {
	if !v.HasLayer(layer) {
		return nil
	}
	return v.layers[layer][id]
}

// Ordinal returns the dense ordinal assigned to the node id in this view.
func (v *View) Ordinal(id string) (uint32, bool) {
	ord, ok := v.ordinals[id]
	return ord, ok
}
