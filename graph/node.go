package graph

// Node is a single member of the multi-layer graph. A node exists at every
// layer from 0 through MaxLayer and owns one unordered neighbor set per
// layer. MaxLayer is fixed at creation; only the neighbor sets mutate.
type Node struct {
	// ID is the opaque external identifier of the node.
	ID string

	// MaxLayer is the highest layer index at which this node exists.
	MaxLayer int

	// Connections holds one neighbor-id set per layer, indexed 0..MaxLayer.
	Connections []map[string]struct{}
}

func newNode(id string, maxLayer int) *Node {
	conns := make([]map[string]struct{}, maxLayer+1)
	for i := range conns {
		conns[i] = make(map[string]struct{})
	}
	return &Node{
		ID:          id,
		MaxLayer:    maxLayer,
		Connections: conns,
	}
}

// hasLayer reports whether the node exists at the given layer.
func (n *Node) hasLayer(layer int) bool {
	return layer >= 0 && layer <= n.MaxLayer
}

// clone returns a deep copy of the node, detached from the store's state.
func (n *Node) clone() Node {
	conns := make([]map[string]struct{}, len(n.Connections))
	for i, set := range n.Connections {
		cp := make(map[string]struct{}, len(set))
		for id := range set {
			cp[id] = struct{}{}
		}
		conns[i] = cp
	}
	return Node{
		ID:          n.ID,
		MaxLayer:    n.MaxLayer,
		Connections: conns,
	}
}
