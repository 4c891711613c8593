package graph

import "sync"

// DefaultM is the default neighbor-count target per node per layer.
const DefaultM = 16

// Config parameterizes a Store. Beyond M the store treats configuration as
// an opaque bag of named options: Params is carried through unmodified for
// the external construction policy to interpret.
type Config struct {
	// M is the neighbor-count target per node per layer.
	M int

	// Params holds construction tuning opaque to the store.
	Params map[string]any
}

// Store owns the canonical mutable graph state. All methods are safe for
// concurrent use; mutations are serialized by a write lock and queries
// should operate on a Snapshot rather than the live store.
type Store struct {
	mu sync.RWMutex

	cfg Config

	nodes         map[string]*Node
	entryPoint    string
	hasEntryPoint bool
	maxLevel      int
}

// New creates an empty Store with the given configuration.
func New(cfg Config) *Store {
	if cfg.M <= 0 {
		cfg.M = DefaultM
	}
	return &Store{
		cfg:      cfg,
		nodes:    make(map[string]*Node),
		maxLevel: -1,
	}
}

// Config returns the configuration the store was created with.
func (s *Store) Config() Config {
	return s.cfg
}

// AddNode registers a new node that exists at layers 0..maxLayer, with an
// empty neighbor set at each. The store's max level is raised to cover
// maxLayer. The entry point is NOT updated; callers promote the node
// explicitly via SetEntryPoint when its layer exceeds the previous maximum.
func (s *Store) AddNode(id string, maxLayer int) error {
	if maxLayer < 0 {
		return &ErrInvalidLayer{ID: id, Layer: maxLayer, MaxLayer: -1}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.nodes[id]; exists {
		return &ErrDuplicateNode{ID: id}
	}

	s.nodes[id] = newNode(id, maxLayer)
	if maxLayer > s.maxLevel {
		s.maxLevel = maxLayer
	}
	return nil
}

// EntryPoint returns the current entry point id, if one is set.
func (s *Store) EntryPoint() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.entryPoint, s.hasEntryPoint
}

// SetEntryPoint sets the entry point. The store does not verify that the id
// references an existing node of maximal height.
func (s *Store) SetEntryPoint(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entryPoint = id
	s.hasEntryPoint = true
}

// MaxLevel returns the highest layer index present in the graph, or -1 when
// the graph is empty.
func (s *Store) MaxLevel() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.maxLevel
}

// SetMaxLevel overrides the stored max level without validation.
func (s *Store) SetMaxLevel(level int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.maxLevel = level
}

// HasNode reports whether a node with the given id exists.
func (s *Store) HasNode(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.nodes[id]
	return ok
}

// Node returns a deep copy of the node with the given id.
func (s *Store) Node(id string) (Node, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n, ok := s.nodes[id]
	if !ok {
		return Node{}, false
	}
	return n.clone(), true
}

// Len returns the number of nodes in the graph.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.nodes)
}

// Connections returns a copy of the neighbor set of (id, layer), or false
// when the node does not exist or the layer is outside its allocated range.
func (s *Store) Connections(id string, layer int) (map[string]struct{}, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n, ok := s.nodes[id]
	if !ok || !n.hasLayer(layer) {
		return nil, false
	}

	set := n.Connections[layer]
	cp := make(map[string]struct{}, len(set))
	for nid := range set {
		cp[nid] = struct{}{}
	}
	return cp, true
}

// SetConnections replaces the neighbor set of (id, layer). Unlike
// AddConnection it is strict: an unknown node or an out-of-range layer
// fails. It installs exactly what it is given, one-directionally; symmetry
// is the caller's responsibility on this path.
func (s *Store) SetConnections(id string, layer int, neighbors []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	n, ok := s.nodes[id]
	if !ok {
		return &ErrNodeNotFound{ID: id}
	}
	if !n.hasLayer(layer) {
		return &ErrInvalidLayer{ID: id, Layer: layer, MaxLayer: n.MaxLayer}
	}

	set := make(map[string]struct{}, len(neighbors))
	for _, nid := range neighbors {
		set[nid] = struct{}{}
	}
	n.Connections[layer] = set
	return nil
}

// AddConnection inserts a symmetric edge between a and b at the given
// layer. Both nodes must exist. An endpoint that does not reach the layer is
// silently skipped rather than failing the operation, so callers may link
// speculatively without checking both nodes' heights first.
func (s *Store) AddConnection(a, b string, layer int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	na, ok := s.nodes[a]
	if !ok {
		return &ErrNodeNotFound{ID: a}
	}
	nb, ok := s.nodes[b]
	if !ok {
		return &ErrNodeNotFound{ID: b}
	}

	if na.hasLayer(layer) {
		na.Connections[layer][b] = struct{}{}
	}
	if nb.hasLayer(layer) {
		nb.Connections[layer][a] = struct{}{}
	}
	return nil
}

// RemoveConnection removes the symmetric edge between a and b at the given
// layer, with the same missing-layer tolerance as AddConnection.
func (s *Store) RemoveConnection(a, b string, layer int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	na, ok := s.nodes[a]
	if !ok {
		return &ErrNodeNotFound{ID: a}
	}
	nb, ok := s.nodes[b]
	if !ok {
		return &ErrNodeNotFound{ID: b}
	}

	if na.hasLayer(layer) {
		delete(na.Connections[layer], b)
	}
	if nb.hasLayer(layer) {
		delete(nb.Connections[layer], a)
	}
	return nil
}

// Neighbors returns the neighbor ids of (id, layer) as a sequence. The
// order is derived from an unordered set and carries no meaning.
func (s *Store) Neighbors(id string, layer int) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n, ok := s.nodes[id]
	if !ok || !n.hasLayer(layer) {
		return nil
	}

	set := n.Connections[layer]
	out := make([]string, 0, len(set))
	for nid := range set {
		out = append(out, nid)
	}
	return out
}

// NodesAtLayer returns the ids of all nodes whose max layer reaches the
// given layer, i.e. the node population of that layer. Full scan; intended
// for diagnostics, not the query hot path.
func (s *Store) NodesAtLayer(layer int) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []string
	for id, n := range s.nodes {
		if n.MaxLayer >= layer {
			out = append(out, id)
		}
	}
	return out
}

// Nodes returns a defensive deep copy of the full node registry. Mutating
// the result never affects the store.
func (s *Store) Nodes() map[string]Node {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]Node, len(s.nodes))
	for id, n := range s.nodes {
		out[id] = n.clone()
	}
	return out
}

// Clear resets the store to the empty state: no nodes, no entry point, max
// level -1. The configuration is retained.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nodes = make(map[string]*Node)
	s.entryPoint = ""
	s.hasEntryPoint = false
	s.maxLevel = -1
}
