package searcher

// VisitedSet tracks visited node ordinals using a bitset plus a dirty list,
// so Reset costs O(visited) instead of O(capacity).
type VisitedSet struct {
	bits  []uint64
	dirty []uint32
}

// NewVisitedSet creates a visited set sized for the given number of nodes.
func NewVisitedSet(capacity int) *VisitedSet {
	return &VisitedSet{
		bits:  make([]uint64, (capacity+63)/64),
		dirty: make([]uint32, 0, 128),
	}
}

// Visit marks an ordinal as visited.
func (v *VisitedSet) Visit(ord uint32) {
	wordIdx := int(ord >> 6)
	bitMask := uint64(1) << (ord & 63)

	if wordIdx >= len(v.bits) {
		v.grow(wordIdx + 1)
	}

	if v.bits[wordIdx]&bitMask == 0 {
		v.bits[wordIdx] |= bitMask
		v.dirty = append(v.dirty, ord)
	}
}

// Visited reports whether the ordinal has been visited.
func (v *VisitedSet) Visited(ord uint32) bool {
	wordIdx := int(ord >> 6)
	if wordIdx >= len(v.bits) {
		return false
	}
	return v.bits[wordIdx]&(uint64(1)<<(ord&63)) != 0
}

// Reset clears the visited status of every ordinal touched since the last
// reset.
func (v *VisitedSet) Reset() {
	for _, ord := range v.dirty {
		v.bits[ord>>6] &^= uint64(1) << (ord & 63)
	}
	v.dirty = v.dirty[:0]
}

// EnsureCapacity grows the bitset to hold at least capacity ordinals.
func (v *VisitedSet) EnsureCapacity(capacity int) {
	words := (capacity + 63) / 64
	if words > len(v.bits) {
		v.grow(words)
	}
}

func (v *VisitedSet) grow(newLen int) {
	newCap := max(len(v.bits)*2, newLen)
	newBits := make([]uint64, newCap)
	copy(newBits, v.bits)
	v.bits = newBits
}
