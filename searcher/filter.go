package searcher

import (
	"github.com/RoaringBitmap/roaring/v2"
)

// Filter restricts a search to a subset of the graph. Matches is called with
// node ordinals of the view the search runs against, once per admitted
// candidate, so implementations should be cheap.
type Filter interface {
	Matches(ord uint32) bool
}

// BitmapFilter is an allowlist Filter backed by a roaring bitmap of node
// ordinals. The zero value matches nothing.
type BitmapFilter struct {
	bitmap *roaring.Bitmap
}

// NewBitmapFilter builds an allowlist filter for the given node ids,
// resolved to ordinals against the view. Ids unknown to the view are
// ignored.
func NewBitmapFilter(view GraphView, ids ...string) *BitmapFilter {
	bm := roaring.New()
	for _, id := range ids {
		if ord, ok := view.Ordinal(id); ok {
			bm.Add(ord)
		}
	}
	return &BitmapFilter{bitmap: bm}
}

// Matches reports whether the ordinal is in the allowlist.
func (f *BitmapFilter) Matches(ord uint32) bool {
	return f.bitmap != nil && f.bitmap.Contains(ord)
}

// Cardinality returns the number of ordinals in the allowlist.
func (f *BitmapFilter) Cardinality() uint64 {
	if f.bitmap == nil {
		return 0
	}
	return f.bitmap.GetCardinality()
}
