package navgraph

import "errors"

// ErrNilLookup indicates an Index was constructed without a vector lookup.
var ErrNilLookup = errors.New("navgraph: vector lookup must not be nil")
