package graph

import "fmt"

// ErrDuplicateNode indicates an AddNode call for an id that already exists.
type ErrDuplicateNode struct {
	ID string
}

func (e *ErrDuplicateNode) Error() string {
	return fmt.Sprintf("node %q already exists", e.ID)
}

// ErrNodeNotFound indicates a mutation on a node that does not exist.
type ErrNodeNotFound struct {
	ID string
}

func (e *ErrNodeNotFound) Error() string {
	return fmt.Sprintf("node %q not found", e.ID)
}

// ErrInvalidLayer indicates a layer index outside a node's allocated range.
type ErrInvalidLayer struct {
	ID       string
	Layer    int
	MaxLayer int
}

func (e *ErrInvalidLayer) Error() string {
	return fmt.Sprintf("layer %d out of range for node %q (max layer %d)", e.Layer, e.ID, e.MaxLayer)
}
