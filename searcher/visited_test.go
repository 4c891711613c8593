package searcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVisitedSet(t *testing.T) {
	v := NewVisitedSet(128)

	assert.False(t, v.Visited(0))
	assert.False(t, v.Visited(64))

	v.Visit(0)
	v.Visit(64)
	v.Visit(127)

	assert.True(t, v.Visited(0))
	assert.True(t, v.Visited(64))
	assert.True(t, v.Visited(127))
	assert.False(t, v.Visited(1))
}

func TestVisitedSetReset(t *testing.T) {
	v := NewVisitedSet(64)

	v.Visit(3)
	v.Visit(42)
	v.Reset()

	assert.False(t, v.Visited(3))
	assert.False(t, v.Visited(42))

	// Reusable after reset.
	v.Visit(3)
	assert.True(t, v.Visited(3))
}

func TestVisitedSetGrow(t *testing.T) {
	v := NewVisitedSet(8)

	// Beyond the initial capacity.
	v.Visit(1000)
	assert.True(t, v.Visited(1000))
	assert.False(t, v.Visited(999))

	v.EnsureCapacity(4096)
	assert.False(t, v.Visited(4095))
	v.Visit(4095)
	assert.True(t, v.Visited(4095))
}

func TestVisitedSetDoubleVisit(t *testing.T) {
	v := NewVisitedSet(64)

	v.Visit(5)
	v.Visit(5)
	v.Reset()

	assert.False(t, v.Visited(5))
}
