package decimate_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/decimate/decimate"
)

// TestMapperBindLookupUnbind checks the mapper's basic contract (§4.C):
// bound keys resolve to their slot, unbound keys don't.
func TestMapperBindLookupUnbind(t *testing.T) {
	m := decimate.NewMapper()
	q := decimate.NewPriorityQueue()

	key := decimate.EdgeKey(7)
	slot := q.Push(key, decimate.Priority{Measure: 1})
	m.Bind(key, slot)

	got, ok := m.Lookup(key)
	require.True(t, ok)
	require.Equal(t, slot, got)
	require.Equal(t, 1, m.Len())

	m.Unbind(key)
	_, ok = m.Lookup(key)
	require.False(t, ok)
	require.Equal(t, 0, m.Len())
}

// TestMapperRebindOverwrites checks that binding an already-bound key
// replaces its slot rather than erroring or duplicating.
func TestMapperRebindOverwrites(t *testing.T) {
	m := decimate.NewMapper()
	q := decimate.NewPriorityQueue()
	key := decimate.EdgeKey(3)

	first := q.Push(key, decimate.Priority{Measure: 5})
	m.Bind(key, first)
	second := q.Push(key, decimate.Priority{Measure: 1})
	m.Bind(key, second)

	got, ok := m.Lookup(key)
	require.True(t, ok)
	require.Equal(t, second, got)
	require.Equal(t, 1, m.Len())
}
