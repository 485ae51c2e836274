package decimate_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/decimate/decimate"
)

// TestPriorityQueueOrdersByMeasure checks the basic min-heap contract: the
// lowest Measure comes out first.
func TestPriorityQueueOrdersByMeasure(t *testing.T) {
	q := decimate.NewPriorityQueue()
	q.Push(3, decimate.Priority{Measure: 3.0})
	q.Push(1, decimate.Priority{Measure: 1.0})
	q.Push(2, decimate.Priority{Measure: 2.0})

	var order []decimate.EdgeKey
	for !q.Empty() {
		k, _, err := q.Pop()
		require.NoError(t, err)
		order = append(order, k)
	}
	require.Equal(t, []decimate.EdgeKey{1, 2, 3}, order)
}

// TestPriorityQueueDeadOrdersAfterLive checks §4.B's comparison rule: live
// entries always precede dead ones regardless of measure.
func TestPriorityQueueDeadOrdersAfterLive(t *testing.T) {
	q := decimate.NewPriorityQueue()
	q.Push(1, decimate.Priority{Dead: true, Measure: 0})
	q.Push(2, decimate.Priority{Measure: 100})

	k, _, err := q.Pop()
	require.NoError(t, err)
	require.Equal(t, decimate.EdgeKey(2), k, "live entry must come out before the tombstone even though its measure is larger")
}

// TestPriorityQueueUpdatePreservesOtherSlots checks that Update reorders
// one slot without invalidating any other slot's handle.
func TestPriorityQueueUpdatePreservesOtherSlots(t *testing.T) {
	q := decimate.NewPriorityQueue()
	sLow := q.Push(1, decimate.Priority{Measure: 1})
	sMid := q.Push(2, decimate.Priority{Measure: 5})
	sHigh := q.Push(3, decimate.Priority{Measure: 10})

	require.NoError(t, q.Update(sHigh, decimate.Priority{Measure: 0}))

	k, _, err := q.Pop()
	require.NoError(t, err)
	require.Equal(t, decimate.EdgeKey(3), k, "sHigh must now be the minimum")

	// sLow and sMid remain valid handles for the still-queued entries.
	require.NoError(t, q.Delete(sMid))
	k, _, err = q.Pop()
	require.NoError(t, err)
	require.Equal(t, decimate.EdgeKey(1), k)
	require.True(t, q.Empty())
	_ = sLow
}

// TestPriorityQueueDeleteInterior checks that deleting a non-root slot
// leaves the remaining heap consistent.
func TestPriorityQueueDeleteInterior(t *testing.T) {
	q := decimate.NewPriorityQueue()
	q.Push(1, decimate.Priority{Measure: 1})
	mid := q.Push(2, decimate.Priority{Measure: 2})
	q.Push(3, decimate.Priority{Measure: 3})

	require.NoError(t, q.Delete(mid))
	require.Equal(t, 2, q.Len())

	var order []decimate.EdgeKey
	for !q.Empty() {
		k, _, err := q.Pop()
		require.NoError(t, err)
		order = append(order, k)
	}
	require.Equal(t, []decimate.EdgeKey{1, 3}, order)
}

// TestPriorityQueueStaleSlotErrors checks that a slot already removed by Pop
// or Delete is rejected by a later Update/Delete rather than corrupting the
// heap.
func TestPriorityQueueStaleSlotErrors(t *testing.T) {
	q := decimate.NewPriorityQueue()
	s := q.Push(1, decimate.Priority{Measure: 1})
	_, _, err := q.Pop()
	require.NoError(t, err)

	require.ErrorIs(t, q.Update(s, decimate.Priority{Measure: 2}), decimate.ErrUnknownSlot)
	require.ErrorIs(t, q.Delete(s), decimate.ErrUnknownSlot)
}

// TestPriorityQueueEmptyErrors checks Peek/Pop on an empty queue.
func TestPriorityQueueEmptyErrors(t *testing.T) {
	q := decimate.NewPriorityQueue()
	require.True(t, q.Empty())
	_, _, err := q.Peek()
	require.ErrorIs(t, err, decimate.ErrEmptyQueue)
	_, _, err = q.Pop()
	require.ErrorIs(t, err, decimate.ErrEmptyQueue)
}
