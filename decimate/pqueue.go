package decimate

import "container/heap"

// Priority is a queue entry's ordering key: a dead flag plus a measure.
// Live entries (Dead == false) always order before dead ones (tombstones);
// within the same class, smaller Measure first (§3).
type Priority struct {
	Dead    bool
	Measure float64
}

// less implements the comparison rule from spec.md §4.B:
// (dead_a, m_a) < (dead_b, m_b) iff (!dead_a && dead_b) || (dead_a == dead_b && m_a < m_b).
func (a Priority) less(b Priority) bool {
	if a.Dead != b.Dead {
		return !a.Dead && b.Dead
	}
	return a.Measure < b.Measure
}

// Slot is an opaque handle to a live priority-queue entry. It remains valid
// across unrelated Update/Delete/Push/Pop calls (the heap's Swap keeps each
// entry's back-pointer in sync), and is invalidated only by Pop or Delete of
// that same entry.
type Slot = *pqEntry

type pqEntry struct {
	key   EdgeKey
	prio  Priority
	index int // back-pointer: this entry's current position in the heap array
}

// heapArray is the container/heap.Interface implementation, following the
// same shape as prim_kruskal.edgePQ and dijkstra's internal heap, plus the
// Index back-pointer pattern needed for in-place Update/Delete (grounded on
// the EdgeHeap/SimplificationEdge.Index idiom).
type heapArray []*pqEntry

func (h heapArray) Len() int            { return len(h) }
func (h heapArray) Less(i, j int) bool  { return h[i].prio.less(h[j].prio) }
func (h heapArray) Swap(i, j int)       { h[i], h[j] = h[j], h[i]; h[i].index = i; h[j].index = j }
func (h *heapArray) Push(x interface{}) {
	e := x.(*pqEntry)
	e.index = len(*h)
	*h = append(*h, e)
}
func (h *heapArray) Pop() interface{} {
	old := *h
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	e.index = -1
	*h = old[:n-1]
	return e
}

// PriorityQueue is a mutable min-heap of canonical-edge entries supporting
// push/peek/pop plus O(log n) Update and Delete via back-pointers (§4.B).
type PriorityQueue struct {
	h heapArray
}

// NewPriorityQueue returns an empty queue.
func NewPriorityQueue() *PriorityQueue {
	return &PriorityQueue{h: make(heapArray, 0)}
}

// Len returns the number of live slots currently in the queue (including
// tombstones, which remain slots until replaced or extracted).
func (q *PriorityQueue) Len() int { return q.h.Len() }

// Empty reports whether the queue holds no entries at all.
func (q *PriorityQueue) Empty() bool { return q.h.Len() == 0 }

// Push inserts a new entry and returns its slot handle.
//
// Complexity: O(log n).
func (q *PriorityQueue) Push(key EdgeKey, prio Priority) Slot {
	e := &pqEntry{key: key, prio: prio}
	heap.Push(&q.h, e)
	return e
}

// Peek returns the top entry's key and priority without removing it.
func (q *PriorityQueue) Peek() (EdgeKey, Priority, error) {
	if q.Empty() {
		return 0, Priority{}, ErrEmptyQueue
	}
	top := q.h[0]
	return top.key, top.prio, nil
}

// Pop removes and returns the top entry.
//
// Complexity: O(log n).
func (q *PriorityQueue) Pop() (EdgeKey, Priority, error) {
	if q.Empty() {
		return 0, Priority{}, ErrEmptyQueue
	}
	e := heap.Pop(&q.h).(*pqEntry)
	return e.key, e.prio, nil
}

// Update reorders slot after its priority changed in place. The slot handle
// remains valid; every other slot's handle is unaffected.
//
// Complexity: O(log n).
func (q *PriorityQueue) Update(slot Slot, newPrio Priority) error {
	if slot == nil || slot.index < 0 || slot.index >= len(q.h) || q.h[slot.index] != slot {
		return ErrUnknownSlot
	}
	slot.prio = newPrio
	heap.Fix(&q.h, slot.index)
	return nil
}

// Delete removes an interior slot without disturbing any other slot's
// handle.
//
// Complexity: O(log n).
func (q *PriorityQueue) Delete(slot Slot) error {
	if slot == nil || slot.index < 0 || slot.index >= len(q.h) || q.h[slot.index] != slot {
		return ErrUnknownSlot
	}
	heap.Remove(&q.h, slot.index)
	return nil
}
