package decimate

import "errors"

// ErrMeshNil is returned when a nil Mesh is handed to NewDriver.
var ErrMeshNil = errors.New("decimate: mesh is nil")

// ErrCriterionNil is returned when a nil Criterion is handed to NewDriver.
var ErrCriterionNil = errors.New("decimate: criterion is nil")

// ErrEmptyQueue is returned by Peek/Pop on an empty priority queue.
var ErrEmptyQueue = errors.New("decimate: priority queue is empty")

// ErrUnknownSlot is returned by Update/Delete when the slot handle is stale
// (already popped or deleted).
var ErrUnknownSlot = errors.New("decimate: unknown queue slot")

// ErrNullPoint is returned during initialization when a collaborator hands
// back NoPoint where a live point was required — a precondition violation
// per spec.md §7, surfaced as a fatal initialization error rather than
// repaired.
var ErrNullPoint = errors.New("decimate: collaborator returned NoPoint")
