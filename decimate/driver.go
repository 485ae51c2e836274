package decimate

import (
	"fmt"

	"github.com/google/uuid"
)

// DebugTrace records one processed iteration for diagnostics (§4.G, §7).
type DebugTrace struct {
	RunID     uuid.UUID
	Iteration int
	Key       EdgeKey
	Measure   float64
	Status    Status
	OldID     PointID
	NewID     PointID
}

// String renders a DebugTrace line suitable for a structured log Msg field.
func (t DebugTrace) String() string {
	return fmt.Sprintf("run=%s iter=%d key=%d measure=%.6f status=%s old=%d new=%d",
		t.RunID, t.Iteration, t.Key, t.Measure, t.Status, t.OldID, t.NewID)
}

// Driver runs the priority-driven collapse loop over a Mesh until the
// Criterion is satisfied or the queue is exhausted (§4.G). It owns the
// PriorityQueue and Mapper and is the only thing in the package that
// mutates both together.
type Driver struct {
	mesh      Mesh
	criterion Criterion
	opts      Options
	obs       Observer
	queue     *PriorityQueue
	mapper    *Mapper
	runID     uuid.UUID
	iteration int
	traces    []DebugTrace
}

// NewDriver builds a Driver and seeds the queue with every live edge
// mesh.Edges() reports, one canonical entry per undirected edge (§4.A).
func NewDriver(mesh Mesh, criterion Criterion, opts ...Option) (*Driver, error) {
	if mesh == nil {
		return nil, ErrMeshNil
	}
	if criterion == nil {
		return nil, ErrCriterionNil
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	obs := o.Observer
	if obs == nil {
		obs = noopObserver{}
	}

	d := &Driver{
		mesh:      mesh,
		criterion: criterion,
		opts:      o,
		obs:       obs,
		queue:     NewPriorityQueue(),
		mapper:    NewMapper(),
		runID:     uuid.New(),
	}

	for _, e := range mesh.Edges() {
		if mesh.Origin(e) == NoPoint || mesh.Destination(e) == NoPoint {
			return nil, ErrNullPoint
		}
		d.pushOrUpdate(e)
	}
	d.obs.OnQueueSize(d.queue.Len())

	return d, nil
}

// RunID identifies this Driver's processing run, for correlating DebugTrace
// entries across an external log sink.
func (d *Driver) RunID() uuid.UUID { return d.runID }

// Traces returns every DebugTrace accumulated by Run so far.
func (d *Driver) Traces() []DebugTrace { return d.traces }

// pushOrUpdate implements §4.E's push_or_update(e): canonicalize; if the
// mapper has a live slot, recompute the measure and reorder it; if it has a
// dead slot, leave the tombstone exactly as it is (R3); if absent, insert a
// new live slot.
func (d *Driver) pushOrUpdate(e EdgeID) {
	key := Canonical(d.mesh, e)
	if slot, ok := d.mapper.Lookup(key); ok {
		if slot.prio.Dead {
			return
		}
		m := d.criterion.Measure(d.mesh, EdgeID(key))
		_ = d.queue.Update(slot, Priority{Measure: m})
		return
	}
	m := d.criterion.Measure(d.mesh, EdgeID(key))
	slot := d.queue.Push(key, Priority{Measure: m})
	d.mapper.Bind(key, slot)
}

// deleteQueueEntry implements §4.E's DeleteElement(e): skip a canonical key
// that is already tombstoned, otherwise remove its slot entirely. Used
// while pre-processing a candidate's neighborhood ring, before the
// candidate's own collapse/rejection is known.
func (d *Driver) deleteQueueEntry(e EdgeID) {
	key := Canonical(d.mesh, e)
	slot, ok := d.mapper.Lookup(key)
	if !ok || slot.prio.Dead {
		return
	}
	_ = d.queue.Delete(slot)
	d.mapper.Unbind(key)
}

// tagOut implements §4.F's TagElementOut(e): mark the canonical entry dead
// with measure 0, via Update if a live slot exists, via a fresh insert if
// none does. Dead entries are permanent skip markers — the driver never
// reconsiders them, and pushOrUpdate refuses to resurrect them.
func (d *Driver) tagOut(e EdgeID) {
	key := Canonical(d.mesh, e)
	if slot, ok := d.mapper.Lookup(key); ok {
		if slot.prio.Dead {
			return
		}
		_ = d.queue.Update(slot, Priority{Dead: true, Measure: 0})
		return
	}
	slot := d.queue.Push(key, Priority{Dead: true, Measure: 0})
	d.mapper.Bind(key, slot)
}

// Run drains the queue in increasing-measure order, collapsing edges until
// the Criterion is satisfied or the queue is exhausted, and returns the
// DebugTrace log for this call (traces accumulate across repeated Run
// calls on the same Driver — R1 falls out for free: a Criterion that is
// already satisfied makes the loop stop before anything is popped).
func (d *Driver) Run() []DebugTrace {
	for {
		key, prio, err := d.queue.Peek()
		if err != nil {
			break // queue empty
		}
		if prio.Dead {
			_, _, _ = d.queue.Pop()
			d.mapper.Unbind(key)
			continue
		}
		if d.criterion.IsSatisfied(d.mesh, d.mapper.Len(), prio.Measure) {
			break
		}

		_, _, _ = d.queue.Pop()
		d.mapper.Unbind(key)
		d.iteration++
		d.obs.OnExtract(d.iteration, key, prio)

		e := EdgeID(key)
		if !isEdgeOk(d.mesh, e) {
			// Transient skip (§7): not surfaced, not traced, not counted
			// as a processed outcome.
			continue
		}

		outcome := d.process(e)
		d.traces = append(d.traces, DebugTrace{
			RunID:     d.runID,
			Iteration: d.iteration,
			Key:       key,
			Measure:   prio.Measure,
			Status:    outcome.Status,
			OldID:     outcome.OldID,
			NewID:     outcome.NewID,
		})
		d.obs.OnOutcome(d.iteration, key, outcome.Status)
		d.obs.OnQueueSize(d.queue.Len())
	}
	return d.traces
}

// process runs the §4.E sequence for one extracted candidate: collect and
// evict the neighborhood ring's queue entries, attempt the collapse, then
// either relocate-and-refresh (success) or repush-and-repair (failure).
func (d *Driver) process(e EdgeID) Outcome {
	originRing, destRing := NeighborhoodRings(d.mesh, e)
	for _, r := range originRing {
		d.deleteQueueEntry(r)
	}
	for _, r := range destRing {
		d.deleteQueueEntry(r)
	}

	outcome := JoinVertex(d.mesh, e)

	if outcome.Status != StatusSuccess {
		for _, r := range originRing {
			d.pushOrUpdate(r)
		}
		for _, r := range destRing {
			d.pushOrUpdate(r)
		}
		// EdgesToTagOut names e itself only for TETRAEDRON_CONFIG, but every
		// rejected candidate must still become a
		// permanent skip marker (§4.E/§9) — otherwise a later collapse that
		// walks one of its still-live endpoints would resurrect it via
		// pushOrUpdate.
		d.tagOut(e)
		for _, extra := range EdgesToTagOut(d.mesh, e, outcome.Status) {
			if isEdgeOk(d.mesh, extra) {
				d.tagOut(extra)
			}
		}
		return outcome
	}

	if d.opts.Relocate && d.opts.Relocator != nil {
		if surviving := d.mesh.FindEdgeAt(outcome.NewID); surviving != NoEdge {
			p := d.opts.Relocator.Relocate(d.mesh, surviving)
			_ = d.mesh.SetPoint(outcome.NewID, p.X, p.Y, p.Z)
		}
	}

	for _, r := range originRing {
		if isEdgeOk(d.mesh, r) {
			d.pushOrUpdate(r)
		}
	}
	for _, r := range destRing {
		if isEdgeOk(d.mesh, r) {
			d.pushOrUpdate(r)
		}
	}
	if surviving := d.mesh.FindEdgeAt(outcome.NewID); surviving != NoEdge {
		d.pushOrUpdate(surviving)
	}

	return outcome
}
