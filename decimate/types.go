package decimate

// PointID is a stable handle a Mesh uses to identify a vertex. NoPoint marks
// a detached or absent vertex.
type PointID int

// NoPoint is the sentinel for an absent point.
const NoPoint PointID = -1

// EdgeID is a stable handle a Mesh uses to identify a directed half-edge.
// NoEdge marks an absent edge.
type EdgeID int

// NoEdge is the sentinel for an absent edge.
const NoEdge EdgeID = -1

// Point is the payload a Relocator hands back for a collapsed vertex.
type Point struct {
	X, Y, Z float64
}

// Mesh is the external 2-manifold quad-edge collaborator the engine mutates.
// A concrete implementation (quadedge.Mesh) is supplied by the caller; the
// engine never constructs or serializes a mesh itself.
//
// All navigation methods are assumed O(1); GetOrder is O(degree).
type Mesh interface {
	// Navigation, mirroring spec.md §6.
	Origin(e EdgeID) PointID
	Destination(e EdgeID) PointID
	Sym(e EdgeID) EdgeID
	Onext(e EdgeID) EdgeID
	Oprev(e EdgeID) EdgeID
	Lnext(e EdgeID) EdgeID
	Lprev(e EdgeID) EdgeID
	Rnext(e EdgeID) EdgeID
	Rprev(e EdgeID) EdgeID
	GetOrder(e EdgeID) int
	IsLnextOfTriangle(e EdgeID) bool
	// IsAlive reports whether e still belongs to the mesh. A handle is never
	// recycled, so a dead one stays dead for the rest of the Mesh's life —
	// this is what lets the driver hold onto a stale EdgeID in the queue and
	// safely ask "is this still real?" before re-deriving anything from it.
	IsAlive(e EdgeID) bool

	// Lookup.
	FindEdgeAt(id PointID) EdgeID
	FindEdgeBetween(a, b PointID) EdgeID
	GetPoint(id PointID) (Point, error)
	SetPoint(id PointID, x, y, z float64) error
	DeletePoint(id PointID) error

	// Mutation primitives the join-vertex operator composes the merge from.
	Splice(a, b EdgeID)
	DeleteEdge(e EdgeID)
	SetOrigin(e EdgeID, p PointID)

	// Edges iterates every currently live undirected edge, one directed
	// representative each, for the driver's initial fill (§4.G).
	Edges() []EdgeID
}

// Criterion is the cost/termination collaborator (§4.H, §6). The core
// treats it as opaque and assumes no monotonicity of Measure across
// iterations.
type Criterion interface {
	// Measure returns the cost of collapsing e; lower is preferred.
	Measure(mesh Mesh, e EdgeID) float64
	// IsSatisfied is the termination oracle, given the number of entries the
	// driver's mapper tracks (tombstones included) and the measure of the
	// edge the driver is about to process.
	IsSatisfied(mesh Mesh, count int, currentMeasure float64) bool
}

// Relocator is the optional collaborator that chooses the surviving
// vertex's new coordinate. Called exactly once per successful collapse when
// Options.Relocate is set.
type Relocator interface {
	Relocate(mesh Mesh, e EdgeID) Point
}

// Observer is an optional, ambient side channel (SPEC_FULL §3) the driver
// calls at the same points it accumulates a DebugTrace. A nil Observer is a
// no-op; decimate/metrics provides a Prometheus-backed implementation.
type Observer interface {
	OnExtract(iter int, key EdgeKey, p Priority)
	OnOutcome(iter int, key EdgeKey, status Status)
	OnQueueSize(n int)
}

// Option configures a Driver.
type Option func(*Options)

// Options are the engine's configuration flags (§6).
type Options struct {
	// Relocate moves the surviving vertex to a Relocator-chosen coordinate
	// after a successful collapse. Default true.
	Relocate bool
	// CheckOrientation is reserved (§9 Open Question): the source declares
	// it but never consults it. It is carried here, documented as a no-op,
	// rather than silently dropped, so a future implementation has a named
	// place to wire a real orientation check into.
	CheckOrientation bool
	// Observer receives extraction/outcome/queue-size notifications. Nil is
	// a valid no-op observer.
	Observer Observer
	// Relocator supplies the new coordinate when Relocate is set; ignored
	// otherwise. If Relocate is true and Relocator is nil, the survivor
	// keeps its coordinate.
	Relocator Relocator
}

// DefaultOptions returns { Relocate: true, CheckOrientation: false }.
func DefaultOptions() Options {
	return Options{
		Relocate:         true,
		CheckOrientation: false,
	}
}

// WithRelocate toggles whether the survivor is repositioned after a
// successful collapse.
func WithRelocate(on bool) Option {
	return func(o *Options) { o.Relocate = on }
}

// WithCheckOrientation sets the reserved orientation-check flag. It has no
// effect on collapse behavior; see Options.CheckOrientation.
func WithCheckOrientation(on bool) Option {
	return func(o *Options) { o.CheckOrientation = on }
}

// WithObserver attaches an Observer. Passing nil restores the no-op default.
func WithObserver(obs Observer) Option {
	return func(o *Options) { o.Observer = obs }
}

// WithRelocator attaches a Relocator, used only when Relocate is true.
func WithRelocator(r Relocator) Option {
	return func(o *Options) { o.Relocator = r }
}
