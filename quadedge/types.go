package quadedge

import (
	"errors"

	"github.com/katalvlaran/decimate/decimate"
)

// ErrNilMesh is the sentinel for a nil *Mesh. No function in this package
// returns it.
var ErrNilMesh = errors.New("quadedge: nil mesh")

// ErrDegenerateFace is returned by AddFace when fewer than three vertices
// are given.
var ErrDegenerateFace = errors.New("quadedge: face needs at least 3 vertices")

// ErrPointNotFound is returned when a PointID does not name a live point.
var ErrPointNotFound = errors.New("quadedge: point not found")

// ErrEdgeNotFound is the sentinel for an EdgeID that does not name a live
// edge. No function in this package returns it; FindEdgeAt and
// FindEdgeBetween report a missing edge as NoEdge.
var ErrEdgeNotFound = errors.New("quadedge: edge not found")

// PointID and EdgeID are aliases of decimate's own handle types, not
// look-alike redeclarations: *Mesh's methods must satisfy decimate.Mesh by
// identity, so quadedge borrows the canonical types rather than minting its
// own and relying on structural luck.
type (
	PointID = decimate.PointID
	EdgeID  = decimate.EdgeID
)

// NoPoint and NoEdge re-export decimate's sentinels under quadedge's name,
// for callers that only import quadedge.
const (
	NoPoint = decimate.NoPoint
	NoEdge  = decimate.NoEdge
)

// Point is a mesh vertex's externally visible payload: coordinates only,
// aliased to decimate.Point so GetPoint satisfies decimate.Mesh directly.
type Point = decimate.Point

// pointRecord is the internal, arena-stored representation: coordinates
// plus a hint edge incident to the point, used to re-enter the mesh at this
// point in O(1) the common case. It is never exposed outside the package —
// GetPoint converts to the narrower public Point on the way out.
type pointRecord struct {
	X, Y, Z float64
	Edge    EdgeID // one of the edges with Origin == this point; NoEdge if isolated
}
