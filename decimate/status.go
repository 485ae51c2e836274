package decimate

// Status is the join-vertex operator's tagged outcome (§4.E, §9 "tagged
// variant"). StatusSuccess is the only case that mutates the mesh; every
// other value names a distinct failure configuration with its own repair in
// repair.go.
type Status int

const (
	// StatusSuccess: the collapse was performed; OldID in the Outcome names
	// the retired point.
	StatusSuccess Status = iota
	// StatusEdgeNull: the candidate handle was NoEdge.
	StatusEdgeNull
	// StatusMeshNull: the mesh collaborator was nil.
	StatusMeshNull
	// StatusFaceIsolated: an endpoint of the candidate is NoPoint, so the
	// edge has no usable face context.
	StatusFaceIsolated
	// StatusEdgeIsolated: the edge is attached to no face on either side.
	StatusEdgeIsolated
	// StatusTooManyCommonVertices: endpoints share more than two
	// ring-neighbors; collapsing would create a non-manifold vertex.
	StatusTooManyCommonVertices
	// StatusTetrahedronConfig: the local subcomplex is a closed tetrahedron.
	StatusTetrahedronConfig
	// StatusSamosaConfig: two triangles share all three vertices with
	// opposite orientation; both endpoints have order 2.
	StatusSamosaConfig
	// StatusEyeConfig: two triangles share three points and two edges;
	// exactly one endpoint has order 2.
	StatusEyeConfig
	// StatusEdgeJoiningDifferentBorders: collapsing would weld two distinct
	// boundary loops into one.
	StatusEdgeJoiningDifferentBorders
)

// String renders a Status for debug traces and test failure messages.
func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "SUCCESS"
	case StatusEdgeNull:
		return "EDGE_NULL"
	case StatusMeshNull:
		return "MESH_NULL"
	case StatusFaceIsolated:
		return "FACE_ISOLATED"
	case StatusEdgeIsolated:
		return "EDGE_ISOLATED"
	case StatusTooManyCommonVertices:
		return "TOO_MANY_COMMON_VERTICES"
	case StatusTetrahedronConfig:
		return "TETRAEDRON_CONFIG"
	case StatusSamosaConfig:
		return "SAMOSA_CONFIG"
	case StatusEyeConfig:
		return "EYE_CONFIG"
	case StatusEdgeJoiningDifferentBorders:
		return "EDGE_JOINING_DIFFERENT_BORDERS"
	default:
		return "UNKNOWN_STATUS"
	}
}

// Outcome is the join-vertex operator's full report: Status plus, on
// success, the retired and surviving point ids.
type Outcome struct {
	Status Status
	OldID  PointID
	NewID  PointID
}
