package decimate

// ringAll returns every directed edge sharing e's origin, starting with e
// itself (unlike originRingExcluding in walker.go, which omits it).
func ringAll(mesh Mesh, e EdgeID) []EdgeID {
	ring := []EdgeID{e}
	for cur := mesh.Onext(e); cur != e; cur = mesh.Onext(cur) {
		ring = append(ring, cur)
	}
	return ring
}

// commonNeighbors returns the set of points adjacent to both Origin(e) and
// Destination(e), other than the endpoints themselves — the classic
// "link condition" check: exactly two for a normal interior edge, one for a
// boundary edge with a single incident triangle, more than two only for
// topologically unsafe collapses.
func commonNeighbors(mesh Mesh, e EdgeID) []PointID {
	o := mesh.Origin(e)
	d := mesh.Destination(e)
	se := mesh.Sym(e)

	setD := make(map[PointID]bool)
	for _, r := range ringAll(mesh, se) {
		if n := mesh.Destination(r); n != o {
			setD[n] = true
		}
	}
	var common []PointID
	for _, r := range ringAll(mesh, e) {
		if n := mesh.Destination(r); n != d && setD[n] {
			common = append(common, n)
		}
	}
	return common
}

// boundaryEdgeAt returns a boundary half-edge (one whose left face is not a
// triangle) sharing origin(e), e itself included in the search, or NoEdge if
// none exists.
func boundaryEdgeAt(mesh Mesh, e EdgeID) EdgeID {
	for _, r := range ringAll(mesh, e) {
		if !mesh.IsLnextOfTriangle(r) {
			return r
		}
	}
	return NoEdge
}

// sameBoundaryLoop reports whether b is reachable from a by walking Lnext
// (the face-boundary chain) — i.e. whether a and b sit on the same
// boundary loop.
func sameBoundaryLoop(mesh Mesh, a, b EdgeID) bool {
	if a == b {
		return true
	}
	for cur := mesh.Lnext(a); cur != a; cur = mesh.Lnext(cur) {
		if cur == b {
			return true
		}
	}
	return false
}

// isEdgeJoiningDifferentBorders detects the case where e is an interior
// edge (triangles on both sides) whose two endpoints each separately touch
// the mesh boundary, but on two different boundary loops — collapsing e
// would weld two holes into one.
func isEdgeJoiningDifferentBorders(mesh Mesh, e EdgeID) bool {
	se := mesh.Sym(e)
	if !mesh.IsLnextOfTriangle(e) || !mesh.IsLnextOfTriangle(se) {
		return false // e itself is the boundary edge; a different case
	}
	bo := boundaryEdgeAt(mesh, e)
	bd := boundaryEdgeAt(mesh, se)
	if bo == NoEdge || bd == NoEdge {
		return false
	}
	return !sameBoundaryLoop(mesh, bo, bd)
}

// classify computes the Status for a candidate edge that has already passed
// the cheap degenerate-input checks, without mutating the mesh.
func classify(mesh Mesh, e EdgeID) Status {
	se := mesh.Sym(e)
	leftTri := mesh.IsLnextOfTriangle(e)
	rightTri := mesh.IsLnextOfTriangle(se)
	if !leftTri && !rightTri {
		return StatusEdgeIsolated
	}

	common := commonNeighbors(mesh, e)
	if len(common) > 2 {
		return StatusTooManyCommonVertices
	}

	orderO := mesh.GetOrder(e)
	orderD := mesh.GetOrder(se)

	if len(common) == 2 && orderO == 3 && orderD == 3 {
		x, y := common[0], common[1]
		if mesh.FindEdgeBetween(x, y) != NoEdge &&
			mesh.GetOrder(mesh.FindEdgeAt(x)) == 3 && mesh.GetOrder(mesh.FindEdgeAt(y)) == 3 {
			return StatusTetrahedronConfig
		}
	}

	if orderO == 2 && orderD == 2 {
		return StatusSamosaConfig
	}
	if (orderO == 2) != (orderD == 2) && len(common) == 1 {
		return StatusEyeConfig
	}

	if isEdgeJoiningDifferentBorders(mesh, e) {
		return StatusEdgeJoiningDifferentBorders
	}

	return StatusSuccess
}

// mergeVertex performs the topological surgery for a validated collapse: it
// retires Origin(collapseEdge), keeping Destination(collapseEdge) as the
// survivor. Any triangle adjacent to collapseEdge degenerates once its two
// endpoints are identified, so the "far" edge of such a triangle (which
// becomes a duplicate of its own triangle-mate once the merge lands) is
// deleted first; every other edge in the retired point's ring is then
// relabeled onto the survivor and the two rings are spliced into one before
// the collapsed edge itself is removed.
func mergeVertex(mesh Mesh, collapseEdge EdgeID) {
	d := mesh.Destination(collapseEdge)
	se := mesh.Sym(collapseEdge)

	if mesh.IsLnextOfTriangle(collapseEdge) {
		mesh.DeleteEdge(mesh.Lnext(collapseEdge))
	}
	if mesh.IsLnextOfTriangle(se) {
		mesh.DeleteEdge(mesh.Lnext(se))
	}

	for r := mesh.Onext(collapseEdge); r != collapseEdge; r = mesh.Onext(r) {
		mesh.SetOrigin(r, d)
	}

	mesh.Splice(collapseEdge, se)
	mesh.DeleteEdge(collapseEdge)
}

// JoinVertex implements the public contract of §4.E: given a directed edge
// e = (o -> d), either perform the collapse and report the retired/survivor
// ids, or leave the mesh untouched and report a classified failure.
//
// The survivor is always the endpoint with the smaller PointID (the
// canonical choice the driver would otherwise compute as idx = min(o, d));
// folding that choice into the operator keeps the driver from needing to
// thread an extra argument through for it.
func JoinVertex(mesh Mesh, e EdgeID) Outcome {
	if mesh == nil {
		return Outcome{Status: StatusMeshNull}
	}
	if e == NoEdge {
		return Outcome{Status: StatusEdgeNull}
	}
	o := mesh.Origin(e)
	d := mesh.Destination(e)
	if o == NoPoint || d == NoPoint {
		return Outcome{Status: StatusFaceIsolated}
	}

	status := classify(mesh, e)
	if status != StatusSuccess {
		return Outcome{Status: status}
	}

	collapseEdge := e
	oldID, newID := o, d
	if o < d {
		collapseEdge = mesh.Sym(e)
		oldID, newID = d, o
	}
	mergeVertex(mesh, collapseEdge)
	_ = mesh.DeletePoint(oldID)

	return Outcome{Status: StatusSuccess, OldID: oldID, NewID: newID}
}

// isEdgeOk implements §4.G's lazy re-check on extraction: every popped edge
// is re-validated against the live mesh before it is handed to JoinVertex.
// A queue entry's EdgeID handle is never reassigned to a different edge once
// minted, so IsAlive alone is enough to tell a stale entry (superseded by an
// earlier collapse) from one still worth processing.
func isEdgeOk(mesh Mesh, e EdgeID) bool {
	if e == NoEdge || !mesh.IsAlive(e) {
		return false
	}
	o := mesh.Origin(e)
	d := mesh.Destination(e)
	return o != NoPoint && d != NoPoint
}
