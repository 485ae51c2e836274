package decimate

// EdgeKey is the canonical identity of an undirected edge: the directed
// half-edge whose origin id is smaller than its destination id. All queue
// and mapper operations key on EdgeKey so the two half-edges of one
// undirected edge always resolve to one slot (§3, §4.A).
type EdgeKey EdgeID

// Canonical returns e's canonical key: e itself if origin(e) < destination(e),
// otherwise sym(e). Stable across the edge's lifetime since it only depends
// on endpoint identity, not on which half-edge the caller happened to hold.
//
// Complexity: O(1).
func Canonical(mesh Mesh, e EdgeID) EdgeKey {
	if mesh.Origin(e) < mesh.Destination(e) {
		return EdgeKey(e)
	}
	return EdgeKey(mesh.Sym(e))
}
