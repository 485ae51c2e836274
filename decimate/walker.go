package decimate

// originRingExcluding walks the Onext ring starting at e, returning every
// other edge sharing e's origin (e itself is excluded).
//
// Complexity: O(degree(origin(e))).
func originRingExcluding(mesh Mesh, e EdgeID) []EdgeID {
	var ring []EdgeID
	for cur := mesh.Onext(e); cur != e; cur = mesh.Onext(cur) {
		ring = append(ring, cur)
	}
	return ring
}

// NeighborhoodRings enumerates the edges whose cost may change once e is
// collapsed (§4.D): every other edge in the origin ring of e, and every
// other edge in the origin ring of sym(e). Order within each ring is
// unspecified and irrelevant for correctness.
func NeighborhoodRings(mesh Mesh, e EdgeID) (originRing, destRing []EdgeID) {
	return originRingExcluding(mesh, e), originRingExcluding(mesh, mesh.Sym(e))
}
