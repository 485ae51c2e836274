package decimate

// EdgesToTagOut returns the set of edges the driver should tombstone after a
// failed JoinVertex(e) classified as status, in addition to e itself (which
// the driver always tombstones); for StatusTetrahedronConfig the set also
// contains e and sym(e). A classification failure is a property of a
// small local subcomplex, not just of e: every other edge bordering that
// same subcomplex would be re-classified identically if left in the queue,
// so leaving them live just burns future pops on a guaranteed repeat
// failure. Tagging them out here is what keeps the driver's loop making
// forward progress on meshes containing samosas, eyes, or tetrahedra.
//
// The mesh is not mutated; these are queue-bookkeeping tombstones only.
func EdgesToTagOut(mesh Mesh, e EdgeID, status Status) []EdgeID {
	se := mesh.Sym(e)
	switch status {
	case StatusSamosaConfig:
		// Both endpoints have order 2: e and sym(e) are the only two
		// directed views of the shared edge; the other edge at each
		// endpoint is its Onext (the ring has exactly two members).
		return []EdgeID{mesh.Onext(e), mesh.Onext(se)}

	case StatusEyeConfig:
		orderO := mesh.GetOrder(e)
		var thin EdgeID
		if orderO == 2 {
			thin = e
		} else {
			thin = se
		}
		return []EdgeID{mesh.Onext(thin), mesh.Sym(mesh.Onext(thin))}

	case StatusTetrahedronConfig:
		var out []EdgeID
		out = append(out, ringAll(mesh, e)...)
		out = append(out, ringAll(mesh, se)...)
		return out

	default:
		return nil
	}
}
