package quadedge

func orderedKey(a, b PointID) [2]PointID {
	if a < b {
		return [2]PointID{a, b}
	}
	return [2]PointID{b, a}
}

// getOrMakeDirected returns the directed edge u->v, creating its underlying
// quad-edge (both directions) on first use. Two calls with the same
// unordered pair always return Sym-consistent handles of the same edge.
func (m *Mesh) getOrMakeDirected(u, v PointID) EdgeID {
	key := orderedKey(u, v)
	if h, ok := m.edgeOf[key]; ok {
		if m.Origin(h) == u {
			return h
		}
		return symH(h)
	}
	e := m.MakeEdge()
	m.SetOrigin(e, u)
	m.SetOrigin(symH(e), v)
	m.edgeOf[key] = e
	return e
}

// AddFace stitches a CCW face loop (verts[0] -> verts[1] -> ... -> verts[0])
// into the mesh, reusing any edge already shared with a neighboring face.
// At each corner it makes Sym(edges[i]) the Onext of edges[i+1], which both
// threads the face's own Lnext ring and merges the edge into its endpoint's
// Onext ring; the Splice is skipped when the two are already adjacent, so
// fresh and shared edges go through the same loop with no separate
// boundary-stitching pass. If both edges already sit in one Onext ring
// without being adjacent, that Splice splits the ring instead.
//
// AddFace assumes verts describes a proper 2-manifold-with-boundary input:
// no undirected edge is used twice in the same rotational direction. For
// deliberately non-manifold fixtures (multi-edges, shared-apex configs), use
// MakeEdge/Splice/SetOrigin directly.
func (m *Mesh) AddFace(verts []PointID) error {
	n := len(verts)
	if n < 3 {
		return ErrDegenerateFace
	}
	edges := make([]EdgeID, n)
	for i := 0; i < n; i++ {
		edges[i] = m.getOrMakeDirected(verts[i], verts[(i+1)%n])
	}
	for i := 0; i < n; i++ {
		in, out := symH(edges[i]), edges[(i+1)%n]
		if m.onext[out] != in {
			m.Splice(out, m.Oprev(in))
		}
	}
	return nil
}

// NewFromTriangles builds a mesh from a point set and a list of CCW
// triangles (index triples into points). It is the general-purpose importer
// used for manifold fixtures (a single triangle, a triangulated grid); it
// does not support multi-edges or shared-apex degenerate configurations —
// build those by hand with MakeEdge/Splice (see the decimate package's
// fixture helpers).
func NewFromTriangles(points []Point, triangles [][3]int) (*Mesh, error) {
	m := NewMesh()
	ids := make([]PointID, len(points))
	for i, p := range points {
		ids[i] = m.AddPoint(p.X, p.Y, p.Z)
	}
	for _, t := range triangles {
		if err := m.AddFace([]PointID{ids[t[0]], ids[t[1]], ids[t[2]]}); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Edges returns one directed representative per currently alive undirected
// edge (handles whose index is a multiple of 4, i.e. the primal edge created
// first for that quad-edge bundle).
//
// Complexity: O(n) in the arena size.
func (m *Mesh) Edges() []EdgeID {
	out := make([]EdgeID, 0, len(m.onext)/4)
	for h := 0; h < len(m.onext); h += 4 {
		if m.alive[h] {
			out = append(out, EdgeID(h))
		}
	}
	return out
}
