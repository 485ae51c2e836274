package quadedge

// Mesh is an arena of quad-edge bundles plus an arena of points. It is the
// concrete collaborator that satisfies decimate.Mesh: every navigation method
// below is O(1), derived algebraically from a single mutable Onext array,
// exactly as in Guibas & Stolfi's original quad-edge structure.
//
// Mesh guards nothing with a mutex: unlike core.Graph (which is shared across
// goroutines by contract), a Mesh is always owned by a single in-flight
// Driver run and is not safe for concurrent mutation.
type Mesh struct {
	onext []EdgeID // mutable: the only primitive navigation field
	org   []PointID
	alive []bool

	points     []pointRecord
	pointAlive []bool

	edgeOf map[[2]PointID]EdgeID // undirected-pair -> the primal handle created first
}

// NewMesh returns an empty mesh ready for AddFace/AddPoint calls.
func NewMesh() *Mesh {
	return &Mesh{
		edgeOf: make(map[[2]PointID]EdgeID),
	}
}

// --- handle arithmetic (structural, no mesh state) ---

func rotH(h EdgeID) EdgeID {
	base := (int(h) / 4) * 4
	r := int(h) % 4
	return EdgeID(base + (r+1)%4)
}

func symH(h EdgeID) EdgeID {
	base := (int(h) / 4) * 4
	r := int(h) % 4
	return EdgeID(base + (r+2)%4)
}

func invRotH(h EdgeID) EdgeID {
	base := (int(h) / 4) * 4
	r := int(h) % 4
	return EdgeID(base + (r+3)%4)
}

// MakeEdge allocates a fresh, unconnected quad-edge bundle and returns its
// primal directed handle (origin and destination both NoPoint until
// SetOrigin is called on the handle and on its Sym).
//
// Complexity: O(1) amortized.
func (m *Mesh) MakeEdge() EdgeID {
	base := EdgeID(len(m.onext))
	// Primal edges (base+0, base+2) start as singleton rings; the dual pair
	// (base+1, base+3) points at each other, per the classical MakeEdge init.
	m.onext = append(m.onext, base+0, base+3, base+2, base+1)
	m.org = append(m.org, NoPoint, NoPoint, NoPoint, NoPoint)
	m.alive = append(m.alive, true, true, true, true)
	return base
}

// Splice is the fundamental quad-edge mutation primitive. If a and b's Onext
// rings are distinct, it merges them into one; if they are the same ring, it
// splits it in two. Every other mutation (DeleteEdge, vertex merges) is built
// from Splice.
//
// Complexity: O(1).
func (m *Mesh) Splice(a, b EdgeID) {
	alpha := rotH(m.onext[a])
	beta := rotH(m.onext[b])
	m.onext[a], m.onext[b] = m.onext[b], m.onext[a]
	m.onext[alpha], m.onext[beta] = m.onext[beta], m.onext[alpha]
}

// DeleteEdge removes e from the mesh: it detaches e from its origin ring and
// Sym(e) from its origin ring, then marks the whole quad-edge bundle dead.
// The two endpoint points are left exactly as they were (Origin/Destination
// of the deleted edge are not touched) except that their Edge hint is
// repointed if it was e (for the origin) or Sym(e) (for the destination).
//
// Complexity: O(1).
func (m *Mesh) DeleteEdge(e EdgeID) {
	se := symH(e)
	oe := m.Origin(e)
	od := m.Origin(se)
	m.refreshHint(oe, e)
	m.refreshHint(od, se)
	m.Splice(e, m.Oprev(e))
	m.Splice(se, m.Oprev(se))
	base := (int(e) / 4) * 4
	for i := 0; i < 4; i++ {
		m.alive[base+i] = false
	}
}

// refreshHint repoints p's incident-edge hint away from stale if stale was
// it, picking any surviving edge still in stale's former ring if one exists.
func (m *Mesh) refreshHint(p PointID, stale EdgeID) {
	if p == NoPoint || m.points[p].Edge != stale {
		return
	}
	if alt := m.Onext(stale); alt != stale && m.alive[alt] {
		m.points[p].Edge = alt
	} else {
		m.points[p].Edge = NoEdge
	}
}

// --- navigation (derived, O(1)) ---

// Sym returns the other directed half of e's undirected edge.
func (m *Mesh) Sym(e EdgeID) EdgeID { return symH(e) }

// Onext returns the next edge, counter-clockwise, around Origin(e).
func (m *Mesh) Onext(e EdgeID) EdgeID { return m.onext[e] }

// Oprev returns the previous edge, counter-clockwise, around Origin(e).
func (m *Mesh) Oprev(e EdgeID) EdgeID { return rotH(m.onext[rotH(e)]) }

// Lnext returns the next edge around the face to the left of e.
func (m *Mesh) Lnext(e EdgeID) EdgeID { return rotH(m.onext[invRotH(e)]) }

// Lprev returns the previous edge around the face to the left of e.
func (m *Mesh) Lprev(e EdgeID) EdgeID { return symH(m.onext[e]) }

// Rnext returns the next edge around the face to the right of e.
func (m *Mesh) Rnext(e EdgeID) EdgeID { return invRotH(m.onext[rotH(e)]) }

// Rprev returns the previous edge around the face to the right of e.
func (m *Mesh) Rprev(e EdgeID) EdgeID { return m.onext[symH(e)] }

// Origin returns the point e leaves from.
func (m *Mesh) Origin(e EdgeID) PointID { return m.org[e] }

// Destination returns the point e arrives at.
func (m *Mesh) Destination(e EdgeID) PointID { return m.org[symH(e)] }

// SetOrigin rebinds e's origin point and, if p is not NoPoint, offers e as
// p's incident-edge hint.
func (m *Mesh) SetOrigin(e EdgeID, p PointID) {
	m.org[e] = p
	if p != NoPoint {
		m.points[p].Edge = e
	}
}

// IsAlive reports whether e still belongs to the mesh.
func (m *Mesh) IsAlive(e EdgeID) bool {
	return e != NoEdge && int(e) < len(m.alive) && m.alive[e]
}

// GetOrder returns the valence (degree) of Origin(e): the number of distinct
// directed edges leaving that point.
//
// Complexity: O(degree).
func (m *Mesh) GetOrder(e EdgeID) int {
	n := 0
	cur := e
	for {
		n++
		cur = m.Onext(cur)
		if cur == e {
			break
		}
	}
	return n
}

// IsLnextOfTriangle reports whether the face to the left of e is a 3-cycle.
func (m *Mesh) IsLnextOfTriangle(e EdgeID) bool {
	return m.Lnext(m.Lnext(m.Lnext(e))) == e
}

// OriginRing returns every directed edge leaving Origin(e), starting at e,
// in Onext order.
//
// Complexity: O(degree).
func (m *Mesh) OriginRing(e EdgeID) []EdgeID {
	ring := []EdgeID{e}
	for cur := m.Onext(e); cur != e; cur = m.Onext(cur) {
		ring = append(ring, cur)
	}
	return ring
}
