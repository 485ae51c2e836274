package decimate

import "math"

// EdgeLengthCriterion measures a candidate by the Euclidean distance
// between its endpoints and is never satisfied — a driver built with it
// runs until every edge has either collapsed or been tagged out (§8
// scenario 1: "Criterion: always unsatisfied").
type EdgeLengthCriterion struct{}

// Measure returns the Euclidean length of e.
func (EdgeLengthCriterion) Measure(mesh Mesh, e EdgeID) float64 {
	return edgeLength(mesh, e)
}

// IsSatisfied never halts the driver on its own.
func (EdgeLengthCriterion) IsSatisfied(mesh Mesh, count int, currentMeasure float64) bool {
	return false
}

func edgeLength(mesh Mesh, e EdgeID) float64 {
	o, errO := mesh.GetPoint(mesh.Origin(e))
	d, errD := mesh.GetPoint(mesh.Destination(e))
	if errO != nil || errD != nil {
		return math.Inf(1)
	}
	dx, dy, dz := o.X-d.X, o.Y-d.Y, o.Z-d.Z
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// TriangleCountCriterion measures by edge length and halts the driver once
// the live triangle count drops to or below Target (§8 scenario 5: "stop
// when mesh has ≤ 8 triangles").
type TriangleCountCriterion struct {
	Target int
}

// NewTriangleCountCriterion returns a criterion that stops once the mesh
// has at most target live triangles.
func NewTriangleCountCriterion(target int) *TriangleCountCriterion {
	return &TriangleCountCriterion{Target: target}
}

// Measure returns the Euclidean length of e.
func (c *TriangleCountCriterion) Measure(mesh Mesh, e EdgeID) float64 {
	return edgeLength(mesh, e)
}

// IsSatisfied ignores count and currentMeasure and re-derives the live
// triangle count directly from the mesh, per §4.H's "the core treats both
// as opaque" — a criterion is free to query the mesh for whatever state it
// actually needs rather than rely on what the driver happens to pass.
func (c *TriangleCountCriterion) IsSatisfied(mesh Mesh, count int, currentMeasure float64) bool {
	return countTriangles(mesh) <= c.Target
}

// countTriangles walks every live edge reported by the mesh and counts
// distinct Lnext 3-cycles, keyed by the smallest of the three directed
// handles on the cycle so each face is counted exactly once regardless of
// which of its edges mesh.Edges() happened to report.
func countTriangles(mesh Mesh) int {
	seen := make(map[EdgeID]bool)
	count := 0
	check := func(cand EdgeID) {
		if !mesh.IsLnextOfTriangle(cand) {
			return
		}
		b := mesh.Lnext(cand)
		c := mesh.Lnext(b)
		min := cand
		if b < min {
			min = b
		}
		if c < min {
			min = c
		}
		if seen[min] {
			return
		}
		seen[min] = true
		count++
	}
	for _, e := range mesh.Edges() {
		check(e)
		check(mesh.Sym(e))
	}
	return count
}

// CentroidRelocator places the surviving vertex at the centroid of its own
// position and every immediate neighbor in its post-collapse ring — a
// simple Laplacian-smoothing placement. By the time Relocate runs, the
// retired endpoint's own point record is already gone (JoinVertex deletes
// it as part of a successful collapse), so a relocator can only work from
// the survivor's new neighborhood, which is exactly what find_edge(new_id)
// (§4.E) hands it.
type CentroidRelocator struct{}

// Relocate returns the centroid of Origin(e) and every point in Origin(e)'s
// Onext ring.
func (CentroidRelocator) Relocate(mesh Mesh, e EdgeID) Point {
	origin := mesh.Origin(e)
	self, err := mesh.GetPoint(origin)
	if err != nil {
		return Point{}
	}
	sumX, sumY, sumZ := self.X, self.Y, self.Z
	n := 1
	for _, r := range ringAll(mesh, e) {
		p, err := mesh.GetPoint(mesh.Destination(r))
		if err != nil {
			continue
		}
		sumX += p.X
		sumY += p.Y
		sumZ += p.Z
		n++
	}
	return Point{X: sumX / float64(n), Y: sumY / float64(n), Z: sumZ / float64(n)}
}
