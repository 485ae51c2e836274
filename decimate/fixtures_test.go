package decimate_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/decimate/quadedge"
)

// buildSingleTriangle returns a lone CCW triangle A->B->C->A and the A->B
// edge. Every edge of a standalone triangle has both endpoints at order 2
// (spec.md §8 scenario 1's "samosa-like degenerate").
func buildSingleTriangle(t *testing.T) (*quadedge.Mesh, quadedge.EdgeID) {
	t.Helper()
	pts := []quadedge.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}}
	m, err := quadedge.NewFromTriangles(pts, [][3]int{{0, 1, 2}})
	require.NoError(t, err)
	ab := m.FindEdgeBetween(0, 1)
	require.NotEqual(t, quadedge.NoEdge, ab)
	return m, ab
}

// buildTetrahedron returns a closed tetrahedron (4 points, 4 triangles,
// every vertex order 3) and one of its edges.
func buildTetrahedron(t *testing.T) (*quadedge.Mesh, quadedge.EdgeID) {
	t.Helper()
	pts := []quadedge.Point{
		{X: 0, Y: 0, Z: 0},
		{X: 1, Y: 0, Z: 0},
		{X: 0.5, Y: 1, Z: 0},
		{X: 0.5, Y: 0.3, Z: 1},
	}
	m, err := quadedge.NewFromTriangles(pts, [][3]int{
		{0, 1, 2},
		{0, 3, 1},
		{1, 3, 2},
		{2, 3, 0},
	})
	require.NoError(t, err)
	e := m.FindEdgeBetween(0, 1)
	require.NotEqual(t, quadedge.NoEdge, e)
	return m, e
}

// buildSamosa returns two triangles folded onto the same 3 points with
// opposite winding (every vertex at order 2) and the A->B edge.
func buildSamosa(t *testing.T) (*quadedge.Mesh, quadedge.EdgeID) {
	t.Helper()
	pts := []quadedge.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}}
	m, err := quadedge.NewFromTriangles(pts, [][3]int{{0, 1, 2}, {0, 2, 1}})
	require.NoError(t, err)
	ab := m.FindEdgeBetween(0, 1)
	require.NotEqual(t, quadedge.NoEdge, ab)
	return m, ab
}

// buildEye returns a triangle O-D-X with an extra dangling edge D->Y
// spliced into D's ring, so O has order 2, D has order 3, and O/D share
// exactly one common neighbor (X) — spec.md's EYE_CONFIG shape.
func buildEye(t *testing.T) (*quadedge.Mesh, quadedge.EdgeID) {
	t.Helper()
	pts := []quadedge.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}}
	m, err := quadedge.NewFromTriangles(pts, [][3]int{{0, 1, 2}})
	require.NoError(t, err)
	o, d := quadedge.PointID(0), quadedge.PointID(1)
	y := m.AddPoint(2, 2, 0)
	// Take D's ring anchor before SetOrigin(dy, d) moves D's hint onto dy.
	dRing := m.FindEdgeAt(d)

	dy := m.MakeEdge()
	m.SetOrigin(dy, d)
	m.SetOrigin(m.Sym(dy), y)
	m.Splice(dRing, dy)

	od := m.FindEdgeBetween(o, d)
	require.NotEqual(t, quadedge.NoEdge, od)
	require.Equal(t, 2, m.GetOrder(od))
	require.Equal(t, 3, m.GetOrder(m.Sym(od)))
	return m, od
}

// buildSharedDiagonalQuad returns a 2x1 quad split into 2 triangles along
// its diagonal (0,2), and that diagonal edge — a normal, safely collapsible
// interior edge.
func buildSharedDiagonalQuad(t *testing.T) (*quadedge.Mesh, quadedge.EdgeID) {
	t.Helper()
	pts := []quadedge.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
	m, err := quadedge.NewFromTriangles(pts, [][3]int{{0, 1, 2}, {0, 2, 3}})
	require.NoError(t, err)
	diag := m.FindEdgeBetween(0, 2)
	require.NotEqual(t, quadedge.NoEdge, diag)
	return m, diag
}

// buildIsolatedEdge returns two points joined by a single edge with no face
// on either side.
func buildIsolatedEdge(t *testing.T) (*quadedge.Mesh, quadedge.EdgeID) {
	t.Helper()
	m := quadedge.NewMesh()
	a := m.AddPoint(0, 0, 0)
	b := m.AddPoint(1, 0, 0)
	e := m.MakeEdge()
	m.SetOrigin(e, a)
	m.SetOrigin(m.Sym(e), b)
	return m, e
}
