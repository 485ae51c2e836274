package quadedge_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/decimate/quadedge"
)

// buildTriangle constructs a single CCW triangle A(0,0)->B(1,0)->C(0,1) and
// returns the mesh plus the three point handles and the A->B edge.
func buildTriangle(t *testing.T) (*quadedge.Mesh, quadedge.PointID, quadedge.PointID, quadedge.PointID, quadedge.EdgeID) {
	t.Helper()
	pts := []quadedge.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}}
	m, err := quadedge.NewFromTriangles(pts, [][3]int{{0, 1, 2}})
	require.NoError(t, err)
	a, b, c := quadedge.PointID(0), quadedge.PointID(1), quadedge.PointID(2)
	ab := m.FindEdgeBetween(a, b)
	require.NotEqual(t, quadedge.NoEdge, ab)
	return m, a, b, c, ab
}

// TestSingleTriangleFaceCycle checks the foundational invariant every other
// test in this package (and every decimate scenario) relies on: a single
// CCW face closes into a 3-cycle under Lnext, and Sym/Onext are consistent
// with it.
//
// Purpose: pin down the navigation algebra derived in mesh.go against a hand
// workable example.
// Inputs: a single triangle A,B,C.
// Returns/asserts: Lnext forms the expected 3-cycle; Sym is an involution;
// Origin/Destination agree with the face's vertex order.
func TestSingleTriangleFaceCycle(t *testing.T) {
	m, a, b, c, ab := buildTriangle(t)

	require.Equal(t, a, m.Origin(ab))
	require.Equal(t, b, m.Destination(ab))

	bc := m.Lnext(ab)
	ca := m.Lnext(bc)
	require.Equal(t, ab, m.Lnext(ca), "face must close into a 3-cycle")
	require.Equal(t, b, m.Origin(bc))
	require.Equal(t, c, m.Origin(ca))
	require.True(t, m.IsLnextOfTriangle(ab))

	require.Equal(t, ab, m.Sym(m.Sym(ab)), "Sym must be an involution")
	require.NotEqual(t, ab, m.Sym(ab))
}

func TestOrderCountsBoundaryValence(t *testing.T) {
	m, a, _, _, _ := buildTriangle(t)
	// A is a boundary vertex of the lone triangle: it has exactly two
	// outgoing edges (A->B, and A->C, the Sym of the face's C->A edge).
	require.Equal(t, 2, m.GetOrder(m.FindEdgeAt(a)))
}

func TestFindEdgeBetweenMissingReturnsNoEdge(t *testing.T) {
	m, a, _, _, _ := buildTriangle(t)
	other := m.AddPoint(5, 5, 0)
	require.Equal(t, quadedge.NoEdge, m.FindEdgeBetween(a, other))
}

func TestDeleteEdgeDetachesBothEnds(t *testing.T) {
	m, a, b, _, ab := buildTriangle(t)
	orderABefore := m.GetOrder(m.FindEdgeAt(a))
	m.DeleteEdge(ab)
	require.False(t, m.IsAlive(ab))
	require.Less(t, m.GetOrder(m.FindEdgeAt(a)), orderABefore+1)
	require.Equal(t, quadedge.NoEdge, m.FindEdgeBetween(a, b))
}

func TestGridImportStitchesSharedEdges(t *testing.T) {
	// Two triangles sharing edge (0,2): a 2x1 quad split along its diagonal.
	pts := []quadedge.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
	m, err := quadedge.NewFromTriangles(pts, [][3]int{{0, 1, 2}, {0, 2, 3}})
	require.NoError(t, err)

	shared := m.FindEdgeBetween(0, 2)
	require.NotEqual(t, quadedge.NoEdge, shared)
	// The shared edge must carry a triangle on both sides now.
	require.True(t, m.IsLnextOfTriangle(shared))
	require.True(t, m.IsLnextOfTriangle(m.Sym(shared)))
	// Vertex 0 is an endpoint of the diagonal: valence 3 (to 1,2,3).
	require.Equal(t, 3, m.GetOrder(m.FindEdgeAt(0)))
}
