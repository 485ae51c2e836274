// Package quadedge implements a quad-edge data structure for 2-manifold
// triangle meshes (Guibas & Stolfi, 1985): every undirected edge is a bundle
// of four directed handles (two primal, two dual), linked by a single mutable
// Onext array and a structural rotation. All other navigation — Sym, Oprev,
// Lnext, Lprev, Rnext, Rprev — is derived from Onext in O(1); mutation goes
// through two primitives, Splice and DeleteEdge, exactly as in the original
// paper.
//
// quadedge plays the role the decimate package's Mesh collaborator requires
// (see decimate.Mesh): it is the concrete, arena-backed implementation
// analogous to how lvlath/core.Graph backs lvlath/dijkstra and lvlath/bfs.
// Handles are plain integers into flat arenas (onext, org, alive) rather than
// pointers, so the mesh never holds an owning reference into itself —
// mutation is index bookkeeping, not pointer surgery.
//
// Complexity: MakeEdge, Splice, DeleteEdge, Sym, Onext, Oprev, Lnext, Lprev,
// Rnext, Rprev, Origin, Destination are all O(1). GetOrder and ring walks
// (OriginRing) are O(degree).
package quadedge
