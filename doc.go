// Package decimate (github.com/katalvlaran/decimate) is a priority-driven
// edge-collapse decimation engine for 2-manifold triangle meshes.
//
// 🚀 What is decimate?
//
//	A small, dependency-light core that greedily simplifies a triangle mesh
//	by repeatedly collapsing its cheapest edge:
//
//	  • A min-heap + mapper keeps every candidate edge ranked by cost, with
//	    O(log n) priority updates and targeted removal
//	  • A join-vertex operator performs the topological merge and classifies
//	    every way it can fail (isolated tetrahedron, samosa, eye, border
//	    welding, …), each with its own recovery
//	  • An iteration driver ties the two together under a pluggable cost
//	    criterion and an optional vertex relocator
//
// ✨ Why this shape?
//
//   - Pluggable    — the mesh, the cost function, and the stop condition are
//     all external collaborators behind small interfaces
//   - Safe         — tombstoned queue entries make "skip this edge forever"
//     a queue-local decision, never a repair-code responsibility
//   - Synchronous  — single-threaded, no callbacks re-enter the driver
//
// Everything is organized under these packages:
//
//	quadedge/        — concrete arena-based quad-edge mesh (the Mesh collaborator)
//	decimate/        — the engine: priority queue, mapper, join-vertex, repair, driver
//	decimate/metrics — optional Prometheus-backed Observer
//
// Runnable Example functions live in decimate/example_test.go.
//
//	go get github.com/katalvlaran/decimate
package decimate
