// Package decimate implements the priority-driven edge-collapse decimation
// engine: the priority queue + mapper, the join-vertex operator and its
// failure taxonomy, topology repair, and the iteration driver that ties them
// together. The mesh it operates on, the cost criterion, and the vertex
// relocator are all external collaborators passed in through the Mesh,
// Criterion, and Relocator interfaces — this package never imports a
// concrete mesh implementation (quadedge provides one).
package decimate
