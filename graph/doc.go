// Package graph defines the open-graph data model flow finders operate
// on: an undirected adjacency over a fixed vertex universe {0,...,n-1},
// designated input/output vertex sets, and the measurement-plane labels
// attached to every non-output vertex.
//
// Under the hood:
//
//	Graph    — adjacency as one bitmatrix.Bitset per vertex; immutable
//	           after NewGraph returns.
//	Plane    — the three gflow/causal-flow measurement tags (XY, YZ, XZ).
//	PPlane   — the six Pauli-flow tags (XY, YZ, XZ, X, Y, Z).
//	Labels   — total map from a non-output vertex to its Plane or PPlane.
//
// Graph carries no vertex metadata and no edge weights: the spec this
// module implements works over simple, unweighted, loop-free graphs only
// (see the package's Non-goals), so there is nothing here beyond the
// bitset adjacency itself.
package graph
