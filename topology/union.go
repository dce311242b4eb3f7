// File: union.go
// Role: disjoint union of independently-built pieces, used to exercise
// spec.md §8's "disconnected components: each component solved
// independently" property against real multi-component inputs.
package topology

import "mbqcflow/graph"

// Piece is one component's (n, edges) pair, as returned by Chain, Grid,
// or any other topology constructor.
type Piece struct {
	N     int
	Edges []graph.Edge
}

// Union concatenates pieces into one disjoint graph, shifting each
// piece's vertex ids by the running total of prior pieces' sizes.
// Offsets[i] is the id shift applied to pieces[i] — callers use it to
// translate a piece-local input/output/label set into ids in the
// combined graph.
func Union(pieces ...Piece) (n int, edges []graph.Edge, offsets []int) {
	offsets = make([]int, len(pieces))
	shift := 0
	for i, p := range pieces {
		offsets[i] = shift
		for _, e := range p.Edges {
			edges = append(edges, graph.Edge{U: e.U + shift, V: e.V + shift})
		}
		shift += p.N
	}
	return shift, edges, offsets
}
