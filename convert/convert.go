// File: convert.go
// Role: (n, edges, inputIDs, outputIDs) -> (*graph.Graph, inputs, outputs).
package convert

import (
	"fmt"

	"mbqcflow/bitmatrix"
	"mbqcflow/flowerr"
	"mbqcflow/graph"
)

// ToGraph builds the internal Graph and input/output bitsets from the
// wire-level vertex count, edge list, and input/output id slices.
// Out-of-range vertices, self-loop edges, and out-of-range input/output
// ids all surface as flowerr.ErrInconsistentInput; callers branch with
// errors.Is rather than inspecting the wrapped graph sentinel.
func ToGraph(n int, edges []graph.Edge, inputIDs, outputIDs []int) (g *graph.Graph, inputs, outputs bitmatrix.Bitset, err error) {
	g, err = graph.NewGraph(n, edges)
	if err != nil {
		return nil, nil, nil, wrapInconsistent("convert: building graph", err)
	}

	inputs, err = g.VertexSet(inputIDs)
	if err != nil {
		return nil, nil, nil, wrapInconsistent("convert: input set", err)
	}
	outputs, err = g.VertexSet(outputIDs)
	if err != nil {
		return nil, nil, nil, wrapInconsistent("convert: output set", err)
	}
	return g, inputs, outputs, nil
}

// ToEdgeList flattens g's adjacency back into an ascending, deduplicated
// (U<V) edge list, the inverse direction of ToGraph's edge ingestion.
func ToEdgeList(g *graph.Graph) []graph.Edge {
	n := g.N()
	var out []graph.Edge
	for u := 0; u < n; u++ {
		g.Adj(u).Each(n, func(v int) bool {
			if v > u {
				out = append(out, graph.Edge{U: u, V: v})
			}
			return true
		})
	}
	return out
}

func wrapInconsistent(context string, err error) error {
	return fmt.Errorf("%s: %w: %v", context, flowerr.ErrInconsistentInput, err)
}
