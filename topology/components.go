// File: components.go
// Role: connected-component diagnostic, adapted from gridgraph's
// flood-fill traversal. Not load-bearing for any finder — the
// layer-peeling skeleton already solves each component independently
// for free, since a GF(2) system over one component's columns can never
// reach another's rows — this is purely a test/assertion helper for
// that property.
package topology

import (
	"sort"

	"mbqcflow/graph"
)

// ConnectedComponents returns the vertex sets of g's connected
// components, each in ascending order, components themselves ordered by
// their smallest vertex id.
func ConnectedComponents(g *graph.Graph) [][]int {
	n := g.N()
	visited := make([]bool, n)
	var components [][]int

	for start := 0; start < n; start++ {
		if visited[start] {
			continue
		}
		queue := []int{start}
		visited[start] = true
		var comp []int

		for qi := 0; qi < len(queue); qi++ {
			v := queue[qi]
			comp = append(comp, v)
			g.Adj(v).Each(n, func(w int) bool {
				if !visited[w] {
					visited[w] = true
					queue = append(queue, w)
				}
				return true
			})
		}
		// BFS discovery order need not be ascending (a higher-id neighbour
		// can be queued before a lower-id one); sort to honour the
		// documented guarantee callers rely on.
		sort.Ints(comp)
		components = append(components, comp)
	}
	return components
}
