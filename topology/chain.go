// File: chain.go
// Role: linear-chain constructor, the shape behind spec.md §8's S1/S3/S4
// seed scenarios.
package topology

import (
	"fmt"

	"mbqcflow/graph"
)

const minChainVertices = 1

// Chain returns the n-vertex path 0-1-...-(n-1): n vertices, n-1 edges
// emitted in ascending order. n=1 is a valid, edgeless, single-vertex
// chain.
func Chain(n int) (int, []graph.Edge, error) {
	if n < minChainVertices {
		return 0, nil, fmt.Errorf("topology: Chain n=%d < %d: %w", n, minChainVertices, ErrTooFewVertices)
	}
	edges := make([]graph.Edge, 0, n-1)
	for i := 1; i < n; i++ {
		edges = append(edges, graph.Edge{U: i - 1, V: i})
	}
	return n, edges, nil
}
