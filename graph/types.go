// File: types.go
// Role: Graph construction and read-only adjacency access over a fixed
// vertex universe {0,...,n-1}.
// AI-HINT (file):
//   - NewGraph dedupes parallel edges for free (adjacency is a bitset, so
//     Set is idempotent); that is the documented multi-edge Non-goal
//     being satisfied by construction rather than by rejecting input.
//   - Adj(v) returns the live row; treat it as read-only. Graph has no
//     mutation API after construction (per-call immutability, spec §3).
package graph

import (
	"fmt"

	"mbqcflow/bitmatrix"
)

// Edge is an unordered vertex pair with distinct endpoints in [0, n).
type Edge struct {
	U, V int
}

// Graph is an undirected, loop-free, unweighted adjacency over a fixed
// vertex universe of size N. It is immutable once constructed.
type Graph struct {
	n   int
	adj []bitmatrix.Bitset
}

// NewGraph validates edges and builds the adjacency bitsets.
//
// Complexity: O(n * n/64) words of allocation, O(E) edge validation.
func NewGraph(n int, edges []Edge) (*Graph, error) {
	if n < 0 {
		return nil, fmt.Errorf("graph: negative vertex count %d: %w", n, ErrVertexRange)
	}
	g := &Graph{n: n, adj: make([]bitmatrix.Bitset, n)}
	for i := range g.adj {
		g.adj[i] = bitmatrix.NewBitset(n)
	}
	for _, e := range edges {
		if e.U < 0 || e.U >= n || e.V < 0 || e.V >= n {
			return nil, fmt.Errorf("graph: edge (%d,%d) out of range [0,%d): %w", e.U, e.V, n, ErrVertexRange)
		}
		if e.U == e.V {
			return nil, fmt.Errorf("graph: self-loop at vertex %d: %w", e.U, ErrSelfLoop)
		}
		g.adj[e.U].Set(e.V)
		g.adj[e.V].Set(e.U)
	}
	return g, nil
}

// N returns the size of the vertex universe.
func (g *Graph) N() int { return g.n }

// Adj returns the live adjacency row for vertex v. Callers must not
// mutate it.
func (g *Graph) Adj(v int) bitmatrix.Bitset { return g.adj[v] }

// HasEdge reports whether u and v are adjacent.
func (g *Graph) HasEdge(u, v int) bool {
	return g.adj[u].Test(v)
}

// Odd returns Odd(S) = { v in V : |adj[v] ∩ S| is odd }, the GF(2) matrix-
// vector product of the adjacency matrix against the indicator of S.
//
// Complexity: O(n * n/64).
func (g *Graph) Odd(s bitmatrix.Bitset) bitmatrix.Bitset {
	out := bitmatrix.NewBitset(g.n)
	for v := 0; v < g.n; v++ {
		if g.adj[v].And(s).PopCount()%2 == 1 {
			out.Set(v)
		}
	}
	return out
}

// VertexSet builds an n-wide Bitset with exactly the given vertex ids set,
// validating every id is in range.
func (g *Graph) VertexSet(ids []int) (bitmatrix.Bitset, error) {
	s := bitmatrix.NewBitset(g.n)
	for _, id := range ids {
		if id < 0 || id >= g.n {
			return nil, fmt.Errorf("graph: vertex id %d out of range [0,%d): %w", id, g.n, ErrVertexRange)
		}
		s.Set(id)
	}
	return s, nil
}
