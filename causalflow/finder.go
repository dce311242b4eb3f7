// File: finder.go
// Role: the FlowFinder of spec.md §4.4, instantiating the generic
// layer-peeling skeleton of §4.3 with a bipartite-matching solve_layer.
// AI-HINT (file):
//   - Candidates for round k are Corrected \ I (outputs already corrected
//     at layer 0 count, and an input is never usable as anyone's
//     corrector, spec.md §4.2).
//   - Matching uses Kuhn's algorithm (DFS augmenting paths) so a round
//     finds a *maximum* matching, not just a greedy one; ties broken by
//     ascending vertex id at every choice point (spec.md §5).
package causalflow

import (
	"fmt"

	"mbqcflow/bitmatrix"
	"mbqcflow/flowerr"
	"mbqcflow/graph"
	"mbqcflow/layering"
	"mbqcflow/trace"
)

// Result is the witness a successful Find returns: the single-vertex
// correction function and the consistent layer map.
type Result struct {
	F     map[int]int // u -> its unique corrector vertex
	Layer []int       // per-vertex layer; 0 for outputs
}

// Find computes a causal flow for the open graph (g, inputs, outputs),
// or returns flowerr.ErrNoFlowExists if none exists.
//
// Complexity: O(rounds * V * E) for the augmenting-path matching.
func Find(g *graph.Graph, inputs, outputs bitmatrix.Bitset, tr trace.Tracer) (*Result, error) {
	n := g.N()
	m := bitmatrix.NewBitset(n) // M = V \ O
	for v := 0; v < n; v++ {
		if !outputs.Test(v) {
			m.Set(v)
		}
	}

	state := layering.NewState(n, outputs)
	f := make(map[int]int)

	for {
		frontier := state.Frontier(m)
		if len(frontier) == 0 {
			return &Result{F: f, Layer: state.Layers()}, nil
		}
		tr.RoundStart(state.Round(), len(frontier))

		candidates := state.Corrected().AndNot(inputs)
		usable, exclusiveTo := restrictCandidates(g, candidates, state.Corrected(), n)
		_, frontierOf := matchBipartite(g, frontier, usable, exclusiveTo, n)

		if len(frontierOf) == 0 {
			tr.StuckFrontier(state.Round(), len(frontier))
			return nil, fmt.Errorf("causalflow: round %d: %w", state.Round(), flowerr.ErrNoFlowExists)
		}

		for u, c := range frontierOf {
			f[u] = c
			state.Commit(u)
			tr.VertexSolved(state.Round(), u, 1)
		}
		state.AdvanceRound()
	}
}

// restrictCandidates narrows candidates to those a causal corrector may
// legally use this round. spec.md §4.2 requires every v in adj(f(u)) \
// {u} to already sit at a strictly smaller layer than u; since everything
// in Corrected has a strictly smaller layer than anything still in the
// frontier, a candidate c is safe for u precisely when its only possible
// uncorrected neighbour is u itself. A candidate with zero uncorrected
// neighbours is safe for whichever frontier vertex claims it; a candidate
// with two or more is unusable by anyone until a later round shrinks its
// uncorrected neighbourhood.
func restrictCandidates(g *graph.Graph, candidates, corrected bitmatrix.Bitset, n int) (usable bitmatrix.Bitset, exclusiveTo map[int]int) {
	usable = bitmatrix.NewBitset(n)
	exclusiveTo = make(map[int]int)
	candidates.Each(n, func(c int) bool {
		uncorrected := g.Adj(c).AndNot(corrected)
		switch uncorrected.PopCount() {
		case 0:
			usable.Set(c)
		case 1:
			usable.Set(c)
			uncorrected.Each(n, func(owner int) bool {
				exclusiveTo[c] = owner
				return false
			})
		}
		return true
	})
	return usable, exclusiveTo
}

// matchBipartite runs Kuhn's algorithm matching each frontier vertex (in
// ascending order) to a distinct candidate neighbour, returning both
// directions of the resulting maximum matching.
func matchBipartite(g *graph.Graph, frontier []int, usable bitmatrix.Bitset, exclusiveTo map[int]int, n int) (matchOf map[int]int, frontierOf map[int]int) {
	matchOf = make(map[int]int)    // candidate -> frontier vertex
	frontierOf = make(map[int]int) // frontier vertex -> candidate

	for _, u := range frontier {
		visited := bitmatrix.NewBitset(n)
		tryAugment(g, u, usable, exclusiveTo, visited, matchOf)
	}
	for c, u := range matchOf {
		frontierOf[u] = c
	}
	return matchOf, frontierOf
}

// tryAugment is Kuhn's augmenting-path search from frontier vertex u: it
// tries every eligible candidate in ascending order, either claiming a
// free one or bumping its current owner to find an alternative, updating
// matchOf in place on success. A candidate reserved exclusively for a
// different vertex is skipped outright.
func tryAugment(g *graph.Graph, u int, usable bitmatrix.Bitset, exclusiveTo map[int]int, visited bitmatrix.Bitset, matchOf map[int]int) bool {
	eligible := g.Adj(u).And(usable)
	claimed := false
	eligible.Each(g.N(), func(c int) bool {
		if owner, reserved := exclusiveTo[c]; reserved && owner != u {
			return true
		}
		if visited.Test(c) {
			return true
		}
		visited.Set(c)
		prevU, taken := matchOf[c]
		if !taken || tryAugment(g, prevU, usable, exclusiveTo, visited, matchOf) {
			matchOf[c] = u
			claimed = true
			return false
		}
		return true
	})
	return claimed
}
