// File: finder.go
// Role: the GFlowFinder of spec.md §4.5, instantiating the generic
// layer-peeling skeleton of §4.3 with a shared GF(2) linear solve.
// AI-HINT (file):
//   - Row domain is the round's frontier (== V \ Corrected); column
//     domain is the candidate set C = Corrected \ I.
//   - Plane semantics fold into the RHS before solving, not into the
//     matrix: YZ/XZ force u into f(u) by shifting the target by adj(u)'s
//     row (Odd is linear over GF(2), so "Odd(S ∪ {u})" becomes
//     "Odd(S) xor adjacency-row-of-u" once u is pulled out of S).
package gflow

import (
	"fmt"

	"mbqcflow/bitmatrix"
	"mbqcflow/flowerr"
	"mbqcflow/graph"
	"mbqcflow/layering"
	"mbqcflow/trace"
)

// Result is the witness a successful Find returns.
type Result struct {
	F     map[int]bitmatrix.Bitset // u -> its correction set, as an n-wide bitset
	Layer []int
}

// Find computes a generalized flow for the open graph (g, inputs,
// outputs) under the given XY/YZ/XZ plane assignment, or returns
// flowerr.ErrNoFlowExists if none exists.
func Find(g *graph.Graph, labels graph.Labels, inputs, outputs bitmatrix.Bitset, tr trace.Tracer) (*Result, error) {
	n := g.N()
	if err := graph.ValidateLabels(n, outputs, labels); err != nil {
		return nil, fmt.Errorf("gflow: %w: %v", flowerr.ErrInconsistentInput, err)
	}

	m := bitmatrix.NewBitset(n)
	for v := 0; v < n; v++ {
		if !outputs.Test(v) {
			m.Set(v)
		}
	}

	state := layering.NewState(n, outputs)
	f := make(map[int]bitmatrix.Bitset)

	for {
		frontier := state.Frontier(m)
		if len(frontier) == 0 {
			return &Result{F: f, Layer: state.Layers()}, nil
		}
		tr.RoundStart(state.Round(), len(frontier))

		solved, err := solveRound(g, labels, state, inputs, frontier, n)
		if err != nil {
			return nil, err
		}

		progressed := false
		for u, fu := range solved {
			f[u] = fu
			progressed = true
			tr.VertexSolved(state.Round(), u, fu.PopCount())
		}
		for _, u := range frontier {
			if _, ok := solved[u]; !ok {
				tr.VertexRejected(state.Round(), u)
			}
		}
		if !progressed {
			tr.StuckFrontier(state.Round(), len(frontier))
			return nil, fmt.Errorf("gflow: round %d: %w", state.Round(), flowerr.ErrNoFlowExists)
		}

		for u := range solved {
			state.Commit(u)
		}
		state.AdvanceRound()
	}
}

// solveRound assembles one |frontier| x (|C| + |frontier|) system and
// back-substitutes every frontier vertex's RHS column against a single
// elimination, returning the correction set of every vertex whose column
// was consistent.
func solveRound(g *graph.Graph, labels graph.Labels, state *layering.State, inputs bitmatrix.Bitset, frontier []int, n int) (map[int]bitmatrix.Bitset, error) {
	candidates := state.Corrected().AndNot(inputs)
	cList := candidates.ToSlice(n)
	nCols := len(cList)
	nRows := len(frontier)

	mat := bitmatrix.NewBitMatrix(nRows, nCols+nRows)
	for ri, r := range frontier {
		for ci, c := range cList {
			if g.HasEdge(r, c) {
				mat.Set(ri, ci, true)
			}
		}
	}

	for ui, u := range frontier {
		rhsCol := nCols + ui
		plane, ok := labels[u]
		if !ok {
			return nil, fmt.Errorf("gflow: vertex %d: %w: missing measurement plane", u, flowerr.ErrInconsistentInput)
		}
		for ri, r := range frontier {
			adjacent := g.HasEdge(u, r)
			var target bool
			switch plane {
			case graph.PlaneXY:
				target = r == u
			case graph.PlaneYZ:
				target = adjacent
			case graph.PlaneXZ:
				target = (r == u) != adjacent
			default:
				return nil, fmt.Errorf("gflow: vertex %d: %w: unknown plane", u, flowerr.ErrInconsistentInput)
			}
			if target {
				mat.Set(ri, rhsCol, true)
			}
		}
	}

	res := mat.Eliminate(nCols)
	rhsCols := make([]int, nRows)
	for i := range rhsCols {
		rhsCols[i] = nCols + i
	}
	solutions := mat.Solve(res, rhsCols)

	solved := make(map[int]bitmatrix.Bitset)
	for ui, u := range frontier {
		sr := solutions[ui]
		if !sr.Consistent {
			continue
		}
		fu := bitmatrix.NewBitset(n)
		for ci, c := range cList {
			if sr.Solution.Test(ci) {
				fu.Set(c)
			}
		}
		if labels[u] == graph.PlaneYZ || labels[u] == graph.PlaneXZ {
			fu.Set(u)
		}
		solved[u] = fu
	}
	return solved, nil
}
