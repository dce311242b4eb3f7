// File: finder.go
// Role: the PFlowFinder of spec.md §4.6.
package pflow

import (
	"fmt"

	"mbqcflow/bitmatrix"
	"mbqcflow/flowerr"
	"mbqcflow/graph"
	"mbqcflow/layering"
	"mbqcflow/trace"
)

// Result is the witness a successful Find returns. Pauli-labelled members
// of an F entry carry no order obligation; Result does not list them
// separately.
type Result struct {
	F     map[int]bitmatrix.Bitset
	Layer []int
}

// Find computes a Pauli flow for the open graph (g, inputs, outputs)
// under the given six-label plane assignment, or returns
// flowerr.ErrNoFlowExists if none exists.
func Find(g *graph.Graph, labels graph.PLabels, inputs, outputs bitmatrix.Bitset, tr trace.Tracer) (*Result, error) {
	n := g.N()
	if err := graph.ValidatePLabels(n, outputs, labels); err != nil {
		return nil, fmt.Errorf("pflow: %w: %v", flowerr.ErrInconsistentInput, err)
	}

	pauli := graph.PauliVertices(n, labels)
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

		solved, err := solveRound(g, labels, pauli, state, inputs, frontier, n)
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
			return nil, fmt.Errorf("pflow: round %d: %w", state.Round(), flowerr.ErrNoFlowExists)
		}

		for u := range solved {
			state.Commit(u)
		}
		state.AdvanceRound()
	}
}

// solveRound handles one layer-peeling round. XY/YZ/XZ rows share one
// elimination; Pauli-Y and Pauli-Z both force their own membership
// structurally and solve a dedicated small system excluding their own
// column (§4.2's order obligation on Odd(f(u))'s non-Pauli members still
// applies to both, so neither can skip the solve); only Pauli-X needs no
// system at all.
func solveRound(g *graph.Graph, labels graph.PLabels, pauli bitmatrix.Bitset, state *layering.State, inputs bitmatrix.Bitset, frontier []int, n int) (map[int]bitmatrix.Bitset, error) {
	corrected := state.Corrected()
	// Pauli vertices ride along as columns regardless of correction status
	// (they commute past their own eigenstate), but never if they are also
	// inputs: f(u) ⊆ V\I holds for every u, Pauli or not.
	columns := corrected.AndNot(inputs).Or(pauli.AndNot(inputs))
	colList := columns.ToSlice(n)

	domain := bitmatrix.NewBitset(n)
	for _, u := range frontier {
		if !pauli.Test(u) {
			domain.Set(u)
		}
	}

	solved := make(map[int]bitmatrix.Bitset)

	var sharedRows []int
	var sharedUs []int
	for _, u := range frontier {
		plane, ok := labels[u]
		if !ok {
			return nil, fmt.Errorf("pflow: vertex %d: %w: missing measurement plane", u, flowerr.ErrInconsistentInput)
		}
		switch plane {
		case graph.PPlaneX:
			solved[u] = bitmatrix.NewBitset(n)
		case graph.PPlaneZ:
			fu, ok := solvePauliZ(g, colList, domain, u, n)
			if ok {
				fu.Set(u)
				solved[u] = fu
			}
		case graph.PPlaneY:
			fu, ok := solveExcludingSelf(g, colList, domain, u, n)
			if ok {
				fu.Set(u)
				solved[u] = fu
			}
		default:
			sharedUs = append(sharedUs, u)
		}
	}
	if len(sharedUs) == 0 {
		return solved, nil
	}

	rowSet := domain.Clone()
	for _, u := range sharedUs {
		rowSet.Set(u)
	}
	sharedRows = rowSet.ToSlice(n)

	nRows := len(sharedRows)
	nCols := len(colList)
	mat := bitmatrix.NewBitMatrix(nRows, nCols+len(sharedUs))
	for ri, r := range sharedRows {
		for ci, c := range colList {
			if g.HasEdge(r, c) {
				mat.Set(ri, ci, true)
			}
		}
	}
	for ui, u := range sharedUs {
		rhsCol := nCols + ui
		plane := labels[u]
		for ri, r := range sharedRows {
			if rhsTarget(plane.AsPlane(), r, u, g.HasEdge(u, r)) {
				mat.Set(ri, rhsCol, true)
			}
		}
	}

	res := mat.Eliminate(nCols)
	rhsCols := make([]int, len(sharedUs))
	for i := range rhsCols {
		rhsCols[i] = nCols + i
	}
	solutions := mat.Solve(res, rhsCols)

	for ui, u := range sharedUs {
		sr := solutions[ui]
		if !sr.Consistent {
			continue
		}
		fu := bitmatrix.NewBitset(n)
		for ci, c := range colList {
			if sr.Solution.Test(ci) {
				fu.Set(c)
			}
		}
		plane := labels[u]
		if plane == graph.PPlaneYZ || plane == graph.PPlaneXZ {
			fu.Set(u)
		}
		solved[u] = fu
	}
	return solved, nil
}

// rhsTarget computes the shared row-domain RHS bit for a non-Pauli plane,
// reusing exactly gflow's three formulas.
func rhsTarget(plane graph.Plane, r, u int, adjacent bool) bool {
	switch plane {
	case graph.PlaneXY:
		return r == u
	case graph.PlaneYZ:
		return adjacent
	default: // PlaneXZ
		return (r == u) != adjacent
	}
}

// solveExcludingSelf solves the Pauli-Y equation for vertex u: the same
// XZ-style target, over the column universe with u itself removed (u's
// own membership is forced structurally by the caller instead), with u's
// own row included in the system (Y, unlike Z below, imposes no waiver at
// u itself).
func solveExcludingSelf(g *graph.Graph, colList []int, domain bitmatrix.Bitset, u, n int) (bitmatrix.Bitset, bool) {
	rowSet := domain.Clone()
	rowSet.Set(u)
	return solveForcedMembership(g, colList, rowSet.ToSlice(n), u, n, func(r int) bool {
		return (r == u) != g.HasEdge(u, r)
	})
}

// solvePauliZ solves the Pauli-Z equation for vertex u: a YZ-style target
// (u's own membership forced structurally by the caller, exactly as for
// Pauli-Y), over the column universe with u itself removed — but, because
// Z additionally waives the parity-at-u constraint Y still imposes, u's
// own row is left out of the system entirely rather than included. Odd(u)
// in the resulting f(u) is therefore left unconstrained, while every
// other still-uncorrected non-Pauli vertex's order obligation (§4.7) is
// still enforced, which a blind f(u) = {u} would silently violate whenever
// u has an uncorrected non-Pauli neighbour.
func solvePauliZ(g *graph.Graph, colList []int, domain bitmatrix.Bitset, u, n int) (bitmatrix.Bitset, bool) {
	return solveForcedMembership(g, colList, domain.ToSlice(n), u, n, func(r int) bool {
		return g.HasEdge(u, r)
	})
}

// solveForcedMembership is the shared column-excluding solve behind
// solveExcludingSelf and solvePauliZ: both force u into f(u) structurally
// (never via a matrix column) and so must solve over colList with column
// u removed, against caller-supplied rows and a per-row RHS target.
func solveForcedMembership(g *graph.Graph, colList []int, rows []int, u, n int, target func(r int) bool) (bitmatrix.Bitset, bool) {
	cols := make([]int, 0, len(colList))
	for _, c := range colList {
		if c != u {
			cols = append(cols, c)
		}
	}

	nRows := len(rows)
	nCols := len(cols)
	mat := bitmatrix.NewBitMatrix(nRows, nCols+1)
	for ri, r := range rows {
		for ci, c := range cols {
			if g.HasEdge(r, c) {
				mat.Set(ri, ci, true)
			}
		}
		if target(r) {
			mat.Set(ri, nCols, true)
		}
	}

	res := mat.Eliminate(nCols)
	sr := mat.Solve(res, []int{nCols})[0]
	if !sr.Consistent {
		return bitmatrix.Bitset{}, false
	}

	fu := bitmatrix.NewBitset(n)
	for ci, c := range cols {
		if sr.Solution.Test(ci) {
			fu.Set(c)
		}
	}
	return fu, true
}
