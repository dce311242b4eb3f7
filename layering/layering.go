// File: layering.go
// Role: mutable peeling state shared by every finder's main loop.
// AI-HINT (file):
//   - Round numbers start at 1; outputs sit at layer 0 implicitly (their
//     Layer slot is never written past its zero value).
//   - Frontier always returns ascending vertex ids — this is the
//     deterministic tie-break point spec.md §5 pins down.
package layering

import (
	"mbqcflow/bitmatrix"
)

// State is the per-call mutable peeling state: which vertices are
// corrected so far, what layer each vertex landed in, and the current
// round.
type State struct {
	n         int
	corrected bitmatrix.Bitset
	layer     []int
	round     int
}

// NewState seeds State with outputs already corrected at layer 0.
func NewState(n int, outputs bitmatrix.Bitset) *State {
	return &State{
		n:         n,
		corrected: outputs.Clone(),
		layer:     make([]int, n), // zero-valued: outputs' layer stays 0
		round:     1,
	}
}

// Round returns the current round/layer index (the value Commit will
// assign to vertices corrected this round).
func (s *State) Round() int { return s.round }

// Corrected returns the live corrected-so-far set. Treat as read-only.
func (s *State) Corrected() bitmatrix.Bitset { return s.corrected }

// Layer returns the committed layer for vertex v (0 for outputs, or for
// any vertex not yet committed).
func (s *State) Layer(v int) int { return s.layer[v] }

// Frontier returns, in ascending order, every vertex in candidates (M, the
// non-output vertices) not yet corrected.
func (s *State) Frontier(candidates bitmatrix.Bitset) []int {
	var out []int
	candidates.Each(s.n, func(v int) bool {
		if !s.corrected.Test(v) {
			out = append(out, v)
		}
		return true
	})
	return out
}

// Commit marks u corrected at the current round and advances u's layer.
// It does not advance the round itself; call AdvanceRound once per batch.
func (s *State) Commit(u int) {
	s.corrected.Set(u)
	s.layer[u] = s.round
}

// AdvanceRound moves to the next round after a batch of Commit calls.
func (s *State) AdvanceRound() {
	s.round++
}

// Layers returns a copy of the full per-vertex layer map.
func (s *State) Layers() []int {
	out := make([]int, s.n)
	copy(out, s.layer)
	return out
}
