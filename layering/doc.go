// Package layering maintains the evolving "corrected-so-far" vertex set,
// the current round index, and the per-vertex layer map that the generic
// layer-peeling skeleton (spec.md §4.3) shares across all three flow
// finders.
//
// What & Why:
//
//	Every finder runs the same loop: start from the outputs, repeatedly
//	solve for a maximal batch of not-yet-corrected vertices, commit them
//	to the next layer, and stop when the frontier is empty or stuck.
//	State centralizes that bookkeeping so causalflow, gflow, and pflow
//	only have to implement solve_layer.
package layering
