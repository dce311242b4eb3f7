// Package causalflow finds a causal flow (spec.md §4.4): the simplest of
// the three flows, where every non-output vertex is measured in the XY
// plane and corrects via exactly one neighbour.
//
// What & Why:
//
//	Causal flow reduces layer-by-layer to a bipartite matching problem:
//	each round, match as many not-yet-corrected vertices as possible to a
//	distinct neighbour drawn from Corrected \ I (spec.md §4.3/§4.4). This
//	package runs Kuhn's augmenting-path algorithm once per round —
//	overkill-looking for "find one neighbour," but required for the
//	"maximally many vertices, simultaneously" guarantee the generic
//	skeleton demands: a vertex with several eligible correctors can block
//	another vertex from progressing unless the round reassigns correctors
//	via augmenting paths.
//
//	A corrector candidate is only a legal match for u when every other
//	neighbour it has is already corrected (restrictCandidates): spec.md
//	§4.2 requires all of adj(f(u)) \ {u} to sit at a strictly smaller
//	layer than u, and that can only be guaranteed by vertices already
//	settled in a previous round.
//
// find_causal has no plane parameter (spec.md §6): causal flow is only
// ever defined when every non-output vertex is measured in the XY plane,
// so the caller does not supply labels at all.
package causalflow
