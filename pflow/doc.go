// Package pflow finds a Pauli flow (spec.md §4.6): the same layer-peeling
// skeleton as gflow, generalized to six measurement labels. Pauli-labelled
// vertices (X, Y, Z) relax the gflow constraints in a label-specific way
// and are exempt from inducing an order obligation on anyone who corrects
// through them (spec.md §4.2, §4.7).
//
// What & Why:
//
//	A vertex's own plane decides how many GF(2) equations its row needs:
//	XY/YZ/XZ and Pauli-Y always need exactly one (reusing gflow's target
//	formulas — Pauli-Y's is literally the XZ formula, since "Y behaves
//	like XY or XZ"); Pauli-Z needs none at its own row (its parity at u
//	is waived) but still solves for the other non-Pauli frontier rows,
//	with u forced into f(u); Pauli-X needs no system at all and always
//	gets the empty correction set.
//
//	Because Pauli vertices are usable as correctors before they are
//	themselves corrected (spec.md §4.6 wrinkle 1), the column universe
//	for a round is (Corrected \ I) ∪ Pauli(λ), strictly larger than
//	gflow's. Because Pauli vertices are exempt from the order relation
//	(spec.md §4.7), they drop out of the row domain entirely except when
//	solving their own equation (only Pauli-Y needs this): most rows share
//	one elimination exactly as in gflow, and the handful of Pauli-Y and
//	Pauli-Z vertices each get a dedicated elimination with their own
//	vertex's column excluded (the "forbidden-pivot" case spec.md §4.6
//	wrinkle 3 describes, handled here as a small per-vertex system rather
//	than a shared masked one, since such vertices are typically rare).
package pflow
