// Package gflow finds a generalized flow (spec.md §4.5): per round, a
// rectangular GF(2) linear system is assembled once and solved for every
// still-uncorrected vertex's plane-specific target in a single shared
// elimination, rather than hand-rolling one system per vertex.
//
// What & Why:
//
//	Rows are the not-yet-corrected vertices (the round's frontier, which
//	always equals V \ Corrected since outputs never re-enter the
//	frontier); columns are the candidate correctors C = Corrected \ I.
//	Column j, row r holds adjacency(r, candidate_j). Each frontier vertex
//	u contributes one RHS column encoding its plane's target over that
//	same row domain (spec.md §4.2): XY wants Odd(f(u)) to hit exactly u
//	among the frontier; YZ/XZ fold u's own forced membership in f(u) into
//	the RHS via Odd's GF(2) linearity before solving. bitmatrix.Eliminate
//	is run once per round and every RHS column is back-substituted
//	against that same elimination (spec.md's "shared elimination" design
//	note), so a round costs one O(rows*cols) elimination plus O(rows) per
//	vertex, not one elimination per vertex.
package gflow
