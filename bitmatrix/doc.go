// Package bitmatrix provides a dense GF(2) bitset and a row-major matrix
// built on top of it, with Gauss–Jordan elimination and multi-RHS
// back-substitution.
//
// What & Why:
//
//	Flow-finding over open graphs reduces, layer by layer, to solving many
//	small linear systems over GF(2) sharing one coefficient matrix. Bitset
//	(a slice of uint64 words) is the fundamental primitive: every adjacency
//	row, candidate-corrector set, and odd-neighbourhood is one. BitMatrix
//	composes Bitset rows and implements the one algorithm every flow finder
//	shares — eliminate once, solve many — so no finder hand-rolls Gaussian
//	elimination.
//
// Complexity:
//
//	Bitset ops are O(words) = O(n/64). Eliminate is O(rows·cols·words).
//	Solve is O(rhsCols·rows) once eliminated.
package bitmatrix
