// Package mbqcflow finds causal flow, generalized flow (gflow), and
// Pauli flow witnesses for measurement-based quantum computing open
// graphs, and validates a supplied witness against the same semantics
// without re-solving it.
//
// The four operations mirror spec.md §6's external interface exactly:
// FindCausal, FindG, FindP, and Validate. Each takes the wire-level
// (n, edges, inputs, outputs) shape plus a measurement-plane labelling
// where one applies, converts it through the convert package into the
// internal graph.Graph/bitmatrix.Bitset representation, and delegates
// to the causalflow/gflow/pflow finder and the validator package.
package mbqcflow
