// Package convert adapts the wire-level (n, edges, inputs, outputs)
// shape spec.md §6 names as the external interface boundary into this
// module's internal Graph/Bitset representation, surfacing every
// rejection as flowerr.ErrInconsistentInput (spec.md §7) rather than a
// bare graph.Err... sentinel, so callers at the facade layer only ever
// branch on the two FlowError values.
//
// Grounded on the teacher's converterts and graph/matrix/conversions.go
// packages, which perform the analogous adaptation between core.Graph
// and external/simplified representations.
package convert
