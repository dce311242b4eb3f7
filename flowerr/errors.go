// Package flowerr defines the FlowError taxonomy shared by the causal-flow,
// gflow, and Pauli-flow finders.
//
// Policy: only the two sentinel values below are exposed. Finder packages
// wrap one of them with %w to attach context (offending vertex, round
// number); callers branch with errors.Is.
package flowerr

import "errors"

// ErrNoFlowExists is returned when layer-peeling reaches a fixed point
// with a non-empty frontier: no further vertex can be corrected.
var ErrNoFlowExists = errors.New("flowerr: no flow exists")

// ErrInconsistentInput is returned when the graph, label map, or
// input/output sets fail validation before any solving begins (an
// out-of-range vertex, a self-loop, a missing or extraneous label, or an
// out-of-range input/output id).
var ErrInconsistentInput = errors.New("flowerr: inconsistent input")
