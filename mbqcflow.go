// File: mbqcflow.go
// Role: the public facade wiring convert -> graph -> {causalflow,gflow,
// pflow} -> validator, spec.md §6's four external operations.
package mbqcflow

import (
	"mbqcflow/bitmatrix"
	"mbqcflow/causalflow"
	"mbqcflow/convert"
	"mbqcflow/gflow"
	"mbqcflow/graph"
	"mbqcflow/pflow"
	"mbqcflow/trace"
	"mbqcflow/validator"
)

// FindCausal finds a causal flow for the open graph (n, edges, inputs,
// outputs), or reports flowerr.ErrNoFlowExists / ErrInconsistentInput.
func FindCausal(n int, edges []graph.Edge, inputIDs, outputIDs []int, opts ...Option) (*causalflow.Result, error) {
	cfg := newConfig(opts)
	g, inputs, outputs, err := convert.ToGraph(n, edges, inputIDs, outputIDs)
	if err != nil {
		return nil, err
	}
	return causalflow.Find(g, inputs, outputs, trace.New(cfg.tracer))
}

// FindG finds a generalized flow for the labelled open graph (n, edges,
// inputs, outputs, labels).
func FindG(n int, edges []graph.Edge, inputIDs, outputIDs []int, labels graph.Labels, opts ...Option) (*gflow.Result, error) {
	cfg := newConfig(opts)
	g, inputs, outputs, err := convert.ToGraph(n, edges, inputIDs, outputIDs)
	if err != nil {
		return nil, err
	}
	return gflow.Find(g, labels, inputs, outputs, trace.New(cfg.tracer))
}

// FindP finds a Pauli flow for the six-label open graph (n, edges,
// inputs, outputs, pplanes).
func FindP(n int, edges []graph.Edge, inputIDs, outputIDs []int, labels graph.PLabels, opts ...Option) (*pflow.Result, error) {
	cfg := newConfig(opts)
	g, inputs, outputs, err := convert.ToGraph(n, edges, inputIDs, outputIDs)
	if err != nil {
		return nil, err
	}
	return pflow.Find(g, labels, inputs, outputs, trace.New(cfg.tracer))
}

// Validate checks a candidate witness (f, layer) against the flow
// semantics of spec.md §4.2 for the given open graph and plane
// labelling, returning the first violation found, or nil if it holds.
func Validate(n int, edges []graph.Edge, inputIDs, outputIDs []int, labels graph.PLabels, f map[int]bitmatrix.Bitset, layer []int) error {
	g, inputs, outputs, err := convert.ToGraph(n, edges, inputIDs, outputIDs)
	if err != nil {
		return err
	}
	return validator.Validate(g, labels, inputs, outputs, f, layer)
}
