// Package validator checks a candidate (f, ℓ) witness against the flow
// semantics of spec.md §4.2 without re-solving anything (spec.md §4.7):
// every check is a direct bitset/layer comparison.
//
// Validate accepts graph.PLabels, the six-tag superset, so one
// implementation serves causal flow, gflow, and pflow witnesses alike;
// a caller validating a causal or gflow result first maps its
// graph.Labels to the matching PPlane tags; neither this package nor the
// root facade's Validate (which also takes PLabels) does that mapping.
//
// Scan order is pinned by spec.md §7 ("the validator returns at the
// first violation, deterministic by vertex-ascending then
// edge-lexicographic scan order") so callers can assert an exact
// Message for a known-bad witness.
package validator
