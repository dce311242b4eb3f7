// File: validate.go
// Role: the Validator of spec.md §4.7: given a candidate witness (f, ℓ),
// confirm it actually satisfies the flow semantics of spec.md §4.2
// without re-running any finder.
package validator

import (
	"fmt"

	"mbqcflow/bitmatrix"
	"mbqcflow/graph"
)

// Kind identifies which of the eight ValidationMessage shapes of
// spec.md §7 a Message carries.
type Kind int

const (
	// ExcessiveNonZeroLayer: an output vertex has a nonzero layer.
	ExcessiveNonZeroLayer Kind = iota
	// ExcessiveZeroLayer: a non-output vertex has layer zero.
	ExcessiveZeroLayer
	// InvalidFlowCodomain: f(u) references an input vertex.
	InvalidFlowCodomain
	// InvalidFlowDomain: f is defined (or missing) on the wrong vertex set.
	InvalidFlowDomain
	// InvalidMeasurementSpec: a non-output vertex has no valid plane tag.
	InvalidMeasurementSpec
	// InconsistentFlowOrder: an induced order edge violates ℓ(v) < ℓ(u).
	InconsistentFlowOrder
	// InconsistentFlowPlane: a plane-specific membership/parity rule failed.
	InconsistentFlowPlane
	// InconsistentFlowPPlane: a Pauli-specific membership/parity rule failed.
	InconsistentFlowPPlane
)

// Message is the single violation a failed Validate call reports. It
// implements error so callers can use errors.As to recover the Kind and
// offending vertex/edge.
type Message struct {
	Kind  Kind
	Node  int
	Other int // second endpoint, meaningful only for InconsistentFlowOrder
	Layer int // offending layer value, meaningful only for the layer kinds
	Plane graph.PPlane
}

func (m Message) Error() string {
	switch m.Kind {
	case ExcessiveNonZeroLayer:
		return fmt.Sprintf("validator: output vertex %d has nonzero layer %d", m.Node, m.Layer)
	case ExcessiveZeroLayer:
		return fmt.Sprintf("validator: non-output vertex %d has layer zero", m.Node)
	case InvalidFlowCodomain:
		return fmt.Sprintf("validator: f(%d) references input vertex", m.Node)
	case InvalidFlowDomain:
		return fmt.Sprintf("validator: f is defined inconsistently with M at vertex %d", m.Node)
	case InvalidMeasurementSpec:
		return fmt.Sprintf("validator: vertex %d has no valid measurement plane", m.Node)
	case InconsistentFlowOrder:
		return fmt.Sprintf("validator: order violation (%d -> %d): layer(%d) not < layer(%d)", m.Node, m.Other, m.Other, m.Node)
	case InconsistentFlowPlane:
		return fmt.Sprintf("validator: vertex %d violates its %v plane constraint", m.Node, m.Plane.AsPlane())
	case InconsistentFlowPPlane:
		return fmt.Sprintf("validator: vertex %d violates its %v Pauli constraint", m.Node, m.Plane)
	default:
		return fmt.Sprintf("validator: unknown violation kind %d at vertex %d", m.Kind, m.Node)
	}
}

// Validate checks a witness (f, layer) for (g, inputs, outputs, labels)
// against spec.md §4.2, returning the first violation found in
// vertex-ascending, then edge-lexicographic, scan order (spec.md §7), or
// nil if the witness is valid.
//
// labels must be the six-tag PLabels; a causal-flow or gflow witness
// validates under its upgraded PPlane tags (PPlaneX/Y/Z never appear).
func Validate(g *graph.Graph, labels graph.PLabels, inputs, outputs bitmatrix.Bitset, f map[int]bitmatrix.Bitset, layer []int) error {
	n := g.N()

	for v := 0; v < n; v++ {
		isOutput := outputs.Test(v)
		_, hasF := f[v]

		if isOutput {
			if layer[v] != 0 {
				return Message{Kind: ExcessiveNonZeroLayer, Node: v, Layer: layer[v]}
			}
			if hasF {
				return Message{Kind: InvalidFlowDomain, Node: v}
			}
			continue
		}

		if layer[v] == 0 {
			return Message{Kind: ExcessiveZeroLayer, Node: v}
		}
		if !hasF {
			return Message{Kind: InvalidFlowDomain, Node: v}
		}
		plane, ok := labels[v]
		if !ok || !plane.Valid() {
			return Message{Kind: InvalidMeasurementSpec, Node: v}
		}

		// f(v) must avoid inputs, except at v itself: YZ/XZ (and Pauli
		// Y/Z) force v into its own f(v), and v may legitimately be an
		// input vertex — only f(v) \ {v} is bound by f(v) ⊆ V \ I.
		fv := f[v]
		codomain := fv.Clone()
		codomain.Clear(v)
		if codomain.And(inputs).PopCount() != 0 {
			return Message{Kind: InvalidFlowCodomain, Node: v}
		}

		if msg, bad := checkPlane(g, v, plane, fv); bad {
			return msg
		}
	}

	return checkOrder(g, labels, f, layer, n)
}

// checkPlane verifies the membership and parity rules spec.md §4.2 and
// §4.6 attach to each of the six plane tags.
func checkPlane(g *graph.Graph, u int, plane graph.PPlane, fu bitmatrix.Bitset) (Message, bool) {
	requireMember, forbidMember := membershipRule(plane)
	inSelf := fu.Test(u)
	if requireMember && !inSelf {
		return failPlane(u, plane), true
	}
	if forbidMember && inSelf {
		return failPlane(u, plane), true
	}

	requireOdd, forbidOdd := parityRule(plane)
	if !requireOdd && !forbidOdd {
		return Message{}, false
	}
	inOdd := g.Odd(fu).Test(u)
	if requireOdd && !inOdd {
		return failPlane(u, plane), true
	}
	if forbidOdd && inOdd {
		return failPlane(u, plane), true
	}
	return Message{}, false
}

func failPlane(u int, plane graph.PPlane) Message {
	if plane.IsPauli() {
		return Message{Kind: InconsistentFlowPPlane, Node: u, Plane: plane}
	}
	return Message{Kind: InconsistentFlowPlane, Node: u, Plane: plane}
}

// membershipRule reports whether u must be in f(u) (require) or must not
// be (forbid), per plane. Pauli-X carries no membership requirement.
func membershipRule(p graph.PPlane) (require, forbid bool) {
	switch p {
	case graph.PPlaneXY:
		return false, true
	case graph.PPlaneYZ, graph.PPlaneXZ, graph.PPlaneY, graph.PPlaneZ:
		return true, false
	default: // PPlaneX
		return false, false
	}
}

// parityRule reports whether u must be in Odd(f(u)) (require) or must
// not be (forbid), per plane. Pauli-X and Pauli-Z waive the parity
// constraint outright.
func parityRule(p graph.PPlane) (require, forbid bool) {
	switch p {
	case graph.PPlaneXY, graph.PPlaneXZ, graph.PPlaneY:
		return true, false
	case graph.PPlaneYZ:
		return false, true
	default: // X, Z
		return false, false
	}
}

// checkOrder builds the induced order relation u -> v iff v in
// f(u) ∪ Odd(f(u)), v != u, and v is not Pauli-labelled, then checks
// layer(v) < layer(u) for every such edge, scanning u ascending and v
// ascending within each row (spec.md §4.7).
func checkOrder(g *graph.Graph, labels graph.PLabels, f map[int]bitmatrix.Bitset, layer []int, n int) error {
	for u := 0; u < n; u++ {
		fu, ok := f[u]
		if !ok {
			continue
		}
		targets := fu.Or(g.Odd(fu))
		var violation *Message
		targets.Each(n, func(v int) bool {
			if v == u {
				return true
			}
			if plane, ok := labels[v]; ok && plane.IsPauli() {
				return true
			}
			if !(layer[v] < layer[u]) {
				violation = &Message{Kind: InconsistentFlowOrder, Node: u, Other: v}
				return false
			}
			return true
		})
		if violation != nil {
			return *violation
		}
	}
	return nil
}
