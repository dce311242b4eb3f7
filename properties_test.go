// File: properties_test.go
// Role: spec.md §8's universal testable properties, checked directly
// against the public facade rather than against any one finder package:
// validator agreement (a Find* witness always validates) and the flow
// hierarchy (causal flow implies gflow implies pflow on the same graph).
package mbqcflow_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"mbqcflow"
	"mbqcflow/bitmatrix"
	"mbqcflow/graph"
)

// widenLabels upgrades an XY/YZ/XZ Labels map to the six-tag PLabels the
// validator and FindP both consume.
func widenLabels(labels graph.Labels) graph.PLabels {
	out := make(graph.PLabels, len(labels))
	for u, p := range labels {
		switch p {
		case graph.PlaneYZ:
			out[u] = graph.PPlaneYZ
		case graph.PlaneXZ:
			out[u] = graph.PPlaneXZ
		default:
			out[u] = graph.PPlaneXY
		}
	}
	return out
}

func TestProperty_FindCausalWitnessValidates(t *testing.T) {
	cases := []struct {
		name      string
		n         int
		edges     []graph.Edge
		inputIDs  []int
		outputIDs []int
		labels    graph.Labels
	}{
		{
			name:      "LinearChain",
			n:         3,
			edges:     []graph.Edge{{U: 0, V: 1}, {U: 1, V: 2}},
			inputIDs:  []int{0},
			outputIDs: []int{2},
			labels:    graph.Labels{0: graph.PlaneXY, 1: graph.PlaneXY},
		},
		{
			name:      "DisconnectedUnion",
			n:         6,
			edges:     []graph.Edge{{U: 0, V: 1}, {U: 1, V: 2}, {U: 3, V: 4}, {U: 4, V: 5}},
			inputIDs:  []int{0, 3},
			outputIDs: []int{2, 5},
			labels:    graph.Labels{0: graph.PlaneXY, 1: graph.PlaneXY, 3: graph.PlaneXY, 4: graph.PlaneXY},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := mbqcflow.FindCausal(tc.n, tc.edges, tc.inputIDs, tc.outputIDs)
			require.NoError(t, err)

			f := make(map[int]bitmatrix.Bitset, len(res.F))
			for u, c := range res.F {
				f[u] = bitmatrix.FromSlice(tc.n, []int{c})
			}
			err = mbqcflow.Validate(tc.n, tc.edges, tc.inputIDs, tc.outputIDs, widenLabels(tc.labels), f, res.Layer)
			require.NoError(t, err, "a causal-flow witness must validate")
		})
	}
}

func TestProperty_FindGWitnessValidates(t *testing.T) {
	n := 3
	edges := []graph.Edge{{U: 0, V: 1}, {U: 0, V: 2}}
	outputIDs := []int{1, 2}
	labels := graph.Labels{0: graph.PlaneXY}

	res, err := mbqcflow.FindG(n, edges, nil, outputIDs, labels)
	require.NoError(t, err)

	err = mbqcflow.Validate(n, edges, nil, outputIDs, widenLabels(labels), res.F, res.Layer)
	require.NoError(t, err, "a gflow witness must validate")
}

func TestProperty_FindPWitnessValidates(t *testing.T) {
	n := 3
	edges := []graph.Edge{{U: 0, V: 1}, {U: 1, V: 2}}
	inputIDs := []int{0}
	outputIDs := []int{2}
	labels := graph.PLabels{0: graph.PPlaneXY, 1: graph.PPlaneY}

	res, err := mbqcflow.FindP(n, edges, inputIDs, outputIDs, labels)
	require.NoError(t, err)

	err = mbqcflow.Validate(n, edges, inputIDs, outputIDs, labels, res.F, res.Layer)
	require.NoError(t, err, "a pflow witness must validate")
}

// TestProperty_FlowHierarchy checks spec.md §8 property 3: wherever a
// causal flow exists, gflow and pflow must also succeed on the identical
// open graph, and wherever a gflow exists, pflow must too.
func TestProperty_FlowHierarchy(t *testing.T) {
	n := 3
	edges := []graph.Edge{{U: 0, V: 1}, {U: 1, V: 2}}
	inputIDs := []int{0}
	outputIDs := []int{2}
	labels := graph.Labels{0: graph.PlaneXY, 1: graph.PlaneXY}

	_, err := mbqcflow.FindCausal(n, edges, inputIDs, outputIDs)
	require.NoError(t, err, "precondition: causal flow must exist on this chain")

	_, err = mbqcflow.FindG(n, edges, inputIDs, outputIDs, labels)
	require.NoError(t, err, "causal flow ⇒ gflow")

	_, err = mbqcflow.FindP(n, edges, inputIDs, outputIDs, widenLabels(labels))
	require.NoError(t, err, "causal flow ⇒ pflow")
}

// TestProperty_GflowImpliesPflow confirms pflow succeeds wherever gflow
// does, on the identical labelling, independent of whether a causal flow
// also happens to exist on the same graph.
func TestProperty_GflowImpliesPflow(t *testing.T) {
	n := 3
	edges := []graph.Edge{{U: 0, V: 1}, {U: 0, V: 2}}
	outputIDs := []int{1, 2}
	labels := graph.Labels{0: graph.PlaneXY}

	_, err := mbqcflow.FindG(n, edges, nil, outputIDs, labels)
	require.NoError(t, err, "precondition: gflow must exist on this star")

	_, err = mbqcflow.FindP(n, edges, nil, outputIDs, widenLabels(labels))
	require.NoError(t, err, "gflow ⇒ pflow")
}

// TestProperty_AllOutputsIsTheEmptyFlow covers spec.md §8's V = O boundary:
// every finder must return an empty correction function and an
// all-zero layer map.
func TestProperty_AllOutputsIsTheEmptyFlow(t *testing.T) {
	n := 2
	outputIDs := []int{0, 1}

	causal, err := mbqcflow.FindCausal(n, nil, nil, outputIDs)
	require.NoError(t, err)
	require.Empty(t, causal.F)
	require.Equal(t, []int{0, 0}, causal.Layer)

	g, err := mbqcflow.FindG(n, nil, nil, outputIDs, graph.Labels{})
	require.NoError(t, err)
	require.Empty(t, g.F)

	p, err := mbqcflow.FindP(n, nil, nil, outputIDs, graph.PLabels{})
	require.NoError(t, err)
	require.Empty(t, p.F)
}

// TestProperty_Determinism confirms repeated calls with identical inputs
// return byte-identical witnesses (spec.md §8 property 1 / §5).
func TestProperty_Determinism(t *testing.T) {
	n := 3
	edges := []graph.Edge{{U: 0, V: 1}, {U: 0, V: 2}}
	var inputIDs []int
	outputIDs := []int{1, 2}
	labels := graph.Labels{0: graph.PlaneXY}

	first, err := mbqcflow.FindG(n, edges, inputIDs, outputIDs, labels)
	require.NoError(t, err)
	second, err := mbqcflow.FindG(n, edges, inputIDs, outputIDs, labels)
	require.NoError(t, err)

	require.Equal(t, first.Layer, second.Layer)
	require.Len(t, second.F, len(first.F))
	for u, fu := range first.F {
		require.Equal(t, fu.ToSlice(n), second.F[u].ToSlice(n))
	}
}
