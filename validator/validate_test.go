package validator_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"mbqcflow/bitmatrix"
	"mbqcflow/graph"
	"mbqcflow/validator"
)

func bits(n int, ids ...int) bitmatrix.Bitset {
	return bitmatrix.FromSlice(n, ids)
}

func chain3(t *testing.T) *graph.Graph {
	t.Helper()
	g, err := graph.NewGraph(3, []graph.Edge{{U: 0, V: 1}, {U: 1, V: 2}})
	require.NoError(t, err)
	return g
}

func TestValidate_AcceptsCausalChainWitness(t *testing.T) {
	g := chain3(t)
	labels := graph.PLabels{0: graph.PPlaneXY, 1: graph.PPlaneXY}
	f := map[int]bitmatrix.Bitset{
		0: bits(3, 1),
		1: bits(3, 2),
	}
	layer := []int{2, 1, 0}

	err := validator.Validate(g, labels, bits(3, 0), bits(3, 2), f, layer)
	require.NoError(t, err)
}

func TestValidate_RejectsBadOrder(t *testing.T) {
	g := chain3(t)
	labels := graph.PLabels{0: graph.PPlaneXY, 1: graph.PPlaneXY}
	f := map[int]bitmatrix.Bitset{
		0: bits(3, 1),
		1: bits(3, 2),
	}
	layer := []int{1, 2, 0}

	err := validator.Validate(g, labels, bits(3, 0), bits(3, 2), f, layer)
	require.Error(t, err)
	msg, ok := err.(validator.Message)
	require.True(t, ok)
	require.Equal(t, validator.InconsistentFlowOrder, msg.Kind)
	require.Equal(t, 0, msg.Node)
	require.Equal(t, 1, msg.Other)
}

func TestValidate_RejectsFlowDefinedOnOutput(t *testing.T) {
	g, err := graph.NewGraph(2, []graph.Edge{{U: 0, V: 1}})
	require.NoError(t, err)
	labels := graph.PLabels{0: graph.PPlaneXY}
	f := map[int]bitmatrix.Bitset{
		0: bits(2, 1),
		1: bits(2),
	}
	layer := []int{1, 0}

	err = validator.Validate(g, labels, bits(2), bits(2, 1), f, layer)
	require.Error(t, err)
	msg, ok := err.(validator.Message)
	require.True(t, ok)
	require.Equal(t, validator.InvalidFlowDomain, msg.Kind)
	require.Equal(t, 1, msg.Node)
}

func TestValidate_RejectsMissingCorrectorForMeasuredVertex(t *testing.T) {
	g, err := graph.NewGraph(2, []graph.Edge{{U: 0, V: 1}})
	require.NoError(t, err)
	labels := graph.PLabels{0: graph.PPlaneXY}
	f := map[int]bitmatrix.Bitset{}
	layer := []int{1, 0}

	err = validator.Validate(g, labels, bits(2), bits(2, 1), f, layer)
	require.Error(t, err)
	msg, ok := err.(validator.Message)
	require.True(t, ok)
	require.Equal(t, validator.InvalidFlowDomain, msg.Kind)
	require.Equal(t, 0, msg.Node)
}

func TestValidate_RejectsCorrectorDrawingOnInput(t *testing.T) {
	g, err := graph.NewGraph(2, []graph.Edge{{U: 0, V: 1}})
	require.NoError(t, err)
	// Vertex 0 is both an input and an output (output-first per DESIGN's
	// resolved Open Question), so it is never measured and carries no
	// label; vertex 1's corrector illegally draws on it anyway.
	labels := graph.PLabels{1: graph.PPlaneXY}
	f := map[int]bitmatrix.Bitset{
		1: bits(2, 0),
	}
	layer := []int{0, 1}

	err = validator.Validate(g, labels, bits(2, 0), bits(2, 0), f, layer)
	require.Error(t, err)
	msg, ok := err.(validator.Message)
	require.True(t, ok)
	require.Equal(t, validator.InvalidFlowCodomain, msg.Kind)
	require.Equal(t, 1, msg.Node)
}

func TestValidate_AcceptsPauliYExemptFromOrder(t *testing.T) {
	g := chain3(t)
	labels := graph.PLabels{0: graph.PPlaneXY, 1: graph.PPlaneY}
	f := map[int]bitmatrix.Bitset{
		0: bits(3, 1),
		1: bits(3, 1, 2),
	}
	layer := []int{1, 2, 0}

	err := validator.Validate(g, labels, bits(3, 0), bits(3, 2), f, layer)
	require.NoError(t, err)
}
