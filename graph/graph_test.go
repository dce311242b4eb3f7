package graph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"mbqcflow/graph"
)

func TestNewGraph_RejectsOutOfRangeEdge(t *testing.T) {
	_, err := graph.NewGraph(2, []graph.Edge{{U: 0, V: 5}})
	require.ErrorIs(t, err, graph.ErrVertexRange)
}

func TestNewGraph_RejectsSelfLoop(t *testing.T) {
	_, err := graph.NewGraph(2, []graph.Edge{{U: 1, V: 1}})
	require.ErrorIs(t, err, graph.ErrSelfLoop)
}

func TestNewGraph_DedupesParallelEdges(t *testing.T) {
	g, err := graph.NewGraph(2, []graph.Edge{{U: 0, V: 1}, {U: 1, V: 0}, {U: 0, V: 1}})
	require.NoError(t, err)
	require.True(t, g.HasEdge(0, 1))
	require.True(t, g.HasEdge(1, 0))
	require.Equal(t, 1, g.Adj(0).PopCount())
}

func TestGraph_Odd(t *testing.T) {
	// linear chain 0-1-2
	g, err := graph.NewGraph(3, []graph.Edge{{U: 0, V: 1}, {U: 1, V: 2}})
	require.NoError(t, err)

	s, err := g.VertexSet([]int{1})
	require.NoError(t, err)
	odd := g.Odd(s)
	// adj(1) = {0,2}; both have odd intersection with {1}? No: Odd(S) is
	// about which vertices have an odd-sized neighbourhood intersection
	// with S, so Odd({1}) = {0, 2} (both are adjacent to 1, and nothing
	// else is).
	require.Equal(t, []int{0, 2}, odd.ToSlice(3))
}

func TestValidateLabels_MissingAndExtraneous(t *testing.T) {
	g, _ := graph.NewGraph(3, nil)
	outputs, _ := g.VertexSet([]int{2})

	// missing label on vertex 0
	err := graph.ValidateLabels(3, outputs, graph.Labels{1: graph.PlaneXY})
	require.ErrorIs(t, err, graph.ErrLabelMissing)

	// extraneous label on output vertex 2
	err = graph.ValidateLabels(3, outputs, graph.Labels{0: graph.PlaneXY, 1: graph.PlaneXY, 2: graph.PlaneXY})
	require.ErrorIs(t, err, graph.ErrLabelExtraneous)

	// fully valid
	err = graph.ValidateLabels(3, outputs, graph.Labels{0: graph.PlaneXY, 1: graph.PlaneXY})
	require.NoError(t, err)
}

func TestPauliVertices(t *testing.T) {
	s := graph.PauliVertices(4, graph.PLabels{
		0: graph.PPlaneXY,
		1: graph.PPlaneY,
		2: graph.PPlaneZ,
	})
	require.Equal(t, []int{1, 2}, s.ToSlice(4))
}

func TestPlaneString(t *testing.T) {
	require.Equal(t, "XY", graph.PlaneXY.String())
	require.Equal(t, "YZ", graph.PlaneYZ.String())
	require.Equal(t, "XZ", graph.PlaneXZ.String())
}
