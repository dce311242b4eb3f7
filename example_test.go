package mbqcflow_test

import (
	"fmt"

	"mbqcflow"
	"mbqcflow/bitmatrix"
	"mbqcflow/graph"
)

// ExampleFindCausal computes the causal flow for the three-vertex linear
// chain of spec.md §8 S1.
func ExampleFindCausal() {
	res, err := mbqcflow.FindCausal(3,
		[]graph.Edge{{U: 0, V: 1}, {U: 1, V: 2}},
		[]int{0}, []int{2})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("f(0) =", res.F[0])
	fmt.Println("f(1) =", res.F[1])
	fmt.Println("layer(0) =", res.Layer[0], "layer(1) =", res.Layer[1])
	// Output:
	// f(0) = 1
	// f(1) = 2
	// layer(0) = 2 layer(1) = 1
}

// ExampleFindG finds a generalized flow for a single measured vertex
// with two output neighbours; free variables solve to zero, so the
// correction set is the lower-id neighbour alone.
func ExampleFindG() {
	res, err := mbqcflow.FindG(3,
		[]graph.Edge{{U: 0, V: 1}, {U: 0, V: 2}},
		nil, []int{1, 2},
		graph.Labels{0: graph.PlaneXY})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("f(0) =", res.F[0].ToSlice(3))
	// Output:
	// f(0) = [1]
}

// ExampleFindP finds a Pauli flow for the three-vertex chain with its
// middle vertex measured as Pauli Y (spec.md §8 S4); the Pauli-Y vertex
// is forced into its own correction set.
func ExampleFindP() {
	res, err := mbqcflow.FindP(3,
		[]graph.Edge{{U: 0, V: 1}, {U: 1, V: 2}},
		[]int{0}, []int{2},
		graph.PLabels{0: graph.PPlaneXY, 1: graph.PPlaneY})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("f(0) =", res.F[0].ToSlice(3))
	fmt.Println("f(1) =", res.F[1].ToSlice(3))
	// Output:
	// f(0) = [1]
	// f(1) = [1 2]
}

// ExampleValidate shows the validator rejecting a witness whose order
// is inconsistent with its own correction sets (spec.md §8 S5).
func ExampleValidate() {
	f := map[int]bitmatrix.Bitset{
		0: bitmatrix.FromSlice(3, []int{1}),
		1: bitmatrix.FromSlice(3, []int{2}),
	}
	err := mbqcflow.Validate(3,
		[]graph.Edge{{U: 0, V: 1}, {U: 1, V: 2}},
		[]int{0}, []int{2},
		graph.PLabels{0: graph.PPlaneXY, 1: graph.PPlaneXY},
		f, []int{1, 2, 0})
	fmt.Println(err)
	// Output:
	// validator: order violation (0 -> 1): layer(1) not < layer(0)
}
