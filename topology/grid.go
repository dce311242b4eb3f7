// File: grid.go
// Role: square-grid cluster-state constructor — the canonical 2D
// substrate for MBQC (every vertex connected to its right and bottom
// neighbour), generalized from the teacher's builder.Grid("r,c" string
// IDs) to this module's dense integer vertex universe.
package topology

import (
	"fmt"

	"mbqcflow/graph"
)

const minGridDim = 1

// Grid returns the rows*cols orthogonal lattice with vertex (r,c) at id
// r*cols+c (row-major), connected to its right (r,c+1) and bottom
// (r+1,c) neighbours where they exist.
func Grid(rows, cols int) (int, []graph.Edge, error) {
	if rows < minGridDim || cols < minGridDim {
		return 0, nil, fmt.Errorf("topology: Grid rows=%d cols=%d < %d: %w", rows, cols, minGridDim, ErrTooFewVertices)
	}
	n := rows * cols
	id := func(r, c int) int { return r*cols + c }

	var edges []graph.Edge
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			u := id(r, c)
			if c+1 < cols {
				edges = append(edges, graph.Edge{U: u, V: id(r, c+1)})
			}
			if r+1 < rows {
				edges = append(edges, graph.Edge{U: u, V: id(r+1, c)})
			}
		}
	}
	return n, edges, nil
}
