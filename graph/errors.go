package graph

import "errors"

// Sentinel errors for Graph and Labels construction. These surface as
// FlowError.InconsistentInput at the finder layer (see flowerr).
var (
	// ErrVertexRange indicates an edge or vertex-set entry references a
	// vertex outside [0, n).
	ErrVertexRange = errors.New("graph: vertex out of range")

	// ErrSelfLoop indicates an edge has identical endpoints.
	ErrSelfLoop = errors.New("graph: self-loop not allowed")

	// ErrLabelMissing indicates a non-output vertex has no measurement
	// label assigned.
	ErrLabelMissing = errors.New("graph: label missing for non-output vertex")

	// ErrLabelExtraneous indicates a label was assigned to an output
	// vertex, which is never measured.
	ErrLabelExtraneous = errors.New("graph: label assigned to output vertex")

	// ErrUnknownPlane indicates a label tag outside the valid range for
	// its kind (Plane or PPlane).
	ErrUnknownPlane = errors.New("graph: unknown measurement plane")
)
