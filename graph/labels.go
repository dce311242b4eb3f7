// File: labels.go
// Role: measurement-plane tags and the total map from a non-output vertex
// to its tag.
package graph

import (
	"fmt"

	"mbqcflow/bitmatrix"
)

// Plane is a measurement-plane tag usable by causal flow and gflow.
type Plane int

const (
	// PlaneXY is the XY measurement plane.
	PlaneXY Plane = iota
	// PlaneYZ is the YZ measurement plane.
	PlaneYZ
	// PlaneXZ is the XZ measurement plane.
	PlaneXZ
)

// String renders the plane's canonical short name.
func (p Plane) String() string {
	switch p {
	case PlaneXY:
		return "XY"
	case PlaneYZ:
		return "YZ"
	case PlaneXZ:
		return "XZ"
	default:
		return fmt.Sprintf("Plane(%d)", int(p))
	}
}

// Valid reports whether p is one of the three defined planes.
func (p Plane) Valid() bool {
	return p == PlaneXY || p == PlaneYZ || p == PlaneXZ
}

// PPlane is a measurement-plane tag usable by Pauli flow: the three
// ordinary planes plus the three Pauli eigenstates X, Y, Z.
type PPlane int

const (
	// PPlaneXY is the XY measurement plane.
	PPlaneXY PPlane = iota
	// PPlaneYZ is the YZ measurement plane.
	PPlaneYZ
	// PPlaneXZ is the XZ measurement plane.
	PPlaneXZ
	// PPlaneX is the Pauli-X eigenstate measurement.
	PPlaneX
	// PPlaneY is the Pauli-Y eigenstate measurement.
	PPlaneY
	// PPlaneZ is the Pauli-Z eigenstate measurement.
	PPlaneZ
)

// String renders the Pauli plane's canonical short name.
func (p PPlane) String() string {
	switch p {
	case PPlaneXY:
		return "XY"
	case PPlaneYZ:
		return "YZ"
	case PPlaneXZ:
		return "XZ"
	case PPlaneX:
		return "X"
	case PPlaneY:
		return "Y"
	case PPlaneZ:
		return "Z"
	default:
		return fmt.Sprintf("PPlane(%d)", int(p))
	}
}

// Valid reports whether p is one of the six defined Pauli planes.
func (p PPlane) Valid() bool {
	return p >= PPlaneXY && p <= PPlaneZ
}

// IsPauli reports whether p is one of the three Pauli eigenstate tags
// (X, Y, Z), as opposed to one of the three ordinary planes.
func (p PPlane) IsPauli() bool {
	return p == PPlaneX || p == PPlaneY || p == PPlaneZ
}

// AsPlane downgrades a non-Pauli PPlane to the equivalent Plane. Callers
// must check !p.IsPauli() first.
func (p PPlane) AsPlane() Plane {
	switch p {
	case PPlaneYZ:
		return PlaneYZ
	case PPlaneXZ:
		return PlaneXZ
	default:
		return PlaneXY
	}
}

// Labels is the total map from every non-output vertex to its Plane,
// for causal-flow and gflow finding.
type Labels map[int]Plane

// ValidateLabels checks that labels is defined exactly on M = V \ outputs,
// with every tag valid.
func ValidateLabels(n int, outputs bitmatrix.Bitset, labels Labels) error {
	for u := 0; u < n; u++ {
		isOutput := outputs.Test(u)
		lbl, ok := labels[u]
		switch {
		case isOutput && ok:
			return fmt.Errorf("graph: vertex %d: %w", u, ErrLabelExtraneous)
		case !isOutput && !ok:
			return fmt.Errorf("graph: vertex %d: %w", u, ErrLabelMissing)
		case !isOutput && !lbl.Valid():
			return fmt.Errorf("graph: vertex %d has tag %v: %w", u, lbl, ErrUnknownPlane)
		}
	}
	return nil
}

// PLabels is the total map from every non-output vertex to its PPlane,
// for Pauli-flow finding.
type PLabels map[int]PPlane

// ValidatePLabels checks that labels is defined exactly on M = V \ outputs,
// with every tag valid.
func ValidatePLabels(n int, outputs bitmatrix.Bitset, labels PLabels) error {
	for u := 0; u < n; u++ {
		isOutput := outputs.Test(u)
		lbl, ok := labels[u]
		switch {
		case isOutput && ok:
			return fmt.Errorf("graph: vertex %d: %w", u, ErrLabelExtraneous)
		case !isOutput && !ok:
			return fmt.Errorf("graph: vertex %d: %w", u, ErrLabelMissing)
		case !isOutput && !lbl.Valid():
			return fmt.Errorf("graph: vertex %d has tag %v: %w", u, lbl, ErrUnknownPlane)
		}
	}
	return nil
}

// PauliVertices returns the bitset of vertices labelled with a Pauli
// eigenstate tag (X, Y, or Z).
func PauliVertices(n int, labels PLabels) bitmatrix.Bitset {
	s := bitmatrix.NewBitset(n)
	for u, p := range labels {
		if p.IsPauli() {
			s.Set(u)
		}
	}
	return s
}
