// Copyright 2026 The Gotenx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coeffs

// BoundaryKind is the closed set of boundary-condition descriptors §4.6
// names: a fixed value (Dirichlet) or a fixed gradient (Neumann).
type BoundaryKind int

const (
	Dirichlet BoundaryKind = iota
	Neumann
)

// Boundary is one end's boundary-condition descriptor.
type Boundary struct {
	Kind  BoundaryKind
	Value float64 // the Dirichlet value, or the Neumann gradient
}

// EquationBoundaries holds the lo (rho=0) and hi (rho=1) descriptors for
// one equation (§4.6).
type EquationBoundaries struct {
	Lo, Hi Boundary
}

// ApplyGhost encodes a boundary descriptor into the ghost-cell treatment
// used by the coefficient builder: it returns the effective boundary-face
// value and an extra diagonal/source contribution representing the ghost
// cell, given the adjacent interior cell value, half-cell distance, and
// face diffusivity.
func (b Boundary) ApplyGhost(interiorValue, halfCellDistance, diffusivity float64) (faceValue float64, ghostFluxCoeff float64) {
	switch b.Kind {
	case Dirichlet:
		// ghost cell value is defined so the face value equals b.Value
		// exactly; the flux coefficient follows a standard two-point
		// ghost-cell stencil.
		faceValue = b.Value
		ghostFluxCoeff = diffusivity / halfCellDistance
		return
	case Neumann:
		// flux at the boundary is prescribed directly: dx/dn = b.Value.
		faceValue = interiorValue + b.Value*halfCellDistance
		ghostFluxCoeff = diffusivity / halfCellDistance
		return
	default:
		return interiorValue, 0
	}
}
